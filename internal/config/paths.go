// Package config handles configuration loading, saving, and path management.
package config

import (
	"os"
	"path/filepath"

	"github.com/watchfire-io/dbot/internal/models"
)

const (
	// GlobalDirName is the name of the global dbot directory.
	GlobalDirName = ".dbot"

	// LogsDirName is the name of the logs directory.
	LogsDirName = "logs"

	// TranscriptsDirName is the name of the session transcripts directory.
	TranscriptsDirName = "transcripts"
)

// File names
const (
	SettingsFileName = "settings.yaml"
	LogFileName      = "dbot.log"
)

// HomeEnv overrides the global directory when set.
const HomeEnv = "DBOT_HOME"

// GlobalDir returns the path to the global dbot directory (~/.dbot/).
func GlobalDir() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalDirName), nil
}

// GlobalSettingsFile returns the path to the settings.yaml file.
func GlobalSettingsFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}

// GlobalLogsDir returns the path to the logs directory.
func GlobalLogsDir() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, LogsDirName), nil
}

// TranscriptsDir returns the path to the session transcripts directory.
func TranscriptsDir() (string, error) {
	dir, err := GlobalLogsDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, TranscriptsDirName), nil
}

// EnsureGlobalLogsDir creates the global logs directory if it doesn't exist.
func EnsureGlobalLogsDir() error {
	dir, err := GlobalLogsDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// ResolveDataFile picks the store file: flag value, then settings, then the
// built-in default. Relative paths are made absolute against the working
// directory.
func ResolveDataFile(flagValue string, settings string) (string, error) {
	path := flagValue
	if path == "" {
		path = settings
	}
	if path == "" {
		path = models.DefaultDataFile
	}
	return filepath.Abs(path)
}
