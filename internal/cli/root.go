// Package cli implements the dbot CLI commands.
package cli

import (
	"fmt"
	"io"
	"log"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/watchfire-io/dbot/internal/config"
	"github.com/watchfire-io/dbot/internal/models"
	"github.com/watchfire-io/dbot/internal/session"
	"github.com/watchfire-io/dbot/internal/storage"
)

var (
	dataFileFlag string

	settings  *models.Settings
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "dbot",
	Short: "A conversational task tracker",
	Long: `Dbot keeps a list of todos, deadlines and events in a plain text file.
Type commands like "todo read book" or "deadline return book /by 02-12-2019"
and Dbot replies in kind.

Running dbot with no subcommand starts the console chat.`,
	PersistentPreRunE: setup,
	PersistentPostRun: teardown,
	RunE:              runChat,
	SilenceUsage:      true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataFileFlag, "file", "f", "", "task file to use (overrides store.data_file)")

	// Add subcommands (alphabetical)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(logsCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup sends log output to the log file and loads settings. Replies go to
// stdout, so logging must never land there.
func setup(cmd *cobra.Command, args []string) error {
	closer, err := config.OpenLogFile()
	if err != nil {
		log.SetOutput(io.Discard)
	} else {
		logCloser = closer
	}

	settings, err = config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	applyTheme(settings.Appearance.Theme)
	return nil
}

func teardown(cmd *cobra.Command, args []string) {
	if logCloser != nil {
		_ = logCloser.Close()
		logCloser = nil
	}
}

func applyTheme(theme string) {
	switch theme {
	case "light":
		lipgloss.SetHasDarkBackground(false)
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	}
}

// openSession resolves the task file and loads it into a new controller.
func openSession() (*session.Controller, string, error) {
	path, err := config.ResolveDataFile(dataFileFlag, settings.Store.DataFile)
	if err != nil {
		return nil, "", fmt.Errorf("failed to resolve task file: %w", err)
	}

	var opts []session.Option
	if settings.Transcripts.Enabled {
		opts = append(opts, session.WithTranscript())
	}
	return session.New(storage.NewStore(path), opts...), path, nil
}

// closeSession writes the transcript when transcripts are enabled.
func closeSession(ctrl *session.Controller, shell, path string) {
	if !settings.Transcripts.Enabled {
		return
	}
	entry := models.TranscriptEntry{
		SessionID: ctrl.ID(),
		Shell:     shell,
		DataFile:  path,
	}
	if _, id, err := config.WriteTranscript(entry, ctrl.StartedAt(), ctrl.Transcript()); err != nil {
		log.Printf("[cli] failed to write transcript: %v", err)
	} else {
		log.Printf("[cli] wrote transcript %s", id)
	}
}
