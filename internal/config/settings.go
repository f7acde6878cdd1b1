package config

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/watchfire-io/dbot/internal/models"
)

// LoadSettings loads the global settings from ~/.dbot/settings.yaml.
// If the file doesn't exist, returns default settings.
func LoadSettings() (*models.Settings, error) {
	path, err := GlobalSettingsFile()
	if err != nil {
		return nil, err
	}
	return LoadYAMLOrDefault(path, models.NewSettings)
}

// SaveSettings saves the global settings to ~/.dbot/settings.yaml.
func SaveSettings(settings *models.Settings) error {
	path, err := GlobalSettingsFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, settings)
}

type settingField struct {
	get func(s *models.Settings) string
	set func(s *models.Settings, v string) error
}

var settingFields = map[string]settingField{
	"store.data_file": {
		get: func(s *models.Settings) string { return s.Store.DataFile },
		set: func(s *models.Settings, v string) error { s.Store.DataFile = v; return nil },
	},
	"transcripts.enabled": {
		get: func(s *models.Settings) string { return strconv.FormatBool(s.Transcripts.Enabled) },
		set: func(s *models.Settings, v string) error { return setBool(&s.Transcripts.Enabled, v) },
	},
	"tui.watch_store": {
		get: func(s *models.Settings) string { return strconv.FormatBool(s.TUI.WatchStore) },
		set: func(s *models.Settings, v string) error { return setBool(&s.TUI.WatchStore, v) },
	},
	"tui.alt_screen": {
		get: func(s *models.Settings) string { return strconv.FormatBool(s.TUI.AltScreen) },
		set: func(s *models.Settings, v string) error { return setBool(&s.TUI.AltScreen, v) },
	},
	"appearance.theme": {
		get: func(s *models.Settings) string { return s.Appearance.Theme },
		set: func(s *models.Settings, v string) error {
			switch v {
			case "system", "light", "dark":
				s.Appearance.Theme = v
				return nil
			}
			return fmt.Errorf("theme must be 'system', 'light', or 'dark'")
		},
	},
}

func setBool(dst *bool, v string) error {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("invalid boolean %q", v)
	}
	*dst = b
	return nil
}

// SettingKeys returns the settable keys in sorted order.
func SettingKeys() []string {
	keys := make([]string, 0, len(settingFields))
	for k := range settingFields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetSetting returns the value of a dotted settings key.
func GetSetting(settings *models.Settings, key string) (string, error) {
	f, ok := settingFields[key]
	if !ok {
		return "", fmt.Errorf("unknown setting: %s", key)
	}
	return f.get(settings), nil
}

// SetSetting updates a dotted settings key in place.
func SetSetting(settings *models.Settings, key, value string) error {
	f, ok := settingFields[key]
	if !ok {
		return fmt.Errorf("unknown setting: %s", key)
	}
	return f.set(settings, value)
}
