package models

// StoreConfig holds settings for the task store.
type StoreConfig struct {
	DataFile string `yaml:"data_file"` // relative paths resolve against the working directory
}

// TranscriptConfig holds settings for session transcripts.
type TranscriptConfig struct {
	Enabled bool `yaml:"enabled"`
}

// TUIConfig holds settings for the terminal front-end.
type TUIConfig struct {
	WatchStore bool `yaml:"watch_store"` // notify when the store file changes on disk
	AltScreen  bool `yaml:"alt_screen"`
}

// AppearanceConfig holds appearance settings.
type AppearanceConfig struct {
	Theme string `yaml:"theme"` // "system" | "light" | "dark"
}

// Settings represents global application settings.
// This corresponds to ~/.dbot/settings.yaml.
type Settings struct {
	Version     int              `yaml:"version"`
	Store       StoreConfig      `yaml:"store"`
	Transcripts TranscriptConfig `yaml:"transcripts"`
	TUI         TUIConfig        `yaml:"tui"`
	Appearance  AppearanceConfig `yaml:"appearance"`
}

// DefaultDataFile is the store location used when nothing else is configured.
const DefaultDataFile = "./data/dbot.txt"

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: 1,
		Store: StoreConfig{
			DataFile: DefaultDataFile,
		},
		Transcripts: TranscriptConfig{
			Enabled: false,
		},
		TUI: TUIConfig{
			WatchStore: true,
			AltScreen:  true,
		},
		Appearance: AppearanceConfig{
			Theme: "system",
		},
	}
}
