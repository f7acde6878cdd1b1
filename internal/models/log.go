package models

// TranscriptEntry represents metadata for a single recorded session.
type TranscriptEntry struct {
	SessionID string `yaml:"session_id"`
	Shell     string `yaml:"shell"` // "console" | "tui"
	DataFile  string `yaml:"data_file"`
	Commands  int    `yaml:"commands"`
	StartedAt string `yaml:"started_at"`
	EndedAt   string `yaml:"ended_at"`
}

// Exchange is one command line and the reply it produced.
type Exchange struct {
	Input  string
	Output string
}
