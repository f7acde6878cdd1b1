package tui

import "github.com/watchfire-io/dbot/internal/watcher"

// storeChangedMsg is sent when the task file changes on disk.
type storeChangedMsg struct {
	event watcher.Event
}

// entryKind selects how a conversation entry is styled.
type entryKind int

const (
	entryInput entryKind = iota
	entryReply
	entryError
	entryWarning
)

// entry is one block in the conversation pane.
type entry struct {
	kind entryKind
	text string
}
