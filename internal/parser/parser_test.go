package parser

import (
	"testing"
	"unicode/utf8"

	"github.com/watchfire-io/dbot/internal/models"
)

func TestType(t *testing.T) {
	tests := []struct {
		line     string
		expected CommandType
	}{
		{"bye", CommandExit},
		{"  BYE  ", CommandExit},
		{"bye now", CommandUnknown},
		{"list", CommandList},
		{"List", CommandList},
		{"help", CommandHelp},
		{"mark 1", CommandMark},
		{"MARK 2", CommandMark},
		{"mark", CommandUnknown},
		{"unmark 1", CommandUnmark},
		{"delete 3", CommandDelete},
		{"todo read book", CommandTodo},
		{"TODO read book", CommandTodo},
		{"deadline x /by 01-01-2025", CommandDeadline},
		{"event x /from 01-01-2025 /to 02-01-2025", CommandEvent},
		{"find book", CommandFind},
		{"find", CommandFind},
		{"findbook", CommandFind},
		{"FIND Book", CommandFind},
		{"todo", CommandUnknown},
		{"hello", CommandUnknown},
		{"", CommandUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if got := Type(tt.line); got != tt.expected {
				t.Errorf("Type(%q) = %s, want %s", tt.line, got, tt.expected)
			}
		})
	}
}

func TestClassifyIndex(t *testing.T) {
	tests := []struct {
		line  string
		typ   CommandType
		index int
	}{
		{"mark 1", CommandMark, 0},
		{"unmark 3", CommandUnmark, 2},
		{"delete   10 ", CommandDelete, 9},
		{"mark 0", CommandMark, -1},
	}

	for _, tt := range tests {
		cmd, err := Classify(tt.line)
		if err != nil {
			t.Fatalf("Classify(%q) failed: %v", tt.line, err)
		}
		if cmd.Type != tt.typ || cmd.Index != tt.index {
			t.Errorf("Classify(%q) = %s %d, want %s %d", tt.line, cmd.Type, cmd.Index, tt.typ, tt.index)
		}
	}
}

func TestClassifyNonNumeric(t *testing.T) {
	for _, line := range []string{"mark one", "unmark 1.5", "delete x"} {
		cmd, err := Classify(line)
		if !models.IsKind(err, models.ErrNonNumeric) {
			t.Errorf("Classify(%q) error = %v, want %s", line, err, models.ErrNonNumeric)
		}
		if err != nil && err.Error() != models.MsgNonNumeric {
			t.Errorf("Classify(%q) message = %q", line, err.Error())
		}
		if !cmd.Type.Mutates() {
			t.Errorf("Classify(%q) lost command type %s", line, cmd.Type)
		}
	}
}

func TestClassifyTasksPreserveCase(t *testing.T) {
	tests := []struct {
		line     string
		typ      CommandType
		rendered string
	}{
		{"todo read book", CommandTodo, "[T][ ] read book"},
		{"TODO Read Book", CommandTodo, "[T][ ] Read Book"},
		{"deadline return book /by 02-12-2019", CommandDeadline, "[D][ ] return book (by: Dec 02 2019)"},
		{"Deadline Return Book /by 02-12-2019", CommandDeadline, "[D][ ] Return Book (by: Dec 02 2019)"},
		{"event trip /from 01-09-2024 /to 03-09-2024", CommandEvent, "[E][ ] trip (from: Sep 01 2024 to: Sep 03 2024)"},
	}

	for _, tt := range tests {
		cmd, err := Classify(tt.line)
		if err != nil {
			t.Fatalf("Classify(%q) failed: %v", tt.line, err)
		}
		if cmd.Type != tt.typ {
			t.Errorf("Classify(%q) type = %s, want %s", tt.line, cmd.Type, tt.typ)
		}
		if got := cmd.Task.Render(); got != tt.rendered {
			t.Errorf("Classify(%q) task = %q, want %q", tt.line, got, tt.rendered)
		}
	}
}

func TestClassifyTaskErrors(t *testing.T) {
	tests := []struct {
		line string
		kind models.ErrorKind
	}{
		{"deadline /by 01-01-2025", models.ErrEmptyField},
		{"deadline return book", models.ErrMissingMarker},
		{"deadline return book /by 2025-01-01", models.ErrInvalidDate},
		{"event trip /from 01-09-2024", models.ErrMissingMarker},
		{"event /from 01-09-2024 /to 03-09-2024", models.ErrEmptyField},
		{"hello there", models.ErrUnknownCommand},
	}

	for _, tt := range tests {
		_, err := Classify(tt.line)
		if !models.IsKind(err, tt.kind) {
			t.Errorf("Classify(%q) error = %v (%s), want %s", tt.line, err, models.KindOfError(err), tt.kind)
		}
	}
}

func TestClassifyFindKeyword(t *testing.T) {
	tests := []struct {
		line    string
		keyword string
	}{
		{"find book", "book"},
		{"find   Big Book  ", "Big Book"},
		{"FIND Book", "Book"},
		{"find", ""},
		{"find ", ""},
		{"findbook", "ook"},
		{"findé", ""},
		{"findécafé", "café"},
		{"find café", "café"},
		{"FIND Ärger", "Ärger"},
	}

	for _, tt := range tests {
		cmd, err := Classify(tt.line)
		if err != nil {
			t.Fatalf("Classify(%q) failed: %v", tt.line, err)
		}
		if cmd.Type != CommandFind || cmd.Keyword != tt.keyword {
			t.Errorf("Classify(%q) = %s %q, want find %q", tt.line, cmd.Type, cmd.Keyword, tt.keyword)
		}
	}
}

func TestParseKeywordKeepsRunesWhole(t *testing.T) {
	for _, line := range []string{"findé", "findéé", "find日本語"} {
		if got := ParseKeyword(line); !utf8.ValidString(got) {
			t.Errorf("ParseKeyword(%q) = %q, not valid UTF-8", line, got)
		}
	}
}

func TestPriorityOrder(t *testing.T) {
	// "todo " wins over "find" because it is checked first; an exact "list"
	// never falls through to a prefix rule.
	if got := Type("todo find me"); got != CommandTodo {
		t.Errorf("Type(todo find me) = %s", got)
	}
	if got := Type("list"); got != CommandList {
		t.Errorf("Type(list) = %s", got)
	}
}
