package models

import (
	"testing"
	"time"
)

func TestParseTodo(t *testing.T) {
	task, err := ParseTodo("  Read Book ")
	if err != nil {
		t.Fatalf("ParseTodo failed: %v", err)
	}
	if task.Kind != TaskKindTodo || task.Description != "Read Book" {
		t.Errorf("got %q", task.Render())
	}

	if _, err := ParseTodo("   "); !IsKind(err, ErrEmptyDescription) {
		t.Errorf("blank todo error = %v, want %s", err, ErrEmptyDescription)
	}
}

func TestParseDeadline(t *testing.T) {
	task, err := ParseDeadline("return book /by 02-12-2019")
	if err != nil {
		t.Fatalf("ParseDeadline failed: %v", err)
	}
	if got, want := task.Render(), "[D][ ] return book (by: Dec 02 2019)"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
	if !task.By.Equal(Date(2019, time.December, 2)) {
		t.Errorf("By = %v", task.By)
	}
}

func TestParseDeadlineErrors(t *testing.T) {
	tests := []struct {
		name string
		rest string
		kind ErrorKind
		msg  string
	}{
		{"missing marker", "return book 02-12-2019", ErrMissingMarker, MsgMissingBy},
		{"empty description", "/by 01-01-2025", ErrEmptyField, MsgEmptyDeadline},
		{"empty date", "return book /by   ", ErrEmptyField, MsgEmptyDeadline},
		{"wrong layout", "return book /by 2019-12-02", ErrInvalidDate, MsgInvalidDate},
		{"single digit day", "return book /by 2-12-2019", ErrInvalidDate, MsgInvalidDate},
		{"impossible date", "return book /by 31-02-2024", ErrInvalidDate, MsgInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDeadline(tt.rest)
			if !IsKind(err, tt.kind) {
				t.Fatalf("error = %v (%s), want %s", err, KindOfError(err), tt.kind)
			}
			if err.Error() != tt.msg {
				t.Errorf("message = %q, want %q", err.Error(), tt.msg)
			}
		})
	}
}

func TestParseEvent(t *testing.T) {
	task, err := ParseEvent("trip /from 01-09-2024 /to 03-09-2024")
	if err != nil {
		t.Fatalf("ParseEvent failed: %v", err)
	}
	if got, want := task.Render(), "[E][ ] trip (from: Sep 01 2024 to: Sep 03 2024)"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestParseEventAllowsReversedRange(t *testing.T) {
	task, err := ParseEvent("trip /from 03-09-2024 /to 01-09-2024")
	if err != nil {
		t.Fatalf("ParseEvent failed: %v", err)
	}
	if !task.From.After(task.To) {
		t.Errorf("expected from after to, got %v..%v", task.From, task.To)
	}
}

func TestParseEventErrors(t *testing.T) {
	tests := []struct {
		name string
		rest string
		kind ErrorKind
	}{
		{"no markers", "trip", ErrMissingMarker},
		{"no to", "trip /from 01-09-2024", ErrMissingMarker},
		{"no from", "trip /to 01-09-2024", ErrMissingMarker},
		{"to before from", "trip /to 03-09-2024 /from 01-09-2024", ErrMissingMarker},
		{"empty description", "/from 01-09-2024 /to 03-09-2024", ErrEmptyField},
		{"empty from", "trip /from /to 03-09-2024", ErrEmptyField},
		{"empty to", "trip /from 01-09-2024 /to", ErrEmptyField},
		{"bad from", "trip /from 1-9-2024 /to 03-09-2024", ErrInvalidDate},
		{"bad to", "trip /from 01-09-2024 /to tomorrow", ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEvent(tt.rest)
			if !IsKind(err, tt.kind) {
				t.Errorf("error = %v (%s), want %s", err, KindOfError(err), tt.kind)
			}
		})
	}
}
