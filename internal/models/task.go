package models

import (
	"strings"
	"time"
)

// TaskKind identifies the variant of a task. The value doubles as the
// leading type letter of an encoded record.
type TaskKind string

const (
	TaskKindTodo     TaskKind = "T"
	TaskKindDeadline TaskKind = "D"
	TaskKindEvent    TaskKind = "E"
)

// Date layouts. Input and the store share one layout; display uses another.
const (
	StoreDateLayout   = "02-01-2006"
	DisplayDateLayout = "Jan 02 2006"
)

// Record status values.
const (
	StatusDone    = "DONE"
	StatusNotDone = "NOT DONE"
)

// Task is a todo, deadline or event. Kind selects which of the date fields
// carry meaning: By for deadlines, From and To for events.
type Task struct {
	Kind        TaskKind
	Description string
	Done        bool
	By          time.Time
	From        time.Time
	To          time.Time
}

// NewTodo creates a plain task.
func NewTodo(description string) *Task {
	return &Task{Kind: TaskKindTodo, Description: description}
}

// NewDeadline creates a task due on the given date.
func NewDeadline(description string, by time.Time) *Task {
	return &Task{Kind: TaskKindDeadline, Description: description, By: dateOnly(by)}
}

// NewEvent creates a task spanning from..to. The range is not checked.
func NewEvent(description string, from, to time.Time) *Task {
	return &Task{Kind: TaskKindEvent, Description: description, From: dateOnly(from), To: dateOnly(to)}
}

// MarkDone marks the task as done.
func (t *Task) MarkDone() {
	t.Done = true
}

// MarkUndone marks the task as not done.
func (t *Task) MarkUndone() {
	t.Done = false
}

// StatusIcon returns "X" for done tasks and a blank otherwise.
func (t *Task) StatusIcon() string {
	if t.Done {
		return "X"
	}
	return " "
}

// Render returns the user-facing line, e.g. "[D][ ] return book (by: Dec 02 2019)".
func (t *Task) Render() string {
	var b strings.Builder
	b.WriteString("[" + string(t.Kind) + "]")
	b.WriteString("[" + t.StatusIcon() + "] ")
	b.WriteString(t.Description)

	switch t.Kind {
	case TaskKindDeadline:
		b.WriteString(" (by: " + t.By.Format(DisplayDateLayout) + ")")
	case TaskKindEvent:
		b.WriteString(" (from: " + t.From.Format(DisplayDateLayout) +
			" to: " + t.To.Format(DisplayDateLayout) + ")")
	}
	return b.String()
}

// String implements fmt.Stringer.
func (t *Task) String() string {
	return t.Render()
}

// Encode returns the on-disk record for the task.
func (t *Task) Encode() string {
	status := StatusNotDone
	if t.Done {
		status = StatusDone
	}
	fields := []string{string(t.Kind), status, t.Description}

	switch t.Kind {
	case TaskKindDeadline:
		fields = append(fields, t.By.Format(StoreDateLayout))
	case TaskKindEvent:
		fields = append(fields, t.From.Format(StoreDateLayout), t.To.Format(StoreDateLayout))
	}
	return strings.Join(fields, " | ")
}

// Equal reports whether two tasks have the same kind, description, status
// and dates.
func (t *Task) Equal(o *Task) bool {
	if t == nil || o == nil {
		return t == o
	}
	return t.Kind == o.Kind &&
		t.Description == o.Description &&
		t.Done == o.Done &&
		t.By.Equal(o.By) &&
		t.From.Equal(o.From) &&
		t.To.Equal(o.To)
}

// dateCount returns how many trailing date fields a record of kind k has.
func (k TaskKind) dateCount() int {
	switch k {
	case TaskKindDeadline:
		return 1
	case TaskKindEvent:
		return 2
	}
	return 0
}

// Valid reports whether k is a known task kind.
func (k TaskKind) Valid() bool {
	switch k {
	case TaskKindTodo, TaskKindDeadline, TaskKindEvent:
		return true
	}
	return false
}

// KindOf returns the task kind named by the leading letter of a record, or
// false when the letter is not a known kind.
func KindOf(record string) (TaskKind, bool) {
	record = strings.TrimSpace(record)
	if record == "" {
		return "", false
	}
	k := TaskKind(record[:1])
	return k, k.Valid()
}

// DecodeTask parses an encoded record back into a task.
//
// The kind and status fields are split from the left and the date fields
// from the right, so a description containing "|" survives a round trip.
func DecodeTask(record string) (*Task, error) {
	head := strings.SplitN(record, "|", 3)
	if len(head) < 3 {
		return nil, Errorf(ErrMalformedRecord, "malformed record: expected at least 3 fields in %q", record)
	}

	kind := TaskKind(strings.TrimSpace(head[0]))
	if !kind.Valid() {
		return nil, Errorf(ErrMalformedRecord, "malformed record: unknown task type %q", head[0])
	}
	status := strings.TrimSpace(head[1])

	rest := head[2]
	dates := make([]string, kind.dateCount())
	for i := len(dates) - 1; i >= 0; i-- {
		cut := strings.LastIndex(rest, "|")
		if cut < 0 {
			return nil, Errorf(ErrMalformedRecord, "malformed record: expected %d fields for type %s in %q",
				3+len(dates), kind, record)
		}
		dates[i] = strings.TrimSpace(rest[cut+1:])
		rest = rest[:cut]
	}

	description := strings.TrimSpace(rest)
	if description == "" {
		return nil, Errorf(ErrMalformedRecord, "malformed record: empty description in %q", record)
	}

	parsed := make([]time.Time, len(dates))
	for i, s := range dates {
		d, err := ParseDate(s)
		if err != nil {
			return nil, Wrapf(ErrMalformedRecord, err, "malformed record: bad date %q", s)
		}
		parsed[i] = d
	}

	var t *Task
	switch kind {
	case TaskKindTodo:
		t = NewTodo(description)
	case TaskKindDeadline:
		t = NewDeadline(description, parsed[0])
	case TaskKindEvent:
		t = NewEvent(description, parsed[0], parsed[1])
	}
	if status == StatusDone {
		t.MarkDone()
	}
	return t, nil
}

// ParseDate parses a dd-MM-yyyy date. Impossible dates such as 31-02-2024
// are rejected.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(StoreDateLayout, s)
	if err != nil {
		return time.Time{}, Wrapf(ErrInvalidDate, err, MsgInvalidDate)
	}
	return d, nil
}

// Date returns midnight UTC of the given calendar day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func dateOnly(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}
