package models

import "strings"

// Markers separating the fields of deadline and event commands.
const (
	MarkerBy   = "/by"
	MarkerFrom = "/from"
	MarkerTo   = "/to"
)

// ParseTodo builds a todo from the text following the "todo" keyword.
func ParseTodo(rest string) (*Task, error) {
	description := strings.TrimSpace(rest)
	if description == "" {
		return nil, Errorf(ErrEmptyDescription, MsgEmptyTodo)
	}
	return NewTodo(description), nil
}

// ParseDeadline builds a deadline from "<description> /by <dd-MM-yyyy>".
func ParseDeadline(rest string) (*Task, error) {
	byIndex := strings.Index(rest, MarkerBy)
	if byIndex < 0 {
		return nil, Errorf(ErrMissingMarker, MsgMissingBy)
	}

	description := strings.TrimSpace(rest[:byIndex])
	byText := strings.TrimSpace(rest[byIndex+len(MarkerBy):])
	if description == "" || byText == "" {
		return nil, Errorf(ErrEmptyField, MsgEmptyDeadline)
	}

	by, err := ParseDate(byText)
	if err != nil {
		return nil, err
	}
	return NewDeadline(description, by), nil
}

// ParseEvent builds an event from
// "<description> /from <dd-MM-yyyy> /to <dd-MM-yyyy>". The /to marker must
// follow /from.
func ParseEvent(rest string) (*Task, error) {
	fromIndex := strings.Index(rest, MarkerFrom)
	if fromIndex < 0 {
		return nil, Errorf(ErrMissingMarker, MsgMissingFromTo)
	}
	afterFrom := fromIndex + len(MarkerFrom)
	toOffset := strings.Index(rest[afterFrom:], MarkerTo)
	if toOffset < 0 {
		return nil, Errorf(ErrMissingMarker, MsgMissingFromTo)
	}
	toIndex := afterFrom + toOffset

	description := strings.TrimSpace(rest[:fromIndex])
	fromText := strings.TrimSpace(rest[afterFrom:toIndex])
	toText := strings.TrimSpace(rest[toIndex+len(MarkerTo):])
	if description == "" || fromText == "" || toText == "" {
		return nil, Errorf(ErrEmptyField, MsgEmptyEvent)
	}

	from, err := ParseDate(fromText)
	if err != nil {
		return nil, err
	}
	to, err := ParseDate(toText)
	if err != nil {
		return nil, err
	}
	return NewEvent(description, from, to), nil
}
