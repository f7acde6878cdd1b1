package models

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures that surface to the user.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrEmptyDescription
	ErrMissingMarker
	ErrEmptyField
	ErrInvalidDate
	ErrNonNumeric
	ErrIndexOutOfRange
	ErrUnknownCommand
	ErrMalformedRecord
	ErrIOFailure
)

var errorKindNames = map[ErrorKind]string{
	ErrUnknown:          "unknown",
	ErrEmptyDescription: "empty description",
	ErrMissingMarker:    "missing marker",
	ErrEmptyField:       "empty field",
	ErrInvalidDate:      "invalid date",
	ErrNonNumeric:       "non-numeric",
	ErrIndexOutOfRange:  "index out of range",
	ErrUnknownCommand:   "unknown command",
	ErrMalformedRecord:  "malformed record",
	ErrIOFailure:        "i/o failure",
}

func (k ErrorKind) String() string {
	if s, ok := errorKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// User-facing messages.
const (
	MsgEmptyTodo        = "The description of a todo cannot be empty."
	MsgMissingBy        = "Please specify deadline with /by"
	MsgMissingFromTo    = "Please specify event with /from and /to"
	MsgEmptyDeadline    = "Description and deadline cannot be empty."
	MsgEmptyEvent       = "Description, start time and end time cannot be empty."
	MsgInvalidDate      = "Invalid date format! Please use dd-MM-yyyy (e.g., 02-12-2019)"
	MsgNonNumeric       = "OOPS!!! Please provide a valid task number!"
	MsgIndexOutOfRange  = "OOPS!!! Task number does not exist."
	MsgUnknownCommand   = "Unknown command! Type 'help' to see available commands."
	MsgLoadFailed       = "Error loading tasks from file. Starting with empty task list."
	MsgSaveFailedPrefix = "Error saving tasks: "
)

// Error is a classified error. Msg is what the user sees; Err, when set, is
// the underlying cause.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf creates a classified error with a formatted message.
func Errorf(kind ErrorKind, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrapf creates a classified error that wraps cause.
func Wrapf(kind ErrorKind, cause error, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: cause}
}

// KindOfError returns the kind of the outermost classified error in err's
// chain, or ErrUnknown.
func KindOfError(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ErrUnknown
}

// IsKind reports whether any classified error in err's chain has the given
// kind.
func IsKind(err error, kind ErrorKind) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Kind == kind {
			return true
		}
		err = e.Err
	}
	return false
}
