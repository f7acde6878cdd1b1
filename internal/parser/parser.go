// Package parser turns a raw input line into a command.
package parser

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/watchfire-io/dbot/internal/models"
)

// CommandType identifies what a line asks for.
type CommandType int

const (
	CommandUnknown CommandType = iota
	CommandExit
	CommandList
	CommandHelp
	CommandMark
	CommandUnmark
	CommandDelete
	CommandTodo
	CommandDeadline
	CommandEvent
	CommandFind
)

var commandNames = map[CommandType]string{
	CommandUnknown:  "unknown",
	CommandExit:     "bye",
	CommandList:     "list",
	CommandHelp:     "help",
	CommandMark:     "mark",
	CommandUnmark:   "unmark",
	CommandDelete:   "delete",
	CommandTodo:     "todo",
	CommandDeadline: "deadline",
	CommandEvent:    "event",
	CommandFind:     "find",
}

func (c CommandType) String() string {
	if s, ok := commandNames[c]; ok {
		return s
	}
	return "CommandType(" + strconv.Itoa(int(c)) + ")"
}

// Mutates reports whether commands of this type change the task list.
func (c CommandType) Mutates() bool {
	switch c {
	case CommandMark, CommandUnmark, CommandDelete, CommandTodo, CommandDeadline, CommandEvent:
		return true
	}
	return false
}

// Command is one parsed input line.
type Command struct {
	Type    CommandType
	Index   int          // 0-based; mark, unmark and delete
	Keyword string       // find
	Task    *models.Task // todo, deadline and event
}

// Keyword prefixes. Exact-match keywords have no trailing space.
const (
	keywordBye      = "bye"
	keywordList     = "list"
	keywordHelp     = "help"
	prefixMark      = "mark "
	prefixUnmark    = "unmark "
	prefixDelete    = "delete "
	prefixTodo      = "todo "
	prefixDeadline  = "deadline "
	prefixEvent     = "event "
	prefixFind      = "find"
	findKeywordFrom = len("find ")
)

type rule struct {
	typ    CommandType
	prefix string
	exact  bool
}

// rules are checked in order; the first match wins.
var rules = []rule{
	{CommandExit, keywordBye, true},
	{CommandList, keywordList, true},
	{CommandHelp, keywordHelp, true},
	{CommandMark, prefixMark, false},
	{CommandUnmark, prefixUnmark, false},
	{CommandDelete, prefixDelete, false},
	{CommandTodo, prefixTodo, false},
	{CommandDeadline, prefixDeadline, false},
	{CommandEvent, prefixEvent, false},
	{CommandFind, prefixFind, false},
}

// Type classifies a line without parsing its arguments. Keywords match
// case-insensitively against the trimmed line.
func Type(line string) CommandType {
	typ, _ := match(strings.TrimSpace(line))
	return typ
}

func match(line string) (CommandType, string) {
	for _, r := range rules {
		if r.exact {
			if strings.EqualFold(line, r.prefix) {
				return r.typ, r.prefix
			}
			continue
		}
		if hasPrefixFold(line, r.prefix) {
			return r.typ, r.prefix
		}
	}
	return CommandUnknown, ""
}

// Classify parses a line into a command. Validation failures are returned as
// *models.Error values whose message is meant for the user.
func Classify(line string) (Command, error) {
	line = strings.TrimSpace(line)
	typ, prefix := match(line)
	cmd := Command{Type: typ}

	var err error
	switch typ {
	case CommandExit, CommandList, CommandHelp:
	case CommandMark, CommandUnmark, CommandDelete:
		cmd.Index, err = ParseIndex(line[len(prefix):])
	case CommandTodo:
		cmd.Task, err = models.ParseTodo(line[len(prefix):])
	case CommandDeadline:
		cmd.Task, err = models.ParseDeadline(line[len(prefix):])
	case CommandEvent:
		cmd.Task, err = models.ParseEvent(line[len(prefix):])
	case CommandFind:
		cmd.Keyword = ParseKeyword(line)
	default:
		err = models.Errorf(models.ErrUnknownCommand, models.MsgUnknownCommand)
	}
	if err != nil {
		return Command{Type: typ}, err
	}
	return cmd, nil
}

// ParseIndex converts a 1-based task number into a 0-based index. Range is
// checked by the task list, not here.
func ParseIndex(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, models.Wrapf(models.ErrNonNumeric, err, models.MsgNonNumeric)
	}
	return n - 1, nil
}

// ParseKeyword returns the search keyword of a find line: everything after
// the first five characters, trimmed. The cut is positional, so "findbook"
// yields "ook". Characters are counted as runes, never bytes.
func ParseKeyword(line string) string {
	rest := strings.TrimSpace(line)
	for i := 0; i < findKeywordFrom && rest != ""; i++ {
		_, size := utf8.DecodeRuneInString(rest)
		rest = rest[size:]
	}
	return strings.TrimSpace(rest)
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
