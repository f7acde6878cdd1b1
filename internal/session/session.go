// Package session runs one command cycle at a time: parse, apply to the task
// list, persist, and produce the reply text.
package session

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/watchfire-io/dbot/internal/models"
	"github.com/watchfire-io/dbot/internal/parser"
	"github.com/watchfire-io/dbot/internal/storage"
	"github.com/watchfire-io/dbot/internal/tasklist"
)

// State is the controller's lifecycle state.
type State int

const (
	StateRunning State = iota
	StateTerminated
)

func (s State) String() string {
	if s == StateTerminated {
		return "terminated"
	}
	return "running"
}

// ErrTerminated is returned for input submitted after the session ended.
var ErrTerminated = errors.New("session has ended")

// Store is the persistence the controller needs.
type Store interface {
	Load() (*storage.LoadResult, error)
	Save(tasks []*models.Task) error
	ReadRaw() ([]byte, error)
	Path() string
}

// Response is the reply to one input line.
type Response struct {
	Text    string
	Err     error // the command was rejected; Text is its message
	Warning error // the command applied but could not be saved
	Exit    bool
}

// Controller owns the task list for one session. It is not safe for
// concurrent use.
type Controller struct {
	id        string
	store     Store
	tasks     *tasklist.List
	state     State
	startedAt time.Time
	warnings  []string
	record    bool
	history   []models.Exchange
}

// Option configures a Controller.
type Option func(*Controller)

// WithTranscript records every exchange for Transcript.
func WithTranscript() Option {
	return func(c *Controller) { c.record = true }
}

// New creates a controller and loads the store. Load problems never fail the
// session: they leave an empty or partial list and are reported by Warnings.
func New(store Store, opts ...Option) *Controller {
	c := &Controller{
		id:        uuid.New().String(),
		store:     store,
		state:     StateRunning,
		startedAt: time.Now(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.load()
	return c
}

func (c *Controller) load() {
	c.warnings = nil
	result, err := c.store.Load()
	if err != nil {
		log.Printf("[session] %s: load failed: %v", c.id, err)
		c.tasks = tasklist.New()
		c.warnings = append(c.warnings, models.MsgLoadFailed)
		return
	}

	c.tasks = tasklist.New(result.Tasks...)
	if n := len(result.Skipped); n > 0 {
		c.warnings = append(c.warnings, fmt.Sprintf("Skipped %d unreadable line(s) in %s.", n, c.store.Path()))
	}
	log.Printf("[session] %s: loaded %d tasks from %s", c.id, c.tasks.Len(), c.store.Path())
}

// ID returns the session id.
func (c *Controller) ID() string {
	return c.id
}

// StartedAt returns when the session began.
func (c *Controller) StartedAt() time.Time {
	return c.startedAt
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// Warnings returns problems met while loading the store.
func (c *Controller) Warnings() []string {
	return c.warnings
}

// Tasks returns a snapshot of the current tasks.
func (c *Controller) Tasks() []*models.Task {
	return c.tasks.Tasks()
}

// Transcript returns the recorded exchanges, if recording is enabled.
func (c *Controller) Transcript() []models.Exchange {
	return c.history
}

// Welcome returns the greeting shown when a shell starts.
func (c *Controller) Welcome() string {
	return welcomeText
}

// Submit runs one command line and returns its reply.
func (c *Controller) Submit(line string) Response {
	resp := c.submit(strings.TrimSpace(line))
	if c.record {
		c.history = append(c.history, models.Exchange{Input: strings.TrimSpace(line), Output: resp.Text})
	}
	return resp
}

func (c *Controller) submit(line string) Response {
	if c.state == StateTerminated {
		return Response{Text: ErrTerminated.Error(), Err: ErrTerminated, Exit: true}
	}

	cmd, err := parser.Classify(line)
	if err != nil {
		return Response{Text: err.Error(), Err: err}
	}

	var text string
	switch cmd.Type {
	case parser.CommandExit:
		c.state = StateTerminated
		log.Printf("[session] %s: terminated", c.id)
		return Response{Text: goodbyeText, Exit: true}
	case parser.CommandList:
		return Response{Text: listText(c.tasks.Tasks())}
	case parser.CommandHelp:
		return Response{Text: helpText}
	case parser.CommandFind:
		return Response{Text: matchesText(c.tasks.Find(cmd.Keyword))}
	case parser.CommandMark, parser.CommandUnmark:
		text, err = c.setDone(cmd.Index, cmd.Type == parser.CommandMark)
	case parser.CommandDelete:
		text, err = c.remove(cmd.Index)
	case parser.CommandTodo, parser.CommandDeadline, parser.CommandEvent:
		text = c.add(cmd.Task)
	}
	if err != nil {
		return Response{Text: err.Error(), Err: err}
	}

	resp := Response{Text: text}
	if err := c.save(); err != nil {
		resp.Warning = err
		resp.Text += "\n" + models.MsgSaveFailedPrefix + err.Error()
	}
	return resp
}

func (c *Controller) add(t *models.Task) string {
	c.tasks.Append(t)
	return fmt.Sprintf("Got it. I've added this task:\n  %s\nNow you have %d tasks in the list.",
		t.Render(), c.tasks.Len())
}

func (c *Controller) setDone(index int, done bool) (string, error) {
	t, err := c.tasks.Get(index)
	if err != nil {
		return "", err
	}
	if done {
		t.MarkDone()
		return "Nice! I've marked this task as done:\n  " + t.Render(), nil
	}
	t.MarkUndone()
	return "OK, I've marked this task as not done yet:\n  " + t.Render(), nil
}

func (c *Controller) remove(index int) (string, error) {
	t, err := c.tasks.RemoveAt(index)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Noted. I've removed this task:\n  %s\nNow you have %d tasks in the list.",
		t.Render(), c.tasks.Len()), nil
}

func (c *Controller) save() error {
	if err := c.store.Save(c.tasks.Tasks()); err != nil {
		log.Printf("[session] %s: save failed: %v", c.id, err)
		return err
	}
	return nil
}

// InSync reports whether the store file holds exactly the in-memory tasks.
func (c *Controller) InSync() (bool, error) {
	data, err := c.store.ReadRaw()
	if err != nil {
		return false, err
	}
	return bytes.Equal(data, storage.Encode(c.tasks.Tasks())), nil
}

// Reload replaces the in-memory tasks with the store's content.
func (c *Controller) Reload() Response {
	if c.state == StateTerminated {
		return Response{Text: ErrTerminated.Error(), Err: ErrTerminated, Exit: true}
	}
	c.load()
	text := fmt.Sprintf("Reloaded %d tasks from %s.", c.tasks.Len(), c.store.Path())
	if len(c.warnings) > 0 {
		text += "\n" + strings.Join(c.warnings, "\n")
	}
	return Response{Text: text}
}
