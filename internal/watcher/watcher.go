// Package watcher reports changes made to the task file by other processes.
package watcher

import (
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType represents the type of file system event.
type EventType int

// Event types for task file changes.
const (
	EventStoreChanged EventType = iota
	EventStoreRemoved
)

func (t EventType) String() string {
	if t == EventStoreRemoved {
		return "removed"
	}
	return "changed"
}

// DefaultDebounce is how long the watcher waits for writes to settle.
const DefaultDebounce = 100 * time.Millisecond

// Event represents a change to the watched file.
type Event struct {
	Type EventType
	Path string
}

// Watcher watches a single file. It watches the parent directory because
// atomic saves replace the file with a rename, which drops a watch placed on
// the file itself.
type Watcher struct {
	fsWatcher  *fsnotify.Watcher
	path       string
	delay      time.Duration
	eventsChan chan Event
	done       chan struct{}
	stopOnce   sync.Once
	debounceMu sync.Mutex
	timer      *time.Timer
}

// New creates a watcher for the file at path.
func New(path string, delay time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if delay <= 0 {
		delay = DefaultDebounce
	}

	return &Watcher{
		fsWatcher:  fsWatcher,
		path:       abs,
		delay:      delay,
		eventsChan: make(chan Event, 16),
		done:       make(chan struct{}),
	}, nil
}

// Path returns the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Events returns the channel for receiving events.
func (w *Watcher) Events() <-chan Event {
	return w.eventsChan
}

// Start begins watching. The parent directory is created if it is missing so
// a file that does not exist yet can still be watched.
func (w *Watcher) Start() error {
	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := w.fsWatcher.Add(dir); err != nil {
		return err
	}
	log.Printf("[watcher] Watching %s", w.path)

	go w.processEvents()
	return nil
}

// Stop stops the watcher. It is safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		_ = w.fsWatcher.Close()

		w.debounceMu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.debounceMu.Unlock()
	})
}

func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Printf("[watcher] error: %v", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return
	}
	log.Printf("[watcher] fsnotify: %s %s", event.Op, event.Name)
	w.debounce()
}

// debounce collapses a burst of events into one, fired after the file has
// been quiet for the configured delay.
func (w *Watcher) debounce() {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.delay, w.fire)
}

func (w *Watcher) fire() {
	w.debounceMu.Lock()
	w.timer = nil
	w.debounceMu.Unlock()

	ev := Event{Type: EventStoreChanged, Path: w.path}
	// A rename onto the path is a save; only a missing file counts as removal.
	if _, err := os.Stat(w.path); os.IsNotExist(err) {
		ev.Type = EventStoreRemoved
	}

	select {
	case w.eventsChan <- ev:
	case <-w.done:
	default:
		// A change is already pending; the receiver re-reads the file anyway.
	}
}
