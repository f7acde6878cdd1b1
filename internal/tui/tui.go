// Package tui implements the full-screen front-end for Dbot.
package tui

import (
	"log"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/watchfire-io/dbot/internal/session"
	"github.com/watchfire-io/dbot/internal/watcher"
)

// programRef is a shared reference to the tea.Program for goroutine sends.
// It's set after tea.NewProgram but before p.Run().
type programRef struct {
	mu sync.Mutex
	p  *tea.Program
}

func (r *programRef) Set(p *tea.Program) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = p
}

func (r *programRef) Send(msg tea.Msg) {
	r.mu.Lock()
	p := r.p
	r.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

// Clear nils out the program reference, preventing post-exit sends.
func (r *programRef) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = nil
}

// Options control how the TUI runs.
type Options struct {
	AltScreen  bool
	WatchStore bool // watch the task file for changes made elsewhere
}

// Run launches the TUI for an already loaded session and blocks until the
// user quits.
func Run(ctrl *session.Controller, path string, opts Options) error {
	ref := &programRef{}
	model := NewModel(ctrl, path)

	var programOpts []tea.ProgramOption
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(model, programOpts...)

	// Store program reference for goroutine sends
	ref.Set(p)
	defer ref.Clear()

	if opts.WatchStore {
		w, err := watcher.New(path, watcher.DefaultDebounce)
		if err == nil {
			err = w.Start()
		}
		if err != nil {
			log.Printf("[tui] store watch disabled: %v", err)
		} else {
			done := make(chan struct{})
			defer close(done)
			defer w.Stop()
			go forwardEvents(w, ref, done)
		}
	}

	_, err := p.Run()
	return err
}

// forwardEvents relays watcher events into the program until the watcher
// stops or the program exits.
func forwardEvents(w *watcher.Watcher, ref *programRef, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case ev := <-w.Events():
			ref.Send(storeChangedMsg{event: ev})
		}
	}
}
