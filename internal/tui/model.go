package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/watchfire-io/dbot/internal/parser"
	"github.com/watchfire-io/dbot/internal/session"
	"github.com/watchfire-io/dbot/internal/watcher"
)

// Minimum usable terminal size.
const (
	minWidth  = 40
	minHeight = 10
)

// Model is the root Bubbletea model for the TUI.
type Model struct {
	ctrl *session.Controller
	path string

	// Conversation
	entries     []entry
	lastCommand string

	// UI state
	activeOverlay int
	width         int
	height        int
	ready         bool

	// Status display
	notice string // store changed on disk
	err    error

	// Child components
	input    textinput.Model
	viewport viewport.Model
}

// NewModel creates the initial TUI model. The controller must already be
// loaded; its welcome text and load warnings open the conversation.
func NewModel(ctrl *session.Controller, path string) Model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render("> ")
	ti.Placeholder = "type a command, or help"
	ti.CharLimit = 1024
	ti.Focus()

	m := Model{
		ctrl:     ctrl,
		path:     path,
		input:    ti,
		viewport: viewport.New(0, 0),
	}
	m.entries = append(m.entries, entry{kind: entryReply, text: ctrl.Welcome()})
	for _, w := range ctrl.Warnings() {
		m.entries = append(m.entries, entry{kind: entryWarning, text: w})
	}
	return m
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update processes messages and returns an updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// ── Window resize ──────────────────────────────────────────────
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.updateDimensions()
		return m, nil

	// ── Key events ─────────────────────────────────────────────────
	case tea.KeyMsg:
		return m.handleKey(msg)

	// ── Store watcher ──────────────────────────────────────────────
	case storeChangedMsg:
		m.checkStore(msg.event)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, globalKeys.Quit) {
		return m, tea.Quit
	}

	if m.activeOverlay == overlayHelp {
		if key.Matches(msg, overlayKeys.Cancel) || key.Matches(msg, globalKeys.Help) {
			m.activeOverlay = overlayNone
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, globalKeys.Help):
		m.activeOverlay = overlayHelp
		return m, nil

	case key.Matches(msg, globalKeys.Reload):
		resp := m.ctrl.Reload()
		m.notice = ""
		m.err = nil
		m.appendResponse(resp)
		return m, nil

	case key.Matches(msg, inputKeys.Submit):
		return m.submit()

	case key.Matches(msg, inputKeys.PageUp):
		m.viewport.HalfViewUp()
		return m, nil

	case key.Matches(msg, inputKeys.PageDown):
		m.viewport.HalfViewDown()
		return m, nil

	case key.Matches(msg, inputKeys.Top):
		m.viewport.GotoTop()
		return m, nil

	case key.Matches(msg, inputKeys.Bottom):
		m.viewport.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit sends the input line to the controller. Pasted escape sequences
// are stripped so they never reach the task file.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(ansi.Strip(m.input.Value()))
	m.input.Reset()
	if line == "" {
		return m, nil
	}

	m.entries = append(m.entries, entry{kind: entryInput, text: line})
	m.lastCommand = parser.Type(line).String()
	resp := m.ctrl.Submit(line)
	m.appendResponse(resp)

	if resp.Exit {
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) appendResponse(resp session.Response) {
	kind := entryReply
	switch {
	case resp.Err != nil:
		kind = entryError
	case resp.Warning != nil:
		kind = entryWarning
	}
	m.entries = append(m.entries, entry{kind: kind, text: resp.Text})
	m.refreshConversation()
}

// checkStore compares the file with the session after a change on disk.
// Saves made by this session leave the two identical and are ignored.
func (m *Model) checkStore(ev watcher.Event) {
	inSync, err := m.ctrl.InSync()
	if err != nil {
		m.err = fmt.Errorf("cannot read task file: %w", err)
		return
	}
	m.err = nil
	if inSync {
		m.notice = ""
		return
	}
	if ev.Type == watcher.EventStoreRemoved {
		m.notice = "Task file was removed. Your next change will recreate it."
		return
	}
	m.notice = "Task file changed on disk. Press Ctrl+r to reload."
}

func (m *Model) updateDimensions() {
	// header + pane borders + status bar + input line
	paneHeight := m.height - 1 - 2 - 1 - 1
	if paneHeight < 1 {
		paneHeight = 1
	}
	paneWidth := m.width - 2
	if paneWidth < 1 {
		paneWidth = 1
	}
	m.viewport.Width = paneWidth
	m.viewport.Height = paneHeight
	m.input.Width = m.width - lipgloss.Width(m.input.Prompt) - 1
	m.refreshConversation()
}

func (m *Model) refreshConversation() {
	m.viewport.SetContent(renderConversation(m.entries, m.viewport.Width))
	m.viewport.GotoBottom()
}

func renderConversation(entries []entry, width int) string {
	wrap := lipgloss.NewStyle()
	if width > 0 {
		wrap = wrap.Width(width)
	}

	blocks := make([]string, 0, len(entries))
	for _, e := range entries {
		var style lipgloss.Style
		text := e.text
		switch e.kind {
		case entryInput:
			style = inputLineStyle
			text = "> " + text
		case entryError:
			style = errorStyle
		case entryWarning:
			style = warningStyle
		default:
			style = replyStyle
		}
		blocks = append(blocks, wrap.Render(style.Render(text)))
	}
	return strings.Join(blocks, "\n\n")
}

// View renders the TUI.
func (m Model) View() string {
	if !m.ready {
		return ""
	}

	if m.width < minWidth || m.height < minHeight {
		sizeStr := fmt.Sprintf("%dx%d", m.width, m.height)
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(colorYellow).
			Render(lipgloss.JoinVertical(lipgloss.Center,
				"Terminal too small",
				lipgloss.NewStyle().Foreground(colorDim).Render(
					fmt.Sprintf("Need %dx%d, have ", minWidth, minHeight)+lipgloss.NewStyle().Bold(true).Render(sizeStr),
				),
			))
	}

	header := renderHeader(m.path, len(m.ctrl.Tasks()), m.notice != "", m.width)
	pane := paneStyle.Width(m.width - 2).Render(m.viewport.View())
	status := renderStatusBar(&m, m.width)

	view := lipgloss.JoinVertical(lipgloss.Left, header, pane, status, m.input.View())

	if m.activeOverlay == overlayHelp {
		view = renderOverlay(view, renderHelp(m.width), m.width, m.height)
	}
	return view
}
