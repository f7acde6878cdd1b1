package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func renderStatusBar(m *Model, width int) string {
	// A pending store notice outranks everything else.
	if m.notice != "" {
		return renderNoticeBar(m.notice, width)
	}

	if m.err != nil {
		return renderErrorBar(m.err.Error(), width)
	}

	left := " " + getKeyHints(m)
	right := ""
	if m.lastCommand != "" {
		right = hintStyle.Render(m.lastCommand) + " "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		left = ansi.Truncate(left, width-lipgloss.Width(right)-1, "…")
		gap = 1
	}

	return statusBarStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func getKeyHints(m *Model) string {
	if m.activeOverlay != overlayNone {
		return keyHint("Esc", "close")
	}
	return keyHint("Enter", "send") + "  " + keyHint("Ctrl+r", "reload") + "  " +
		keyHint("Ctrl+h", "help") + "  " + keyHint("Ctrl+c", "quit")
}

func keyHint(k, desc string) string {
	if k == "" {
		return hintStyle.Render(desc)
	}
	return keyStyle.Render(k) + " " + hintStyle.Render(desc)
}

func renderNoticeBar(msg string, width int) string {
	return statusBarStyle.
		Background(colorYellow).
		Foreground(lipgloss.AdaptiveColor{Light: "0", Dark: "0"}).
		Width(width).
		Render(ansi.Truncate(" "+msg, width, "…"))
}

func renderErrorBar(msg string, width int) string {
	return statusBarStyle.
		Background(colorRed).
		Width(width).
		Render(ansi.Truncate(" "+msg, width, "…"))
}
