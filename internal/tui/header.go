package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func renderHeader(path string, taskCount int, stale bool, width int) string {
	dot := lipgloss.NewStyle().Foreground(colorCyan).Render("●")
	name := lipgloss.NewStyle().Bold(true).Render("Dbot")

	badge := badgeSyncedStyle.Render(fmt.Sprintf("%d tasks", taskCount))
	if stale {
		badge = badgeStaleStyle.Render("⚠ file changed")
	}

	left := fmt.Sprintf(" %s %s  ", dot, name)
	right := badge + " "

	// The path gets whatever room is left, cut from the left so the file
	// name stays visible.
	room := width - lipgloss.Width(left) - lipgloss.Width(right) - 1
	shown := ""
	if room > 0 {
		shown = path
		if ansi.StringWidth(shown) > room {
			shown = "…" + ansi.TruncateLeft(shown, ansi.StringWidth(shown)-room+1, "")
		}
	}
	left += pathStyle.Render(shown)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return headerStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
