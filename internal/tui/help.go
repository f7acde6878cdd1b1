package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpSection struct {
	title string
	keys  []helpKey
}

type helpKey struct {
	key  string
	desc string
}

var helpSections = []helpSection{
	{
		title: "Keys",
		keys: []helpKey{
			{"Enter", "Send command"},
			{"Ctrl+r", "Reload tasks from file"},
			{"PgUp/PgDn", "Scroll conversation"},
			{"Ctrl+h", "Toggle help"},
			{"Ctrl+c", "Quit"},
		},
	},
	{
		title: "Commands",
		keys: []helpKey{
			{"todo", "todo <description>"},
			{"deadline", "deadline <description> /by <dd-MM-yyyy>"},
			{"event", "event <description> /from <date> /to <date>"},
			{"list", "Show all tasks"},
			{"find", "find <keyword>"},
			{"mark", "mark <n>"},
			{"unmark", "unmark <n>"},
			{"delete", "delete <n>"},
			{"bye", "Exit"},
		},
	},
}

// renderHelp renders the help overlay content.
func renderHelp(width int) string {
	maxWidth := 64
	if width-4 < maxWidth {
		maxWidth = width - 4
	}
	if maxWidth < 30 {
		maxWidth = 30
	}

	title := overlayTitleStyle.Render("Dbot Help")
	sections := make([]string, 0, len(helpSections)*8+3)
	sections = append(sections, title)

	for _, sec := range helpSections {
		header := lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Render(sec.title)
		sections = append(sections, "", header)

		for _, k := range sec.keys {
			keyCol := lipgloss.NewStyle().
				Width(12).
				Foreground(colorWhite).
				Bold(true).
				Render(k.key)
			descCol := lipgloss.NewStyle().
				Foreground(colorDim).
				Render(k.desc)
			sections = append(sections, "  "+keyCol+descCol)
		}
	}

	sections = append(sections, "", lipgloss.NewStyle().Foreground(colorDim).Render("Press Esc or Ctrl+h to close"))

	content := strings.Join(sections, "\n")
	return overlayStyle.Width(maxWidth).Render(content)
}
