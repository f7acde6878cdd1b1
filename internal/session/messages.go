package session

import (
	"github.com/watchfire-io/dbot/internal/models"
	"github.com/watchfire-io/dbot/internal/tasklist"
)

const (
	welcomeText = "Hello! I'm Dbot\nWhat can I do for you?"
	goodbyeText = "Bye. Hope to see you again soon!"
)

const helpText = `Available commands:
  todo <description> - Add a todo task
  deadline <description> /by <dd-MM-yyyy> - Add a deadline task
  event <description> /from <dd-MM-yyyy> /to <dd-MM-yyyy> - Add an event task
  list - Show all tasks
  mark <task number> - Mark a task as done
  unmark <task number> - Mark a task as not done
  delete <task number> - Delete a task
  find <keyword> - Find tasks containing keyword
  help - Show this help message
  bye - Exit the program`

func listText(tasks []*models.Task) string {
	if len(tasks) == 0 {
		return "No tasks in your list yet!"
	}
	return "Here are the tasks in your list:\n" + trimNewline(tasklist.Format(tasks))
}

// matchesText numbers matches from 1 within the result, not by list position.
func matchesText(tasks []*models.Task) string {
	if len(tasks) == 0 {
		return "No matching tasks found!"
	}
	return "Here are the matching tasks in your list:\n" + trimNewline(tasklist.Format(tasks))
}

func trimNewline(s string) string {
	if n := len(s); n > 0 && s[n-1] == '\n' {
		return s[:n-1]
	}
	return s
}
