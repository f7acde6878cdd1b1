// Package tasklist holds the ordered, in-memory collection of tasks.
package tasklist

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/watchfire-io/dbot/internal/models"
)

// List is an ordered sequence of tasks. Indices are 0-based.
//
// The list owns its tasks. Get hands out the stored pointer, so changes made
// through it are visible in the list; after RemoveAt, a previously obtained
// index may refer to a different task.
type List struct {
	tasks []*models.Task
}

// New creates a list holding tasks in the given order.
func New(tasks ...*models.Task) *List {
	l := &List{tasks: make([]*models.Task, 0, len(tasks))}
	l.tasks = append(l.tasks, tasks...)
	return l
}

// Append adds a task to the end of the list.
func (l *List) Append(t *models.Task) {
	l.tasks = append(l.tasks, t)
}

// Get returns the task at index.
func (l *List) Get(index int) (*models.Task, error) {
	if err := l.checkIndex(index); err != nil {
		return nil, err
	}
	return l.tasks[index], nil
}

// RemoveAt removes and returns the task at index.
func (l *List) RemoveAt(index int) (*models.Task, error) {
	if err := l.checkIndex(index); err != nil {
		return nil, err
	}
	removed := l.tasks[index]
	l.tasks = append(l.tasks[:index], l.tasks[index+1:]...)
	return removed, nil
}

// Find returns, in list order, the tasks whose rendered text contains
// keyword under Unicode case folding. An empty keyword matches every task.
func (l *List) Find(keyword string) []*models.Task {
	fold := cases.Fold()
	needle := fold.String(keyword)
	matches := []*models.Task{}
	for _, t := range l.tasks {
		if strings.Contains(fold.String(t.Render()), needle) {
			matches = append(matches, t)
		}
	}
	return matches
}

// Len returns the number of tasks.
func (l *List) Len() int {
	return len(l.tasks)
}

// IsEmpty reports whether the list has no tasks.
func (l *List) IsEmpty() bool {
	return len(l.tasks) == 0
}

// Tasks returns a copy of the task slice. The tasks themselves are shared.
func (l *List) Tasks() []*models.Task {
	out := make([]*models.Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

func (l *List) checkIndex(index int) error {
	if index < 0 || index >= len(l.tasks) {
		return models.Errorf(models.ErrIndexOutOfRange, models.MsgIndexOutOfRange)
	}
	return nil
}

// Format renders tasks as a 1-based numbered listing, one per line:
//
//	1.[T][ ] read book
//	2.[D][X] return book (by: Dec 02 2019)
func Format(tasks []*models.Task) string {
	var b strings.Builder
	for i, t := range tasks {
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(".")
		b.WriteString(t.Render())
		b.WriteString("\n")
	}
	return b.String()
}
