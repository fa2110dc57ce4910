package todo

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrIndexOutOfRange is returned when a position does not address a task.
var ErrIndexOutOfRange = errors.New("task index out of range")

// ErrEmptyText is returned when task text is blank after trimming.
var ErrEmptyText = errors.New("task text is empty")

// Task represents a single entry in the task list.
type Task struct {
	ID        string     `json:"id,omitempty"`
	Text      string     `json:"text"`
	Done      bool       `json:"done"`
	CreatedAt time.Time  `json:"createdAt"`
	EditedAt  *time.Time `json:"editedAt"`
}

// Edited reports whether the task has been edited since creation.
func (t Task) Edited() bool {
	return t.EditedAt != nil
}

// List is an ordered task list. Position is display order.
type List []Task

// NewTask builds a task from raw input text.
func NewTask(text string, now time.Time) (Task, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Task{}, ErrEmptyText
	}
	return Task{
		ID:        uuid.NewString(),
		Text:      trimmed,
		CreatedAt: now,
	}, nil
}

// Len returns the number of tasks.
func (l List) Len() int {
	return len(l)
}

// Valid reports whether index addresses a task.
func (l List) Valid(index int) bool {
	return index >= 0 && index < len(l)
}

// Get returns the task at index.
func (l List) Get(index int) (Task, error) {
	if !l.Valid(index) {
		return Task{}, indexError(index, len(l))
	}
	return l[index], nil
}

// Add appends a new task built from text. It returns ErrEmptyText and
// leaves the list unchanged when text is blank.
func (l *List) Add(text string, now time.Time) (Task, error) {
	task, err := NewTask(text, now)
	if err != nil {
		return Task{}, err
	}
	*l = append(*l, task)
	return task, nil
}

// Toggle flips the done flag of the task at index.
func (l List) Toggle(index int) error {
	if !l.Valid(index) {
		return indexError(index, len(l))
	}
	l[index].Done = !l[index].Done
	return nil
}

// Edit replaces the text of the task at index and stamps editedAt.
// The id, done flag and createdAt are preserved.
func (l List) Edit(index int, text string, now time.Time) error {
	if !l.Valid(index) {
		return indexError(index, len(l))
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ErrEmptyText
	}
	edited := now
	l[index].Text = trimmed
	l[index].EditedAt = &edited
	return nil
}

// Delete removes the task at index. Later tasks shift down by one.
func (l *List) Delete(index int) (Task, error) {
	if !l.Valid(index) {
		return Task{}, indexError(index, len(*l))
	}
	removed := (*l)[index]
	next := make(List, 0, len(*l)-1)
	next = append(next, (*l)[:index]...)
	next = append(next, (*l)[index+1:]...)
	*l = next
	return removed, nil
}

// IndexOf returns the position of the task with the given id, or -1.
func (l List) IndexOf(id string) int {
	for i := range l {
		if l[i].ID == id {
			return i
		}
	}
	return -1
}

// FindByIDPrefix returns the position of the single task whose id starts
// with prefix. It fails when no task or more than one task matches.
func (l List) FindByIDPrefix(prefix string) (int, error) {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" {
		return -1, fmt.Errorf("empty id prefix")
	}
	found := -1
	for i := range l {
		if strings.HasPrefix(strings.ToLower(l[i].ID), prefix) {
			if found >= 0 {
				return -1, fmt.Errorf("id prefix %q is ambiguous", prefix)
			}
			found = i
		}
	}
	if found < 0 {
		return -1, fmt.Errorf("no task with id prefix %q", prefix)
	}
	return found, nil
}

// Clone returns a deep copy of the list.
func (l List) Clone() List {
	if l == nil {
		return List{}
	}
	out := make(List, len(l))
	for i, t := range l {
		if t.EditedAt != nil {
			edited := *t.EditedAt
			t.EditedAt = &edited
		}
		out[i] = t
	}
	return out
}

// Counts returns the number of open and done tasks.
func (l List) Counts() (open, done int) {
	for _, t := range l {
		if t.Done {
			done++
		} else {
			open++
		}
	}
	return open, done
}

func indexError(index, n int) error {
	return fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, index, n)
}
