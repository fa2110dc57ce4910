package tasklist

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/nibzard/tasklist-go/internal/kv"
	"github.com/nibzard/tasklist-go/internal/logging"
	"github.com/nibzard/tasklist-go/internal/timefmt"
	"github.com/nibzard/tasklist-go/internal/todo"
)

// ErrIndexOutOfRange is returned when a position does not address a task.
var ErrIndexOutOfRange = todo.ErrIndexOutOfRange

// Controller owns the task list state and mirrors it to a store.
type Controller struct {
	state  State
	store  kv.Store
	keys   Keys
	now    func() time.Time
	format *timefmt.Formatter
	logger *log.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock sets the time source used for createdAt and editedAt. Stamps are
// stored in UTC whatever location the clock reports.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// WithKeys sets the store keys.
func WithKeys(keys Keys) Option {
	return func(c *Controller) {
		c.keys = keys
	}
}

// WithFormatter sets the timestamp formatter.
func WithFormatter(f *timefmt.Formatter) Option {
	return func(c *Controller) {
		if f != nil {
			c.format = f
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithDarkModeDefault sets the dark-mode value used when the store has none.
func WithDarkModeDefault(dark bool) Option {
	return func(c *Controller) {
		c.state.DarkMode = dark
	}
}

// New returns a controller with empty state backed by store.
// Call Load to rehydrate persisted state.
func New(store kv.Store, opts ...Option) *Controller {
	c := &Controller{
		state:  State{Tasks: todo.List{}},
		store:  store,
		keys:   DefaultKeys(),
		now:    todo.Now,
		format: timefmt.New("", "auto"),
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load reads the task list and dark-mode flag from the store. Missing keys
// keep their defaults. Unreadable or invalid values also keep their defaults
// and are returned as warnings; Load itself never fails.
func (c *Controller) Load() []error {
	var warnings []error

	if raw, found, err := c.store.Get(c.keys.Tasks); err != nil {
		warnings = append(warnings, fmt.Errorf("read %s: %w", c.keys.Tasks, err))
	} else if found {
		tasks, err := todo.Decode(raw)
		if err != nil {
			warnings = append(warnings, fmt.Errorf("load %s: %w", c.keys.Tasks, err))
		} else {
			c.state.Tasks = tasks
		}
	}

	if raw, found, err := c.store.Get(c.keys.DarkMode); err != nil {
		warnings = append(warnings, fmt.Errorf("read %s: %w", c.keys.DarkMode, err))
	} else if found {
		dark, err := decodeFlag(raw)
		if err != nil {
			warnings = append(warnings, fmt.Errorf("load %s: %w", c.keys.DarkMode, err))
		} else {
			c.state.DarkMode = dark
		}
	}

	for _, w := range warnings {
		c.logger.Warn("using default state", "err", w)
	}
	c.logger.Debug("state loaded", "tasks", len(c.state.Tasks), "dark_mode", c.state.DarkMode)
	return warnings
}

// SetDraft sets the text in the input field.
func (c *Controller) SetDraft(text string) {
	c.state.DraftText = text
}

func (c *Controller) stamp() time.Time {
	return c.now().UTC()
}

// Submit commits text from the input field.
//
// In compose mode a new task is appended. In edit mode the edited task's text
// is replaced and its editedAt stamped. Blank text is ignored in both modes
// and an edit in progress stays active. accepted reports whether the state
// changed; err reports a failed store write.
func (c *Controller) Submit(text string) (accepted bool, err error) {
	if strings.TrimSpace(text) == "" {
		return false, nil
	}

	if c.state.EditingIndex == nil {
		task, err := c.state.Tasks.Add(text, c.stamp())
		if err != nil {
			return false, nil
		}
		c.state.DraftText = ""
		c.logger.Debug("task added", "id", task.ID, "index", len(c.state.Tasks)-1)
		return true, c.persistTasks()
	}

	index := *c.state.EditingIndex
	if err := c.state.Tasks.Edit(index, text, c.stamp()); err != nil {
		if errors.Is(err, todo.ErrEmptyText) {
			return false, nil
		}
		c.state.clearEdit()
		return false, err
	}
	c.state.clearEdit()
	c.logger.Debug("task edited", "index", index)
	return true, c.persistTasks()
}

// Toggle flips the done flag of the task at index.
func (c *Controller) Toggle(index int) error {
	if err := c.state.Tasks.Toggle(index); err != nil {
		return err
	}
	c.logger.Debug("task toggled", "index", index, "done", c.state.Tasks[index].Done)
	return c.persistTasks()
}

// Delete removes the task at index; later tasks move up one position.
//
// Deleting the task being edited leaves edit mode and clears the input.
// Deleting a task before it shifts the edit so it stays on the same task.
func (c *Controller) Delete(index int) error {
	removed, err := c.state.Tasks.Delete(index)
	if err != nil {
		return err
	}
	if e := c.state.EditingIndex; e != nil {
		switch {
		case *e == index:
			c.state.clearEdit()
		case *e > index:
			shifted := *e - 1
			c.state.EditingIndex = &shifted
		}
	}
	c.logger.Debug("task deleted", "id", removed.ID, "index", index)
	return c.persistTasks()
}

// BeginEdit loads the text of the task at index into the input field and
// switches to edit mode. The task itself is not changed.
func (c *Controller) BeginEdit(index int) error {
	task, err := c.state.Tasks.Get(index)
	if err != nil {
		return err
	}
	c.state.DraftText = task.Text
	editing := index
	c.state.EditingIndex = &editing
	return nil
}

// CancelEdit leaves edit mode and clears the input field.
// It does nothing in compose mode.
func (c *Controller) CancelEdit() {
	if c.state.EditingIndex == nil {
		return
	}
	c.state.clearEdit()
}

// ToggleDarkMode flips the dark-mode flag.
func (c *Controller) ToggleDarkMode() error {
	return c.SetDarkMode(!c.state.DarkMode)
}

// SetDarkMode sets the dark-mode flag.
func (c *Controller) SetDarkMode(dark bool) error {
	c.state.DarkMode = dark
	return c.persistDarkMode()
}

// FormatTimestamp renders ts as a short local time, or "" for nil.
func (c *Controller) FormatTimestamp(ts *time.Time) string {
	return c.format.Format(ts)
}

// Mode returns the current input mode.
func (c *Controller) Mode() Mode {
	return c.state.Mode()
}

// Len returns the number of tasks.
func (c *Controller) Len() int {
	return len(c.state.Tasks)
}

// Snapshot returns a deep copy of the current state.
func (c *Controller) Snapshot() State {
	s := State{
		Tasks:     c.state.Tasks.Clone(),
		DraftText: c.state.DraftText,
		DarkMode:  c.state.DarkMode,
	}
	if c.state.EditingIndex != nil {
		editing := *c.state.EditingIndex
		s.EditingIndex = &editing
	}
	return s
}

func (c *Controller) persistTasks() error {
	raw, err := todo.Encode(c.state.Tasks)
	if err != nil {
		c.logger.Error("encode tasks", "err", err)
		return err
	}
	if err := c.store.Set(c.keys.Tasks, raw); err != nil {
		c.logger.Error("persist tasks", "key", c.keys.Tasks, "err", err)
		return fmt.Errorf("persist tasks: %w", err)
	}
	return nil
}

func (c *Controller) persistDarkMode() error {
	if err := c.store.Set(c.keys.DarkMode, encodeFlag(c.state.DarkMode)); err != nil {
		c.logger.Error("persist dark mode", "key", c.keys.DarkMode, "err", err)
		return fmt.Errorf("persist dark mode: %w", err)
	}
	return nil
}

func encodeFlag(v bool) string {
	return strconv.FormatBool(v)
}

func decodeFlag(raw string) (bool, error) {
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, fmt.Errorf("parse flag %q: %w", raw, err)
	}
	return v, nil
}
