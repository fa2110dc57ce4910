package tasklist

import (
	"github.com/nibzard/tasklist-go/internal/todo"
)

// Mode is the input field mode.
type Mode int

const (
	// ModeCompose adds new tasks.
	ModeCompose Mode = iota
	// ModeEdit rewrites an existing task.
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "compose"
}

// State is the complete application state.
type State struct {
	Tasks     todo.List
	DraftText string
	// EditingIndex is the position of the task being edited, or nil in
	// compose mode.
	EditingIndex *int
	DarkMode     bool
}

// Mode returns the current input mode.
func (s State) Mode() Mode {
	if s.EditingIndex != nil {
		return ModeEdit
	}
	return ModeCompose
}

func (s *State) clearEdit() {
	s.EditingIndex = nil
	s.DraftText = ""
}

// Keys names the store keys the controller reads and writes.
type Keys struct {
	Tasks    string
	DarkMode string
}

// Default store key names.
const (
	DefaultKeyPrefix   = "tasklist"
	tasksKeySuffix     = "tasks"
	darkModeKeySuffix  = "darkMode"
	DefaultTasksKey    = DefaultKeyPrefix + "." + tasksKeySuffix
	DefaultDarkModeKey = DefaultKeyPrefix + "." + darkModeKeySuffix
)

// DefaultKeys returns the default store keys.
func DefaultKeys() Keys {
	return KeysWithPrefix(DefaultKeyPrefix)
}

// KeysWithPrefix returns store keys under prefix. An empty prefix yields the
// default keys.
func KeysWithPrefix(prefix string) Keys {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return Keys{
		Tasks:    prefix + "." + tasksKeySuffix,
		DarkMode: prefix + "." + darkModeKeySuffix,
	}
}
