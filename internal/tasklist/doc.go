// Package tasklist implements the task list view controller.
//
// A Controller owns the whole application state: the ordered task list, the
// text in the input field, which task (if any) is being edited, and the
// dark-mode flag. Every user action goes through one of its methods, and
// every change to the task list or the dark-mode flag is written straight
// through to a kv.Store.
//
// # Modes
//
// The input field works in one of two modes, chosen solely by whether a task
// is being edited:
//
//   - compose: Submit appends a new task.
//   - edit: Submit replaces the text of the task being edited.
//
// # Persistence
//
// Two keys are used, by default "tasklist.tasks" (the JSON task array, see
// package todo) and "tasklist.darkMode" ("true" or "false"). Load reads both
// once. A missing key keeps the default; unreadable or invalid data also keeps
// the default and is reported as a warning instead of failing startup.
package tasklist
