package tasklist

import (
	"github.com/nibzard/tasklist-go/internal/todo"
)

// TaskView is a task as shown in the list.
type TaskView struct {
	todo.Task
	// Caption is "Added at HH:MM" or, once edited, "Edited at HH:MM".
	Caption string
	Editing bool
}

// View is the read-only projection rendered by the UI.
type View struct {
	Tasks       []TaskView
	Draft       string
	Mode        Mode
	DarkMode    bool
	Placeholder string
	SubmitLabel string
	Open        int
	Done        int
}

// Empty reports whether there are no tasks to show.
func (v View) Empty() bool {
	return len(v.Tasks) == 0
}

// View returns the current projection.
func (c *Controller) View() View {
	snap := c.Snapshot()
	v := View{
		Tasks:    make([]TaskView, len(snap.Tasks)),
		Draft:    snap.DraftText,
		Mode:     snap.Mode(),
		DarkMode: snap.DarkMode,
	}
	for i, t := range snap.Tasks {
		v.Tasks[i] = TaskView{
			Task:    t,
			Caption: c.caption(t),
			Editing: snap.EditingIndex != nil && *snap.EditingIndex == i,
		}
	}
	v.Open, v.Done = snap.Tasks.Counts()

	if v.Mode == ModeEdit {
		v.Placeholder = "Edit note..."
		v.SubmitLabel = "Save"
	} else {
		v.Placeholder = "Add new note..."
		v.SubmitLabel = "Add"
	}
	return v
}

func (c *Controller) caption(t todo.Task) string {
	if t.Edited() {
		return "Edited at " + c.FormatTimestamp(t.EditedAt)
	}
	created := t.CreatedAt
	return "Added at " + c.FormatTimestamp(&created)
}
