package todo

import (
	"errors"
	"strings"
	"testing"
	"time"
)

var t0 = time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

func TestAdd(t *testing.T) {
	var l List

	task, err := l.Add("  Buy milk  ", t0)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if l.Len() != 1 {
		t.Fatalf("Len: got %d, want 1", l.Len())
	}
	if task.Text != "Buy milk" {
		t.Errorf("Text: got %q, want %q", task.Text, "Buy milk")
	}
	if task.Done {
		t.Error("Done should be false")
	}
	if !task.CreatedAt.Equal(t0) {
		t.Errorf("CreatedAt: got %v, want %v", task.CreatedAt, t0)
	}
	if task.EditedAt != nil {
		t.Errorf("EditedAt: got %v, want nil", task.EditedAt)
	}
	if task.ID == "" {
		t.Error("ID should be set")
	}

	if _, err := l.Add("Second", t0.Add(time.Minute)); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if l[1].Text != "Second" {
		t.Errorf("second task should be appended at the end, got %q", l[1].Text)
	}
	if l[0].ID == l[1].ID {
		t.Error("task ids should be unique")
	}
}

func TestAddBlank(t *testing.T) {
	for _, text := range []string{"", "   ", "\t\n"} {
		var l List
		if _, err := l.Add(text, t0); !errors.Is(err, ErrEmptyText) {
			t.Errorf("Add(%q): got %v, want ErrEmptyText", text, err)
		}
		if l.Len() != 0 {
			t.Errorf("Add(%q) changed the list", text)
		}
	}
}

func TestToggleTwice(t *testing.T) {
	l := List{{ID: "a", Text: "A", CreatedAt: t0}}
	before := l.Clone()

	if err := l.Toggle(0); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if !l[0].Done {
		t.Error("Done should be true after one toggle")
	}
	if err := l.Toggle(0); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if l[0] != before[0] {
		t.Errorf("toggle twice: got %+v, want %+v", l[0], before[0])
	}
}

func TestEdit(t *testing.T) {
	l := List{
		{ID: "a", Text: "A", Done: true, CreatedAt: t0},
		{ID: "b", Text: "B", CreatedAt: t0},
	}
	editTime := t0.Add(time.Hour)

	if err := l.Edit(0, "  A2 ", editTime); err != nil {
		t.Fatalf("Edit failed: %v", err)
	}
	if l[0].Text != "A2" {
		t.Errorf("Text: got %q, want A2", l[0].Text)
	}
	if l[0].EditedAt == nil || !l[0].EditedAt.Equal(editTime) {
		t.Errorf("EditedAt: got %v, want %v", l[0].EditedAt, editTime)
	}
	if !l[0].CreatedAt.Equal(t0) || !l[0].Done || l[0].ID != "a" {
		t.Errorf("Edit changed identity fields: %+v", l[0])
	}
	if l.Len() != 2 || l[1].Text != "B" {
		t.Errorf("Edit touched other tasks: %+v", l)
	}

	if err := l.Edit(1, " ", editTime); !errors.Is(err, ErrEmptyText) {
		t.Errorf("Edit blank: got %v, want ErrEmptyText", err)
	}
	if l[1].Text != "B" || l[1].EditedAt != nil {
		t.Errorf("blank edit changed task: %+v", l[1])
	}
}

func TestDelete(t *testing.T) {
	l := List{
		{ID: "a", Text: "A", CreatedAt: t0},
		{ID: "b", Text: "B", Done: true, CreatedAt: t0},
		{ID: "c", Text: "C", CreatedAt: t0},
	}

	removed, err := l.Delete(0)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if removed.ID != "a" {
		t.Errorf("removed: got %q, want a", removed.ID)
	}
	if l.Len() != 2 {
		t.Fatalf("Len: got %d, want 2", l.Len())
	}
	if l[0].ID != "b" || !l[0].Done || l[1].ID != "c" {
		t.Errorf("remaining tasks should shift down preserving fields: %+v", l)
	}
}

func TestDeleteDoesNotAliasCallerSlice(t *testing.T) {
	original := List{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	l := original
	if _, err := l.Delete(0); err != nil {
		t.Fatal(err)
	}
	if original[0].ID != "a" || original[1].ID != "b" {
		t.Errorf("Delete mutated the caller's backing array: %+v", original)
	}
}

func TestOutOfRange(t *testing.T) {
	l := List{{ID: "a", Text: "A", CreatedAt: t0}}
	for _, idx := range []int{-1, 1, 5} {
		if err := l.Toggle(idx); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Toggle(%d): got %v", idx, err)
		}
		if err := l.Edit(idx, "x", t0); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Edit(%d): got %v", idx, err)
		}
		if _, err := l.Delete(idx); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Delete(%d): got %v", idx, err)
		}
		if _, err := l.Get(idx); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Get(%d): got %v", idx, err)
		}
	}
	if l.Len() != 1 || l[0].Done {
		t.Errorf("out of range calls changed the list: %+v", l)
	}
}

func TestFindByIDPrefix(t *testing.T) {
	l := List{
		{ID: "abc123"},
		{ID: "abd456"},
		{ID: "ffff00"},
	}
	tests := []struct {
		prefix  string
		want    int
		wantErr string
	}{
		{"abc", 0, ""},
		{"ABD", 1, ""},
		{"f", 2, ""},
		{"ab", -1, "ambiguous"},
		{"zz", -1, "no task"},
		{" ", -1, "empty"},
	}
	for _, tt := range tests {
		got, err := l.FindByIDPrefix(tt.prefix)
		if tt.wantErr != "" {
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("FindByIDPrefix(%q): err %v, want %q", tt.prefix, err, tt.wantErr)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("FindByIDPrefix(%q) = %d, %v; want %d", tt.prefix, got, err, tt.want)
		}
	}
	if l.IndexOf("ffff00") != 2 || l.IndexOf("nope") != -1 {
		t.Error("IndexOf returned the wrong position")
	}
}

func TestCloneIsDeep(t *testing.T) {
	edited := t0.Add(time.Minute)
	l := List{{ID: "a", Text: "A", CreatedAt: t0, EditedAt: &edited}}
	c := l.Clone()
	c[0].Text = "changed"
	*c[0].EditedAt = t0.Add(time.Hour)
	if l[0].Text != "A" || !l[0].EditedAt.Equal(edited) {
		t.Errorf("Clone shares state with the original: %+v", l[0])
	}
	if got := List(nil).Clone(); got == nil || got.Len() != 0 {
		t.Errorf("Clone(nil) = %#v, want empty list", got)
	}
}

func TestCounts(t *testing.T) {
	l := List{{Done: true}, {}, {}, {Done: true}, {Done: true}}
	open, done := l.Counts()
	if open != 2 || done != 3 {
		t.Errorf("Counts = (%d, %d), want (2, 3)", open, done)
	}
}
