// Package ui provides the terminal interface for the task list.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nibzard/tasklist-go/internal/tasklist"
)

const inputCharLimit = 500

// TUIOption configures the TUI behavior.
type TUIOption func(*tuiConfig)

// tuiConfig holds TUI configuration.
type tuiConfig struct {
	title     string
	storeInfo string
}

// WithTitle sets the heading shown above the list.
func WithTitle(title string) TUIOption {
	return func(c *tuiConfig) {
		c.title = title
	}
}

// WithStoreInfo sets a short description of where tasks are stored,
// shown in the footer.
func WithStoreInfo(info string) TUIOption {
	return func(c *tuiConfig) {
		c.storeInfo = info
	}
}

// RunTUI starts the TUI for the given controller. The controller should
// already be loaded.
func RunTUI(ctx context.Context, ctrl *tasklist.Controller, opts ...TUIOption) error {
	c := &tuiConfig{
		title: "Tasks",
	}
	for _, opt := range opts {
		opt(c)
	}

	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	return runProgram(ctx, newTUIModel(ctrl, c))
}

func runProgram(ctx context.Context, model *tuiModel) error {
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

type focusArea int

const (
	focusInput focusArea = iota
	focusList
)

type tuiModel struct {
	ctrl   *tasklist.Controller
	cfg    *tuiConfig
	input  textinput.Model
	keys   keyMap
	help   help.Model
	focus  focusArea
	cursor int
	// cursorID pins the cursor to a task so it survives position changes.
	cursorID  string
	lastErr   error
	width     int
	theme     theme
	themeDark bool
}

func newTUIModel(ctrl *tasklist.Controller, cfg *tuiConfig) *tuiModel {
	if cfg == nil {
		cfg = &tuiConfig{title: "Tasks"}
	}
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = inputCharLimit
	input.Focus()

	m := &tuiModel{
		ctrl:  ctrl,
		cfg:   cfg,
		input: input,
		keys:  defaultKeyMap(),
		help:  help.New(),
	}
	dark := ctrl.View().DarkMode
	m.theme = themeFor(dark)
	m.themeDark = dark
	m.syncInput()
	m.setCursor(0)
	return m
}

func (m *tuiModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := m.update(msg)
	m.syncTheme()
	m.syncCursor()
	return model, cmd
}

func (m *tuiModel) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		// Border, padding and the submit button take the rest.
		m.input.Width = max(msg.Width-20, 10)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *tuiModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Theme):
		m.record(m.ctrl.ToggleDarkMode())
		return m, nil
	case key.Matches(msg, m.keys.Focus):
		return m, m.toggleFocus()
	case key.Matches(msg, m.keys.Cancel):
		return m, m.cancel()
	case key.Matches(msg, m.keys.Toggle):
		m.toggleSelected()
		return m, nil
	case key.Matches(msg, m.keys.Edit):
		return m, m.editSelected()
	case msg.Type == tea.KeyUp:
		m.setCursor(m.cursor - 1)
		return m, nil
	case msg.Type == tea.KeyDown:
		m.setCursor(m.cursor + 1)
		return m, nil
	}

	if m.focus == focusList {
		switch {
		case key.Matches(msg, m.keys.Up):
			m.setCursor(m.cursor - 1)
		case key.Matches(msg, m.keys.Down):
			m.setCursor(m.cursor + 1)
		case key.Matches(msg, m.keys.Space):
			m.toggleSelected()
		case key.Matches(msg, m.keys.Delete):
			m.deleteSelected()
		case key.Matches(msg, m.keys.Submit):
			return m, m.editSelected()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.Submit) {
		m.submit()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.ctrl.SetDraft(m.input.Value())
	return m, cmd
}

func (m *tuiModel) submit() {
	text := m.input.Value()
	m.ctrl.SetDraft(text)
	editing := m.ctrl.Mode() == tasklist.ModeEdit
	accepted, err := m.ctrl.Submit(text)
	m.record(err)
	if !accepted {
		return
	}
	if !editing {
		// Follow the new task.
		m.setCursor(m.ctrl.Len() - 1)
	}
	m.syncInput()
}

func (m *tuiModel) toggleSelected() {
	if m.ctrl.Len() == 0 {
		return
	}
	m.record(m.ctrl.Toggle(m.cursor))
}

func (m *tuiModel) editSelected() tea.Cmd {
	if m.ctrl.Len() == 0 {
		return nil
	}
	if err := m.ctrl.BeginEdit(m.cursor); err != nil {
		m.record(err)
		return nil
	}
	m.syncInput()
	m.input.CursorEnd()
	return m.setFocus(focusInput)
}

func (m *tuiModel) deleteSelected() {
	if m.ctrl.Len() == 0 {
		return
	}
	m.record(m.ctrl.Delete(m.cursor))
	m.cursorID = ""
	m.setCursor(m.cursor)
	m.syncInput()
}

func (m *tuiModel) cancel() tea.Cmd {
	if m.ctrl.Mode() == tasklist.ModeEdit {
		m.ctrl.CancelEdit()
		m.syncInput()
		return nil
	}
	if m.focus == focusList {
		return m.setFocus(focusInput)
	}
	return nil
}

func (m *tuiModel) toggleFocus() tea.Cmd {
	if m.focus == focusInput {
		return m.setFocus(focusList)
	}
	return m.setFocus(focusInput)
}

func (m *tuiModel) setFocus(f focusArea) tea.Cmd {
	m.focus = f
	if f == focusInput {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

// setCursor moves the cursor to index, clamped to the list.
func (m *tuiModel) setCursor(index int) {
	view := m.ctrl.View()
	n := len(view.Tasks)
	if n == 0 {
		m.cursor = 0
		m.cursorID = ""
		return
	}
	index = min(max(index, 0), n-1)
	m.cursor = index
	m.cursorID = view.Tasks[index].ID
}

// syncCursor puts the cursor back on the task it was pinned to.
func (m *tuiModel) syncCursor() {
	view := m.ctrl.View()
	for i, t := range view.Tasks {
		if m.cursorID != "" && t.ID == m.cursorID {
			m.cursor = i
			return
		}
	}
	m.setCursor(m.cursor)
}

func (m *tuiModel) syncTheme() {
	if dark := m.ctrl.View().DarkMode; dark != m.themeDark {
		m.theme = themeFor(dark)
		m.themeDark = dark
	}
}

// syncInput copies the draft and mode labels from the controller.
func (m *tuiModel) syncInput() {
	view := m.ctrl.View()
	if m.input.Value() != view.Draft {
		m.input.SetValue(view.Draft)
	}
	m.input.Placeholder = view.Placeholder
}

func (m *tuiModel) record(err error) {
	m.lastErr = err
}

func (m *tuiModel) View() string {
	view := m.ctrl.View()

	var b strings.Builder
	writeTitle(&b, m.theme, m.cfg.title, view)
	writeInput(&b, m.theme, m.input.View(), view)
	writeTasks(&b, m.theme, view, m.cursor, m.focus == focusList)
	writeStatus(&b, m.theme, view, m.lastErr)
	writeFooter(&b, m.theme, m.cfg.storeInfo)
	b.WriteString(m.help.View(m.keys))

	app := m.theme.app
	if m.width > 0 {
		app = app.Width(m.width)
	}
	return app.Render(b.String())
}

func writeTitle(b *strings.Builder, t theme, title string, view tasklist.View) {
	b.WriteString(t.title.Render(title))
	b.WriteString("  ")
	b.WriteString(t.counts.Render(fmt.Sprintf("%d open · %d done", view.Open, view.Done)))
	b.WriteString("\n\n")
}

func writeInput(b *strings.Builder, t theme, field string, view tasklist.View) {
	row := lipgloss.JoinHorizontal(lipgloss.Center,
		t.input.Render(field),
		" ",
		t.button.Render(view.SubmitLabel),
	)
	b.WriteString(row)
	b.WriteString("\n\n")
}

func writeTasks(b *strings.Builder, t theme, view tasklist.View, cursor int, listFocused bool) {
	if view.Empty() {
		b.WriteString(t.empty.Render("Empty"))
		b.WriteString("\n\n")
		return
	}
	for i, task := range view.Tasks {
		b.WriteString(formatTask(t, task, i == cursor, listFocused))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func writeStatus(b *strings.Builder, t theme, view tasklist.View, err error) {
	if err != nil {
		b.WriteString(t.errText.Render("Error: " + err.Error()))
		b.WriteString("\n")
	}
	if view.Mode == tasklist.ModeEdit {
		b.WriteString(t.caption.Render("Editing. enter saves, esc cancels"))
		b.WriteString("\n")
	}
}

func writeFooter(b *strings.Builder, t theme, storeInfo string) {
	if storeInfo == "" {
		return
	}
	b.WriteString(t.caption.Render("Store: " + storeInfo))
	b.WriteString("\n")
}

func formatTask(t theme, task tasklist.TaskView, selected, listFocused bool) string {
	marker := "  "
	if selected {
		marker = "> "
		if !listFocused {
			marker = "· "
		}
		marker = t.cursor.Render(marker)
	}

	box := "[ ]"
	if task.Done {
		box = "[x]"
	}

	style := t.task
	switch {
	case task.Editing:
		style = t.editing
	case task.Done:
		style = t.done
	}

	return marker + box + " " + style.Render(task.Text) + "  " + t.caption.Render(task.Caption)
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
