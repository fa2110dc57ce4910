package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the TUI bindings. Bindings matched while the input has focus
// avoid the keys textinput uses for cursor movement and deletion.
type keyMap struct {
	Submit key.Binding
	Toggle key.Binding
	Space  key.Binding
	Edit   key.Binding
	Delete key.Binding
	Cancel key.Binding
	Theme  key.Binding
	Focus  key.Binding
	Up     key.Binding
	Down   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add/save")),
		Toggle: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "toggle done")),
		Space:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle done")),
		Edit:   key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "edit")),
		Delete: key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d", "delete (list)")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel edit")),
		Theme:  key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "light/dark")),
		Focus:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "input/list")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Toggle, k.Edit, k.Delete, k.Theme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Focus},
		{k.Submit, k.Toggle, k.Space, k.Edit, k.Delete, k.Cancel},
		{k.Theme, k.Help, k.Quit},
	}
}
