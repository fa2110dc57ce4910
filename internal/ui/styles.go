package ui

import "github.com/charmbracelet/lipgloss"

type theme struct {
	app     lipgloss.Style
	title   lipgloss.Style
	counts  lipgloss.Style
	input   lipgloss.Style
	button  lipgloss.Style
	task    lipgloss.Style
	done    lipgloss.Style
	editing lipgloss.Style
	cursor  lipgloss.Style
	caption lipgloss.Style
	empty   lipgloss.Style
	errText lipgloss.Style
}

type palette struct {
	bg, fg, muted, accent, border, danger lipgloss.Color
}

var (
	lightPalette = palette{
		bg:     lipgloss.Color("#FAFAFA"),
		fg:     lipgloss.Color("#1F2328"),
		muted:  lipgloss.Color("#8C959F"),
		accent: lipgloss.Color("#0969DA"),
		border: lipgloss.Color("#D0D7DE"),
		danger: lipgloss.Color("#CF222E"),
	}
	darkPalette = palette{
		bg:     lipgloss.Color("#0D1117"),
		fg:     lipgloss.Color("#E6EDF3"),
		muted:  lipgloss.Color("#6E7681"),
		accent: lipgloss.Color("#58A6FF"),
		border: lipgloss.Color("#30363D"),
		danger: lipgloss.Color("#F85149"),
	}
)

func newTheme(p palette) theme {
	base := lipgloss.NewStyle().Foreground(p.fg)
	return theme{
		app:     lipgloss.NewStyle().Background(p.bg).Foreground(p.fg).Padding(1, 2),
		title:   base.Bold(true).Foreground(p.accent),
		counts:  base.Foreground(p.muted),
		input:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.border).Padding(0, 1),
		button:  lipgloss.NewStyle().Bold(true).Foreground(p.bg).Background(p.accent).Padding(0, 1),
		task:    base,
		done:    base.Foreground(p.muted).Strikethrough(true),
		editing: base.Foreground(p.accent).Italic(true),
		cursor:  base.Bold(true).Foreground(p.accent),
		caption: base.Foreground(p.muted).Faint(true),
		empty:   base.Foreground(p.muted).Italic(true).Padding(1, 4),
		errText: base.Foreground(p.danger),
	}
}

func themeFor(dark bool) theme {
	if dark {
		return newTheme(darkPalette)
	}
	return newTheme(lightPalette)
}
