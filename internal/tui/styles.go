package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/t2/internal/theme"
)

type styles struct {
	app        lipgloss.Style
	title      lipgloss.Style
	list       lipgloss.Style
	preview    lipgloss.Style
	todos      lipgloss.Style
	status     lipgloss.Style
	help       lipgloss.Style
	prompt     lipgloss.Style
	focused    lipgloss.Style
	todoCursor lipgloss.Style
	todoDone   lipgloss.Style
}

func newStyles(th theme.Theme) styles {
	paneBorder := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(th.Muted)

	return styles{
		app: lipgloss.NewStyle().Padding(1, 2),

		title: lipgloss.NewStyle().
			Foreground(th.Primary).
			Bold(true).
			Padding(0, 1),

		list: lipgloss.NewStyle().MarginRight(1),

		preview: paneBorder.Copy().MarginLeft(1),

		todos: paneBorder.Copy().MarginLeft(1),

		status: lipgloss.NewStyle().Foreground(th.Accent),

		help: lipgloss.NewStyle().Foreground(th.Muted),

		prompt: paneBorder.Copy().MarginLeft(1).Padding(0, 2),

		focused: lipgloss.NewStyle().
			Foreground(th.Secondary).
			Bold(true),

		todoCursor: lipgloss.NewStyle().
			Foreground(th.Primary).
			Bold(true),

		todoDone: lipgloss.NewStyle().
			Foreground(th.Muted).
			Strikethrough(true),
	}
}
