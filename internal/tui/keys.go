package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	focusNotes   key.Binding
	focusPreview key.Binding
	focusTodos   key.Binding
	cycleFocus   key.Binding
	create       key.Binding
	edit         key.Binding
	delete       key.Binding
	pin          key.Binding
	yank         key.Binding
	refresh      key.Binding
	toggleTodo   key.Binding
	applyTodos   key.Binding
	submitPrompt key.Binding
	exitPrompt   key.Binding
	quit         key.Binding
}

func newKeyMap() *keyMap {
	return &keyMap{
		focusNotes: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "notes"),
		),
		focusPreview: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "preview"),
		),
		focusTodos: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "todos"),
		),
		cycleFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next pane"),
		),
		create: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new note"),
		),
		edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e/↵", "edit"),
		),
		delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		pin: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pin"),
		),
		yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yank body"),
		),
		refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		toggleTodo: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle todo"),
		),
		applyTodos: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "apply todos"),
		),
		submitPrompt: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "submit"),
		),
		exitPrompt: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) shortHelp() []key.Binding {
	return []key.Binding{
		k.create,
		k.edit,
		k.delete,
		k.pin,
		k.yank,
	}
}

func (k keyMap) fullHelp() []key.Binding {
	return []key.Binding{
		k.focusNotes,
		k.focusPreview,
		k.focusTodos,
		k.cycleFocus,
		k.create,
		k.edit,
		k.delete,
		k.pin,
		k.yank,
		k.refresh,
		k.toggleTodo,
		k.applyTodos,
		k.quit,
	}
}
