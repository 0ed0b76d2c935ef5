// Package tui implements the interactive vault browser.
package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/Paintersrp/t2/internal/editor"
	"github.com/Paintersrp/t2/internal/note"
	"github.com/Paintersrp/t2/internal/state"
)

type pane int

const (
	paneNotes pane = iota
	panePreview
	paneTodos
)

type editorFinishedMsg struct {
	err error
}

type Model struct {
	list     list.Model
	viewport viewport.Model
	todos    *todoPane
	input    textinput.Model
	keys     *keyMap
	styles   styles
	state    *state.State
	watcher  *vaultWatcher
	focus    pane
	width    int
	height   int
	creating bool
	deleting bool
}

func NewModel(s *state.State) (*Model, error) {
	notes, err := s.Store.ReadAll()
	if err != nil {
		return nil, err
	}

	st := newStyles(s.Theme)
	keys := newKeyMap()

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(s.Theme.Primary).
		BorderLeftForeground(s.Theme.Primary)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(s.Theme.Secondary).
		BorderLeftForeground(s.Theme.Primary)

	l := list.New(noteItems(notes), delegate, 0, 0)
	l.Title = "Notes"
	l.Styles.Title = st.title
	l.AdditionalShortHelpKeys = keys.shortHelp
	l.AdditionalFullHelpKeys = keys.fullHelp

	input := textinput.New()
	input.Placeholder = "note title"
	input.CharLimit = 120

	watcher, err := newVaultWatcher(s.Store.NotesDir())
	if err != nil {
		s.Logger.Warn("vault watcher unavailable", "error", err)
		watcher = nil
	}

	m := &Model{
		list:     l,
		viewport: viewport.New(0, 0),
		todos:    newTodoPane(),
		input:    input,
		keys:     keys,
		styles:   st,
		state:    s,
		watcher:  watcher,
	}
	m.syncSelection()

	return m, nil
}

func (m *Model) Init() tea.Cmd {
	if m.watcher != nil {
		return m.watcher.wait()
	}
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case editorFinishedMsg:
		if msg.err != nil {
			m.list.NewStatusMessage(m.styles.status.Render(fmt.Sprintf("Editor error: %v", msg.err)))
		}
		m.refresh()
		return m, nil

	case vaultChangedMsg:
		m.refresh()
		return m, m.watcher.wait()

	case watcherErrMsg:
		m.state.Logger.Warn("vault watcher error", "error", msg.Err)
		return m, m.watcher.wait()

	case tea.KeyMsg:
		switch {
		case m.creating:
			return m.handleCreateUpdate(msg)
		case m.deleting:
			return m.handleDeleteUpdate(msg)
		}

		if m.list.FilterState() == list.Filtering {
			break
		}

		model, cmd, handled := m.handleDefaultUpdate(msg)
		if handled {
			return model, cmd
		}
	}

	if m.focus == paneNotes {
		nl, cmd := m.list.Update(msg)
		m.list = nl
		cmds = append(cmds, cmd)
		m.syncSelection()
	} else if m.focus == panePreview {
		vp, cmd := m.viewport.Update(msg)
		m.viewport = vp
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleDefaultUpdate(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.quit):
		if m.watcher != nil {
			_ = m.watcher.close()
		}
		return m, tea.Quit, true

	case key.Matches(msg, m.keys.focusNotes):
		m.focus = paneNotes
		return m, nil, true

	case key.Matches(msg, m.keys.focusPreview):
		m.focus = panePreview
		return m, nil, true

	case key.Matches(msg, m.keys.focusTodos):
		m.focus = paneTodos
		return m, nil, true

	case key.Matches(msg, m.keys.cycleFocus):
		m.focus = (m.focus + 1) % 3
		return m, nil, true

	case key.Matches(msg, m.keys.create):
		m.creating = true
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink, true

	case key.Matches(msg, m.keys.refresh):
		m.refresh()
		return m, nil, true
	}

	if m.focus == paneTodos {
		switch {
		case msg.String() == "j" || msg.String() == "down":
			m.todos.moveDown()
			return m, nil, true
		case msg.String() == "k" || msg.String() == "up":
			m.todos.moveUp()
			return m, nil, true
		case key.Matches(msg, m.keys.toggleTodo):
			m.todos.toggle()
			return m, nil, true
		case key.Matches(msg, m.keys.applyTodos):
			m.applyTodos()
			return m, nil, true
		}
	}

	if m.focus == paneNotes {
		switch {
		case key.Matches(msg, m.keys.edit):
			return m, m.openEditor(), true

		case key.Matches(msg, m.keys.delete):
			if m.selectedPath() != "" {
				m.deleting = true
			}
			return m, nil, true

		case key.Matches(msg, m.keys.pin):
			m.togglePin()
			return m, nil, true

		case key.Matches(msg, m.keys.yank):
			m.yankBody()
			return m, nil, true
		}
	}

	return m, nil, false
}

func (m *Model) handleCreateUpdate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.exitPrompt) {
		m.creating = false
		m.input.Blur()
		return m, nil
	}

	if key.Matches(msg, m.keys.submitPrompt) {
		title := strings.TrimSpace(m.input.Value())
		m.creating = false
		m.input.Blur()

		path, err := m.state.Store.Create(title)
		if err != nil {
			m.list.NewStatusMessage(m.styles.status.Render(fmt.Sprintf("Error creating note: %v", err)))
			return m, nil
		}

		m.refresh()
		m.selectPath(path)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleDeleteUpdate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.deleting = false

	if msg.String() == "y" {
		path := m.selectedPath()
		if path == "" {
			return m, nil
		}
		if err := m.state.Store.Delete(path); err != nil {
			m.list.NewStatusMessage(m.styles.status.Render(fmt.Sprintf("Error deleting note: %v", err)))
			return m, nil
		}
		m.refresh()
	}

	return m, nil
}

func (m *Model) View() string {
	listWidth := m.width / 3
	sideWidth := m.width - listWidth

	listView := m.styles.list.Width(listWidth).Render(m.list.View())

	if m.creating {
		prompt := m.styles.prompt.Render(fmt.Sprintf(
			"%s\n\n%s\n\n%s",
			m.styles.title.Render("New note"),
			m.input.View(),
			m.styles.help.Render("enter to create, esc to cancel"),
		))
		return m.styles.app.Render(lipgloss.JoinHorizontal(lipgloss.Top, listView, prompt))
	}

	if m.deleting {
		prompt := m.styles.prompt.Render(fmt.Sprintf(
			"%s\n\n%s",
			m.styles.title.Render("Delete note?"),
			m.styles.help.Render("y to confirm, any other key to cancel"),
		))
		return m.styles.app.Render(lipgloss.JoinHorizontal(lipgloss.Top, listView, prompt))
	}

	previewTitle := "Preview"
	todosTitle := "Todos"
	switch m.focus {
	case panePreview:
		previewTitle = m.styles.focused.Render("Preview")
	case paneTodos:
		todosTitle = m.styles.focused.Render("Todos")
	}

	previewView := m.styles.preview.Width(sideWidth * 2 / 3).Render(fmt.Sprintf(
		"%s\n%s",
		m.styles.title.Render(previewTitle),
		m.viewport.View(),
	))

	todoView := m.styles.todos.Render(fmt.Sprintf(
		"%s\n%s",
		m.styles.title.Render(todosTitle),
		m.todos.view(m.styles, m.focus == paneTodos),
	))

	layout := lipgloss.JoinHorizontal(lipgloss.Top, listView, previewView, todoView)
	return m.styles.app.Render(layout)
}

func (m *Model) resize() {
	h, v := m.styles.app.GetFrameSize()
	listWidth := (m.width - h) / 3
	m.list.SetSize(listWidth, m.height-v)
	m.viewport.Width = (m.width - h - listWidth) * 2 / 3
	m.viewport.Height = m.height - v - 2
	m.syncSelection()
}

func (m *Model) selectedPath() string {
	if i, ok := m.list.SelectedItem().(noteItem); ok {
		return i.Path()
	}
	return ""
}

func (m *Model) selectPath(path string) {
	for idx, item := range m.list.Items() {
		if i, ok := item.(noteItem); ok && i.Path() == path {
			m.list.Select(idx)
			break
		}
	}
	m.syncSelection()
}

func (m *Model) refresh() {
	notes, err := m.state.Store.ReadAll()
	if err != nil {
		m.list.NewStatusMessage(m.styles.status.Render(fmt.Sprintf("Error reading notes: %v", err)))
		return
	}

	selected := m.selectedPath()
	m.list.SetItems(noteItems(notes))
	if selected != "" {
		m.selectPath(selected)
	}
	m.syncSelection()
}

// syncSelection re-reads the selected note and rebuilds the preview and the
// todo pane from its current on-disk content.
func (m *Model) syncSelection() {
	path := m.selectedPath()
	if path == "" {
		m.viewport.SetContent("")
		m.todos.load(nil)
		return
	}

	content, err := os.ReadFile(path)
	if err != nil {
		m.viewport.SetContent("Error reading file")
		m.todos.load(nil)
		return
	}

	m.viewport.SetContent(m.renderMarkdown(string(content)))
	m.todos.load(note.ExtractTodos(string(content)))
}

func (m *Model) renderMarkdown(content string) string {
	width := m.viewport.Width
	if width <= 0 {
		width = 80
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(m.state.Theme.GlamourStyle),
		glamour.WithWordWrap(width),
		glamour.WithColorProfile(termenv.ANSI256),
	)
	if err != nil {
		return content
	}

	rendered, err := r.Render(content)
	if err != nil {
		return content
	}

	return rendered
}

func (m *Model) openEditor() tea.Cmd {
	path := m.selectedPath()
	if path == "" {
		return nil
	}

	return tea.ExecProcess(editor.Command(path), func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

func (m *Model) applyTodos() {
	path := m.selectedPath()
	if path == "" || !m.todos.dirty() {
		return
	}

	if err := m.state.Store.ReconcileTodos(path, m.todos.checked()); err != nil {
		m.list.NewStatusMessage(m.styles.status.Render(fmt.Sprintf("Error updating todos: %v", err)))
		return
	}

	m.syncSelection()
	m.list.NewStatusMessage(m.styles.status.Render("Todos updated"))
}

func (m *Model) togglePin() {
	path := m.selectedPath()
	if path == "" {
		return
	}

	n, err := m.state.Store.ReadNote(path)
	if err != nil {
		m.list.NewStatusMessage(m.styles.status.Render(fmt.Sprintf("Error reading note: %v", err)))
		return
	}

	if err := m.state.Store.SetPinned(path, !n.Pinned()); err != nil {
		m.list.NewStatusMessage(m.styles.status.Render(fmt.Sprintf("Error pinning note: %v", err)))
		return
	}

	m.refresh()
}

func (m *Model) yankBody() {
	path := m.selectedPath()
	if path == "" {
		return
	}

	n, err := m.state.Store.ReadNote(path)
	if err != nil {
		m.list.NewStatusMessage(m.styles.status.Render(fmt.Sprintf("Error reading note: %v", err)))
		return
	}

	if err := clipboard.WriteAll(n.Body); err != nil {
		m.list.NewStatusMessage(m.styles.status.Render(fmt.Sprintf("Error copying to clipboard: %v", err)))
		return
	}

	m.list.NewStatusMessage(m.styles.status.Render("Note body copied"))
}

// Run starts the interactive vault browser.
func Run(s *state.State) error {
	m, err := NewModel(s)
	if err != nil {
		return err
	}

	if _, err := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	return nil
}
