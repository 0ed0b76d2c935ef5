package tui

import (
	"fmt"
	"strings"

	"github.com/Paintersrp/t2/internal/note"
)

// todoPane tracks the checklist of the selected note along with any pending
// check state changes that have not been written back yet.
type todoPane struct {
	items   []note.TodoItem
	desired map[int]bool
	cursor  int
}

func newTodoPane() *todoPane {
	return &todoPane{desired: make(map[int]bool)}
}

// load replaces the pane contents with the todos of a freshly read note,
// dropping any unapplied changes.
func (p *todoPane) load(items []note.TodoItem) {
	p.items = items
	p.desired = make(map[int]bool, len(items))
	for _, item := range items {
		p.desired[item.Index] = item.Checked
	}
	if p.cursor >= len(items) {
		p.cursor = 0
	}
}

func (p *todoPane) moveUp() {
	if p.cursor > 0 {
		p.cursor--
	}
}

func (p *todoPane) moveDown() {
	if p.cursor < len(p.items)-1 {
		p.cursor++
	}
}

// toggle flips the desired state of the todo under the cursor.
func (p *todoPane) toggle() {
	if len(p.items) == 0 {
		return
	}
	idx := p.items[p.cursor].Index
	p.desired[idx] = !p.desired[idx]
}

// dirty reports whether any todo's desired state differs from what is on disk.
func (p *todoPane) dirty() bool {
	for _, item := range p.items {
		if p.desired[item.Index] != item.Checked {
			return true
		}
	}
	return false
}

// checked returns the set of line indexes that should end up checked.
func (p *todoPane) checked() map[int]struct{} {
	out := make(map[int]struct{})
	for idx, want := range p.desired {
		if want {
			out[idx] = struct{}{}
		}
	}
	return out
}

func (p *todoPane) view(s styles, focused bool) string {
	if len(p.items) == 0 {
		return s.help.Render("No todos in this note")
	}

	var b strings.Builder
	for i, item := range p.items {
		cursor := "  "
		if focused && i == p.cursor {
			cursor = s.todoCursor.Render("> ")
		}

		mark := "[ ]"
		if p.desired[item.Index] {
			mark = "[x]"
		}

		text := item.Text
		if p.desired[item.Index] {
			text = s.todoDone.Render(text)
		}

		pending := ""
		if p.desired[item.Index] != item.Checked {
			pending = " *"
		}

		fmt.Fprintf(&b, "%s%s %s%s\n", cursor, mark, text, pending)
	}

	return strings.TrimRight(b.String(), "\n")
}
