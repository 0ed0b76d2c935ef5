package tui

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/list"

	"github.com/Paintersrp/t2/internal/note"
)

type noteItem struct {
	title  string
	path   string
	tags   []string
	pinned bool
}

func newNoteItem(n note.Note) noteItem {
	fallback := strings.TrimSuffix(filepath.Base(n.Path), ".md")
	return noteItem{
		title:  n.Title(fallback),
		path:   n.Path,
		tags:   n.Tags,
		pinned: n.Pinned(),
	}
}

func (i noteItem) Title() string {
	if i.pinned {
		return "📌 " + i.title
	}
	return i.title
}

func (i noteItem) Description() string {
	if len(i.tags) == 0 {
		return "No tags"
	}
	return strings.Join(i.tags, ", ")
}

func (i noteItem) FilterValue() string {
	return i.title + " [" + strings.Join(i.tags, " ") + "]"
}

func (i noteItem) Path() string {
	return i.path
}

func noteItems(notes []note.Note) []list.Item {
	items := make([]list.Item, len(notes))
	for idx, n := range notes {
		items[idx] = newNoteItem(n)
	}
	return items
}
