// Package fzf provides fuzzy selection over the notes in a vault.
package fzf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/muesli/termenv"

	"github.com/Paintersrp/t2/internal/note"
	"github.com/Paintersrp/t2/internal/theme"
	"github.com/Paintersrp/t2/internal/vault"
)

// FuzzyFinder encapsulates fuzzy selection over a vault's notes.
type FuzzyFinder struct {
	store  *vault.Store
	theme  theme.Theme
	Header string
	files  []string
}

func NewFuzzyFinder(store *vault.Store, th theme.Theme, header string) *FuzzyFinder {
	return &FuzzyFinder{store: store, theme: th, Header: header}
}

// Run prompts for a note and returns its absolute path.
func (f *FuzzyFinder) Run() (string, error) {
	return f.RunWithQuery("")
}

// RunWithQuery prompts with an initial query and returns the selected path.
func (f *FuzzyFinder) RunWithQuery(query string) (string, error) {
	notes, err := f.store.ReadAll()
	if err != nil {
		return "", fmt.Errorf("error listing notes: %w", err)
	}

	f.files = f.files[:0]
	for _, n := range notes {
		f.files = append(f.files, n.Path)
	}

	idx, err := f.fuzzySelect(notes, query)
	if err != nil {
		if err == fuzzyfinder.ErrAbort {
			return "", fmt.Errorf("no note selected")
		}
		return "", err
	}

	return f.files[idx], nil
}

func (f *FuzzyFinder) fuzzySelect(notes []note.Note, query string) (int, error) {
	options := []fuzzyfinder.Option{
		fuzzyfinder.WithPreviewWindow(f.renderMarkdownPreview),
	}

	if query != "" {
		options = append(options, fuzzyfinder.WithQuery(query))
	}

	if f.Header != "" {
		options = append(options, fuzzyfinder.WithHeader(f.Header))
	}

	labels := make([]string, len(notes))
	for i, n := range notes {
		title := n.Title(strings.TrimSuffix(filepath.Base(n.Path), ".md"))

		if len(n.Tags) == 0 {
			labels[i] = fmt.Sprintf("%s [No tags] ", title)
		} else {
			labels[i] = fmt.Sprintf("%s [Tags: %s] ", title, strings.Join(n.Tags, ", "))
		}
	}

	return fuzzyfinder.Find(f.files, func(i int) string {
		return labels[i]
	}, options...)
}

func (f *FuzzyFinder) renderMarkdownPreview(i, w, h int) string {
	if i == -1 {
		return ""
	}

	content, err := os.ReadFile(f.files[i])
	if err != nil {
		return "Error reading file"
	}

	r, _ := glamour.NewTermRenderer(
		glamour.WithStandardStyle(f.theme.GlamourStyle),
		glamour.WithWordWrap(100),
		glamour.WithColorProfile(termenv.ANSI256),
	)

	markdown, err := r.Render(string(content))
	if err != nil {
		return "Error rendering markdown"
	}

	return markdown
}
