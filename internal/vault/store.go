// Package vault owns the on-disk note collection: structure bootstrap, note
// CRUD, todo toggling, and the auto-commit that follows every mutation.
package vault

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/Paintersrp/t2/internal/constants"
	"github.com/Paintersrp/t2/internal/git"
	"github.com/Paintersrp/t2/internal/note"
	"github.com/Paintersrp/t2/internal/templater"
)

var (
	// ErrInvalidLineIndex signals a todo mutation aimed outside the file.
	ErrInvalidLineIndex = errors.New("line index out of range")
	// ErrNotTodoLine signals a todo mutation aimed at a line without a
	// checkbox marker.
	ErrNotTodoLine = errors.New("line is not a todo item")
)

// Store is the sole writer of note files in one vault. All filesystem
// operations are synchronous; the store imposes no concurrency of its own.
type Store struct {
	dir    string
	git    *git.Client
	tmpl   *templater.Templater
	logger *slog.Logger
}

// NewStore creates a store rooted at the vault directory.
func NewStore(dir string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	tmpl, err := templater.New()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	return &Store{
		dir:    dir,
		git:    git.NewClient(dir, logger),
		tmpl:   tmpl,
		logger: logger,
	}, nil
}

// Dir returns the vault root.
func (s *Store) Dir() string {
	return s.dir
}

// NotesDir returns the directory holding the note files.
func (s *Store) NotesDir() string {
	return filepath.Join(s.dir, constants.NotesDir)
}

// Git exposes the version-control adapter for explicit user actions such as
// push and pull.
func (s *Store) Git() *git.Client {
	return s.git
}

// EnsureStructure idempotently creates the vault directory, the notes
// subdirectory, and the config marker, then makes sure the vault root is a
// git repository. Existing files are never overwritten.
func (s *Store) EnsureStructure() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create vault directory: %w", err)
	}
	if err := os.MkdirAll(s.NotesDir(), 0o755); err != nil {
		return fmt.Errorf("failed to create notes directory: %w", err)
	}

	markerPath := filepath.Join(s.dir, constants.VaultMarkerFile)
	if _, err := os.Stat(markerPath); errors.Is(err, fs.ErrNotExist) {
		content, err := s.tmpl.Execute("vault-config", nil)
		if err != nil {
			return err
		}
		if err := os.WriteFile(markerPath, []byte(content), 0o644); err != nil {
			return fmt.Errorf("failed to write vault config: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("failed to check vault config: %w", err)
	}

	return s.git.Init()
}

// ReadNote reads and parses a single note file.
func ReadNote(path string) (note.Note, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return note.Note{}, fmt.Errorf("failed to read note %s: %w", path, err)
	}
	return note.FromContent(path, string(data)), nil
}

// ReadNote reads and parses a single note file in this vault.
func (s *Store) ReadNote(path string) (note.Note, error) {
	return ReadNote(path)
}

// ReadAll lists every .md file directly under notes/ and parses each one.
// Unreadable files are logged and skipped, never fatal. A missing notes
// directory yields an empty result.
func (s *Store) ReadAll() ([]note.Note, error) {
	entries, err := os.ReadDir(s.NotesDir())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	var notes []note.Note
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".md" {
			continue
		}
		n, err := ReadNote(filepath.Join(s.NotesDir(), entry.Name()))
		if err != nil {
			s.logger.Warn("skipping unreadable note", "file", entry.Name(), "error", err)
			continue
		}
		notes = append(notes, n)
	}

	// The stable sort leaves notes that both carry a created field in the
	// order os.ReadDir returned them, which is sorted by filename; with
	// date-prefixed names that is chronological. Pin-first ordering is not
	// wired here; pinnedAt is only persisted metadata.
	sort.SliceStable(notes, func(i, j int) bool {
		_, iCreated := notes[i].Meta.Get(note.KeyCreated)
		_, jCreated := notes[j].Meta.Get(note.KeyCreated)
		if iCreated && jCreated {
			return false
		}
		return notes[i].Path < notes[j].Path
	})

	return notes, nil
}

// Create writes a new dated note and commits it. Collisions with existing
// notes from the same day are avoided by counting them: the second note of
// the day becomes <date>-2.md. Returns the new absolute path.
func (s *Store) Create(title string) (string, error) {
	now := time.Now()
	date := now.Format("2006-01-02")

	fileName := date + ".md"
	if entries, err := os.ReadDir(s.NotesDir()); err == nil {
		count := 0
		for _, entry := range entries {
			if strings.HasPrefix(entry.Name(), date) {
				count++
			}
		}
		if count > 0 {
			fileName = fmt.Sprintf("%s-%d.md", date, count+1)
		}
	}

	if title == "" {
		title = date
	}

	content, err := s.tmpl.Execute("note", templater.NoteData{
		Title:   title,
		Created: now.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return "", err
	}

	notePath := filepath.Join(s.NotesDir(), fileName)
	if err := os.WriteFile(notePath, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write note: %w", err)
	}

	s.commit("note: create " + fileName)

	return notePath, nil
}

// Update overwrites the file with the given content verbatim, then commits.
func (s *Store) Update(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write note: %w", err)
	}

	s.commit("note: update " + filepath.Base(path))

	return nil
}

// Delete removes the note and commits. A missing file is a silent no-op.
func (s *Store) Delete(path string) error {
	err := os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	s.commit("note: delete " + filepath.Base(path))

	return nil
}

// SetPinned sets or clears the pinnedAt timestamp, round-tripping every
// other frontmatter key unchanged.
func (s *Store) SetPinned(path string, pinned bool) error {
	n, err := ReadNote(path)
	if err != nil {
		return err
	}

	if pinned {
		n.Meta.Set(note.KeyPinnedAt, time.Now().UTC().Format(time.RFC3339))
	} else {
		n.Meta.Delete(note.KeyPinnedAt)
	}

	return s.Update(path, note.Serialize(n.Meta, n.Body))
}

// ToggleTodo flips the checkbox on the given zero-based line. The file is
// re-read immediately before editing; cached content is never trusted for
// line-targeted mutations.
func (s *Store) ToggleTodo(path string, lineIndex int) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read note %s: %w", path, err)
	}

	lines := strings.Split(string(data), "\n")
	if lineIndex < 0 || lineIndex >= len(lines) {
		return fmt.Errorf("%w: %d", ErrInvalidLineIndex, lineIndex)
	}

	line := lines[lineIndex]
	switch {
	case strings.Contains(line, "[ ]"):
		lines[lineIndex] = note.CheckLine(line)
	case note.IsTodoLine(line):
		lines[lineIndex] = note.UncheckLine(line)
	default:
		return fmt.Errorf("%w: line %d", ErrNotTodoLine, lineIndex)
	}

	return s.Update(path, strings.Join(lines, "\n"))
}

// ReconcileTodos forces every todo line into the state given by the
// checked set: indexes in the set end up checked, all other todo lines end
// up unchecked. Lines not identified as todos by extraction are left alone.
// The whole reconciliation is one write and one commit.
func (s *Store) ReconcileTodos(path string, checked map[int]struct{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read note %s: %w", path, err)
	}

	content := string(data)
	lines := strings.Split(content, "\n")

	for _, todo := range note.ExtractTodos(content) {
		if todo.Index < 0 || todo.Index >= len(lines) {
			continue
		}
		line := lines[todo.Index]
		if _, want := checked[todo.Index]; want {
			lines[todo.Index] = note.CheckLine(line)
		} else {
			lines[todo.Index] = note.UncheckLine(line)
		}
	}

	return s.Update(path, strings.Join(lines, "\n"))
}

// commit records a best-effort auto-commit. A failure never rolls back the
// file write that already succeeded; the divergence is logged and surfaced
// through the log only.
func (s *Store) commit(message string) {
	if err := s.git.CommitAll(message); err != nil {
		s.logger.Error("auto-commit failed", "message", message, "error", err)
	}
}
