package todo

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/Paintersrp/t2/internal/state"
	"github.com/Paintersrp/t2/internal/vault"
)

func newTestState(t *testing.T) *state.State {
	t.Helper()

	binDir := t.TempDir()
	stub := filepath.Join(binDir, "git")
	if err := os.WriteFile(stub, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("failed to write git stub: %v", err)
	}
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	dir := t.TempDir()
	store, err := vault.NewStore(dir, slog.Default())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	return &state.State{Vault: dir, Store: store}
}

func TestResolveNotePath(t *testing.T) {
	s := newTestState(t)
	notesDir := s.Store.NotesDir()

	tests := map[string]struct {
		input string
		want  string
	}{
		"bare name": {
			input: "2026-08-31",
			want:  filepath.Join(notesDir, "2026-08-31.md"),
		},
		"name with extension": {
			input: "2026-08-31.md",
			want:  filepath.Join(notesDir, "2026-08-31.md"),
		},
		"absolute path": {
			input: filepath.Join(notesDir, "elsewhere.md"),
			want:  filepath.Join(notesDir, "elsewhere.md"),
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := ResolveNotePath(s, tc.input); got != tc.want {
				t.Fatalf("ResolveNotePath(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestRunToggleChecksLine(t *testing.T) {
	s := newTestState(t)

	if err := os.MkdirAll(s.Store.NotesDir(), 0o755); err != nil {
		t.Fatalf("failed to create notes dir: %v", err)
	}

	path := filepath.Join(s.Store.NotesDir(), "list.md")
	content := "# List\n\n- [ ] first\n- [x] second\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write note: %v", err)
	}

	if err := runToggle(s, "list", 2); err != nil {
		t.Fatalf("runToggle returned error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read note: %v", err)
	}
	want := "# List\n\n- [x] first\n- [x] second\n"
	if string(got) != want {
		t.Fatalf("note content = %q, want %q", string(got), want)
	}
}

func TestRunToggleRejectsNonTodoLine(t *testing.T) {
	s := newTestState(t)

	if err := os.MkdirAll(s.Store.NotesDir(), 0o755); err != nil {
		t.Fatalf("failed to create notes dir: %v", err)
	}

	path := filepath.Join(s.Store.NotesDir(), "list.md")
	if err := os.WriteFile(path, []byte("# List\n\n- [ ] first\n"), 0o644); err != nil {
		t.Fatalf("failed to write note: %v", err)
	}

	if err := runToggle(s, "list", 0); err == nil {
		t.Fatal("expected error for non-todo line")
	}
}
