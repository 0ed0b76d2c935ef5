package vault

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Paintersrp/t2/internal/git"
	"github.com/Paintersrp/t2/internal/state"
	"github.com/Paintersrp/t2/internal/vault"
)

// newTestState builds a state whose vault already is a git repository, with
// a stub git binary that records every invocation.
func newTestState(t *testing.T) (*state.State, string) {
	t.Helper()

	binDir := t.TempDir()
	logFile := filepath.Join(binDir, "git.log")
	stub := fmt.Sprintf("#!/bin/sh\necho \"$@\" >> %s\nexit 0\n", logFile)
	if err := os.WriteFile(filepath.Join(binDir, "git"), []byte(stub), 0o755); err != nil {
		t.Fatalf("failed to write git stub: %v", err)
	}
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatalf("failed to create .git dir: %v", err)
	}

	store, err := vault.NewStore(dir, slog.Default())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	return &state.State{Vault: dir, Store: store}, logFile
}

func gitCalls(t *testing.T, logFile string) []string {
	t.Helper()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read git log: %v", err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func TestSyncPullsThenPushes(t *testing.T) {
	s, logFile := newTestState(t)

	cmd := NewCmdVault(s)
	cmd.SetArgs([]string{"sync"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("sync returned error: %v", err)
	}

	calls := gitCalls(t, logFile)
	if len(calls) != 2 {
		t.Fatalf("expected 2 git invocations, got %d: %v", len(calls), calls)
	}
	if calls[0] != "pull origin main" {
		t.Errorf("first call = %q, want %q", calls[0], "pull origin main")
	}
	if calls[1] != "push origin main" {
		t.Errorf("second call = %q, want %q", calls[1], "push origin main")
	}
}

func TestSyncHonorsRemoteAndBranchFlags(t *testing.T) {
	s, logFile := newTestState(t)

	cmd := NewCmdVault(s)
	cmd.SetArgs([]string{"sync", "--remote", "backup", "--branch", "trunk"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("sync returned error: %v", err)
	}

	calls := gitCalls(t, logFile)
	if len(calls) != 2 {
		t.Fatalf("expected 2 git invocations, got %d: %v", len(calls), calls)
	}
	if calls[0] != "pull backup trunk" {
		t.Errorf("first call = %q, want %q", calls[0], "pull backup trunk")
	}
	if calls[1] != "push backup trunk" {
		t.Errorf("second call = %q, want %q", calls[1], "push backup trunk")
	}
}

func TestSyncOutsideRepoFails(t *testing.T) {
	s, logFile := newTestState(t)
	if err := os.RemoveAll(filepath.Join(s.Vault, ".git")); err != nil {
		t.Fatalf("failed to remove .git dir: %v", err)
	}

	cmd := NewCmdVault(s)
	cmd.SetArgs([]string{"sync"})
	err := cmd.Execute()
	if !errors.Is(err, git.ErrNotRepo) {
		t.Fatalf("expected ErrNotRepo, got %v", err)
	}

	if _, statErr := os.Stat(logFile); !os.IsNotExist(statErr) {
		t.Fatalf("expected no git invocations outside a repo")
	}
}
