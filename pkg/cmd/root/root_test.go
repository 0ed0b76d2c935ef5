package root

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"github.com/Paintersrp/t2/internal/state"
)

func newTestState(t *testing.T) *state.State {
	t.Helper()

	viper.Reset()
	t.Setenv("HOME", t.TempDir())

	binDir := t.TempDir()
	stub := filepath.Join(binDir, "git")
	if err := os.WriteFile(stub, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("failed to write git stub: %v", err)
	}
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	s, err := state.New("")
	if err != nil {
		t.Fatalf("failed to build state: %v", err)
	}
	return s
}

func TestVaultFlagRebuildsState(t *testing.T) {
	s := newTestState(t)
	override := t.TempDir()

	cmd, err := NewCmdRoot(s)
	if err != nil {
		t.Fatalf("NewCmdRoot returned error: %v", err)
	}

	cmd.SetArgs([]string{"notes", "--vault", override})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute returned error: %v", err)
	}

	if s.Vault != override {
		t.Fatalf("state vault = %q, want override %q", s.Vault, override)
	}
	if got := viper.GetString("vault"); got != override {
		t.Fatalf("viper vault = %q, want %q", got, override)
	}
}

func TestWithoutVaultFlagStateIsUntouched(t *testing.T) {
	s := newTestState(t)
	original := s.Vault

	cmd, err := NewCmdRoot(s)
	if err != nil {
		t.Fatalf("NewCmdRoot returned error: %v", err)
	}

	cmd.SetArgs([]string{"notes"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute returned error: %v", err)
	}

	if s.Vault != original {
		t.Fatalf("state vault = %q, want unchanged %q", s.Vault, original)
	}
}
