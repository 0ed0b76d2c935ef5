// Package editor launches an external editor on a note file.
package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/viper"
)

// Resolve picks the editor binary: $EDITOR, then $VISUAL, then the viper
// "editor" setting, then nvim.
func Resolve() string {
	for _, candidate := range []string{
		os.Getenv("EDITOR"),
		os.Getenv("VISUAL"),
		viper.GetString("editor"),
	} {
		if c := strings.TrimSpace(candidate); c != "" {
			return c
		}
	}
	return "nvim"
}

// Command prepares the editor invocation for the given path. The caller owns
// stdio wiring; the TUI hands this to tea.ExecProcess so the editor inherits
// the terminal.
func Command(path string) *exec.Cmd {
	return exec.Command(Resolve(), path)
}

// Open runs the editor synchronously with the terminal attached and blocks
// until it exits. Callers must re-read any note state afterwards regardless
// of the exit status.
func Open(path string) error {
	cmd := Command(path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor exited with error: %w", err)
	}
	return nil
}
