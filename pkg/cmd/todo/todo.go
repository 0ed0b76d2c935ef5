package todo

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/t2/internal/note"
	"github.com/Paintersrp/t2/internal/state"
)

func NewCmdTodo(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "todo",
		Aliases: []string{"td"},
		Short:   "Inspect and toggle the todos of a single note.",
		Long: heredoc.Doc(`
			Lists or toggles the checklist items of one note. Notes are named
			by their filename, with or without the .md extension.
		`),
		Example: heredoc.Doc(`
			t2 todo list 2026-08-31
			t2 todo toggle 2026-08-31 4
		`),
	}

	cmd.AddCommand(newCmdList(s))
	cmd.AddCommand(newCmdToggle(s))

	return cmd
}

func newCmdList(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:     "list [note]",
		Aliases: []string{"ls"},
		Short:   "List a note's todos with their line numbers.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(s, args[0])
		},
	}
}

func newCmdToggle(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle [note] [line]",
		Short: "Toggle the todo on the given line of a note.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid line number %q", args[1])
			}
			return runToggle(s, args[0], line)
		},
	}
}

func runList(s *state.State, name string) error {
	path := ResolveNotePath(s, name)

	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	todos := note.ExtractTodos(string(content))
	if len(todos) == 0 {
		fmt.Println("No todos found")
		return nil
	}

	for _, item := range todos {
		mark := "[ ]"
		if item.Checked {
			mark = "[x]"
		}
		fmt.Printf("%4d %s %s\n", item.Index, mark, item.Text)
	}

	return nil
}

func runToggle(s *state.State, name string, line int) error {
	path := ResolveNotePath(s, name)

	if err := s.Store.ToggleTodo(path, line); err != nil {
		return err
	}

	fmt.Printf("Toggled line %d of %s\n", line, filepath.Base(path))
	return nil
}

// ResolveNotePath turns a note name into an absolute path inside the vault's
// notes directory. Absolute paths pass through unchanged.
func ResolveNotePath(s *state.State, name string) string {
	if filepath.Ext(name) == "" {
		name += ".md"
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.Store.NotesDir(), name)
}
