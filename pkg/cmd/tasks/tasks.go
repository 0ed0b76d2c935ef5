package tasks

import (
	"fmt"
	"path/filepath"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/t2/internal/state"
	"github.com/Paintersrp/t2/internal/tasks"
)

type options struct {
	pending bool
	sort    string
}

func NewCmdTasks(s *state.State) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:     "tasks",
		Aliases: []string{"t"},
		Short:   "List checklist items across every note in the vault.",
		Long: heredoc.Doc(`
			Scans every markdown note in the vault for checklist items and
			prints them with the note they came from and their line number.
		`),
		Example: heredoc.Doc(`
			t2 tasks
			t2 tasks --pending
			t2 tasks --sort status
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(s, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.pending, "pending", "p", false, "show only unchecked items")
	cmd.Flags().StringVar(&opts.sort, "sort", "", "sort by status: asc (unchecked first) or desc")

	return cmd
}

func run(s *state.State, opts options) error {
	scanner := tasks.NewScanner(s.Store.NotesDir())
	if err := scanner.Walk(); err != nil {
		return err
	}

	var items []tasks.Task
	switch {
	case opts.pending:
		items = scanner.Pending()
	case opts.sort != "":
		items = scanner.SortByStatus(opts.sort)
		if items == nil {
			return fmt.Errorf("invalid sort order %q, use 'asc' or 'desc'", opts.sort)
		}
	default:
		items = scanner.Tasks()
	}

	if len(items) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	for _, task := range items {
		mark := "[ ]"
		if task.Checked() {
			mark = "[x]"
		}
		fmt.Printf("%s %s (%s:%d)\n", mark, task.Content, filepath.Base(task.Path), task.Line)
	}

	return nil
}
