package new

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/t2/internal/editor"
	"github.com/Paintersrp/t2/internal/state"
)

type options struct {
	edit bool
}

func NewCmdNew(s *state.State) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:     "new [title]",
		Aliases: []string{"n"},
		Short:   "Create a new note from the default template.",
		Long: heredoc.Doc(`
			Creates a markdown note in the vault's notes directory, named after
			today's date. A second note created the same day gets a -2 suffix,
			the next -3, and so on. The title defaults to the date when omitted.

			The new note is committed to the vault's git repository.
		`),
		Example: "t2 new 'Weekly review'",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(s, args, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.edit, "edit", "e", false, "open the new note in your editor")

	return cmd
}

func run(s *state.State, args []string, opts options) error {
	if err := s.Store.EnsureStructure(); err != nil {
		return err
	}

	title := strings.TrimSpace(strings.Join(args, " "))

	path, err := s.Store.Create(title)
	if err != nil {
		return err
	}

	fmt.Printf("Created %s\n", path)

	if opts.edit {
		return editor.Open(path)
	}

	return nil
}
