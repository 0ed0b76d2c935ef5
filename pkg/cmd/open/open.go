package open

import (
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/t2/internal/editor"
	"github.com/Paintersrp/t2/internal/fzf"
	"github.com/Paintersrp/t2/internal/state"
)

func NewCmdOpen(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "open [query]",
		Aliases: []string{"o"},
		Short:   "Fuzzy find a note and open it in your editor.",
		Long: heredoc.Doc(`
			Opens a fuzzy finder over the vault's notes, showing each note's
			title and tags with a rendered markdown preview. The selected note
			opens in your configured editor.

			An optional query argument pre-fills the finder.
		`),
		Example: "t2 open weekly",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(s, args)
		},
	}

	return cmd
}

func run(s *state.State, args []string) error {
	finder := fzf.NewFuzzyFinder(s.Store, s.Theme, "Open note")

	var (
		path string
		err  error
	)
	if query := strings.Join(args, " "); query != "" {
		path, err = finder.RunWithQuery(query)
	} else {
		path, err = finder.Run()
	}
	if err != nil {
		return err
	}

	return editor.Open(path)
}
