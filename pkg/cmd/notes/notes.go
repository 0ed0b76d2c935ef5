package notes

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/t2/internal/state"
)

func NewCmdNotes(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notes",
		Aliases: []string{"ls", "list"},
		Short:   "List the notes in the vault.",
		Long: heredoc.Doc(`
			Prints every note in the vault with its title and tags. Pinned
			notes are marked with an asterisk.
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(s)
		},
	}

	return cmd
}

func run(s *state.State) error {
	notes, err := s.Store.ReadAll()
	if err != nil {
		return err
	}

	if len(notes) == 0 {
		fmt.Println("No notes found")
		return nil
	}

	for _, n := range notes {
		name := filepath.Base(n.Path)
		title := n.Title(strings.TrimSuffix(name, ".md"))

		marker := " "
		if n.Pinned() {
			marker = "*"
		}

		line := fmt.Sprintf("%s %-30s %s", marker, name, title)
		if len(n.Tags) > 0 {
			line += fmt.Sprintf("  [%s]", strings.Join(n.Tags, ", "))
		}
		fmt.Println(line)
	}

	return nil
}
