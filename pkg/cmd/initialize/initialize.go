package initialize

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/t2/internal/state"
)

func NewCmdInit(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "init",
		Aliases: []string{"i"},
		Short:   "Initialize the vault directory and its git repository.",
		Long: heredoc.Doc(`
			Creates the vault directory, its notes subdirectory, and the vault
			marker file, then initializes a git repository with an initial
			commit. Running init on an existing vault is a no-op.

			The vault location is the --vault flag if given, otherwise the
			configured vaultPath, the NOTES_VAULT or VAULT_PATH environment
			variables, or ~/.notes.
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.Store.EnsureStructure(); err != nil {
				return err
			}
			fmt.Printf("Vault ready at %s\n", s.Vault)
			return nil
		},
	}

	return cmd
}
