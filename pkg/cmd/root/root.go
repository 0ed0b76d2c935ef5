package root

import (
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/Paintersrp/t2/internal/constants"
	"github.com/Paintersrp/t2/internal/state"
	"github.com/Paintersrp/t2/internal/tui"
	"github.com/Paintersrp/t2/pkg/cmd/initialize"
	newCmd "github.com/Paintersrp/t2/pkg/cmd/new"
	"github.com/Paintersrp/t2/pkg/cmd/notes"
	"github.com/Paintersrp/t2/pkg/cmd/open"
	"github.com/Paintersrp/t2/pkg/cmd/tasks"
	"github.com/Paintersrp/t2/pkg/cmd/theme"
	"github.com/Paintersrp/t2/pkg/cmd/todo"
	"github.com/Paintersrp/t2/pkg/cmd/vault"
)

func NewCmdRoot(s *state.State) (*cobra.Command, error) {
	var vaultFlag string

	cmd := &cobra.Command{
		Use:     "t2",
		Short:   "A terminal notebook with todo tracking and git history.",
		Version: constants.Version,
		Long: heredoc.Doc(`
			Keeps your notes as plain markdown files in a git-backed vault.
			Notes carry frontmatter, tags, and checklists, and every change is
			committed automatically.

			Run without arguments to browse the vault interactively.
		`),
		Example: heredoc.Doc(`
			t2 init
			t2 new 'Weekly review' --edit
			t2 tasks --pending
		`),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			override := viper.GetString("vault")
			if override == "" {
				return nil
			}
			ns, err := state.New(override)
			if err != nil {
				return err
			}
			*s = *ns
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return notes.NewCmdNotes(s).RunE(cmd, args)
			}
			if err := s.Store.EnsureStructure(); err != nil {
				return err
			}
			return tui.Run(s)
		},
	}

	cmd.PersistentFlags().StringVarP(&vaultFlag, "vault", "V", "", "path to the vault directory")
	viper.BindPFlag("vault", cmd.PersistentFlags().Lookup("vault"))

	cmd.AddCommand(
		initialize.NewCmdInit(s),
		newCmd.NewCmdNew(s),
		notes.NewCmdNotes(s),
		open.NewCmdOpen(s),
		tasks.NewCmdTasks(s),
		todo.NewCmdTodo(s),
		theme.NewCmdTheme(s),
		vault.NewCmdVault(s),
	)

	return cmd, nil
}
