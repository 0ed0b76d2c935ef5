package theme

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/t2/internal/prefs"
	"github.com/Paintersrp/t2/internal/state"
	"github.com/Paintersrp/t2/internal/theme"
)

func NewCmdTheme(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the color theme.",
		Long: heredoc.Doc(`
			Without arguments, lists the available themes and marks the active
			one. Use 'theme set' to change it.
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(s)
		},
	}

	cmd.AddCommand(newCmdSet(s))

	return cmd
}

func newCmdSet(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:   "set [name]",
		Short: "Set the active theme.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(s, args[0])
		},
	}
}

func runList(s *state.State) error {
	for _, name := range theme.Names() {
		marker := " "
		if name == s.Prefs.Theme {
			marker = "*"
		}
		fmt.Printf("%s %s\n", marker, name)
	}
	return nil
}

func runSet(s *state.State, name string) error {
	if !theme.Valid(name) {
		return fmt.Errorf("unknown theme %q, available: %v", name, theme.Names())
	}

	cfg := s.Prefs
	cfg.Theme = name

	if err := prefs.Save(cfg); err != nil {
		return err
	}

	s.Prefs = cfg
	s.Theme = theme.Get(name)

	fmt.Printf("Theme set to %s\n", name)
	return nil
}
