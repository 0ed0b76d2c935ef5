package vault

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/t2/internal/state"
)

type options struct {
	remote string
	branch string
}

func NewCmdVault(s *state.State) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:     "vault",
		Aliases: []string{"v"},
		Short:   "Manage the vault's git repository.",
		Long: heredoc.Doc(`
			Inspect and synchronize the vault's git repository. Every note
			mutation is committed automatically, so status, push, and pull are
			usually all the git interaction a vault needs.
		`),
		Example: heredoc.Doc(`
			t2 vault status
			t2 vault remote add git@github.com:user/notes.git
			t2 vault sync
		`),
	}

	cmd.PersistentFlags().StringVar(&opts.remote, "remote", "origin", "git remote name")
	cmd.PersistentFlags().StringVar(&opts.branch, "branch", "main", "git branch name")

	cmd.AddCommand(newCmdStatus(s))
	cmd.AddCommand(newCmdPush(s, &opts))
	cmd.AddCommand(newCmdPull(s, &opts))
	cmd.AddCommand(newCmdSync(s, &opts))
	cmd.AddCommand(newCmdRemote(s, &opts))

	return cmd
}

func newCmdStatus(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the vault repository status.",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := s.Store.Git().Status()
			if err != nil {
				return err
			}
			if out == "" {
				fmt.Println("Vault is clean")
				return nil
			}
			fmt.Print(out)
			return nil
		},
	}
}

func newCmdPush(s *state.State, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "push",
		Short: "Push vault commits to the remote.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.Store.Git().Push(opts.remote, opts.branch); err != nil {
				return err
			}
			fmt.Printf("Pushed to %s/%s\n", opts.remote, opts.branch)
			return nil
		},
	}
}

func newCmdPull(s *state.State, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "pull",
		Short: "Pull vault commits from the remote.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.Store.Git().Pull(opts.remote, opts.branch); err != nil {
				return err
			}
			fmt.Printf("Pulled from %s/%s\n", opts.remote, opts.branch)
			return nil
		},
	}
}

func newCmdSync(s *state.State, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Pull then push the vault's commits.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.Store.Git().Pull(opts.remote, opts.branch); err != nil {
				return err
			}
			if err := s.Store.Git().Push(opts.remote, opts.branch); err != nil {
				return err
			}
			fmt.Printf("Synced with %s/%s\n", opts.remote, opts.branch)
			return nil
		},
	}
}

func newCmdRemote(s *state.State, opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Manage the vault's git remotes.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add [url]",
		Short: "Add a remote to the vault repository.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.Store.Git().AddRemote(opts.remote, args[0]); err != nil {
				return err
			}
			fmt.Printf("Remote %s added\n", opts.remote)
			return nil
		},
	})

	return cmd
}
