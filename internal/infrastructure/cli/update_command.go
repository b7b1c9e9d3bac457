package cli

import (
	"github.com/spf13/cobra"

	"github.com/noctalia-dev/noctalia-cli/internal/app"
	"github.com/noctalia-dev/noctalia-cli/internal/domain"
)

func newUpdateCommand(container *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update noctalia-shell",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newUpdateShellCommand(container))
	return cmd
}

func newUpdateShellCommand(container *app.Container) *cobra.Command {
	var (
		git     bool
		release bool
	)

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Update the Noctalia shell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := ResolveSource(container.Store, container.Prompter, domain.ComponentShell, git, release)
			if err != nil {
				return err
			}
			return container.Lifecycle.Update(cmd.Context(), source)
		},
	}

	cmd.Flags().BoolVar(&git, "git", false, "Track the main branch (latest commit)")
	cmd.Flags().BoolVar(&release, "release", false, "Track the latest tagged release")
	return cmd
}
