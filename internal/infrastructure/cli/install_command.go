package cli

import (
	"github.com/spf13/cobra"

	"github.com/noctalia-dev/noctalia-cli/internal/app"
	"github.com/noctalia-dev/noctalia-cli/internal/domain"
)

func newInstallCommand(container *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install noctalia-shell",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newInstallShellCommand(container))
	return cmd
}

func newInstallShellCommand(container *app.Container) *cobra.Command {
	var (
		git     bool
		release bool
	)

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Install the Noctalia shell",
		Long:  "Install the Noctalia shell from either the latest release or git main.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := ResolveSource(container.Store, container.Prompter, domain.ComponentShell, git, release)
			if err != nil {
				return err
			}
			return container.Lifecycle.Install(cmd.Context(), source)
		},
	}

	cmd.Flags().BoolVar(&git, "git", false, "Track the main branch (latest commit)")
	cmd.Flags().BoolVar(&release, "release", false, "Track the latest tagged release")
	return cmd
}
