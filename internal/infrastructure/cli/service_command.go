package cli

import (
	"github.com/spf13/cobra"

	"github.com/noctalia-dev/noctalia-cli/internal/app"
)

func newServiceCommand(container *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "service",
		Short: "Manage the noctalia-shell user service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "install",
		Short: "Install the systemd user service for noctalia-shell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			container.UI.Section("Install Noctalia Service")
			return container.ServiceInstaller.Install(cmd.Context())
		},
	})
	return cmd
}
