package cli

import (
	"github.com/spf13/cobra"

	"github.com/noctalia-dev/noctalia-cli/internal/app"
	"github.com/noctalia-dev/noctalia-cli/internal/domain"
)

func newRunCommand(container *app.Container) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run noctalia-shell",
		Long:  "Start the noctalia-shell using quickshell (qs -c noctalia-shell).",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			container.UI.Section("Run Noctalia Shell")

			if !container.Store.InstalledWithEvidence(domain.ComponentShell) {
				return domain.ErrNotInstalled
			}

			var extraEnv []string
			if debug {
				container.UI.Info("Debug mode enabled (NOCTALIA_DEBUG=1)")
				extraEnv = []string{"NOCTALIA_DEBUG=1"}
			}

			container.UI.Step("Starting noctalia-shell")
			// The child inherits the terminal; its exit code propagates
			// through main's error mapping.
			return container.Runner.RunEnv(cmd.Context(), extraEnv, "qs", "-c", "noctalia-shell")
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "Run noctalia-shell with debug mode enabled (NOCTALIA_DEBUG=1)")
	return cmd
}
