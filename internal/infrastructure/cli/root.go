// Package cli wires the cobra command tree over the application services.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/noctalia-dev/noctalia-cli/internal/app"
	"github.com/noctalia-dev/noctalia-cli/internal/version"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}

	root := &cobra.Command{
		Use:     "noctalia",
		Short:   "Noctalia CLI",
		Long:    "A simple CLI for installing and updating Noctalia components.",
		Version: version.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newInstallCommand(container))
	root.AddCommand(newUpdateCommand(container))
	root.AddCommand(newRunCommand(container))
	root.AddCommand(newIPCCommand(container))
	root.AddCommand(newServiceCommand(container))
	root.AddCommand(newHistoryCommand(container))
	return root, nil
}
