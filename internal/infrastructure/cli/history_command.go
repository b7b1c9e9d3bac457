package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/noctalia-dev/noctalia-cli/internal/app"
)

func newHistoryCommand(container *app.Container) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent install and update operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := container.Journal.Entries(limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				container.UI.Info("No recorded operations")
				return nil
			}
			w := cmd.OutOrStdout()
			for _, entry := range entries {
				fmt.Fprintf(w, "%s  %-7s %s/%s %s (%dms)\n",
					entry.Timestamp.Format("2006-01-02 15:04:05"),
					entry.Action,
					entry.Component,
					entry.Source,
					entry.Version,
					entry.DurationMS)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of entries to show")
	return cmd
}
