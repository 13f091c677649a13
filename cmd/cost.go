package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"tasnim.dev/aws-reports/internal/report"
)

func NewCostCmd(newClient ClientFactory) *cobra.Command {
	var flags reportFlags

	cmd := &cobra.Command{
		Use:   "cost",
		Short: "Show daily unblended cost for the trailing week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			s, err := flags.resolve()
			if err != nil {
				return err
			}

			ctx := context.Background()
			client, err := newClients(ctx, newClient, s)
			if err != nil {
				return err
			}

			window := client.Cost.CurrentWindow()
			days, err := client.Cost.FetchDailyCosts(ctx, window)
			if err != nil {
				return err
			}

			return report.Cost(cmd.OutOrStdout(), s.format, window, days)
		},
	}

	flags.register(cmd)

	return cmd
}
