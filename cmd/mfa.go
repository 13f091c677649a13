package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"tasnim.dev/aws-reports/internal/log"
	"tasnim.dev/aws-reports/internal/report"
)

func NewMFACmd(newClient ClientFactory) *cobra.Command {
	var flags reportFlags

	cmd := &cobra.Command{
		Use:   "mfa",
		Short: "List IAM users without an MFA device",
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

			users, err := client.IAM.UsersWithoutMFA(ctx)
			if err != nil {
				return err
			}
			log.Debugf("%d users without MFA", len(users))

			return report.MFA(cmd.OutOrStdout(), s.format, users)
		},
	}

	flags.register(cmd)

	return cmd
}
