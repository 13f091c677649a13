package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	awsecr "tasnim.dev/aws-reports/internal/aws/ecr"
	"tasnim.dev/aws-reports/internal/report"
)

func NewImagesCmd(newClient ClientFactory) *cobra.Command {
	var flags reportFlags

	cmd := &cobra.Command{
		Use:   "images <repository>",
		Short: "Show tag, digest and push time for each image in an ECR repository",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return err
			}
			if strings.TrimSpace(args[0]) == "" {
				return awsecr.ErrRepositoryRequired
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			repo := args[0]

			s, err := flags.resolve()
			if err != nil {
				return err
			}

			ctx := context.Background()
			client, err := newClients(ctx, newClient, s)
			if err != nil {
				return err
			}

			images, err := client.ECR.ListImages(ctx, repo)
			if err != nil {
				return err
			}

			return report.Images(cmd.OutOrStdout(), s.format, repo, images)
		},
	}

	flags.register(cmd)

	return cmd
}
