package cmd

import "github.com/spf13/cobra"

// NewRootCmd wires the report commands under one binary. A nil factory uses
// the ambient AWS credential chain.
func NewRootCmd(newClient ClientFactory) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "aws-reports",
		Short:         "AWS account reports: MFA audit, ECR images, weekly cost",
		SilenceErrors: true,
	}

	rootCmd.AddCommand(NewMFACmd(newClient))
	rootCmd.AddCommand(NewImagesCmd(newClient))
	rootCmd.AddCommand(NewCostCmd(newClient))

	return rootCmd
}
