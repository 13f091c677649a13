package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	awsclient "tasnim.dev/aws-reports/internal/aws"
	"tasnim.dev/aws-reports/internal/config"
	"tasnim.dev/aws-reports/internal/report"
)

// ClientFactory builds the AWS service clients for a command run.
type ClientFactory func(ctx context.Context, profile, region string) (*awsclient.ServiceClient, error)

type reportFlags struct {
	profile string
	region  string
	output  string
}

func (f *reportFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.profile, "profile", "p", "", "AWS profile to use")
	cmd.Flags().StringVarP(&f.region, "region", "r", "", "AWS region to use")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output format: text, json or yaml")
}

type runSettings struct {
	profile string
	region  string
	format  report.Format
}

// resolve merges flags over the config file defaults.
func (f *reportFlags) resolve() (runSettings, error) {
	cfg, err := config.Load()
	if err != nil {
		return runSettings{}, fmt.Errorf("loading config: %w", err)
	}
	profile, region := cfg.Merge(f.profile, f.region)

	format, err := report.ParseFormat(cfg.Output(f.output))
	if err != nil {
		return runSettings{}, err
	}
	return runSettings{profile: profile, region: region, format: format}, nil
}

func newClients(ctx context.Context, newClient ClientFactory, s runSettings) (*awsclient.ServiceClient, error) {
	if newClient == nil {
		newClient = awsclient.NewServiceClient
	}
	return newClient(ctx, s.profile, s.region)
}
