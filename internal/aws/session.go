package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"tasnim.dev/aws-reports/internal/log"
)

// LoadConfig loads an AWS config with optional profile and region overrides.
// With neither set, the ambient chain (env, shared config, IMDS) applies.
func LoadConfig(ctx context.Context, profile, region string) (aws.Config, error) {
	opts := []func(*config.LoadOptions) error{}
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	log.Debugf("loading AWS config: profile=%q region=%q", profile, region)

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("loading AWS config: %w", err)
	}
	log.Debugf("AWS config loaded: region=%s", cfg.Region)
	return cfg, nil
}

// CallerIdentityAPI is the subset of the STS client we use.
type CallerIdentityAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// GetAccountID returns the AWS account ID for the given config.
// Returns empty string on error (non-fatal).
func GetAccountID(ctx context.Context, cfg aws.Config) string {
	return accountID(ctx, sts.NewFromConfig(cfg))
}

func accountID(ctx context.Context, api CallerIdentityAPI) string {
	out, err := api.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		log.Debugf("GetCallerIdentity: %v", err)
		return ""
	}
	return aws.ToString(out.Account)
}
