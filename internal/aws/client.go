package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
	"github.com/aws/aws-sdk-go-v2/service/iam"

	awscost "tasnim.dev/aws-reports/internal/aws/cost"
	awsecr "tasnim.dev/aws-reports/internal/aws/ecr"
	awsiam "tasnim.dev/aws-reports/internal/aws/iam"
	"tasnim.dev/aws-reports/internal/log"
)

// ServiceClient bundles the per-service wrappers used by the reports.
type ServiceClient struct {
	IAM  *awsiam.Client
	ECR  *awsecr.Client
	Cost *awscost.Client
}

func NewServiceClient(ctx context.Context, profile, region string) (*ServiceClient, error) {
	cfg, err := LoadConfig(ctx, profile, region)
	if err != nil {
		return nil, fmt.Errorf("initializing AWS client: %w", err)
	}

	if log.InfoEnabled() {
		log.Infof("using account %q in %s", GetAccountID(ctx, cfg), cfg.Region)
	}

	return &ServiceClient{
		IAM:  awsiam.NewClient(iam.NewFromConfig(cfg)),
		ECR:  awsecr.NewClient(ecr.NewFromConfig(cfg)),
		Cost: awscost.NewClient(costexplorer.NewFromConfig(cfg)),
	}, nil
}
