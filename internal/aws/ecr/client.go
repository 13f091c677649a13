package ecr

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsecr "github.com/aws/aws-sdk-go-v2/service/ecr"

	"tasnim.dev/aws-reports/internal/log"
)

// ErrRepositoryRequired is returned before any API call when no repository name is given.
var ErrRepositoryRequired = errors.New("repository name is required")

type ECRAPI interface {
	DescribeImages(ctx context.Context, params *awsecr.DescribeImagesInput, optFns ...func(*awsecr.Options)) (*awsecr.DescribeImagesOutput, error)
}

type Client struct {
	api ECRAPI
}

func NewClient(api ECRAPI) *Client {
	return &Client{api: api}
}

// ListImages returns every image in repoName in the order the service reports them.
func (c *Client) ListImages(ctx context.Context, repoName string) ([]ECRImage, error) {
	if strings.TrimSpace(repoName) == "" {
		return nil, ErrRepositoryRequired
	}

	var images []ECRImage
	var nextToken *string

	for {
		out, err := c.api.DescribeImages(ctx, &awsecr.DescribeImagesInput{
			RepositoryName: aws.String(repoName),
			NextToken:      nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("DescribeImages(%s): %w", repoName, err)
		}
		log.Tracef("DescribeImages(%s): %d images", repoName, len(out.ImageDetails))

		for _, img := range out.ImageDetails {
			var pushedAt time.Time
			if img.ImagePushedAt != nil {
				pushedAt = *img.ImagePushedAt
			}
			images = append(images, ECRImage{
				Digest:   aws.ToString(img.ImageDigest),
				Tags:     img.ImageTags,
				PushedAt: pushedAt,
			})
		}

		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}

	return images, nil
}
