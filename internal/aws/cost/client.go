package cost

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer/types"

	"tasnim.dev/aws-reports/internal/log"
	"tasnim.dev/aws-reports/internal/utils"
)

// CostExplorerAPI is the subset of the AWS Cost Explorer client we use.
type CostExplorerAPI interface {
	GetCostAndUsage(ctx context.Context, params *costexplorer.GetCostAndUsageInput, optFns ...func(*costexplorer.Options)) (*costexplorer.GetCostAndUsageOutput, error)
}

// Client wraps the AWS Cost Explorer API.
type Client struct {
	ce  CostExplorerAPI
	now func() time.Time // injectable for testing; defaults to time.Now
}

func NewClient(api CostExplorerAPI) *Client {
	return &Client{ce: api, now: time.Now}
}

// WeeklyWindow returns the seven days before now through now, formatted in
// now's own location. End is exclusive on the Cost Explorer side, so the
// current day is not billed into the result.
func WeeklyWindow(now time.Time) Window {
	return Window{
		Start: now.AddDate(0, 0, -7).Format(utils.DateOnly),
		End:   now.Format(utils.DateOnly),
	}
}

// CurrentWindow is the trailing-week window as of the client's clock.
func (c *Client) CurrentWindow() Window {
	return WeeklyWindow(c.now())
}

// FetchDailyCosts requests daily unblended cost for w and returns the
// buckets in the order received.
func (c *Client) FetchDailyCosts(ctx context.Context, w Window) ([]DailyCost, error) {
	log.Debugf("GetCostAndUsage window: start=%s end=%s", w.Start, w.End)

	var costs []DailyCost
	var nextToken *string

	for {
		out, err := c.ce.GetCostAndUsage(ctx, &costexplorer.GetCostAndUsageInput{
			TimePeriod: &types.DateInterval{
				Start: aws.String(w.Start),
				End:   aws.String(w.End),
			},
			Granularity:   types.GranularityDaily,
			Metrics:       []string{MetricUnblendedCost},
			NextPageToken: nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("GetCostAndUsage: %w", err)
		}

		for _, result := range out.ResultsByTime {
			var date string
			if result.TimePeriod != nil {
				date = aws.ToString(result.TimePeriod.Start)
			}
			mv := result.Total[MetricUnblendedCost]
			costs = append(costs, DailyCost{
				Date:   date,
				Amount: aws.ToString(mv.Amount),
				Unit:   aws.ToString(mv.Unit),
			})
		}

		if aws.ToString(out.NextPageToken) == "" {
			break
		}
		nextToken = out.NextPageToken
	}

	return costs, nil
}
