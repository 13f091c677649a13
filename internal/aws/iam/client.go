package iam

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsiam "github.com/aws/aws-sdk-go-v2/service/iam"

	"tasnim.dev/aws-reports/internal/log"
)

type IAMAPI interface {
	ListUsers(ctx context.Context, params *awsiam.ListUsersInput, optFns ...func(*awsiam.Options)) (*awsiam.ListUsersOutput, error)
	ListMFADevices(ctx context.Context, params *awsiam.ListMFADevicesInput, optFns ...func(*awsiam.Options)) (*awsiam.ListMFADevicesOutput, error)
}

type Client struct {
	api IAMAPI
}

func NewClient(api IAMAPI) *Client {
	return &Client{api: api}
}

// ListUsers returns every user name, draining all pages in service order.
func (c *Client) ListUsers(ctx context.Context) ([]string, error) {
	var users []string
	var marker *string

	for page := 1; ; page++ {
		out, err := c.api.ListUsers(ctx, &awsiam.ListUsersInput{
			Marker: marker,
		})
		if err != nil {
			return nil, fmt.Errorf("ListUsers: %w", err)
		}
		log.Tracef("ListUsers page %d: %d users", page, len(out.Users))

		for _, u := range out.Users {
			users = append(users, aws.ToString(u.UserName))
		}

		if !out.IsTruncated {
			break
		}
		marker = out.Marker
	}

	return users, nil
}

// ListMFADevices returns the number of MFA devices attached to userName.
func (c *Client) ListMFADevices(ctx context.Context, userName string) (int, error) {
	var count int
	var marker *string

	for {
		out, err := c.api.ListMFADevices(ctx, &awsiam.ListMFADevicesInput{
			UserName: aws.String(userName),
			Marker:   marker,
		})
		if err != nil {
			return 0, fmt.Errorf("ListMFADevices(%s): %w", userName, err)
		}

		count += len(out.MFADevices)

		if !out.IsTruncated {
			break
		}
		marker = out.Marker
	}

	return count, nil
}

// AuditUsers lists all users, then looks up MFA devices for each one.
// Any failure aborts the audit; no partial result is returned.
func (c *Client) AuditUsers(ctx context.Context) ([]IAMUser, error) {
	names, err := c.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	log.Debugf("auditing %d users", len(names))

	users := make([]IAMUser, 0, len(names))
	for _, name := range names {
		count, err := c.ListMFADevices(ctx, name)
		if err != nil {
			return nil, err
		}
		users = append(users, IAMUser{Name: name, MFADeviceCount: count})
	}
	return users, nil
}

// UsersWithoutMFA returns the names of users with zero MFA devices,
// in listing order.
func (c *Client) UsersWithoutMFA(ctx context.Context) ([]string, error) {
	users, err := c.AuditUsers(ctx)
	if err != nil {
		return nil, err
	}
	return WithoutMFA(users), nil
}

func WithoutMFA(users []IAMUser) []string {
	var names []string
	for _, u := range users {
		if !u.HasMFA() {
			names = append(names, u.Name)
		}
	}
	return names
}
