package aws

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// DescribeError renders SDK failures as "Code: message" while keeping the
// operation context callers wrapped around them. Other errors pass through.
func DescribeError(err error) string {
	if err == nil {
		return ""
	}
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return err.Error()
	}
	var opErr *smithy.OperationError
	if errors.As(err, &opErr) {
		return fmt.Sprintf("%s %s: %s: %s", opErr.Service(), opErr.Operation(), apiErr.ErrorCode(), apiErr.ErrorMessage())
	}
	return fmt.Sprintf("%s: %s", apiErr.ErrorCode(), apiErr.ErrorMessage())
}

// IsAccessDenied reports whether err carries an AccessDenied-style API error code.
func IsAccessDenied(err error) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.ErrorCode() {
	case "AccessDenied", "AccessDeniedException", "UnauthorizedOperation":
		return true
	}
	return false
}
