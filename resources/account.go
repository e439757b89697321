package resources

import (
	"context"
	"errors"
)

// ErrAccountUnresolved is returned when neither the instance metadata service nor STS
// could tell which account the caller belongs to
var ErrAccountUnresolved = errors.New("unable to resolve the caller's AWS account")

// AccountDriver answers which account the caller and a given AMI belong to
//
//counterfeiter:generate . AccountDriver
type AccountDriver interface {
	CallerAccount(context.Context) (string, error)
	ImageOwner(ctx context.Context, amiID string) (string, error)
}
