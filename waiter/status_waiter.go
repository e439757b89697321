package waiter

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

type StatusInfo interface {
	Status() string
}

type StatusResource interface {
	ID() string
}

type StatusFetcher func(context.Context, StatusResource) (StatusInfo, error)

// WaiterConfig describes a single wait. PollRetries is the number of consecutive fetch
// errors tolerated before the last error is returned. Zero durations and retries use the
// package defaults.
type WaiterConfig struct {
	Resource        StatusResource
	DesiredStatus   string
	FailureStatuses []string
	PollInterval    time.Duration
	PollTimeout     time.Duration
	PollRetries     int
	Logger          logrus.FieldLogger
}

const (
	defaultPollTimeout  = 10 * time.Minute
	defaultPollInterval = 5 * time.Second
	defaultPollRetries  = 3
	maxErrorBackoff     = time.Minute
)

// TimeoutError is returned when long polling times out. It matches context.DeadlineExceeded.
type TimeoutError struct {
	timeout    time.Duration
	resource   StatusResource
	lastStatus string
}

func (e TimeoutError) Error() string {
	return fmt.Sprintf("timed out after %s polling on resource %s", e.timeout, e.resource.ID())
}

func (e TimeoutError) Unwrap() error {
	return context.DeadlineExceeded
}

// LastStatus is the last status observed before the timeout, if any
func (e TimeoutError) LastStatus() string {
	return e.lastStatus
}

// UnexpectedStatusError is returned when the resource reaches a status it can never
// recover from
type UnexpectedStatusError struct {
	ResourceID    string
	Status        string
	DesiredStatus string
}

func (e UnexpectedStatusError) Error() string {
	return fmt.Sprintf("resource %s reached status %s while waiting for %s", e.ResourceID, e.Status, e.DesiredStatus)
}

// WaitForStatus polls the fetcher until the resource reports exactly the desired status
func WaitForStatus(ctx context.Context, fetch StatusFetcher, c WaiterConfig) (StatusInfo, error) {
	pollTimeout := c.PollTimeout
	if pollTimeout == 0 {
		pollTimeout = defaultPollTimeout
	}

	pollInterval := c.PollInterval
	if pollInterval == 0 {
		pollInterval = defaultPollInterval
	}

	pollRetries := c.PollRetries
	if pollRetries == 0 {
		pollRetries = defaultPollRetries
	}

	var logger logrus.FieldLogger = logrus.StandardLogger()
	if c.Logger != nil {
		logger = c.Logger
	}

	resourceID := c.Resource.ID()
	logger.Printf("waiting on %s to be desired status %s", resourceID, c.DesiredStatus)

	waitCtx, cancel := context.WithTimeout(ctx, pollTimeout)
	defer cancel()

	failures := 0
	lastStatus := ""

	stopped := func() error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		logger.Printf("timed out waiting for %s", resourceID)
		return TimeoutError{timeout: pollTimeout, resource: c.Resource, lastStatus: lastStatus}
	}

	for {
		delay := pollInterval

		info, err := fetchWithin(waitCtx, fetch, c.Resource)
		if err != nil {
			if waitCtx.Err() != nil {
				return nil, stopped()
			}

			failures++
			if failures > pollRetries {
				logger.Printf("giving up on %s after %d consecutive errors", resourceID, failures)
				return nil, err
			}

			delay = errorBackoff(pollInterval, failures)
			logger.Printf("describing %s failed (%d of %d), retrying in %s: %s", resourceID, failures, pollRetries, delay, err)
		} else {
			failures = 0

			status := info.Status()
			if status == c.DesiredStatus {
				logger.Printf("%s matches desired status %s", resourceID, c.DesiredStatus)
				return info, nil
			}

			for _, failureStatus := range c.FailureStatuses {
				if status == failureStatus {
					return nil, UnexpectedStatusError{ResourceID: resourceID, Status: status, DesiredStatus: c.DesiredStatus}
				}
			}

			if status != lastStatus {
				logger.Printf("%s status: %s", resourceID, status)
				lastStatus = status
			}
		}

		next := time.NewTimer(delay)
		select {
		case <-waitCtx.Done():
			next.Stop()
			return nil, stopped()
		case <-next.C:
		}
	}
}

type fetchResult struct {
	info StatusInfo
	err  error
}

// fetchWithin returns as soon as ctx is done, even if the fetcher ignores it
func fetchWithin(ctx context.Context, fetch StatusFetcher, resource StatusResource) (StatusInfo, error) {
	results := make(chan fetchResult, 1)
	go func() {
		info, err := fetch(ctx, resource)
		results <- fetchResult{info: info, err: err}
	}()

	select {
	case result := <-results:
		return result.info, result.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func errorBackoff(interval time.Duration, failures int) time.Duration {
	backoff := interval
	for i := 0; i < failures; i++ {
		backoff *= 2
		if backoff >= maxErrorBackoff {
			return maxErrorBackoff
		}
	}
	return backoff
}
