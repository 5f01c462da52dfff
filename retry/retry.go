// Package retry provides bounded retry with exponential backoff for
// outbound provider calls.
package retry

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"net/http"
	"time"
)

var (
	DefaultMaxRetries = 3
	DefaultBaseWait   = 1 * time.Second
)

// Option configures a retried call.
type Option func(*config)

type config struct {
	maxRetries int
	baseWait   time.Duration
}

// WithMaxRetries sets the maximum number of attempts.
func WithMaxRetries(maxRetries int) Option {
	return func(c *config) {
		c.maxRetries = maxRetries
	}
}

// WithBaseWait sets the base wait duration used for backoff.
func WithBaseWait(baseWait time.Duration) Option {
	return func(c *config) {
		c.baseWait = baseWait
	}
}

// Do executes the given function, retrying with exponential backoff and
// jitter. Errors implementing APIError are only retried when their status
// code indicates a transient condition.
func Do(ctx context.Context, f func() error, opts ...Option) error {
	c := &config{
		maxRetries: DefaultMaxRetries,
		baseWait:   DefaultBaseWait,
	}
	for _, opt := range opts {
		opt(c)
	}

	var lastError error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(float64(c.baseWait) * math.Pow(2, float64(attempt-1)))
			jitter := time.Duration(rand.Float64() * float64(backoff) * 0.1)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff + jitter):
			}
		}
		if err := f(); err != nil {
			lastError = err
			var apiErr APIError
			if errors.As(err, &apiErr) && !ShouldRetry(apiErr.StatusCode()) {
				return err
			}
			continue
		}
		return nil
	}
	return lastError
}

// ShouldRetry determines if the given status code should trigger a retry
func ShouldRetry(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || // 429
		statusCode == http.StatusServiceUnavailable || // 503
		statusCode == http.StatusGatewayTimeout // 504
}

// APIError interface for errors that contain HTTP status codes
type APIError interface {
	error
	StatusCode() int
}
