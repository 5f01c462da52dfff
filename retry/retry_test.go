package retry

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type statusError struct {
	code int
}

func (e *statusError) Error() string   { return "api error" }
func (e *statusError) StatusCode() int { return e.code }

func TestRetryExhaustsAttempts(t *testing.T) {
	ctx := context.Background()
	count := 0
	err := Do(ctx, func() error {
		count++
		return errors.New("test error")
	}, WithMaxRetries(3), WithBaseWait(time.Millisecond*20))
	assert.Error(t, err)
	assert.Equal(t, "test error", err.Error())
	assert.Equal(t, 3, count)
}

func TestRetrySucceedsAfterFailure(t *testing.T) {
	ctx := context.Background()
	count := 0
	err := Do(ctx, func() error {
		count++
		if count < 2 {
			return errors.New("transient")
		}
		return nil
	}, WithMaxRetries(3), WithBaseWait(time.Millisecond))
	assert.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRetryStopsOnNonRetryableStatus(t *testing.T) {
	ctx := context.Background()
	count := 0
	err := Do(ctx, func() error {
		count++
		return &statusError{code: 401}
	}, WithMaxRetries(3), WithBaseWait(time.Millisecond))
	assert.Error(t, err)
	assert.Equal(t, 1, count)
}

func TestRetryStopsOnWrappedNonRetryableStatus(t *testing.T) {
	ctx := context.Background()
	count := 0
	err := Do(ctx, func() error {
		count++
		return fmt.Errorf("error generating content: %w", &statusError{code: 401})
	}, WithMaxRetries(3), WithBaseWait(time.Millisecond))
	assert.Error(t, err)
	assert.Equal(t, 1, count)
}

func TestRetryRetriesWrappedRateLimit(t *testing.T) {
	ctx := context.Background()
	count := 0
	err := Do(ctx, func() error {
		count++
		return fmt.Errorf("error generating content: %w", &statusError{code: 429})
	}, WithMaxRetries(2), WithBaseWait(time.Millisecond))
	assert.Error(t, err)
	assert.Equal(t, 2, count)
}

func TestRetryRetriesRateLimit(t *testing.T) {
	ctx := context.Background()
	count := 0
	err := Do(ctx, func() error {
		count++
		return &statusError{code: 429}
	}, WithMaxRetries(2), WithBaseWait(time.Millisecond))
	assert.Error(t, err)
	assert.Equal(t, 2, count)
}

func TestShouldRetry(t *testing.T) {
	assert.True(t, ShouldRetry(429))
	assert.True(t, ShouldRetry(503))
	assert.True(t, ShouldRetry(504))
	assert.False(t, ShouldRetry(400))
	assert.False(t, ShouldRetry(500))
}

func TestRetryContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	count := 0
	err := Do(ctx, func() error {
		count++
		return errors.New("transient")
	}, WithMaxRetries(3), WithBaseWait(time.Millisecond*20))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, count)
}
