package analyzer

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// retryPolicy defines the retry behavior for external tool invocations.
type retryPolicy struct {
	// maxRetries is the number of retry attempts after the initial call.
	maxRetries int

	// baseDelay is the initial delay before the first retry.
	baseDelay time.Duration

	// maxDelay caps the delay between retries.
	maxDelay time.Duration

	// useJitter randomizes delays to avoid synchronized retries.
	useJitter bool
}

// retry executes fn with exponential backoff. Context errors and
// timeouts are never retried; a timed-out tool is a failed analyzer, not
// a transient hiccup worth doubling the wall time for.
func retry(ctx context.Context, policy retryPolicy, fn func() error) error {
	var lastErr error

	maxAttempts := policy.maxRetries + 1
	for attempt := range maxAttempts {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if !isRetryable(err) {
			return err
		}

		if attempt < maxAttempts-1 {
			delay := backoff(attempt, policy.baseDelay, policy.maxDelay, policy.useJitter)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return lastErr
}

// backoff computes baseDelay * 2^attempt capped at maxDelay, with
// optional jitter between 0.5x and 1.5x.
func backoff(attempt int, baseDelay, maxDelay time.Duration, useJitter bool) time.Duration {
	if baseDelay <= 0 {
		baseDelay = 100 * time.Millisecond
	}
	if maxDelay <= 0 {
		maxDelay = 5 * time.Second
	}

	delay := baseDelay
	for range attempt {
		delay *= 2
		if delay > maxDelay {
			delay = maxDelay
			break
		}
	}

	if useJitter {
		delay = time.Duration(float64(delay) * (0.5 + rand.Float64()))
	}
	if delay > maxDelay {
		delay = maxDelay
	}

	return delay
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, errToolNotFound) || errors.Is(err, errToolTimeout) {
		return false
	}
	return true
}
