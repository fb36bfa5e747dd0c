package helper

import (
	"context"
	"time"
)

// RetryTransient runs fn up to 1+retries times with a doubling backoff,
// retrying only when shouldRetry reports the error as transient. Context
// cancellation (caller gave up) is never retried.
func RetryTransient(ctx context.Context, retries int, backoff time.Duration, shouldRetry func(error) bool, fn func() error) error {
	var err error
	for attempt := 0; ; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if attempt >= retries || shouldRetry == nil || !shouldRetry(err) {
			return err
		}
		select {
		case <-time.After(backoff << attempt):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
