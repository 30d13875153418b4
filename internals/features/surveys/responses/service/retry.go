// file: internals/features/surveys/responses/service/retry.go
package service

import (
	"context"
	"errors"
	"time"
)

const (
	maxStoreAttempts  = 3
	retryBaseInterval = 50 * time.Millisecond
)

// withRetry runs op, retrying TransientStoreError with doubling backoff up to
// maxStoreAttempts. Any other error (including taxonomy errors) returns
// immediately.
func withRetry(ctx context.Context, op func() error) error {
	backoff := retryBaseInterval
	for attempt := 1; ; attempt++ {
		err := op()
		var te *TransientStoreError
		if err == nil || !errors.As(err, &te) || attempt >= maxStoreAttempts {
			return err
		}
		select {
		case <-ctx.Done():
			return &TransientStoreError{Err: ctx.Err()}
		case <-time.After(backoff):
		}
		backoff *= 2
	}
}
