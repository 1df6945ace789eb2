package repository

import (
	"context"
	"time"

	"artisanmarket/pkg/errors"
	"artisanmarket/pkg/logger"
)

const readAttempts = 3

// readWithRetry runs an idempotent read, retrying transient failures a small
// bounded number of times. Anything else surfaces immediately.
func readWithRetry(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	var err error
	for attempt := 1; attempt <= readAttempts; attempt++ {
		err = fn(ctx)
		if err == nil || !errors.IsTransient(err) {
			return err
		}

		logger.Warn("%s: transient failure on attempt %d/%d: %v", op, attempt, readAttempts, err)

		select {
		case <-ctx.Done():
			return errors.Transient(op+" cancelled while retrying", ctx.Err())
		case <-time.After(time.Duration(attempt) * 100 * time.Millisecond):
		}
	}
	return err
}
