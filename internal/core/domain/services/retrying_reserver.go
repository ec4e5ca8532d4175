package services

import (
	"context"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

const (
	defaultReserveAttempts = 5
	reserveBackoffBase     = 10 * time.Millisecond
)

// RetryingReserver decorates a CounterReserver with a bounded retry budget.
// The atomic upsert itself never conflicts, but under serializable isolation
// or transient connection loss a reservation can still fail; those failures
// are safe to retry because a failed reservation issues nothing.
type RetryingReserver struct {
	inner    CounterReserver
	attempts int
	backoff  time.Duration
}

// NewRetryingReserver wraps the given reserver with the default retry budget.
func NewRetryingReserver(inner CounterReserver) RetryingReserver {
	return RetryingReserver{
		inner:    inner,
		attempts: defaultReserveAttempts,
		backoff:  reserveBackoffBase,
	}
}

// Reserve delegates to the wrapped reserver, retrying with exponential
// backoff. Context cancellation stops the retries immediately.
func (r RetryingReserver) Reserve(
	ctx context.Context,
	ownerID kernel.UUID,
	date time.Time,
	quantity int64,
) (int64, error) {
	var lastErr error
	delay := r.backoff
	for attempt := 1; attempt <= r.attempts; attempt++ {
		last, err := r.inner.Reserve(ctx, ownerID, date, quantity)
		if err == nil {
			return last, nil
		}
		lastErr = err

		if attempt == r.attempts {
			break
		}
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return 0, errs.NewSequenceExhaustedErrorWithCause("counter reservation", r.attempts, lastErr)
}
