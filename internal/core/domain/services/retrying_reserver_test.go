package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyCounter fails the first n reservations, then succeeds.
type flakyCounter struct {
	failures int
	calls    int
	value    int64
}

func (f *flakyCounter) Reserve(_ context.Context, _ kernel.UUID, _ time.Time, quantity int64) (int64, error) {
	f.calls++
	if f.calls <= f.failures {
		return 0, errors.New("serialization failure")
	}
	f.value += quantity
	return f.value, nil
}

func TestRetryingReserver_Reserve(t *testing.T) {
	t.Run("succeeds after transient failures", func(t *testing.T) {
		counter := &flakyCounter{failures: 2}
		r := services.NewRetryingReserver(counter)

		last, err := r.Reserve(context.Background(), kernel.NewUUID(), time.Now(), 3)

		require.NoError(t, err)
		assert.Equal(t, int64(3), last)
		assert.Equal(t, 3, counter.calls)
	})

	t.Run("gives up after the attempt budget", func(t *testing.T) {
		counter := &flakyCounter{failures: 100}
		r := services.NewRetryingReserver(counter)

		_, err := r.Reserve(context.Background(), kernel.NewUUID(), time.Now(), 1)

		require.ErrorIs(t, err, errs.ErrSequenceExhausted)
		assert.Equal(t, 5, counter.calls)
	})

	t.Run("stops on context cancellation", func(t *testing.T) {
		counter := &flakyCounter{failures: 100}
		r := services.NewRetryingReserver(counter)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := r.Reserve(ctx, kernel.NewUUID(), time.Now(), 1)

		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, counter.calls)
	})
}
