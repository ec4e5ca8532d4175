package ports

import (
	"context"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
)

// CounterRepository defines the contract for the per-owner daily sequence
// counters behind tracking-code issuance.
type CounterRepository interface {
	// Reserve atomically increments the counter for (ownerID, date) by
	// quantity, creating the row at quantity if absent, and returns the
	// post-increment value. The reserved block is the contiguous range
	// [value-quantity+1, value]. Concurrent reservations for the same key
	// serialize on the counter row; different owners or days never contend.
	Reserve(ctx context.Context, ownerID kernel.UUID, date time.Time, quantity int64) (int64, error)
}
