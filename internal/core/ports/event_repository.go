package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
)

// EventRepository defines the persistence contract for the append-only
// parcel event trail. Events are never updated or deleted.
type EventRepository interface {
	// Append stores a new event and assigns its store identifier.
	Append(ctx context.Context, event *parcel.Event) error

	// GetByParcel retrieves a parcel's events ordered by creation time.
	GetByParcel(ctx context.Context, parcelID kernel.UUID) ([]*parcel.Event, error)
}
