// Package ports defines repository interfaces for the parcel-tracking domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
type ParcelRepository interface {
	// Add persists a new parcel aggregate to storage.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel by its surrogate identifier.
	// Soft-deleted parcels are not returned.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetByTrackingCode retrieves a parcel by its tracking code. This is the
	// lookup every transfer operation starts from. Soft-deleted parcels are
	// not returned.
	GetByTrackingCode(ctx context.Context, code string) (*parcel.Parcel, error)

	// GetByOrder retrieves all live parcels belonging to an order.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*parcel.Parcel, error)

	// GetByUnit retrieves all parcels currently attached to a containment
	// unit.
	GetByUnit(ctx context.Context, kind parcel.ContainmentKind, unitID kernel.UUID) ([]*parcel.Parcel, error)

	// GetOrderStatuses returns the statuses of an order's live parcels,
	// the input to the order-status reduction.
	GetOrderStatuses(ctx context.Context, orderID kernel.UUID) ([]parcel.Status, error)
}
