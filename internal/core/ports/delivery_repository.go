package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/delivery"
	"parceltrack/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery routes
// and assignments. The store enforces at most one assignment per parcel with
// a unique index; Add surfaces a violation as a Conflict error.
type DeliveryRepository interface {
	AddRoute(ctx context.Context, aggregate *delivery.Route) error
	UpdateRoute(ctx context.Context, aggregate *delivery.Route) error
	GetRoute(ctx context.Context, id kernel.UUID) (*delivery.Route, error)

	AddAssignment(ctx context.Context, aggregate *delivery.Assignment) error
	UpdateAssignment(ctx context.Context, aggregate *delivery.Assignment) error
	GetAssignment(ctx context.Context, id kernel.UUID) (*delivery.Assignment, error)

	// GetAssignmentByParcel retrieves the assignment booked for a parcel.
	GetAssignmentByParcel(ctx context.Context, parcelID kernel.UUID) (*delivery.Assignment, error)

	// GetFailedAssignments retrieves Failed assignments with fewer than
	// maxAttempts attempts, the retry job's work queue.
	GetFailedAssignments(ctx context.Context, maxAttempts int) ([]*delivery.Assignment, error)
}
