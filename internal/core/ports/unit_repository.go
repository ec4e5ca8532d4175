package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/unit"
)

// UnitRepository defines the persistence contract for containment units and
// warehouses. Pallets, dispatches and transport units are stored as separate
// aggregates; the repository exposes one method pair per kind because their
// state machines do not share a common persisted shape.
type UnitRepository interface {
	AddPallet(ctx context.Context, aggregate *unit.Pallet) error
	UpdatePallet(ctx context.Context, aggregate *unit.Pallet) error
	GetPallet(ctx context.Context, id kernel.UUID) (*unit.Pallet, error)

	AddDispatch(ctx context.Context, aggregate *unit.Dispatch) error
	UpdateDispatch(ctx context.Context, aggregate *unit.Dispatch) error
	GetDispatch(ctx context.Context, id kernel.UUID) (*unit.Dispatch, error)

	// GetPalletsByDispatch retrieves the sealed pallets attached to a
	// dispatch.
	GetPalletsByDispatch(ctx context.Context, dispatchID kernel.UUID) ([]*unit.Pallet, error)

	AddTransportUnit(ctx context.Context, aggregate *unit.TransportUnit) error
	UpdateTransportUnit(ctx context.Context, aggregate *unit.TransportUnit) error
	GetTransportUnit(ctx context.Context, id kernel.UUID) (*unit.TransportUnit, error)

	AddWarehouse(ctx context.Context, aggregate *unit.Warehouse) error
	UpdateWarehouse(ctx context.Context, aggregate *unit.Warehouse) error
	GetWarehouse(ctx context.Context, id kernel.UUID) (*unit.Warehouse, error)
}
