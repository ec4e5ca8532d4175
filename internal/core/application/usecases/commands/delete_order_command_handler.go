package commands

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/unit"
)

// DeleteOrderCommandHandler soft-deletes an order and all of its parcels.
// Any parcel still attached to a unit blocks the whole deletion, so the
// unit's aggregates can never drift. Parcels held in warehouse custody are
// released before deletion, keeping the warehouse aggregates in step.
type DeleteOrderCommandHandler struct {
	uowFactory TransferUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory TransferUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()
	unitRepo := uow.UnitRepository()
	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	parcels, err := parcelRepo.GetByOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	warehouses := make(map[kernel.UUID]*unit.Warehouse)
	for _, target := range parcels {
		if whID := target.WarehouseID(); whID != nil {
			warehouse, ok := warehouses[*whID]
			if !ok {
				if warehouse, err = unitRepo.GetWarehouse(ctx, *whID); err != nil {
					return err
				}
				warehouses[*whID] = warehouse
			}
			if err = warehouse.ReleaseCustody(target); err != nil {
				return err
			}
		}
		if err = target.SoftDelete(); err != nil {
			return err
		}
		if err = parcelRepo.Update(ctx, target); err != nil {
			return err
		}
	}
	for _, warehouse := range warehouses {
		if err = unitRepo.UpdateWarehouse(ctx, warehouse); err != nil {
			return err
		}
	}

	if err = aggregate.SoftDelete(); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
