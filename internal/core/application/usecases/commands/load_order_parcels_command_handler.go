package commands

import (
	"context"
	"fmt"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/unit"
)

// BulkResult reports the outcome of a bulk transfer: how many parcels moved
// and how many were skipped over a failed precondition. Skipped parcels are
// counted, never silently lost.
type BulkResult struct {
	Loaded  int
	Skipped int
}

// LoadOrderParcelsCommandHandler loads every eligible parcel of an order
// into one unit inside a single transaction. Parcels failing a precondition
// are skipped and counted; a mutation-time failure aborts the whole batch.
// The order's composite status is recomputed once at the end.
type LoadOrderParcelsCommandHandler struct {
	uowFactory TransferUoWFactory
}

// NewLoadOrderParcelsCommandHandler creates a handler for bulk order loads.
func NewLoadOrderParcelsCommandHandler(uowFactory TransferUoWFactory) LoadOrderParcelsCommandHandler {
	return LoadOrderParcelsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the bulk load command.
func (h LoadOrderParcelsCommandHandler) Handle(
	ctx context.Context,
	cmd LoadOrderParcelsCommand,
) (BulkResult, error) {
	if err := cmd.Validate(); err != nil {
		return BulkResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return BulkResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()
	eventRepo := uow.EventRepository()
	unitRepo := uow.UnitRepository()

	containment, saveUnit, err := resolveContainment(ctx, unitRepo, cmd.UnitKind(), cmd.UnitID())
	if err != nil {
		return BulkResult{}, err
	}

	parcels, err := parcelRepo.GetByOrder(ctx, cmd.OrderID())
	if err != nil {
		return BulkResult{}, err
	}

	var result BulkResult
	warehouses := make(map[kernel.UUID]*unit.Warehouse)
	for _, target := range parcels {
		if err = containment.CanAccept(target); err != nil {
			result.Skipped++
			continue
		}

		eventType, err := containment.Accept(target)
		if err != nil {
			return BulkResult{}, err
		}
		if whID := target.WarehouseID(); whID != nil {
			warehouse, ok := warehouses[*whID]
			if !ok {
				if warehouse, err = unitRepo.GetWarehouse(ctx, *whID); err != nil {
					return BulkResult{}, err
				}
				warehouses[*whID] = warehouse
			}
			if err = warehouse.ReleaseCustody(target); err != nil {
				return BulkResult{}, err
			}
		}
		if err = parcelRepo.Update(ctx, target); err != nil {
			return BulkResult{}, err
		}

		unitID := containment.ID()
		event, err := parcel.NewEvent(
			target.ID(), eventType, target.Status(), cmd.ActorID(),
			fmt.Sprintf("Loaded in %s %s", containment.Kind(), containment.Number()),
			containment.Kind(), &unitID,
		)
		if err != nil {
			return BulkResult{}, err
		}
		if err = eventRepo.Append(ctx, event); err != nil {
			return BulkResult{}, err
		}
		result.Loaded++
	}

	if result.Loaded > 0 {
		if err = saveUnit(ctx); err != nil {
			return BulkResult{}, err
		}
		for _, warehouse := range warehouses {
			if err = unitRepo.UpdateWarehouse(ctx, warehouse); err != nil {
				return BulkResult{}, err
			}
		}
		orderID := cmd.OrderID()
		if err = recomputeOrderStatus(ctx, parcelRepo, uow.OrderRepository(), &orderID); err != nil {
			return BulkResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return BulkResult{}, err
	}

	return result, nil
}
