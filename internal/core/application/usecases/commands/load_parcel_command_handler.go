package commands

import (
	"context"
	"fmt"

	"parceltrack/internal/core/domain/model/parcel"
)

// LoadParcelCommandHandler executes the containment transfer protocol for a
// single parcel. Preconditions are checked before any write; the parcel
// update, the unit aggregate update, the event append and the order
// recomputation then commit as one transaction, touched in that fixed order.
// Loading a parcel out of warehouse custody settles the warehouse aggregates
// inside the same transaction.
type LoadParcelCommandHandler struct {
	uowFactory TransferUoWFactory
}

// NewLoadParcelCommandHandler creates a handler for single-parcel loads.
func NewLoadParcelCommandHandler(uowFactory TransferUoWFactory) LoadParcelCommandHandler {
	return LoadParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the load command. Returns the typed precondition failure
// untouched when the parcel or unit rejects the transfer.
func (h LoadParcelCommandHandler) Handle(ctx context.Context, cmd LoadParcelCommand) error {
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

	target, err := parcelRepo.GetByTrackingCode(ctx, cmd.TrackingCode())
	if err != nil {
		return err
	}

	containment, saveUnit, err := resolveContainment(ctx, unitRepo, cmd.UnitKind(), cmd.UnitID())
	if err != nil {
		return err
	}

	eventType, err := containment.Accept(target)
	if err != nil {
		return err
	}

	if whID := target.WarehouseID(); whID != nil {
		warehouse, whErr := unitRepo.GetWarehouse(ctx, *whID)
		if whErr != nil {
			return whErr
		}
		if err = warehouse.ReleaseCustody(target); err != nil {
			return err
		}
		if err = unitRepo.UpdateWarehouse(ctx, warehouse); err != nil {
			return err
		}
	}

	if err = parcelRepo.Update(ctx, target); err != nil {
		return err
	}
	if err = saveUnit(ctx); err != nil {
		return err
	}

	unitID := containment.ID()
	event, err := parcel.NewEvent(
		target.ID(), eventType, target.Status(), cmd.ActorID(),
		fmt.Sprintf("Loaded in %s %s", containment.Kind(), containment.Number()),
		containment.Kind(), &unitID,
	)
	if err != nil {
		return err
	}
	if err = uow.EventRepository().Append(ctx, event); err != nil {
		return err
	}

	if err = recomputeOrderStatus(ctx, parcelRepo, uow.OrderRepository(), target.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
