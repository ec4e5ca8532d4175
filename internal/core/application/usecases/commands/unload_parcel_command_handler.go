package commands

import (
	"context"
	"fmt"

	"parceltrack/internal/core/domain/model/parcel"
)

// UnloadParcelCommandHandler executes the removal half of the containment
// transfer protocol. The removal event keeps a reference to the unit the
// parcel left, for audit continuity. A parcel removed from a container or
// flight goes back into warehouse custody, into the warehouse named by the
// command.
type UnloadParcelCommandHandler struct {
	uowFactory TransferUoWFactory
}

// NewUnloadParcelCommandHandler creates a handler for single-parcel removals.
func NewUnloadParcelCommandHandler(uowFactory TransferUoWFactory) UnloadParcelCommandHandler {
	return UnloadParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the unload command.
func (h UnloadParcelCommandHandler) Handle(ctx context.Context, cmd UnloadParcelCommand) error {
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

	eventType, err := containment.Release(target)
	if err != nil {
		return err
	}

	detail := fmt.Sprintf("Removed from %s %s", containment.Kind(), containment.Number())
	if cmd.WarehouseID() != nil {
		warehouse, whErr := unitRepo.GetWarehouse(ctx, *cmd.WarehouseID())
		if whErr != nil {
			return whErr
		}
		if err = warehouse.TakeCustody(target); err != nil {
			return err
		}
		if err = unitRepo.UpdateWarehouse(ctx, warehouse); err != nil {
			return err
		}
		detail = fmt.Sprintf("%s into warehouse %s", detail, warehouse.Number())
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
		detail,
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
