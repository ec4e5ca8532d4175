package commands

import (
	"context"
	"fmt"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/unit"
)

// ChangeDispatchStatusCommandHandler advances a dispatch's status. Departing
// cascades an in-transit status to every parcel; receiving detaches them all
// and hands custody to the receiving warehouse.
type ChangeDispatchStatusCommandHandler struct {
	uowFactory TransferUoWFactory
}

// NewChangeDispatchStatusCommandHandler creates a handler for dispatch
// status changes.
func NewChangeDispatchStatusCommandHandler(
	uowFactory TransferUoWFactory,
) ChangeDispatchStatusCommandHandler {
	return ChangeDispatchStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch status command.
func (h ChangeDispatchStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeDispatchStatusCommand,
) error {
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
	eventRepo := uow.EventRepository()

	dispatch, err := unitRepo.GetDispatch(ctx, cmd.DispatchID())
	if err != nil {
		return err
	}

	var warehouse *unit.Warehouse
	if cmd.Status() == unit.DispatchReceived {
		warehouse, err = unitRepo.GetWarehouse(ctx, *cmd.WarehouseID())
		if err != nil {
			return err
		}
	}

	if err = dispatch.Advance(cmd.Status()); err != nil {
		return err
	}

	parcels, err := parcelRepo.GetByUnit(ctx, parcel.ContainmentDispatch, cmd.DispatchID())
	if err != nil {
		return err
	}

	cascadeStatus, eventType, hasCascade := dispatch.CascadeStatus(cmd.Status())
	affectedOrders := make(map[kernel.UUID]struct{})
	for _, target := range parcels {
		switch {
		case cmd.Status() == unit.DispatchReceived:
			if err = dispatch.ReleaseReceived(target); err != nil {
				return err
			}
			if err = warehouse.TakeCustody(target); err != nil {
				return err
			}
			event, eventErr := parcel.NewEvent(
				target.ID(), eventType, target.Status(), cmd.ActorID(),
				fmt.Sprintf("Received in warehouse %s from dispatch %s",
					warehouse.Number(), dispatch.Number()),
				parcel.ContainmentNone, nil,
			)
			if eventErr != nil {
				return eventErr
			}
			if err = eventRepo.Append(ctx, event); err != nil {
				return err
			}
		case hasCascade:
			if err = target.ApplyCascade(cascadeStatus,
				fmt.Sprintf("Dispatch %s is %s", dispatch.Number(), cmd.Status())); err != nil {
				return err
			}
			dispatchID := dispatch.ID()
			event, eventErr := parcel.NewEvent(
				target.ID(), eventType, target.Status(), cmd.ActorID(),
				fmt.Sprintf("Dispatch %s is %s", dispatch.Number(), cmd.Status()),
				parcel.ContainmentDispatch, &dispatchID,
			)
			if eventErr != nil {
				return eventErr
			}
			if err = eventRepo.Append(ctx, event); err != nil {
				return err
			}
		default:
			continue
		}

		if err = parcelRepo.Update(ctx, target); err != nil {
			return err
		}
		if target.OrderID() != nil {
			affectedOrders[*target.OrderID()] = struct{}{}
		}
	}

	if err = unitRepo.UpdateDispatch(ctx, dispatch); err != nil {
		return err
	}
	if warehouse != nil {
		if err = unitRepo.UpdateWarehouse(ctx, warehouse); err != nil {
			return err
		}
	}
	if err = recomputeOrderStatuses(ctx, parcelRepo, uow.OrderRepository(), affectedOrders); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
