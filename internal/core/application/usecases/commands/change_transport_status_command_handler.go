package commands

import (
	"context"
	"fmt"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/unit"
	"parceltrack/internal/pkg/errs"
)

// ChangeTransportStatusCommandHandler advances a container or flight through
// its transport lifecycle. Most transitions cascade a status to every parcel
// on board; Unloading additionally detaches them into the destination
// warehouse's custody.
type ChangeTransportStatusCommandHandler struct {
	uowFactory TransferUoWFactory
}

// NewChangeTransportStatusCommandHandler creates a handler for transport
// status changes.
func NewChangeTransportStatusCommandHandler(
	uowFactory TransferUoWFactory,
) ChangeTransportStatusCommandHandler {
	return ChangeTransportStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transport status command.
func (h ChangeTransportStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeTransportStatusCommand,
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

	transport, err := unitRepo.GetTransportUnit(ctx, cmd.UnitID())
	if err != nil {
		return err
	}
	if transport.Kind() != cmd.UnitKind() {
		return errs.NewObjectNotFoundError(cmd.UnitKind().String(), cmd.UnitID())
	}

	var warehouse *unit.Warehouse
	if cmd.Status() == unit.TransportUnloading {
		warehouse, err = unitRepo.GetWarehouse(ctx, *cmd.WarehouseID())
		if err != nil {
			return err
		}
	}

	if err = transport.Advance(cmd.Status()); err != nil {
		return err
	}

	parcels, err := parcelRepo.GetByUnit(ctx, cmd.UnitKind(), cmd.UnitID())
	if err != nil {
		return err
	}

	cascadeStatus, eventType, hasCascade := transport.CascadeStatus(cmd.Status())
	affectedOrders := make(map[kernel.UUID]struct{})
	for _, target := range parcels {
		switch {
		case cmd.Status() == unit.TransportUnloading:
			if err = transport.Unload(target); err != nil {
				return err
			}
			if err = warehouse.TakeCustody(target); err != nil {
				return err
			}
			event, eventErr := parcel.NewEvent(
				target.ID(), eventType, target.Status(), cmd.ActorID(),
				fmt.Sprintf("Unloaded from %s %s into warehouse %s",
					transport.Kind(), transport.Number(), warehouse.Number()),
				parcel.ContainmentNone, nil,
			)
			if eventErr != nil {
				return eventErr
			}
			if err = eventRepo.Append(ctx, event); err != nil {
				return err
			}
		case hasCascade:
			detail := fmt.Sprintf("%s %s is %s",
				transport.Kind(), transport.Number(), cmd.Status())
			if err = target.ApplyCascade(cascadeStatus, detail); err != nil {
				return err
			}
			unitID := transport.ID()
			event, eventErr := parcel.NewEvent(
				target.ID(), eventType, target.Status(), cmd.ActorID(),
				detail, transport.Kind(), &unitID,
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

	if err = unitRepo.UpdateTransportUnit(ctx, transport); err != nil {
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
