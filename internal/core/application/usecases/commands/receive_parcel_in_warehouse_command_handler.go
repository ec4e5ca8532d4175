package commands

import (
	"context"
	"fmt"

	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"
)

// ReceiveParcelInWarehouseCommandHandler receives a loose parcel into a
// warehouse. The parcel must not be attached to any unit. A parcel already
// held by another warehouse is transferred: the previous warehouse releases
// custody in the same transaction.
type ReceiveParcelInWarehouseCommandHandler struct {
	uowFactory TransferUoWFactory
}

// NewReceiveParcelInWarehouseCommandHandler creates a handler for loose
// warehouse receipts.
func NewReceiveParcelInWarehouseCommandHandler(
	uowFactory TransferUoWFactory,
) ReceiveParcelInWarehouseCommandHandler {
	return ReceiveParcelInWarehouseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the warehouse receipt command.
func (h ReceiveParcelInWarehouseCommandHandler) Handle(
	ctx context.Context,
	cmd ReceiveParcelInWarehouseCommand,
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

	target, err := parcelRepo.GetByTrackingCode(ctx, cmd.TrackingCode())
	if err != nil {
		return err
	}
	warehouse, err := unitRepo.GetWarehouse(ctx, cmd.WarehouseID())
	if err != nil {
		return err
	}

	if prev := target.WarehouseID(); prev != nil {
		if prev.IsEqual(warehouse.ID()) {
			return errs.NewObjectAlreadyAttachedError("parcel", target.TrackingCode(),
				fmt.Sprintf("warehouse %s", warehouse.Number()))
		}
		previous, prevErr := unitRepo.GetWarehouse(ctx, *prev)
		if prevErr != nil {
			return prevErr
		}
		if err = previous.ReleaseCustody(target); err != nil {
			return err
		}
		if err = unitRepo.UpdateWarehouse(ctx, previous); err != nil {
			return err
		}
	}

	if err = warehouse.Receive(target); err != nil {
		return err
	}
	if err = parcelRepo.Update(ctx, target); err != nil {
		return err
	}
	if err = unitRepo.UpdateWarehouse(ctx, warehouse); err != nil {
		return err
	}

	event, err := parcel.NewEvent(
		target.ID(), parcel.EventReceivedInWarehouse, target.Status(), cmd.ActorID(),
		fmt.Sprintf("Received in warehouse %s", warehouse.Number()),
		parcel.ContainmentNone, nil,
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
