package commands

import (
	"context"
	"fmt"
	"time"

	"parceltrack/internal/core/domain/model/parcel"
)

// RecordDeliveryAttemptCommandHandler records a delivery attempt against the
// parcel's active assignment. Success finalizes the parcel and releases any
// remaining warehouse custody; failure keeps the assignment around for a
// retry.
type RecordDeliveryAttemptCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewRecordDeliveryAttemptCommandHandler creates a handler for delivery
// attempts.
func NewRecordDeliveryAttemptCommandHandler(
	uowFactory DeliveryUoWFactory,
) RecordDeliveryAttemptCommandHandler {
	return RecordDeliveryAttemptCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery attempt command.
func (h RecordDeliveryAttemptCommandHandler) Handle(
	ctx context.Context,
	cmd RecordDeliveryAttemptCommand,
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
	deliveryRepo := uow.DeliveryRepository()

	target, err := parcelRepo.GetByTrackingCode(ctx, cmd.TrackingCode())
	if err != nil {
		return err
	}
	assignment, err := deliveryRepo.GetAssignmentByParcel(ctx, target.ID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	var eventType parcel.EventType
	var note string
	if cmd.Delivered() {
		if err = assignment.RecordDelivered(cmd.RecipientName(), cmd.Note(), now); err != nil {
			return err
		}
		if whID := target.WarehouseID(); whID != nil {
			unitRepo := uow.UnitRepository()
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
		note = fmt.Sprintf("Delivered to %s", cmd.RecipientName())
		if err = target.MarkDelivered(note); err != nil {
			return err
		}
		eventType = parcel.EventDelivered
	} else {
		if err = assignment.RecordFailed(cmd.Note(), now); err != nil {
			return err
		}
		note = fmt.Sprintf("Delivery attempt failed: %s", cmd.Note())
		eventType = parcel.EventDeliveryAttempted
	}

	if err = deliveryRepo.UpdateAssignment(ctx, assignment); err != nil {
		return err
	}
	if err = parcelRepo.Update(ctx, target); err != nil {
		return err
	}

	event, err := parcel.NewEvent(
		target.ID(), eventType, target.Status(), cmd.ActorID(),
		note, parcel.ContainmentNone, nil,
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
