package commands

import (
	"context"
	"fmt"

	"parceltrack/internal/core/domain/model/parcel"
)

// RetryFailedDeliveriesCommandHandler re-queues failed assignments for
// another run. The parcel stays OutForDelivery across failed attempts, so
// only the assignment state changes; an audit event records the re-dispatch.
type RetryFailedDeliveriesCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewRetryFailedDeliveriesCommandHandler creates a handler for delivery retries.
func NewRetryFailedDeliveriesCommandHandler(
	uowFactory DeliveryUoWFactory,
) RetryFailedDeliveriesCommandHandler {
	return RetryFailedDeliveriesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle re-dispatches every failed assignment still under the attempt
// budget. Returns the number of assignments re-queued.
func (h RetryFailedDeliveriesCommandHandler) Handle(
	ctx context.Context,
	cmd RetryFailedDeliveriesCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	eventRepo := uow.EventRepository()

	assignments, err := deliveryRepo.GetFailedAssignments(ctx, cmd.MaxAttempts())
	if err != nil {
		return 0, err
	}
	if len(assignments) == 0 {
		return 0, uow.Commit(ctx)
	}

	for _, assignment := range assignments {
		if err = assignment.Dispatch(); err != nil {
			return 0, err
		}
		if err = deliveryRepo.UpdateAssignment(ctx, assignment); err != nil {
			return 0, err
		}

		note := fmt.Sprintf("Out for delivery, attempt %d", assignment.AttemptCount()+1)
		event, eventErr := parcel.NewEvent(
			assignment.ParcelID(), parcel.EventOutForDelivery, parcel.OutForDelivery,
			cmd.ActorID(), note, parcel.ContainmentNone, nil,
		)
		if eventErr != nil {
			return 0, eventErr
		}
		if err = eventRepo.Append(ctx, event); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(assignments), nil
}
