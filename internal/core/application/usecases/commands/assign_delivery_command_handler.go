package commands

import (
	"context"

	"parceltrack/internal/core/domain/model/delivery"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
)

// AssignDeliveryCommandHandler creates a delivery assignment for a parcel and
// sends it out for delivery. A parcel can only carry one active assignment;
// the storage layer enforces that with a unique index on the parcel.
type AssignDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewAssignDeliveryCommandHandler creates a handler for delivery assignments.
func NewAssignDeliveryCommandHandler(uowFactory DeliveryUoWFactory) AssignDeliveryCommandHandler {
	return AssignDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command.
func (h AssignDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd AssignDeliveryCommand,
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

	assignment, err := delivery.NewAssignment(
		kernel.NewUUID(), target.ID(), cmd.RouteID(), cmd.CourierID())
	if err != nil {
		return err
	}
	if cmd.RouteID() != nil {
		route, routeErr := deliveryRepo.GetRoute(ctx, *cmd.RouteID())
		if routeErr != nil {
			return routeErr
		}
		if routeErr = route.AddAssignment(); routeErr != nil {
			return routeErr
		}
		if routeErr = deliveryRepo.UpdateRoute(ctx, route); routeErr != nil {
			return routeErr
		}
	}

	if err = assignment.Dispatch(); err != nil {
		return err
	}
	if err = target.MarkOutForDelivery("Out for delivery"); err != nil {
		return err
	}

	if err = deliveryRepo.AddAssignment(ctx, assignment); err != nil {
		return err
	}
	if err = parcelRepo.Update(ctx, target); err != nil {
		return err
	}

	event, err := parcel.NewEvent(
		target.ID(), parcel.EventOutForDelivery, target.Status(), cmd.ActorID(),
		"Out for delivery", parcel.ContainmentNone, nil,
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
