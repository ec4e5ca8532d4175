package commands

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/services"
)

// CreateOrderParcelsCommandHandler turns intake line items into parcels. One
// contiguous code block is reserved for the whole manifest, so a partial
// intake never leaks codes: the reservation rolls back with everything else.
type CreateOrderParcelsCommandHandler struct {
	uowFactory IntakeUoWFactory
}

// NewCreateOrderParcelsCommandHandler creates a handler for order intake.
func NewCreateOrderParcelsCommandHandler(uowFactory IntakeUoWFactory) CreateOrderParcelsCommandHandler {
	return CreateOrderParcelsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the intake command and returns the issued tracking codes
// in item order.
func (h CreateOrderParcelsCommandHandler) Handle(
	ctx context.Context,
	cmd CreateOrderParcelsCommand,
) ([]string, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	parcelRepo := uow.ParcelRepository()
	eventRepo := uow.EventRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	generator := services.NewCodeGenerator(services.NewRetryingReserver(uow.CounterRepository()))
	codes, err := generator.Issue(
		ctx,
		services.TrackingCodePrefix,
		aggregate.Service().Code(),
		aggregate.AgencyID(),
		cmd.AgencyCode(),
		len(cmd.Items()),
	)
	if err != nil {
		return nil, err
	}

	orderID := cmd.OrderID()
	for i, item := range cmd.Items() {
		p, err := parcel.NewParcel(
			kernel.NewUUID(),
			codes[i],
			item.Description,
			item.Weight,
			aggregate.Service(),
			aggregate.AgencyID(),
			&orderID,
		)
		if err != nil {
			return nil, err
		}
		if err = parcelRepo.Add(ctx, p); err != nil {
			return nil, err
		}

		event, err := parcel.NewEvent(
			p.ID(), parcel.EventCreated, p.Status(), cmd.ActorID(),
			"Received at agency", parcel.ContainmentNone, nil,
		)
		if err != nil {
			return nil, err
		}
		if err = eventRepo.Append(ctx, event); err != nil {
			return nil, err
		}
	}

	if err = aggregate.AddParcels(len(cmd.Items())); err != nil {
		return nil, err
	}
	statuses, err := parcelRepo.GetOrderStatuses(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err = aggregate.SetCompositeStatus(services.ReduceOrderStatus(statuses)); err != nil {
		return nil, err
	}
	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return codes, nil
}
