package commands

import (
	"context"
	"fmt"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/order"
	"parceltrack/internal/core/domain/services"
)

// orderNumberPrefix starts every order number.
const orderNumberPrefix = "ORD"

// CreatedOrder identifies a freshly opened order.
type CreatedOrder struct {
	ID     kernel.UUID
	Number string
}

// CreateOrderCommandHandler opens an empty order, drawing its number from the
// agency's daily counter so concurrent intakes never collide.
type CreateOrderCommandHandler struct {
	uowFactory IntakeUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory IntakeUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the creation command and returns the new order's identity.
func (h CreateOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateOrderCommand,
) (CreatedOrder, error) {
	if err := cmd.Validate(); err != nil {
		return CreatedOrder{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreatedOrder{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := time.Now().UTC()
	reserver := services.NewRetryingReserver(uow.CounterRepository())
	seq, err := reserver.Reserve(ctx, cmd.AgencyID(), now, 1)
	if err != nil {
		return CreatedOrder{}, err
	}
	number := fmt.Sprintf("%s%s%05d", orderNumberPrefix, now.Format("060102"), seq)

	id := kernel.NewUUID()
	aggregate, err := order.NewOrder(id, number, cmd.AgencyID(), cmd.CustomerName(), cmd.Service())
	if err != nil {
		return CreatedOrder{}, err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return CreatedOrder{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreatedOrder{}, err
	}

	return CreatedOrder{ID: id, Number: number}, nil
}
