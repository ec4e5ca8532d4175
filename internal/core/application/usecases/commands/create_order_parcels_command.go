package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrCreateOrderParcelsCommandIsNotConstructed = errors.New(
		"CreateOrderParcelsCommand must be created via NewCreateOrderParcelsCommand constructor",
	)
	ErrItemsAreRequired     = errors.New("at least one item is required")
	ErrAgencyCodeIsRequired = errors.New("agency code is required")
)

// OrderItem is one line of an intake manifest: a parcel to be created.
type OrderItem struct {
	Description string
	Weight      kernel.Weight
}

// CreateOrderParcelsCommand represents an intake request: turn an order's
// line items into parcels with freshly issued tracking codes.
type CreateOrderParcelsCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	agencyCode string
	items      []OrderItem
	actorID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderParcelsCommand creates an intake command. The agency code is
// the short code embedded in issued tracking codes.
func NewCreateOrderParcelsCommand(
	orderID kernel.UUID,
	agencyCode string,
	items []OrderItem,
	actorID kernel.UUID,
) (CreateOrderParcelsCommand, error) {
	cmd := CreateOrderParcelsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAgencyCode(agencyCode),
		cmd.setItems(items),
		cmd.setActorID(actorID),
	); err != nil {
		return CreateOrderParcelsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderParcelsCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderParcelsCommandIsNotConstructed)
}

// OrderID returns the order receiving the parcels.
func (c CreateOrderParcelsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// AgencyCode returns the agency short code used in tracking codes.
func (c CreateOrderParcelsCommand) AgencyCode() string {
	return c.agencyCode
}

// Items returns the intake line items.
func (c CreateOrderParcelsCommand) Items() []OrderItem {
	return c.items
}

// ActorID returns the acting user.
func (c CreateOrderParcelsCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *CreateOrderParcelsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderParcelsCommand) setAgencyCode(agencyCode string) error {
	if agencyCode == "" {
		return ErrAgencyCodeIsRequired
	}
	c.agencyCode = agencyCode
	return nil
}

func (c *CreateOrderParcelsCommand) setItems(items []OrderItem) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	c.items = items
	return nil
}

func (c *CreateOrderParcelsCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}
