package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/guard"
)

var ErrLoadOrderParcelsCommandIsNotConstructed = errors.New(
	"LoadOrderParcelsCommand must be created via NewLoadOrderParcelsCommand constructor",
)

// LoadOrderParcelsCommand represents a bulk request to load every eligible
// parcel of an order into one containment unit.
type LoadOrderParcelsCommand struct { //nolint:recvcheck //using for validation
	unitKind parcel.ContainmentKind
	unitID   kernel.UUID
	orderID  kernel.UUID
	actorID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewLoadOrderParcelsCommand creates a bulk load command for an order.
func NewLoadOrderParcelsCommand(
	unitKind parcel.ContainmentKind,
	unitID kernel.UUID,
	orderID kernel.UUID,
	actorID kernel.UUID,
) (LoadOrderParcelsCommand, error) {
	cmd := LoadOrderParcelsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUnitKind(unitKind),
		cmd.setUnitID(unitID),
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
	); err != nil {
		return LoadOrderParcelsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LoadOrderParcelsCommand) Validate() error {
	return c.guard.Validate(ErrLoadOrderParcelsCommandIsNotConstructed)
}

// UnitKind returns the kind of the destination unit.
func (c LoadOrderParcelsCommand) UnitKind() parcel.ContainmentKind {
	return c.unitKind
}

// UnitID returns the destination unit's identifier.
func (c LoadOrderParcelsCommand) UnitID() kernel.UUID {
	return c.unitID
}

// OrderID returns the order whose parcels are loaded.
func (c LoadOrderParcelsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the acting user.
func (c LoadOrderParcelsCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *LoadOrderParcelsCommand) setUnitKind(kind parcel.ContainmentKind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	c.unitKind = kind
	return nil
}

func (c *LoadOrderParcelsCommand) setUnitID(unitID kernel.UUID) error {
	if err := unitID.Validate(); err != nil {
		return err
	}
	c.unitID = unitID
	return nil
}

func (c *LoadOrderParcelsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *LoadOrderParcelsCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}
