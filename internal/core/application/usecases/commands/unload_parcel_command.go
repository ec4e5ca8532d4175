package commands

import (
	"errors"
	"fmt"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrUnloadParcelCommandIsNotConstructed = errors.New(
	"UnloadParcelCommand must be created via NewUnloadParcelCommand constructor",
)

// UnloadParcelCommand represents a request to remove a parcel from a
// containment unit, the mirror of LoadParcelCommand. Removal is allowed only
// while the unit is still in an early, mutable status. Removing a parcel
// from a container or flight returns it to warehouse custody, so those kinds
// require the warehouse that takes the parcel back.
type UnloadParcelCommand struct { //nolint:recvcheck //using for validation
	unitKind     parcel.ContainmentKind
	unitID       kernel.UUID
	trackingCode string
	actorID      kernel.UUID
	warehouseID  *kernel.UUID

	guard guard.ConstructorGuard
}

// NewUnloadParcelCommand creates a command to remove a parcel from a unit.
func NewUnloadParcelCommand(
	unitKind parcel.ContainmentKind,
	unitID kernel.UUID,
	trackingCode string,
	actorID kernel.UUID,
	warehouseID *kernel.UUID,
) (UnloadParcelCommand, error) {
	cmd := UnloadParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUnitKind(unitKind),
		cmd.setUnitID(unitID),
		cmd.setTrackingCode(trackingCode),
		cmd.setActorID(actorID),
		cmd.setWarehouseID(warehouseID),
	); err != nil {
		return UnloadParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UnloadParcelCommand) Validate() error {
	return c.guard.Validate(ErrUnloadParcelCommandIsNotConstructed)
}

// UnitKind returns the kind of the unit to remove from.
func (c UnloadParcelCommand) UnitKind() parcel.ContainmentKind {
	return c.unitKind
}

// UnitID returns the unit's identifier.
func (c UnloadParcelCommand) UnitID() kernel.UUID {
	return c.unitID
}

// TrackingCode returns the tracking code of the parcel to remove.
func (c UnloadParcelCommand) TrackingCode() string {
	return c.trackingCode
}

// ActorID returns the acting user.
func (c UnloadParcelCommand) ActorID() kernel.UUID {
	return c.actorID
}

// WarehouseID returns the warehouse that takes custody of the removed
// parcel. Set only for container and flight removals.
func (c UnloadParcelCommand) WarehouseID() *kernel.UUID {
	return c.warehouseID
}

func (c *UnloadParcelCommand) setUnitKind(kind parcel.ContainmentKind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	c.unitKind = kind
	return nil
}

func (c *UnloadParcelCommand) setUnitID(unitID kernel.UUID) error {
	if err := unitID.Validate(); err != nil {
		return err
	}
	c.unitID = unitID
	return nil
}

func (c *UnloadParcelCommand) setTrackingCode(trackingCode string) error {
	if trackingCode == "" {
		return ErrTrackingCodeIsRequired
	}
	c.trackingCode = trackingCode
	return nil
}

func (c *UnloadParcelCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *UnloadParcelCommand) setWarehouseID(warehouseID *kernel.UUID) error {
	transport := c.unitKind == parcel.ContainmentContainer || c.unitKind == parcel.ContainmentFlight
	if warehouseID == nil {
		if transport {
			return errs.NewValueIsRequiredError("warehouseID")
		}
		return nil
	}
	if !transport {
		return errs.NewValueIsInvalidErrorWithCause("warehouseID",
			fmt.Errorf("%s removal does not take a warehouse", c.unitKind))
	}
	if err := warehouseID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("warehouseID", err)
	}
	c.warehouseID = warehouseID
	return nil
}
