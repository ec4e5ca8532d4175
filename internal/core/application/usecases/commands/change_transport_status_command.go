package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/unit"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrChangeTransportStatusCommandIsNotConstructed = errors.New(
		"ChangeTransportStatusCommand is not constructed")
	ErrWarehouseIsRequiredForUnloading = errors.New(
		"warehouse is required to unload a transport unit")
)

// ChangeTransportStatusCommand advances a container or flight through its
// lifecycle and cascades the resulting status to every parcel on board.
// Unloading needs a destination warehouse to take custody of the parcels.
//
//nolint:recvcheck //using for validation
type ChangeTransportStatusCommand struct {
	unitKind    parcel.ContainmentKind
	unitID      kernel.UUID
	status      unit.TransportStatus
	warehouseID *kernel.UUID
	actorID     kernel.UUID

	guard guard.ConstructorGuard
}

// NewChangeTransportStatusCommand creates a new ChangeTransportStatusCommand.
func NewChangeTransportStatusCommand(
	unitKind parcel.ContainmentKind,
	unitID kernel.UUID,
	status unit.TransportStatus,
	warehouseID *kernel.UUID,
	actorID kernel.UUID,
) (ChangeTransportStatusCommand, error) {
	cmd := ChangeTransportStatusCommand{}
	err := errors.Join(
		cmd.setUnitKind(unitKind),
		cmd.setUnitID(unitID),
		cmd.setStatus(status),
		cmd.setWarehouseID(warehouseID),
		cmd.setActorID(actorID),
	)
	if err != nil {
		return ChangeTransportStatusCommand{}, err
	}

	cmd.guard = guard.NewConstructorGuard()
	return cmd, nil
}

func (c *ChangeTransportStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeTransportStatusCommandIsNotConstructed)
}

func (c *ChangeTransportStatusCommand) UnitKind() parcel.ContainmentKind {
	return c.unitKind
}

func (c *ChangeTransportStatusCommand) UnitID() kernel.UUID {
	return c.unitID
}

func (c *ChangeTransportStatusCommand) Status() unit.TransportStatus {
	return c.status
}

func (c *ChangeTransportStatusCommand) WarehouseID() *kernel.UUID {
	return c.warehouseID
}

func (c *ChangeTransportStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *ChangeTransportStatusCommand) setUnitKind(kind parcel.ContainmentKind) error {
	if kind != parcel.ContainmentContainer && kind != parcel.ContainmentFlight {
		return errs.NewValueIsInvalidErrorWithCause("unitKind",
			errors.New("transport status applies to containers and flights only"))
	}
	c.unitKind = kind
	return nil
}

func (c *ChangeTransportStatusCommand) setUnitID(unitID kernel.UUID) error {
	if err := unitID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("unitID", err)
	}
	c.unitID = unitID
	return nil
}

func (c *ChangeTransportStatusCommand) setStatus(status unit.TransportStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *ChangeTransportStatusCommand) setWarehouseID(warehouseID *kernel.UUID) error {
	if warehouseID != nil {
		if err := warehouseID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("warehouseID", err)
		}
	}
	if c.status == unit.TransportUnloading && warehouseID == nil {
		return ErrWarehouseIsRequiredForUnloading
	}
	c.warehouseID = warehouseID
	return nil
}

func (c *ChangeTransportStatusCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("actorID", err)
	}
	c.actorID = actorID
	return nil
}
