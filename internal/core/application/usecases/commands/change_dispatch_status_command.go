package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/unit"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrChangeDispatchStatusCommandIsNotConstructed = errors.New(
		"ChangeDispatchStatusCommand is not constructed")
	ErrWarehouseIsRequiredForReceipt = errors.New(
		"warehouse is required to receive a dispatch")
)

// ChangeDispatchStatusCommand advances a dispatch through its lifecycle and
// cascades the resulting status to every parcel inside. Receiving a dispatch
// needs a warehouse to take custody of the parcels.
//
//nolint:recvcheck //using for validation
type ChangeDispatchStatusCommand struct {
	dispatchID  kernel.UUID
	status      unit.DispatchStatus
	warehouseID *kernel.UUID
	actorID     kernel.UUID

	guard guard.ConstructorGuard
}

// NewChangeDispatchStatusCommand creates a new ChangeDispatchStatusCommand.
func NewChangeDispatchStatusCommand(
	dispatchID kernel.UUID,
	status unit.DispatchStatus,
	warehouseID *kernel.UUID,
	actorID kernel.UUID,
) (ChangeDispatchStatusCommand, error) {
	cmd := ChangeDispatchStatusCommand{}
	err := errors.Join(
		cmd.setDispatchID(dispatchID),
		cmd.setStatus(status),
		cmd.setWarehouseID(warehouseID),
		cmd.setActorID(actorID),
	)
	if err != nil {
		return ChangeDispatchStatusCommand{}, err
	}

	cmd.guard = guard.NewConstructorGuard()
	return cmd, nil
}

func (c *ChangeDispatchStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeDispatchStatusCommandIsNotConstructed)
}

func (c *ChangeDispatchStatusCommand) DispatchID() kernel.UUID {
	return c.dispatchID
}

func (c *ChangeDispatchStatusCommand) Status() unit.DispatchStatus {
	return c.status
}

func (c *ChangeDispatchStatusCommand) WarehouseID() *kernel.UUID {
	return c.warehouseID
}

func (c *ChangeDispatchStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *ChangeDispatchStatusCommand) setDispatchID(dispatchID kernel.UUID) error {
	if err := dispatchID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("dispatchID", err)
	}
	c.dispatchID = dispatchID
	return nil
}

func (c *ChangeDispatchStatusCommand) setStatus(status unit.DispatchStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *ChangeDispatchStatusCommand) setWarehouseID(warehouseID *kernel.UUID) error {
	if warehouseID != nil {
		if err := warehouseID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("warehouseID", err)
		}
	}
	if c.status == unit.DispatchReceived && warehouseID == nil {
		return ErrWarehouseIsRequiredForReceipt
	}
	c.warehouseID = warehouseID
	return nil
}

func (c *ChangeDispatchStatusCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("actorID", err)
	}
	c.actorID = actorID
	return nil
}
