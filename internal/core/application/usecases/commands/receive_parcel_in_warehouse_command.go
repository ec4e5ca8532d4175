package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrReceiveParcelInWarehouseCommandIsNotConstructed = errors.New(
	"ReceiveParcelInWarehouseCommand is not constructed")

// ReceiveParcelInWarehouseCommand registers a single loose parcel arriving at
// a warehouse, outside of any dispatch or transport receipt.
//
//nolint:recvcheck //using for validation
type ReceiveParcelInWarehouseCommand struct {
	warehouseID  kernel.UUID
	trackingCode string
	actorID      kernel.UUID

	guard guard.ConstructorGuard
}

// NewReceiveParcelInWarehouseCommand creates a new
// ReceiveParcelInWarehouseCommand.
func NewReceiveParcelInWarehouseCommand(
	warehouseID kernel.UUID,
	trackingCode string,
	actorID kernel.UUID,
) (ReceiveParcelInWarehouseCommand, error) {
	cmd := ReceiveParcelInWarehouseCommand{}
	err := errors.Join(
		cmd.setWarehouseID(warehouseID),
		cmd.setTrackingCode(trackingCode),
		cmd.setActorID(actorID),
	)
	if err != nil {
		return ReceiveParcelInWarehouseCommand{}, err
	}

	cmd.guard = guard.NewConstructorGuard()
	return cmd, nil
}

func (c *ReceiveParcelInWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrReceiveParcelInWarehouseCommandIsNotConstructed)
}

func (c *ReceiveParcelInWarehouseCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

func (c *ReceiveParcelInWarehouseCommand) TrackingCode() string {
	return c.trackingCode
}

func (c *ReceiveParcelInWarehouseCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *ReceiveParcelInWarehouseCommand) setWarehouseID(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("warehouseID", err)
	}
	c.warehouseID = warehouseID
	return nil
}

func (c *ReceiveParcelInWarehouseCommand) setTrackingCode(trackingCode string) error {
	if trackingCode == "" {
		return ErrTrackingCodeIsRequired
	}
	c.trackingCode = trackingCode
	return nil
}

func (c *ReceiveParcelInWarehouseCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("actorID", err)
	}
	c.actorID = actorID
	return nil
}
