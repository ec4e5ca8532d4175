package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrCreateUnitCommandIsNotConstructed = errors.New(
	"CreateUnitCommand is not constructed")

// CreateUnitCommand creates a containment unit with a number issued from the
// owner's daily sequence. The owner is the agency for pallets and dispatches
// and the carrier network for containers and flights.
//
//nolint:recvcheck //using for validation
type CreateUnitCommand struct {
	kind    parcel.ContainmentKind
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateUnitCommand creates a new CreateUnitCommand.
func NewCreateUnitCommand(
	kind parcel.ContainmentKind,
	ownerID kernel.UUID,
) (CreateUnitCommand, error) {
	cmd := CreateUnitCommand{}
	err := errors.Join(
		cmd.setKind(kind),
		cmd.setOwnerID(ownerID),
	)
	if err != nil {
		return CreateUnitCommand{}, err
	}

	cmd.guard = guard.NewConstructorGuard()
	return cmd, nil
}

func (c *CreateUnitCommand) Validate() error {
	return c.guard.Validate(ErrCreateUnitCommandIsNotConstructed)
}

func (c *CreateUnitCommand) Kind() parcel.ContainmentKind {
	return c.kind
}

func (c *CreateUnitCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

func (c *CreateUnitCommand) setKind(kind parcel.ContainmentKind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	c.kind = kind
	return nil
}

func (c *CreateUnitCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("ownerID", err)
	}
	c.ownerID = ownerID
	return nil
}
