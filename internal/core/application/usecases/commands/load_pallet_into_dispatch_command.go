package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrLoadPalletIntoDispatchCommandIsNotConstructed = errors.New(
	"LoadPalletIntoDispatchCommand must be created via NewLoadPalletIntoDispatchCommand constructor",
)

// LoadPalletIntoDispatchCommand represents a request to load a sealed pallet
// into a dispatch. The pallet's parcels are re-homed to the dispatch in bulk.
type LoadPalletIntoDispatchCommand struct { //nolint:recvcheck //using for validation
	palletID   kernel.UUID
	dispatchID kernel.UUID
	actorID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewLoadPalletIntoDispatchCommand creates a pallet-into-dispatch command.
func NewLoadPalletIntoDispatchCommand(
	palletID kernel.UUID,
	dispatchID kernel.UUID,
	actorID kernel.UUID,
) (LoadPalletIntoDispatchCommand, error) {
	cmd := LoadPalletIntoDispatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPalletID(palletID),
		cmd.setDispatchID(dispatchID),
		cmd.setActorID(actorID),
	); err != nil {
		return LoadPalletIntoDispatchCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LoadPalletIntoDispatchCommand) Validate() error {
	return c.guard.Validate(ErrLoadPalletIntoDispatchCommandIsNotConstructed)
}

// PalletID returns the sealed pallet to load.
func (c LoadPalletIntoDispatchCommand) PalletID() kernel.UUID {
	return c.palletID
}

// DispatchID returns the destination dispatch.
func (c LoadPalletIntoDispatchCommand) DispatchID() kernel.UUID {
	return c.dispatchID
}

// ActorID returns the acting user.
func (c LoadPalletIntoDispatchCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *LoadPalletIntoDispatchCommand) setPalletID(palletID kernel.UUID) error {
	if err := palletID.Validate(); err != nil {
		return err
	}
	c.palletID = palletID
	return nil
}

func (c *LoadPalletIntoDispatchCommand) setDispatchID(dispatchID kernel.UUID) error {
	if err := dispatchID.Validate(); err != nil {
		return err
	}
	c.dispatchID = dispatchID
	return nil
}

func (c *LoadPalletIntoDispatchCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}
