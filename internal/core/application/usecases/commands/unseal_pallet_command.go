package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrUnsealPalletCommandIsNotConstructed = errors.New(
	"UnsealPalletCommand is not constructed")

// UnsealPalletCommand reopens a sealed pallet that has not been dispatched.
//
//nolint:recvcheck //using for validation
type UnsealPalletCommand struct {
	palletID kernel.UUID

	guard guard.ConstructorGuard
}

// NewUnsealPalletCommand creates a new UnsealPalletCommand.
func NewUnsealPalletCommand(palletID kernel.UUID) (UnsealPalletCommand, error) {
	cmd := UnsealPalletCommand{}
	if err := cmd.setPalletID(palletID); err != nil {
		return UnsealPalletCommand{}, err
	}

	cmd.guard = guard.NewConstructorGuard()
	return cmd, nil
}

func (c *UnsealPalletCommand) Validate() error {
	return c.guard.Validate(ErrUnsealPalletCommandIsNotConstructed)
}

func (c *UnsealPalletCommand) PalletID() kernel.UUID {
	return c.palletID
}

func (c *UnsealPalletCommand) setPalletID(palletID kernel.UUID) error {
	if err := palletID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("palletID", err)
	}
	c.palletID = palletID
	return nil
}
