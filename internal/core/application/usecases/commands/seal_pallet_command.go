package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrSealPalletCommandIsNotConstructed = errors.New(
	"SealPalletCommand is not constructed")

// SealPalletCommand closes a pallet for further loading.
//
//nolint:recvcheck //using for validation
type SealPalletCommand struct {
	palletID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSealPalletCommand creates a new SealPalletCommand.
func NewSealPalletCommand(palletID kernel.UUID) (SealPalletCommand, error) {
	cmd := SealPalletCommand{}
	if err := cmd.setPalletID(palletID); err != nil {
		return SealPalletCommand{}, err
	}

	cmd.guard = guard.NewConstructorGuard()
	return cmd, nil
}

func (c *SealPalletCommand) Validate() error {
	return c.guard.Validate(ErrSealPalletCommandIsNotConstructed)
}

func (c *SealPalletCommand) PalletID() kernel.UUID {
	return c.palletID
}

func (c *SealPalletCommand) setPalletID(palletID kernel.UUID) error {
	if err := palletID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("palletID", err)
	}
	c.palletID = palletID
	return nil
}
