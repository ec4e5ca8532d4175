package commands

import (
	"context"
)

// SealPalletCommandHandler seals a pallet so no more parcels can be loaded.
type SealPalletCommandHandler struct {
	uowFactory UnitUoWFactory
}

// NewSealPalletCommandHandler creates a handler for sealing pallets.
func NewSealPalletCommandHandler(uowFactory UnitUoWFactory) SealPalletCommandHandler {
	return SealPalletCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the seal command.
func (h SealPalletCommandHandler) Handle(ctx context.Context, cmd SealPalletCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pallet, err := uow.UnitRepository().GetPallet(ctx, cmd.PalletID())
	if err != nil {
		return err
	}
	if err = pallet.Seal(); err != nil {
		return err
	}
	if err = uow.UnitRepository().UpdatePallet(ctx, pallet); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
