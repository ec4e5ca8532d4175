package commands

import (
	"context"
)

// UnsealPalletCommandHandler reopens a sealed pallet. Fails once the pallet
// has been loaded into a dispatch.
type UnsealPalletCommandHandler struct {
	uowFactory UnitUoWFactory
}

// NewUnsealPalletCommandHandler creates a handler for unsealing pallets.
func NewUnsealPalletCommandHandler(uowFactory UnitUoWFactory) UnsealPalletCommandHandler {
	return UnsealPalletCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the unseal command.
func (h UnsealPalletCommandHandler) Handle(ctx context.Context, cmd UnsealPalletCommand) error {
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
	if err = pallet.Unseal(); err != nil {
		return err
	}
	if err = uow.UnitRepository().UpdatePallet(ctx, pallet); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
