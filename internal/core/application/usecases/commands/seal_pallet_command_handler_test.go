package commands_test

import (
	"testing"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/unit"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSealPalletCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	agencyID := kernel.NewUUID()
	pallet := newOpenPallet(t, agencyID)
	_, err := pallet.Accept(newAgencyParcel(t, agencyID, nil))
	require.NoError(t, err)
	cmd, err := commands.NewSealPalletCommand(pallet.ID())
	require.NoError(t, err)

	unitRepo := new(MockUnitRepository)
	uow := new(MockUnitUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UnitRepository").Return(unitRepo).Once(),
		unitRepo.On("GetPallet", mock.Anything, pallet.ID()).Return(pallet, nil).Once(),
		uow.On("UnitRepository").Return(unitRepo).Once(),
		unitRepo.On("UpdatePallet", mock.Anything, pallet).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUnitUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSealPalletCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, unit.PalletSealed, pallet.Status())
	unitRepo.AssertExpectations(t)
}

func TestUnsealPalletCommandHandler_Handle_DispatchedPalletStaysSealed(t *testing.T) {
	ctx := t.Context()
	agencyID := kernel.NewUUID()
	pallet := newOpenPallet(t, agencyID)
	_, err := pallet.Accept(newAgencyParcel(t, agencyID, nil))
	require.NoError(t, err)
	require.NoError(t, pallet.Seal())
	require.NoError(t, pallet.AttachToDispatch(kernel.NewUUID()))
	cmd, err := commands.NewUnsealPalletCommand(pallet.ID())
	require.NoError(t, err)

	unitRepo := new(MockUnitRepository)
	uow := new(MockUnitUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UnitRepository").Return(unitRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	unitRepo.On("GetPallet", mock.Anything, pallet.ID()).Return(pallet, nil).Once()

	factory := new(MockUnitUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUnsealPalletCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectAlreadyAttached)
	assert.Equal(t, unit.PalletSealed, pallet.Status())
	unitRepo.AssertNotCalled(t, "UpdatePallet", mock.Anything, mock.Anything)
}
