package commands_test

import (
	"testing"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/unit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChangeDispatchStatusCommandHandler_Handle_DepartureCascades(t *testing.T) {
	ctx := t.Context()
	agencyID := kernel.NewUUID()
	target := newAgencyParcel(t, agencyID, nil)
	dispatch := newOpenDispatch(t, agencyID)
	_, err := dispatch.Accept(target)
	require.NoError(t, err)

	cmd, err := commands.NewChangeDispatchStatusCommand(
		dispatch.ID(), unit.DispatchInTransit, nil, kernel.NewUUID())
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	unitRepo := new(MockUnitRepository)
	eventRepo := new(MockEventRepository)
	uow := new(MockTransferUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(parcelRepo).Once()
	uow.On("UnitRepository").Return(unitRepo).Once()
	uow.On("EventRepository").Return(eventRepo).Once()
	uow.On("OrderRepository").Return(new(MockOrderRepository)).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	unitRepo.On("GetDispatch", mock.Anything, dispatch.ID()).Return(dispatch, nil).Once()
	parcelRepo.On("GetByUnit", mock.Anything, parcel.ContainmentDispatch, dispatch.ID()).
		Return([]*parcel.Parcel{target}, nil).Once()
	parcelRepo.On("Update", mock.Anything, target).Return(nil).Once()
	eventRepo.On("Append", mock.Anything, mock.AnythingOfType("*parcel.Event")).Return(nil).Once()
	unitRepo.On("UpdateDispatch", mock.Anything, dispatch).Return(nil).Once()

	factory := new(MockTransferUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeDispatchStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, unit.DispatchInTransit, dispatch.Status())
	assert.Equal(t, parcel.InDispatch, target.Status())
	unitRepo.AssertExpectations(t)
}

func TestChangeDispatchStatusCommandHandler_Handle_ReceiptHandsOverCustody(t *testing.T) {
	ctx := t.Context()
	agencyID := kernel.NewUUID()
	target := newAgencyParcel(t, agencyID, nil)
	dispatch := newOpenDispatch(t, agencyID)
	_, err := dispatch.Accept(target)
	require.NoError(t, err)
	require.NoError(t, dispatch.Advance(unit.DispatchInTransit))
	warehouse := newActiveWarehouse(t)
	warehouseID := warehouse.ID()

	cmd, err := commands.NewChangeDispatchStatusCommand(
		dispatch.ID(), unit.DispatchReceived, &warehouseID, kernel.NewUUID())
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	unitRepo := new(MockUnitRepository)
	eventRepo := new(MockEventRepository)
	uow := new(MockTransferUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(parcelRepo).Once()
	uow.On("UnitRepository").Return(unitRepo).Once()
	uow.On("EventRepository").Return(eventRepo).Once()
	uow.On("OrderRepository").Return(new(MockOrderRepository)).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	unitRepo.On("GetDispatch", mock.Anything, dispatch.ID()).Return(dispatch, nil).Once()
	unitRepo.On("GetWarehouse", mock.Anything, warehouseID).Return(warehouse, nil).Once()
	parcelRepo.On("GetByUnit", mock.Anything, parcel.ContainmentDispatch, dispatch.ID()).
		Return([]*parcel.Parcel{target}, nil).Once()
	parcelRepo.On("Update", mock.Anything, target).Return(nil).Once()
	eventRepo.On("Append", mock.Anything, mock.AnythingOfType("*parcel.Event")).Return(nil).Once()
	unitRepo.On("UpdateDispatch", mock.Anything, dispatch).Return(nil).Once()
	unitRepo.On("UpdateWarehouse", mock.Anything, warehouse).Return(nil).Once()

	factory := new(MockTransferUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeDispatchStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, unit.DispatchReceived, dispatch.Status())
	assert.False(t, target.IsAttached())
	assert.Equal(t, parcel.InWarehouse, target.Status())
	require.NotNil(t, target.WarehouseID())
	assert.True(t, target.WarehouseID().IsEqual(warehouse.ID()))
	assert.Equal(t, 0, dispatch.Count())
	assert.Equal(t, 1, warehouse.Count())
	unitRepo.AssertExpectations(t)
}

func TestChangeDispatchStatusCommand_RequiresWarehouseForReceipt(t *testing.T) {
	_, err := commands.NewChangeDispatchStatusCommand(
		kernel.NewUUID(), unit.DispatchReceived, nil, kernel.NewUUID())

	require.ErrorIs(t, err, commands.ErrWarehouseIsRequiredForReceipt)
}
