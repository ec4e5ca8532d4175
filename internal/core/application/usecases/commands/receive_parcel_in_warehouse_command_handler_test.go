package commands_test

import (
	"testing"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/unit"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReceiveParcelInWarehouseCommandHandler_Handle_Receive(t *testing.T) {
	ctx := t.Context()
	warehouse := newActiveWarehouse(t)
	target := newAgencyParcel(t, kernel.NewUUID(), nil)
	cmd, err := commands.NewReceiveParcelInWarehouseCommand(
		warehouse.ID(), target.TrackingCode(), kernel.NewUUID())
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
	parcelRepo.On("GetByTrackingCode", mock.Anything, target.TrackingCode()).Return(target, nil).Once()
	unitRepo.On("GetWarehouse", mock.Anything, warehouse.ID()).Return(warehouse, nil).Once()
	parcelRepo.On("Update", mock.Anything, target).Return(nil).Once()
	unitRepo.On("UpdateWarehouse", mock.Anything, warehouse).Return(nil).Once()
	eventRepo.On("Append", mock.Anything, mock.AnythingOfType("*parcel.Event")).Return(nil).Once()

	factory := new(MockTransferUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReceiveParcelInWarehouseCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, parcel.InWarehouse, target.Status())
	assert.Equal(t, 1, warehouse.Count())
	uow.AssertExpectations(t)
}

func TestReceiveParcelInWarehouseCommandHandler_Handle_TransferReleasesPreviousWarehouse(t *testing.T) {
	ctx := t.Context()
	origin := newActiveWarehouse(t)
	destination, err := unit.NewWarehouse(kernel.NewUUID(), "WHS-UIO-01", "Quito hub", "EC")
	require.NoError(t, err)
	target := newAgencyParcel(t, kernel.NewUUID(), nil)
	require.NoError(t, origin.Receive(target))
	require.Equal(t, 1, origin.Count())
	cmd, err := commands.NewReceiveParcelInWarehouseCommand(
		destination.ID(), target.TrackingCode(), kernel.NewUUID())
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
	parcelRepo.On("GetByTrackingCode", mock.Anything, target.TrackingCode()).Return(target, nil).Once()
	unitRepo.On("GetWarehouse", mock.Anything, destination.ID()).Return(destination, nil).Once()
	unitRepo.On("GetWarehouse", mock.Anything, origin.ID()).Return(origin, nil).Once()
	unitRepo.On("UpdateWarehouse", mock.Anything, origin).Return(nil).Once()
	parcelRepo.On("Update", mock.Anything, target).Return(nil).Once()
	unitRepo.On("UpdateWarehouse", mock.Anything, destination).Return(nil).Once()
	eventRepo.On("Append", mock.Anything, mock.AnythingOfType("*parcel.Event")).Return(nil).Once()

	factory := new(MockTransferUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReceiveParcelInWarehouseCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 0, origin.Count())
	assert.True(t, origin.Weight().IsZero())
	assert.Equal(t, 1, destination.Count())
	require.NotNil(t, target.WarehouseID())
	assert.True(t, target.WarehouseID().IsEqual(destination.ID()))
	unitRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReceiveParcelInWarehouseCommandHandler_Handle_SameWarehouseRejected(t *testing.T) {
	ctx := t.Context()
	warehouse := newActiveWarehouse(t)
	target := newAgencyParcel(t, kernel.NewUUID(), nil)
	require.NoError(t, warehouse.Receive(target))
	cmd, err := commands.NewReceiveParcelInWarehouseCommand(
		warehouse.ID(), target.TrackingCode(), kernel.NewUUID())
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	unitRepo := new(MockUnitRepository)
	uow := new(MockTransferUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(parcelRepo).Once()
	uow.On("UnitRepository").Return(unitRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	parcelRepo.On("GetByTrackingCode", mock.Anything, target.TrackingCode()).Return(target, nil).Once()
	unitRepo.On("GetWarehouse", mock.Anything, warehouse.ID()).Return(warehouse, nil).Once()

	factory := new(MockTransferUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReceiveParcelInWarehouseCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectAlreadyAttached)
	assert.Equal(t, 1, warehouse.Count(), "aggregates do not double count")
	parcelRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
