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

func newLoadedContainer(t *testing.T, parcels ...*parcel.Parcel) *unit.TransportUnit {
	t.Helper()
	c, err := unit.NewTransportUnit(kernel.NewUUID(), "CNT25083100001", parcel.ContainmentContainer)
	require.NoError(t, err)
	for _, p := range parcels {
		_, err = c.Accept(p)
		require.NoError(t, err)
	}
	return c
}

func TestChangeTransportStatusCommandHandler_Handle_DepartureCascades(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	aggregate := newMaritimeOrder(t, orderID)
	target := newWarehouseParcel(t, &orderID)
	container := newLoadedContainer(t, target)

	cmd, err := commands.NewChangeTransportStatusCommand(
		parcel.ContainmentContainer, container.ID(), unit.TransportDeparted, nil, kernel.NewUUID())
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	unitRepo := new(MockUnitRepository)
	eventRepo := new(MockEventRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockTransferUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(parcelRepo).Once()
	uow.On("UnitRepository").Return(unitRepo).Once()
	uow.On("EventRepository").Return(eventRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	unitRepo.On("GetTransportUnit", mock.Anything, container.ID()).Return(container, nil).Once()
	parcelRepo.On("GetByUnit", mock.Anything, parcel.ContainmentContainer, container.ID()).
		Return([]*parcel.Parcel{target}, nil).Once()
	parcelRepo.On("Update", mock.Anything, target).Return(nil).Once()
	eventRepo.On("Append", mock.Anything, mock.AnythingOfType("*parcel.Event")).Return(nil).Once()
	unitRepo.On("UpdateTransportUnit", mock.Anything, container).Return(nil).Once()
	orderRepo.On("Get", mock.Anything, orderID).Return(aggregate, nil).Once()
	parcelRepo.On("GetOrderStatuses", mock.Anything, orderID).
		Return([]parcel.Status{parcel.InTransit}, nil).Once()
	orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once()

	factory := new(MockTransferUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeTransportStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, unit.TransportDeparted, container.Status())
	assert.Equal(t, parcel.InTransit, target.Status())
	assert.Equal(t, parcel.InTransit, aggregate.Status())
	parcelRepo.AssertExpectations(t)
	unitRepo.AssertExpectations(t)
}

func TestChangeTransportStatusCommandHandler_Handle_UnloadingHandsOverCustody(t *testing.T) {
	ctx := t.Context()
	target := newWarehouseParcel(t, nil)
	container := newLoadedContainer(t, target)
	require.NoError(t, container.Advance(unit.TransportDeparted))
	require.NoError(t, container.Advance(unit.TransportArrived))
	require.NoError(t, container.Advance(unit.TransportCustomsCleared))
	require.NoError(t, target.ApplyCascade(parcel.InWarehouse, "customs cleared"))
	warehouse := newActiveWarehouse(t)
	warehouseID := warehouse.ID()

	cmd, err := commands.NewChangeTransportStatusCommand(
		parcel.ContainmentContainer, container.ID(), unit.TransportUnloading, &warehouseID, kernel.NewUUID())
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
	unitRepo.On("GetTransportUnit", mock.Anything, container.ID()).Return(container, nil).Once()
	unitRepo.On("GetWarehouse", mock.Anything, warehouseID).Return(warehouse, nil).Once()
	parcelRepo.On("GetByUnit", mock.Anything, parcel.ContainmentContainer, container.ID()).
		Return([]*parcel.Parcel{target}, nil).Once()
	parcelRepo.On("Update", mock.Anything, target).Return(nil).Once()
	eventRepo.On("Append", mock.Anything, mock.AnythingOfType("*parcel.Event")).Return(nil).Once()
	unitRepo.On("UpdateTransportUnit", mock.Anything, container).Return(nil).Once()
	unitRepo.On("UpdateWarehouse", mock.Anything, warehouse).Return(nil).Once()

	factory := new(MockTransferUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeTransportStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, target.IsAttached())
	assert.Equal(t, parcel.InWarehouse, target.Status())
	require.NotNil(t, target.WarehouseID())
	assert.True(t, target.WarehouseID().IsEqual(warehouse.ID()))
	assert.Equal(t, 0, container.Count())
	assert.Equal(t, 1, warehouse.Count())
	unitRepo.AssertExpectations(t)
}

func TestChangeTransportStatusCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	target := newWarehouseParcel(t, nil)
	container := newLoadedContainer(t, target)

	cmd, err := commands.NewChangeTransportStatusCommand(
		parcel.ContainmentContainer, container.ID(), unit.TransportArrived, nil, kernel.NewUUID())
	require.NoError(t, err)

	unitRepo := new(MockUnitRepository)
	uow := new(MockTransferUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(new(MockParcelRepository)).Once()
	uow.On("UnitRepository").Return(unitRepo).Once()
	uow.On("EventRepository").Return(new(MockEventRepository)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	unitRepo.On("GetTransportUnit", mock.Anything, container.ID()).Return(container, nil).Once()

	factory := new(MockTransferUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeTransportStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, unit.TransportLoading, container.Status())
}

func TestChangeTransportStatusCommand_RequiresWarehouseForUnloading(t *testing.T) {
	_, err := commands.NewChangeTransportStatusCommand(
		parcel.ContainmentContainer, kernel.NewUUID(), unit.TransportUnloading, nil, kernel.NewUUID())

	require.ErrorIs(t, err, commands.ErrWarehouseIsRequiredForUnloading)
}
