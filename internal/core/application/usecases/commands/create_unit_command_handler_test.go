package commands_test

import (
	"testing"
	"time"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/unit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateUnitCommandHandler_Handle_Pallet(t *testing.T) {
	ctx := t.Context()
	agencyID := kernel.NewUUID()
	cmd, err := commands.NewCreateUnitCommand(parcel.ContainmentPallet, agencyID)
	require.NoError(t, err)

	unitRepo := new(MockUnitRepository)
	counterRepo := new(MockCounterRepository)
	uow := new(MockUnitUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CounterRepository").Return(counterRepo).Once()
	uow.On("UnitRepository").Return(unitRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	counterRepo.On("Reserve", mock.Anything, agencyID, mock.AnythingOfType("time.Time"), int64(1)).
		Return(int64(7), nil).Once()
	unitRepo.On("AddPallet", mock.Anything, mock.MatchedBy(func(p *unit.Pallet) bool {
		return p.AgencyID().IsEqual(agencyID) && p.Status() == unit.PalletOpen
	})).Return(nil).Once()

	factory := new(MockUnitUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateUnitCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	today := time.Now().UTC().Format("060102")
	assert.Equal(t, "PLT"+today+"00007", created.Number)
	require.NoError(t, created.ID.Validate())
	unitRepo.AssertExpectations(t)
	counterRepo.AssertExpectations(t)
}

func TestCreateUnitCommandHandler_Handle_Flight(t *testing.T) {
	ctx := t.Context()
	networkID := kernel.NewUUID()
	cmd, err := commands.NewCreateUnitCommand(parcel.ContainmentFlight, networkID)
	require.NoError(t, err)

	unitRepo := new(MockUnitRepository)
	counterRepo := new(MockCounterRepository)
	uow := new(MockUnitUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CounterRepository").Return(counterRepo).Once()
	uow.On("UnitRepository").Return(unitRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	counterRepo.On("Reserve", mock.Anything, networkID, mock.AnythingOfType("time.Time"), int64(1)).
		Return(int64(1), nil).Once()
	unitRepo.On("AddTransportUnit", mock.Anything, mock.MatchedBy(func(u *unit.TransportUnit) bool {
		return u.Kind() == parcel.ContainmentFlight && u.Service() == parcel.ServiceAir
	})).Return(nil).Once()

	factory := new(MockUnitUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateUnitCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	today := time.Now().UTC().Format("060102")
	assert.Equal(t, "FLT"+today+"00001", created.Number)
	unitRepo.AssertExpectations(t)
}

func TestCreateUnitCommand_RejectsNoneKind(t *testing.T) {
	_, err := commands.NewCreateUnitCommand(parcel.ContainmentNone, kernel.NewUUID())

	require.Error(t, err)
}
