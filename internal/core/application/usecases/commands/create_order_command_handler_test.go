package commands_test

import (
	"testing"
	"time"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/order"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	agencyID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(agencyID, "Maria Gonzalez", parcel.ServiceMaritime)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	counterRepo := new(MockCounterRepository)
	uow := new(MockIntakeUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CounterRepository").Return(counterRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	counterRepo.On("Reserve", mock.Anything, agencyID, mock.AnythingOfType("time.Time"), int64(1)).
		Return(int64(12), nil).Once()
	orderRepo.On("Add", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
		return o.AgencyID().IsEqual(agencyID) &&
			o.CustomerName() == "Maria Gonzalez" &&
			o.Service() == parcel.ServiceMaritime &&
			o.Status() == parcel.InAgency &&
			o.ParcelCount() == 0
	})).Return(nil).Once()

	factory := new(MockIntakeUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	today := time.Now().UTC().Format("060102")
	assert.Equal(t, "ORD"+today+"00012", created.Number)
	require.NoError(t, created.ID.Validate())
	orderRepo.AssertExpectations(t)
	counterRepo.AssertExpectations(t)
}

func TestNewCreateOrderCommand_Validation(t *testing.T) {
	t.Run("missing customer name", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "", parcel.ServiceAir)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid service", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "Maria Gonzalez", parcel.ServiceUnknown)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero agency id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.UUID{}, "Maria Gonzalez", parcel.ServiceAir)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
