package parcel_test

import (
	"testing"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	t.Run("should create event with unit reference", func(t *testing.T) {
		unitID := kernel.NewUUID()

		e, err := parcel.NewEvent(
			kernel.NewUUID(),
			parcel.EventLoadedInContainer,
			parcel.InContainer,
			kernel.NewUUID(),
			"Loaded in Container CNT-1",
			parcel.ContainmentContainer,
			&unitID,
		)

		require.NoError(t, err)
		assert.Equal(t, int64(0), e.ID(), "ID is assigned by the store on append")
		kind, gotID := e.UnitReference()
		assert.Equal(t, parcel.ContainmentContainer, kind)
		require.NotNil(t, gotID)
		assert.False(t, e.CreatedAt().IsZero())
	})

	t.Run("should create event without unit reference", func(t *testing.T) {
		e, err := parcel.NewEvent(
			kernel.NewUUID(), parcel.EventCreated, parcel.InAgency,
			kernel.NewUUID(), "", parcel.ContainmentNone, nil,
		)

		require.NoError(t, err)
		kind, unitID := e.UnitReference()
		assert.Equal(t, parcel.ContainmentNone, kind)
		assert.Nil(t, unitID)
	})

	t.Run("should reject unit kind without unit ID", func(t *testing.T) {
		_, err := parcel.NewEvent(
			kernel.NewUUID(), parcel.EventLoadedOnPallet, parcel.InPallet,
			kernel.NewUUID(), "", parcel.ContainmentPallet, nil,
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject unit ID without unit kind", func(t *testing.T) {
		unitID := kernel.NewUUID()

		_, err := parcel.NewEvent(
			kernel.NewUUID(), parcel.EventCreated, parcel.InAgency,
			kernel.NewUUID(), "", parcel.ContainmentNone, &unitID,
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unknown event type", func(t *testing.T) {
		_, err := parcel.NewEvent(
			kernel.NewUUID(), parcel.EventUnknown, parcel.InAgency,
			kernel.NewUUID(), "", parcel.ContainmentNone, nil,
		)

		require.Error(t, err)
	})
}

func TestEventType_PublicMessage(t *testing.T) {
	t.Run("customer-facing types have messages", func(t *testing.T) {
		publicTypes := []parcel.EventType{
			parcel.EventCreated,
			parcel.EventAddedToDispatch,
			parcel.EventReceivedInWarehouse,
			parcel.EventLoadedInContainer,
			parcel.EventLoadedOnFlight,
			parcel.EventTransportDeparted,
			parcel.EventTransportArrived,
			parcel.EventCustomsHold,
			parcel.EventCustomsCleared,
			parcel.EventOutForDelivery,
			parcel.EventDeliveryAttempted,
			parcel.EventDelivered,
		}

		for _, et := range publicTypes {
			t.Run(et.String(), func(t *testing.T) {
				msg, ok := et.PublicMessage()
				require.True(t, ok)
				assert.NotEmpty(t, msg)
				assert.True(t, et.IsPublic())
			})
		}
	})

	t.Run("operational types stay internal", func(t *testing.T) {
		internalTypes := []parcel.EventType{
			parcel.EventLoadedOnPallet,
			parcel.EventRemovedFromPallet,
			parcel.EventRemovedFromDispatch,
			parcel.EventRemovedFromContainer,
			parcel.EventRemovedFromFlight,
			parcel.EventTransportStatusChanged,
		}

		for _, et := range internalTypes {
			t.Run(et.String(), func(t *testing.T) {
				_, ok := et.PublicMessage()
				assert.False(t, ok)
				assert.False(t, et.IsPublic())
			})
		}
	})
}
