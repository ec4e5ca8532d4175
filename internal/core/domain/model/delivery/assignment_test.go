package delivery_test

import (
	"testing"
	"time"

	"parceltrack/internal/core/domain/model/delivery"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDirectAssignment(t *testing.T) *delivery.Assignment {
	t.Helper()
	courierID := kernel.NewUUID()
	a, err := delivery.NewAssignment(kernel.NewUUID(), kernel.NewUUID(), nil, &courierID)
	require.NoError(t, err)
	return a
}

func TestNewAssignment(t *testing.T) {
	t.Run("direct courier assignment", func(t *testing.T) {
		a := newDirectAssignment(t)

		assert.Equal(t, delivery.AssignmentAssigned, a.Status())
		assert.Equal(t, 0, a.AttemptCount())
		assert.Nil(t, a.RouteID())
		require.NotNil(t, a.CourierID())
		assert.Nil(t, a.Proof())
	})

	t.Run("route based assignment", func(t *testing.T) {
		routeID := kernel.NewUUID()
		a, err := delivery.NewAssignment(kernel.NewUUID(), kernel.NewUUID(), &routeID, nil)

		require.NoError(t, err)
		require.NotNil(t, a.RouteID())
		assert.Nil(t, a.CourierID())
	})

	t.Run("requires exactly one target", func(t *testing.T) {
		routeID := kernel.NewUUID()
		courierID := kernel.NewUUID()

		_, err := delivery.NewAssignment(kernel.NewUUID(), kernel.NewUUID(), &routeID, &courierID)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = delivery.NewAssignment(kernel.NewUUID(), kernel.NewUUID(), nil, nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var a delivery.Assignment
		require.ErrorIs(t, a.Validate(), delivery.ErrAssignmentIsNotConstructed)
	})
}

func TestAssignment_Lifecycle(t *testing.T) {
	t.Run("assigned to delivered with proof", func(t *testing.T) {
		a := newDirectAssignment(t)
		deliveredAt := time.Date(2026, 8, 31, 15, 4, 0, 0, time.UTC)

		require.NoError(t, a.Dispatch())
		assert.Equal(t, delivery.AssignmentOutForDelivery, a.Status())

		require.NoError(t, a.RecordDelivered("J. Morales", "left with doorman", deliveredAt))

		assert.Equal(t, delivery.AssignmentDelivered, a.Status())
		assert.Equal(t, 1, a.AttemptCount())
		require.NotNil(t, a.Proof())
		assert.Equal(t, "J. Morales", a.Proof().RecipientName)
		assert.Equal(t, deliveredAt, a.Proof().DeliveredAt)
		require.NotNil(t, a.LastAttemptAt())
	})

	t.Run("failed attempt can be retried", func(t *testing.T) {
		a := newDirectAssignment(t)
		require.NoError(t, a.Dispatch())

		require.NoError(t, a.RecordFailed("nobody home", time.Now().UTC()))
		assert.Equal(t, delivery.AssignmentFailed, a.Status())
		assert.Equal(t, 1, a.AttemptCount())
		assert.Equal(t, "nobody home", a.FailureNote())

		require.NoError(t, a.Dispatch())
		require.NoError(t, a.RecordDelivered("J. Morales", "", time.Now().UTC()))
		assert.Equal(t, 2, a.AttemptCount())
	})

	t.Run("cannot deliver before dispatch", func(t *testing.T) {
		a := newDirectAssignment(t)

		err := a.RecordDelivered("J. Morales", "", time.Now().UTC())

		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("delivered is terminal", func(t *testing.T) {
		a := newDirectAssignment(t)
		require.NoError(t, a.Dispatch())
		require.NoError(t, a.RecordDelivered("J. Morales", "", time.Now().UTC()))

		require.ErrorIs(t, a.Dispatch(), errs.ErrInvalidState)
		require.ErrorIs(t, a.RecordFailed("x", time.Now().UTC()), errs.ErrInvalidState)
	})

	t.Run("proof requires recipient name", func(t *testing.T) {
		a := newDirectAssignment(t)
		require.NoError(t, a.Dispatch())

		err := a.RecordDelivered("", "", time.Now().UTC())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreAssignment(t *testing.T) {
	t.Run("delivered requires proof", func(t *testing.T) {
		courierID := kernel.NewUUID()

		_, err := delivery.RestoreAssignment(
			kernel.NewUUID(), kernel.NewUUID(), nil, &courierID,
			delivery.AssignmentDelivered, 1, nil, "", nil,
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("restores failed assignment", func(t *testing.T) {
		courierID := kernel.NewUUID()
		lastAttempt := time.Now().UTC()

		a, err := delivery.RestoreAssignment(
			kernel.NewUUID(), kernel.NewUUID(), nil, &courierID,
			delivery.AssignmentFailed, 2, &lastAttempt, "address not found", nil,
		)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, 2, a.AttemptCount())
		assert.Equal(t, "address not found", a.FailureNote())
	})
}
