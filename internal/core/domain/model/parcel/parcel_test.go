package parcel_test

import (
	"testing"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustWeight(t *testing.T, s string) kernel.Weight {
	t.Helper()
	w, err := kernel.NewWeightFromString(s)
	require.NoError(t, err)
	return w
}

func newTestParcel(t *testing.T) *parcel.Parcel {
	t.Helper()
	orderID := kernel.NewUUID()
	p, err := parcel.NewParcel(
		kernel.NewUUID(),
		"HBL250831MGYE00001",
		"household goods",
		mustWeight(t, "20"),
		parcel.ServiceMaritime,
		kernel.NewUUID(),
		&orderID,
	)
	require.NoError(t, err)
	return p
}

func TestNewParcel(t *testing.T) {
	t.Run("should start InAgency with no containment", func(t *testing.T) {
		p := newTestParcel(t)

		assert.Equal(t, parcel.InAgency, p.Status())
		kind, unitID := p.Containment()
		assert.Equal(t, parcel.ContainmentNone, kind)
		assert.Nil(t, unitID)
		assert.False(t, p.IsAttached())
		assert.False(t, p.IsDeleted())
		assert.Nil(t, p.WarehouseID())
	})

	t.Run("should reject missing tracking code", func(t *testing.T) {
		_, err := parcel.NewParcel(
			kernel.NewUUID(), "", "goods", mustWeight(t, "1"),
			parcel.ServiceAir, kernel.NewUUID(), nil,
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject invalid service kind", func(t *testing.T) {
		_, err := parcel.NewParcel(
			kernel.NewUUID(), "HBL1", "goods", mustWeight(t, "1"),
			parcel.ServiceUnknown, kernel.NewUUID(), nil,
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var p parcel.Parcel
		require.ErrorIs(t, p.Validate(), parcel.ErrParcelIsNotConstructed)
	})
}

func TestParcel_AttachTo(t *testing.T) {
	t.Run("should set containment reference and loaded status", func(t *testing.T) {
		p := newTestParcel(t)
		unitID := kernel.NewUUID()

		err := p.AttachTo(parcel.ContainmentPallet, unitID, "PLT-GYE-0001")

		require.NoError(t, err)
		kind, gotID := p.Containment()
		assert.Equal(t, parcel.ContainmentPallet, kind)
		require.NotNil(t, gotID)
		assert.True(t, unitID.IsEqual(*gotID))
		assert.Equal(t, parcel.InPallet, p.Status())
		assert.Contains(t, p.StatusDetail(), "PLT-GYE-0001")
	})

	t.Run("should enforce exclusivity", func(t *testing.T) {
		p := newTestParcel(t)
		require.NoError(t, p.AttachTo(parcel.ContainmentPallet, kernel.NewUUID(), "PLT-1"))

		err := p.AttachTo(parcel.ContainmentContainer, kernel.NewUUID(), "CNT-1")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectAlreadyAttached)
	})

	t.Run("should reject deleted parcels", func(t *testing.T) {
		p := newTestParcel(t)
		require.NoError(t, p.SoftDelete())

		err := p.AttachTo(parcel.ContainmentPallet, kernel.NewUUID(), "PLT-1")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestParcel_Detach(t *testing.T) {
	t.Run("should clear containment and reset status", func(t *testing.T) {
		p := newTestParcel(t)
		require.NoError(t, p.AttachTo(parcel.ContainmentContainer, kernel.NewUUID(), "CNT-1"))

		err := p.Detach(parcel.InWarehouse)

		require.NoError(t, err)
		assert.False(t, p.IsAttached())
		assert.Equal(t, parcel.InWarehouse, p.Status())
	})

	t.Run("should reject unattached parcels", func(t *testing.T) {
		p := newTestParcel(t)

		err := p.Detach(parcel.InAgency)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("should reject non-neutral reset statuses", func(t *testing.T) {
		p := newTestParcel(t)
		require.NoError(t, p.AttachTo(parcel.ContainmentPallet, kernel.NewUUID(), "PLT-1"))

		err := p.Detach(parcel.Delivered)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestParcel_ApplyCascade(t *testing.T) {
	t.Run("should update status while attached", func(t *testing.T) {
		p := newTestParcel(t)
		require.NoError(t, p.AttachTo(parcel.ContainmentContainer, kernel.NewUUID(), "CNT-1"))

		err := p.ApplyCascade(parcel.InTransit, "Container CNT-1 departed")

		require.NoError(t, err)
		assert.Equal(t, parcel.InTransit, p.Status())
		kind, _ := p.Containment()
		assert.Equal(t, parcel.ContainmentContainer, kind, "cascade should not detach")
	})

	t.Run("should reject unattached parcels", func(t *testing.T) {
		p := newTestParcel(t)

		err := p.ApplyCascade(parcel.InTransit, "x")

		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("should reject order-only statuses", func(t *testing.T) {
		p := newTestParcel(t)
		require.NoError(t, p.AttachTo(parcel.ContainmentContainer, kernel.NewUUID(), "CNT-1"))

		err := p.ApplyCascade(parcel.PartiallyDelivered, "x")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestParcel_DeliveryLifecycle(t *testing.T) {
	t.Run("warehouse to delivered", func(t *testing.T) {
		p := newTestParcel(t)
		warehouseID := kernel.NewUUID()

		require.NoError(t, p.ReceiveInWarehouse(warehouseID, "WHS-MIA-01"))
		assert.Equal(t, parcel.InWarehouse, p.Status())
		require.NotNil(t, p.WarehouseID())

		require.NoError(t, p.MarkOutForDelivery("Assigned to courier"))
		assert.Equal(t, parcel.OutForDelivery, p.Status())

		require.NoError(t, p.MarkDelivered("Signed by recipient"))
		assert.Equal(t, parcel.Delivered, p.Status())
		require.NotNil(t, p.WarehouseID(), "custody is released by the warehouse, not the status change")
		p.ReleaseFromWarehouse()
		assert.Nil(t, p.WarehouseID())
	})

	t.Run("delivered parcel cannot re-enter warehouse custody", func(t *testing.T) {
		p := newTestParcel(t)
		require.NoError(t, p.ReceiveInWarehouse(kernel.NewUUID(), "WHS-MIA-01"))
		require.NoError(t, p.MarkOutForDelivery("Assigned to courier"))
		p.ReleaseFromWarehouse()
		require.NoError(t, p.MarkDelivered("Signed by recipient"))

		err := p.ReceiveInWarehouse(kernel.NewUUID(), "WHS-MIA-02")

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, parcel.Delivered, p.Status())
	})

	t.Run("cannot deliver before out for delivery", func(t *testing.T) {
		p := newTestParcel(t)

		err := p.MarkDelivered("x")

		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("cannot go out for delivery while attached", func(t *testing.T) {
		p := newTestParcel(t)
		require.NoError(t, p.AttachTo(parcel.ContainmentContainer, kernel.NewUUID(), "CNT-1"))

		err := p.MarkOutForDelivery("x")

		require.ErrorIs(t, err, errs.ErrObjectAlreadyAttached)
	})
}

func TestParcel_SoftDelete(t *testing.T) {
	t.Run("should reject attached parcels", func(t *testing.T) {
		p := newTestParcel(t)
		require.NoError(t, p.AttachTo(parcel.ContainmentPallet, kernel.NewUUID(), "PLT-1"))

		err := p.SoftDelete()

		require.ErrorIs(t, err, errs.ErrObjectAlreadyAttached)
	})

	t.Run("should mark unattached parcels deleted", func(t *testing.T) {
		p := newTestParcel(t)

		require.NoError(t, p.SoftDelete())
		assert.True(t, p.IsDeleted())
	})
}

func TestRestoreParcel(t *testing.T) {
	t.Run("should reject inconsistent containment and status", func(t *testing.T) {
		_, err := parcel.RestoreParcel(
			kernel.NewUUID(), "HBL1", "goods", mustWeight(t, "5"), parcel.ServiceMaritime,
			kernel.NewUUID(), nil,
			parcel.ContainmentNone, nil, nil,
			parcel.InContainer, "", false,
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should restore attached parcel", func(t *testing.T) {
		unitID := kernel.NewUUID()
		p, err := parcel.RestoreParcel(
			kernel.NewUUID(), "HBL1", "goods", mustWeight(t, "5"), parcel.ServiceMaritime,
			kernel.NewUUID(), nil,
			parcel.ContainmentContainer, &unitID, nil,
			parcel.InContainer, "Loaded in Container CNT-1", false,
		)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, parcel.InContainer, p.Status())
	})

	t.Run("should reject order-only status on a parcel", func(t *testing.T) {
		_, err := parcel.RestoreParcel(
			kernel.NewUUID(), "HBL1", "goods", mustWeight(t, "5"), parcel.ServiceMaritime,
			kernel.NewUUID(), nil,
			parcel.ContainmentNone, nil, nil,
			parcel.PartiallyDelivered, "", false,
		)

		require.Error(t, err)
	})
}
