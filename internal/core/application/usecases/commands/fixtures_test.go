package commands_test

import (
	"testing"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/order"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/unit"

	"github.com/stretchr/testify/require"
)

func testWeight(t *testing.T, s string) kernel.Weight {
	t.Helper()
	w, err := kernel.NewWeightFromString(s)
	require.NoError(t, err)
	return w
}

func newAgencyParcel(t *testing.T, agencyID kernel.UUID, orderID *kernel.UUID) *parcel.Parcel {
	t.Helper()
	p, err := parcel.NewParcel(kernel.NewUUID(), "HBL250831MGYE00001", "Shoes",
		testWeight(t, "2.5"), parcel.ServiceMaritime, agencyID, orderID)
	require.NoError(t, err)
	return p
}

func newWarehouseParcel(t *testing.T, orderID *kernel.UUID) *parcel.Parcel {
	t.Helper()
	warehouseID := kernel.NewUUID()
	p, err := parcel.RestoreParcel(kernel.NewUUID(), "HBL250831MGYE00002", "Books",
		testWeight(t, "1.0"), parcel.ServiceMaritime, kernel.NewUUID(), orderID,
		parcel.ContainmentNone, nil, &warehouseID, parcel.InWarehouse, "", false)
	require.NoError(t, err)
	return p
}

func newOpenPallet(t *testing.T, agencyID kernel.UUID) *unit.Pallet {
	t.Helper()
	p, err := unit.NewPallet(kernel.NewUUID(), "PLT25083100001", agencyID)
	require.NoError(t, err)
	return p
}

func newOpenDispatch(t *testing.T, agencyID kernel.UUID) *unit.Dispatch {
	t.Helper()
	d, err := unit.NewDispatch(kernel.NewUUID(), "DSP25083100001", agencyID)
	require.NoError(t, err)
	return d
}

func newActiveWarehouse(t *testing.T) *unit.Warehouse {
	t.Helper()
	w, err := unit.NewWarehouse(kernel.NewUUID(), "WHS-MIA-01", "Miami hub", "US")
	require.NoError(t, err)
	return w
}

func newMaritimeOrder(t *testing.T, id kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(id, "ORD-2025-0001", kernel.NewUUID(), "Ana Castillo", parcel.ServiceMaritime)
	require.NoError(t, err)
	return o
}
