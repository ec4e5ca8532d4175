package unit

import (
	"errors"
	"fmt"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"
)

// ErrWarehouseIsNotConstructed is returned when a Warehouse instance was not
// created through the NewWarehouse or RestoreWarehouse factory functions.
var ErrWarehouseIsNotConstructed = errors.New("Warehouse must be created via NewWarehouse or RestoreWarehouse")

// WarehouseStatus is the state machine of a warehouse: Active ⇄ Closed.
type WarehouseStatus int

const (
	// WarehouseUnknown represents an invalid or undefined status.
	WarehouseUnknown WarehouseStatus = iota

	// WarehouseActive accepts and releases parcels.
	WarehouseActive

	// WarehouseClosed rejects new custody; parcels already held stay put.
	WarehouseClosed
)

func getWarehouseStatusStrings() map[WarehouseStatus]string {
	return map[WarehouseStatus]string{
		WarehouseUnknown: "Unknown",
		WarehouseActive:  "Active",
		WarehouseClosed:  "Closed",
	}
}

// Validate checks that the status is a defined warehouse status.
func (s WarehouseStatus) Validate() error {
	if s != WarehouseActive && s != WarehouseClosed {
		return errs.NewValueIsInvalidErrorWithCause("warehouse status is invalid",
			fmt.Errorf("%d is not a valid warehouse status", s))
	}
	return nil
}

// String returns the status name. Implements fmt.Stringer.
func (s WarehouseStatus) String() string {
	if str, ok := getWarehouseStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Warehouse holds parcels in custody between transport legs. A parcel keeps
// its warehouse reference until custody ends: loading into a transport unit,
// delivery, or deletion with its order. The reference and the running
// aggregates always move together, through Receive, TakeCustody and
// ReleaseCustody.
type Warehouse struct {
	id      kernel.UUID
	number  string
	name    string
	country string
	status  WarehouseStatus
	weight  kernel.Weight
	count   int

	guard kernel.ConstructorGuard
}

// NewWarehouse creates an empty active warehouse.
func NewWarehouse(id kernel.UUID, number, name, country string) (*Warehouse, error) {
	w := &Warehouse{
		status: WarehouseActive,
		weight: kernel.ZeroWeight(),
		guard:  kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		w.setID(id),
		w.setNumber(number),
		w.setName(name),
		w.setCountry(country),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// RestoreWarehouse reconstructs a warehouse from persistence.
func RestoreWarehouse(
	id kernel.UUID,
	number, name, country string,
	status WarehouseStatus,
	weight kernel.Weight,
	count int,
) (*Warehouse, error) {
	w, err := NewWarehouse(id, number, name, country)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("count is invalid",
			fmt.Errorf("%d is negative", count))
	}

	w.status = status
	w.weight = weight
	w.count = count
	return w, nil
}

// Validate ensures the warehouse was created through a factory function.
func (w *Warehouse) Validate() error {
	if w == nil {
		return ErrWarehouseIsNotConstructed
	}
	return w.guard.Validate(ErrWarehouseIsNotConstructed)
}

// ID returns the warehouse's surrogate identifier.
func (w *Warehouse) ID() kernel.UUID {
	return w.id
}

// Number returns the human-readable warehouse number.
func (w *Warehouse) Number() string {
	return w.number
}

// Name returns the warehouse name.
func (w *Warehouse) Name() string {
	return w.name
}

// Country returns the ISO country code of the warehouse location.
func (w *Warehouse) Country() string {
	return w.country
}

// Status returns the warehouse status.
func (w *Warehouse) Status() WarehouseStatus {
	return w.status
}

// Weight returns the running aggregate weight of parcels in custody.
func (w *Warehouse) Weight() kernel.Weight {
	return w.weight
}

// Count returns the running count of parcels in custody.
func (w *Warehouse) Count() int {
	return w.count
}

// IsEmpty reports whether no parcels are in custody.
func (w *Warehouse) IsEmpty() bool {
	return w.count == 0
}

// Receive takes custody of a detached parcel. The warehouse must be Active
// and the parcel's status must allow warehouse entry; parcels out for
// delivery or already delivered are rejected.
func (w *Warehouse) Receive(target *parcel.Parcel) error {
	if w.status != WarehouseActive {
		return errs.NewInvalidStateError(
			fmt.Sprintf("warehouse %s", w.number), w.status.String(), "receive parcels")
	}

	if err := target.ReceiveInWarehouse(w.id, w.number); err != nil {
		return err
	}

	w.weight = w.weight.Add(target.Weight())
	w.count++
	return nil
}

// TakeCustody records custody of a parcel that already carries the
// InWarehouse status, as happens when a dispatch is received or customs
// clears a transport unit. It only updates the aggregates and the parcel's
// warehouse reference.
func (w *Warehouse) TakeCustody(target *parcel.Parcel) error {
	if w.status != WarehouseActive {
		return errs.NewInvalidStateError(
			fmt.Sprintf("warehouse %s", w.number), w.status.String(), "receive parcels")
	}

	if err := target.SetWarehouse(w.id); err != nil {
		return err
	}

	w.weight = w.weight.Add(target.Weight())
	w.count++
	return nil
}

// ReleaseCustody drops a parcel from custody, decrementing the aggregates.
// The parcel keeps whatever status the triggering operation assigned.
func (w *Warehouse) ReleaseCustody(target *parcel.Parcel) error {
	if target.WarehouseID() == nil || !target.WarehouseID().IsEqual(w.id) {
		return errs.NewObjectNotFoundError("parcel in warehouse", target.TrackingCode())
	}

	weight, err := w.weight.Sub(target.Weight())
	if err != nil {
		return err
	}
	w.weight = weight
	w.count--

	target.ReleaseFromWarehouse()
	return nil
}

// Close stops the warehouse from taking new custody. Parcels already held
// remain until released.
func (w *Warehouse) Close() error {
	if w.status != WarehouseActive {
		return errs.NewInvalidStateError(
			fmt.Sprintf("warehouse %s", w.number), w.status.String(), "close")
	}
	w.status = WarehouseClosed
	return nil
}

// Reopen makes a closed warehouse active again.
func (w *Warehouse) Reopen() error {
	if w.status != WarehouseClosed {
		return errs.NewInvalidStateError(
			fmt.Sprintf("warehouse %s", w.number), w.status.String(), "reopen")
	}
	w.status = WarehouseActive
	return nil
}

func (w *Warehouse) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Warehouse) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	w.number = number
	return nil
}

func (w *Warehouse) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	w.name = name
	return nil
}

func (w *Warehouse) setCountry(country string) error {
	if country == "" {
		return errs.NewValueIsRequiredError("country")
	}
	w.country = country
	return nil
}
