package unit

import (
	"errors"
	"fmt"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"
)

// ErrDispatchIsNotConstructed is returned when a Dispatch instance was not
// created through the NewDispatch or RestoreDispatch factory functions.
var ErrDispatchIsNotConstructed = errors.New("Dispatch must be created via NewDispatch or RestoreDispatch")

// DispatchStatus is the state machine of an inter-agency dispatch.
//
//	Open → InTransit → Received
type DispatchStatus int

const (
	// DispatchUnknown represents an invalid or undefined status.
	DispatchUnknown DispatchStatus = iota

	// DispatchOpen accepts parcels and sealed pallets.
	DispatchOpen

	// DispatchInTransit means the dispatch left the origin agency.
	DispatchInTransit

	// DispatchReceived means the carrier warehouse took custody; parcels
	// are detached and enter warehouse custody.
	DispatchReceived
)

func getDispatchStatusStrings() map[DispatchStatus]string {
	return map[DispatchStatus]string{
		DispatchUnknown:   "Unknown",
		DispatchOpen:      "Open",
		DispatchInTransit: "InTransit",
		DispatchReceived:  "Received",
	}
}

// Validate checks that the status is a defined dispatch status.
func (s DispatchStatus) Validate() error {
	if s != DispatchOpen && s != DispatchInTransit && s != DispatchReceived {
		return errs.NewValueIsInvalidErrorWithCause("dispatch status is invalid",
			fmt.Errorf("%d is not a valid dispatch status", s))
	}
	return nil
}

// String returns the status name. Implements fmt.Stringer.
func (s DispatchStatus) String() string {
	if str, ok := getDispatchStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// dispatchTransitions defines the forward-only dispatch state machine.
func dispatchTransitions() map[DispatchStatus][]DispatchStatus {
	return map[DispatchStatus][]DispatchStatus{
		DispatchOpen:      {DispatchInTransit},
		DispatchInTransit: {DispatchReceived},
		DispatchReceived:  {},
	}
}

// Dispatch moves parcels from an origin agency to the carrier warehouse.
type Dispatch struct {
	id       kernel.UUID
	number   string
	agencyID kernel.UUID
	status   DispatchStatus
	weight   kernel.Weight
	count    int

	guard kernel.ConstructorGuard
}

// NewDispatch creates an empty open dispatch for the given origin agency.
func NewDispatch(id kernel.UUID, number string, agencyID kernel.UUID) (*Dispatch, error) {
	d := &Dispatch{
		status: DispatchOpen,
		weight: kernel.ZeroWeight(),
		guard:  kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setNumber(number),
		d.setAgencyID(agencyID),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDispatch reconstructs a dispatch from persistence.
func RestoreDispatch(
	id kernel.UUID,
	number string,
	agencyID kernel.UUID,
	status DispatchStatus,
	weight kernel.Weight,
	count int,
) (*Dispatch, error) {
	d, err := NewDispatch(id, number, agencyID)
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

	d.status = status
	d.weight = weight
	d.count = count
	return d, nil
}

// Validate ensures the dispatch was created through a factory function.
func (d *Dispatch) Validate() error {
	if d == nil {
		return ErrDispatchIsNotConstructed
	}
	return d.guard.Validate(ErrDispatchIsNotConstructed)
}

// ID returns the dispatch's surrogate identifier.
func (d *Dispatch) ID() kernel.UUID {
	return d.id
}

// Number returns the human-readable dispatch number.
func (d *Dispatch) Number() string {
	return d.number
}

// Kind returns parcel.ContainmentDispatch.
func (d *Dispatch) Kind() parcel.ContainmentKind {
	return parcel.ContainmentDispatch
}

// AgencyID returns the origin agency.
func (d *Dispatch) AgencyID() kernel.UUID {
	return d.agencyID
}

// Status returns the dispatch status.
func (d *Dispatch) Status() DispatchStatus {
	return d.status
}

// Weight returns the running aggregate weight.
func (d *Dispatch) Weight() kernel.Weight {
	return d.weight
}

// Count returns the running parcel count.
func (d *Dispatch) Count() int {
	return d.count
}

// IsEmpty reports whether no parcels are attached.
func (d *Dispatch) IsEmpty() bool {
	return d.count == 0
}

// CanAccept checks the dispatch-side preconditions: the dispatch is Open and
// the parcel is InAgency. Palletized parcels enter through the bulk pallet
// operation, which re-homes them first.
func (d *Dispatch) CanAccept(target *parcel.Parcel) error {
	if d.status != DispatchOpen {
		return errs.NewInvalidStateError(
			fmt.Sprintf("dispatch %s", d.number), d.status.String(), "accept parcels")
	}
	if target.Status() != parcel.InAgency {
		return errs.NewInvalidStateError(
			fmt.Sprintf("parcel %s", target.TrackingCode()), target.Status().String(),
			"enter a dispatch")
	}
	return nil
}

// Accept attaches the parcel and increments the aggregates.
func (d *Dispatch) Accept(target *parcel.Parcel) (parcel.EventType, error) {
	if err := d.CanAccept(target); err != nil {
		return parcel.EventUnknown, err
	}
	if err := target.AttachTo(parcel.ContainmentDispatch, d.id, d.number); err != nil {
		return parcel.EventUnknown, err
	}

	d.weight = d.weight.Add(target.Weight())
	d.count++
	return parcel.EventAddedToDispatch, nil
}

// Release detaches the parcel back to InAgency. Allowed only while Open.
func (d *Dispatch) Release(target *parcel.Parcel) (parcel.EventType, error) {
	if d.status != DispatchOpen {
		return parcel.EventUnknown, errs.NewInvalidStateError(
			fmt.Sprintf("dispatch %s", d.number), d.status.String(), "release parcels")
	}
	if !attachedHere(target, parcel.ContainmentDispatch, d.id) {
		return parcel.EventUnknown, errs.NewObjectNotFoundError(
			"parcel in dispatch", target.TrackingCode())
	}

	if err := target.Detach(parcel.InAgency); err != nil {
		return parcel.EventUnknown, err
	}

	weight, err := d.weight.Sub(target.Weight())
	if err != nil {
		return parcel.EventUnknown, err
	}
	d.weight = weight
	d.count--
	return parcel.EventRemovedFromDispatch, nil
}

// Advance moves the dispatch forward through Open → InTransit → Received.
// Departing requires at least one parcel.
func (d *Dispatch) Advance(to DispatchStatus) error {
	if err := to.Validate(); err != nil {
		return err
	}
	allowed := dispatchTransitions()[d.status]
	valid := false
	for _, s := range allowed {
		if s == to {
			valid = true
			break
		}
	}
	if !valid {
		return errs.NewInvalidStateError(
			fmt.Sprintf("dispatch %s", d.number), d.status.String(),
			fmt.Sprintf("advance to %s", to))
	}
	if to == DispatchInTransit && d.IsEmpty() {
		return errs.NewInvalidStateError(
			fmt.Sprintf("dispatch %s", d.number), "empty", "depart")
	}

	d.status = to
	return nil
}

// CascadeStatus returns the parcel status and event type propagated to every
// attached parcel when the dispatch advances to the given status. The third
// return value is false when the transition carries no cascade.
func (d *Dispatch) CascadeStatus(to DispatchStatus) (parcel.Status, parcel.EventType, bool) {
	switch to {
	case DispatchInTransit:
		return parcel.InDispatch, parcel.EventTransportStatusChanged, true
	case DispatchReceived:
		return parcel.InWarehouse, parcel.EventReceivedInWarehouse, true
	default:
		return parcel.Unknown, parcel.EventUnknown, false
	}
}

// ReleaseReceived detaches a parcel as the dispatch is received at the
// carrier warehouse, decrementing the aggregates. The parcel's warehouse
// custody is set by the caller as part of the same transaction.
func (d *Dispatch) ReleaseReceived(target *parcel.Parcel) error {
	if d.status != DispatchReceived {
		return errs.NewInvalidStateError(
			fmt.Sprintf("dispatch %s", d.number), d.status.String(), "hand over parcels")
	}
	if !attachedHere(target, parcel.ContainmentDispatch, d.id) {
		return errs.NewObjectNotFoundError("parcel in dispatch", target.TrackingCode())
	}

	if err := target.Detach(parcel.InWarehouse); err != nil {
		return err
	}

	weight, err := d.weight.Sub(target.Weight())
	if err != nil {
		return err
	}
	d.weight = weight
	d.count--
	return nil
}

// CanDelete reports whether the dispatch may be deleted: empty and still Open.
func (d *Dispatch) CanDelete() error {
	if d.status != DispatchOpen {
		return errs.NewInvalidStateError(
			fmt.Sprintf("dispatch %s", d.number), d.status.String(), "be deleted")
	}
	if !d.IsEmpty() {
		return errs.NewInvalidStateError(
			fmt.Sprintf("dispatch %s", d.number), "not empty", "be deleted")
	}
	return nil
}

func (d *Dispatch) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Dispatch) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	d.number = number
	return nil
}

func (d *Dispatch) setAgencyID(agencyID kernel.UUID) error {
	if err := agencyID.Validate(); err != nil {
		return err
	}
	d.agencyID = agencyID
	return nil
}
