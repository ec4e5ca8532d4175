package unit

import (
	"errors"
	"fmt"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"
)

// ErrTransportUnitIsNotConstructed is returned when a TransportUnit instance
// was not created through the NewTransportUnit or RestoreTransportUnit
// factory functions.
var ErrTransportUnitIsNotConstructed = errors.New("TransportUnit must be created via NewTransportUnit or RestoreTransportUnit")

// TransportStatus is the state machine of an international transport unit
// (container or flight).
//
//	Pending → Loading → Departed → InTransit → Arrived → CustomsHold ⇄ CustomsCleared → Unloading
//
// Arrived may skip straight to CustomsCleared, and CustomsHold may be entered
// again after clearance when customs reopens an inspection.
type TransportStatus int

const (
	// TransportUnknown represents an invalid or undefined status.
	TransportUnknown TransportStatus = iota

	// TransportPending means the unit is announced but not yet loading.
	TransportPending

	// TransportLoading means at least one parcel has been loaded.
	TransportLoading

	// TransportDeparted means the unit left the origin port or airport.
	TransportDeparted

	// TransportInTransit means the unit is en route.
	TransportInTransit

	// TransportArrived means the unit reached the destination country.
	TransportArrived

	// TransportCustomsHold means customs retained the unit for inspection.
	TransportCustomsHold

	// TransportCustomsCleared means customs released the unit.
	TransportCustomsCleared

	// TransportUnloading means parcels are being handed to the destination
	// warehouse. Terminal.
	TransportUnloading
)

func getTransportStatusStrings() map[TransportStatus]string {
	return map[TransportStatus]string{
		TransportUnknown:        "Unknown",
		TransportPending:        "Pending",
		TransportLoading:        "Loading",
		TransportDeparted:       "Departed",
		TransportInTransit:      "InTransit",
		TransportArrived:        "Arrived",
		TransportCustomsHold:    "CustomsHold",
		TransportCustomsCleared: "CustomsCleared",
		TransportUnloading:      "Unloading",
	}
}

// Validate checks that the status is a defined transport status.
func (s TransportStatus) Validate() error {
	if s <= TransportUnknown || s > TransportUnloading {
		return errs.NewValueIsInvalidErrorWithCause("transport status is invalid",
			fmt.Errorf("%d is not a valid transport status", s))
	}
	return nil
}

// String returns the status name. Implements fmt.Stringer.
func (s TransportStatus) String() string {
	if str, ok := getTransportStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

func transportTransitions() map[TransportStatus][]TransportStatus {
	return map[TransportStatus][]TransportStatus{
		TransportPending:        {TransportLoading, TransportDeparted},
		TransportLoading:        {TransportDeparted},
		TransportDeparted:       {TransportInTransit, TransportArrived},
		TransportInTransit:      {TransportArrived},
		TransportArrived:        {TransportCustomsHold, TransportCustomsCleared},
		TransportCustomsHold:    {TransportCustomsCleared},
		TransportCustomsCleared: {TransportCustomsHold, TransportUnloading},
		TransportUnloading:      {},
	}
}

// TransportUnit is the international leg of a shipment: a maritime container
// or an air flight. The two share one aggregate because their lifecycle and
// parcel rules are identical; Kind and the service compatibility check are
// the only points where they differ.
type TransportUnit struct {
	id      kernel.UUID
	number  string
	kind    parcel.ContainmentKind
	service parcel.ServiceKind
	status  TransportStatus
	weight  kernel.Weight
	count   int

	guard kernel.ConstructorGuard
}

// NewTransportUnit creates a pending transport unit. The kind must be
// ContainmentContainer or ContainmentFlight; the matching service kind is
// derived from it.
func NewTransportUnit(id kernel.UUID, number string, kind parcel.ContainmentKind) (*TransportUnit, error) {
	t := &TransportUnit{
		status: TransportPending,
		weight: kernel.ZeroWeight(),
		guard:  kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setNumber(number),
		t.setKind(kind),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTransportUnit reconstructs a transport unit from persistence.
func RestoreTransportUnit(
	id kernel.UUID,
	number string,
	kind parcel.ContainmentKind,
	status TransportStatus,
	weight kernel.Weight,
	count int,
) (*TransportUnit, error) {
	t, err := NewTransportUnit(id, number, kind)
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

	t.status = status
	t.weight = weight
	t.count = count
	return t, nil
}

// Validate ensures the unit was created through a factory function.
func (t *TransportUnit) Validate() error {
	if t == nil {
		return ErrTransportUnitIsNotConstructed
	}
	return t.guard.Validate(ErrTransportUnitIsNotConstructed)
}

// ID returns the unit's surrogate identifier.
func (t *TransportUnit) ID() kernel.UUID {
	return t.id
}

// Number returns the container number or flight number.
func (t *TransportUnit) Number() string {
	return t.number
}

// Kind returns ContainmentContainer or ContainmentFlight.
func (t *TransportUnit) Kind() parcel.ContainmentKind {
	return t.kind
}

// Service returns the service kind this unit carries.
func (t *TransportUnit) Service() parcel.ServiceKind {
	return t.service
}

// Status returns the transport status.
func (t *TransportUnit) Status() TransportStatus {
	return t.status
}

// Weight returns the running aggregate weight.
func (t *TransportUnit) Weight() kernel.Weight {
	return t.weight
}

// Count returns the running parcel count.
func (t *TransportUnit) Count() int {
	return t.count
}

// IsEmpty reports whether no parcels are attached.
func (t *TransportUnit) IsEmpty() bool {
	return t.count == 0
}

// CanAccept checks the unit-side preconditions: the unit is Pending or
// Loading, the parcel is in warehouse or agency custody, and the parcel's
// service matches the unit (maritime parcels go in containers, air parcels
// on flights).
func (t *TransportUnit) CanAccept(target *parcel.Parcel) error {
	if t.status != TransportPending && t.status != TransportLoading {
		return errs.NewInvalidStateError(
			fmt.Sprintf("%s %s", t.kind.String(), t.number), t.status.String(), "accept parcels")
	}
	if target.Status() != parcel.InWarehouse && target.Status() != parcel.InAgency {
		return errs.NewInvalidStateError(
			fmt.Sprintf("parcel %s", target.TrackingCode()), target.Status().String(),
			fmt.Sprintf("be loaded in %s", t.kind.String()))
	}
	if target.Service() != t.service {
		return errs.NewValueIsInvalidErrorWithCause("service kind is invalid",
			fmt.Errorf("%s parcel cannot be loaded in %s %s",
				target.Service(), t.service, t.kind.String()))
	}
	return nil
}

// Accept attaches the parcel and increments the aggregates. The first parcel
// moves a Pending unit to Loading. Loading ends warehouse custody, but the
// custody side lives on the Warehouse aggregate: the caller must settle the
// warehouse through ReleaseCustody in the same transaction.
func (t *TransportUnit) Accept(target *parcel.Parcel) (parcel.EventType, error) {
	if err := t.CanAccept(target); err != nil {
		return parcel.EventUnknown, err
	}
	if err := target.AttachTo(t.kind, t.id, t.number); err != nil {
		return parcel.EventUnknown, err
	}

	t.weight = t.weight.Add(target.Weight())
	t.count++
	if t.status == TransportPending {
		t.status = TransportLoading
	}

	if t.kind == parcel.ContainmentFlight {
		return parcel.EventLoadedOnFlight, nil
	}
	return parcel.EventLoadedInContainer, nil
}

// Release detaches the parcel before departure, returning it to warehouse
// status. Allowed only while Pending or Loading. The caller records which
// warehouse takes the parcel back through TakeCustody.
func (t *TransportUnit) Release(target *parcel.Parcel) (parcel.EventType, error) {
	if t.status != TransportPending && t.status != TransportLoading {
		return parcel.EventUnknown, errs.NewInvalidStateError(
			fmt.Sprintf("%s %s", t.kind.String(), t.number), t.status.String(), "release parcels")
	}
	if !attachedHere(target, t.kind, t.id) {
		return parcel.EventUnknown, errs.NewObjectNotFoundError(
			fmt.Sprintf("parcel in %s", t.kind.String()), target.TrackingCode())
	}

	if err := target.Detach(parcel.InWarehouse); err != nil {
		return parcel.EventUnknown, err
	}

	weight, err := t.weight.Sub(target.Weight())
	if err != nil {
		return parcel.EventUnknown, err
	}
	t.weight = weight
	t.count--

	if t.kind == parcel.ContainmentFlight {
		return parcel.EventRemovedFromFlight, nil
	}
	return parcel.EventRemovedFromContainer, nil
}

// Advance moves the unit along the transport state machine. Departing
// requires at least one parcel.
func (t *TransportUnit) Advance(to TransportStatus) error {
	if err := to.Validate(); err != nil {
		return err
	}
	allowed := transportTransitions()[t.status]
	valid := false
	for _, s := range allowed {
		if s == to {
			valid = true
			break
		}
	}
	if !valid {
		return errs.NewInvalidStateError(
			fmt.Sprintf("%s %s", t.kind.String(), t.number), t.status.String(),
			fmt.Sprintf("advance to %s", to))
	}
	if to == TransportDeparted && t.IsEmpty() {
		return errs.NewInvalidStateError(
			fmt.Sprintf("%s %s", t.kind.String(), t.number), "empty", "depart")
	}

	t.status = to
	return nil
}

// CascadeStatus returns the parcel status and event type propagated to every
// attached parcel when the unit advances to the given status. The third
// return value is false when the transition carries no cascade (Loading).
func (t *TransportUnit) CascadeStatus(to TransportStatus) (parcel.Status, parcel.EventType, bool) {
	switch to {
	case TransportDeparted:
		return parcel.InTransit, parcel.EventTransportDeparted, true
	case TransportInTransit:
		return parcel.InTransit, parcel.EventTransportStatusChanged, true
	case TransportArrived:
		return parcel.AtCustoms, parcel.EventTransportArrived, true
	case TransportCustomsHold:
		return parcel.AtCustoms, parcel.EventCustomsHold, true
	case TransportCustomsCleared:
		return parcel.InWarehouse, parcel.EventCustomsCleared, true
	case TransportUnloading:
		return parcel.InWarehouse, parcel.EventTransportStatusChanged, true
	default:
		return parcel.Unknown, parcel.EventUnknown, false
	}
}

// Unload detaches a parcel at the destination, leaving it in warehouse
// custody. Allowed only while Unloading; the destination warehouse is set by
// the caller in the same transaction.
func (t *TransportUnit) Unload(target *parcel.Parcel) error {
	if t.status != TransportUnloading {
		return errs.NewInvalidStateError(
			fmt.Sprintf("%s %s", t.kind.String(), t.number), t.status.String(), "unload parcels")
	}
	if !attachedHere(target, t.kind, t.id) {
		return errs.NewObjectNotFoundError(
			fmt.Sprintf("parcel in %s", t.kind.String()), target.TrackingCode())
	}

	if err := target.Detach(parcel.InWarehouse); err != nil {
		return err
	}

	weight, err := t.weight.Sub(target.Weight())
	if err != nil {
		return err
	}
	t.weight = weight
	t.count--
	return nil
}

// CanDelete reports whether the unit may be deleted: empty and never departed.
func (t *TransportUnit) CanDelete() error {
	if t.status != TransportPending && t.status != TransportLoading {
		return errs.NewInvalidStateError(
			fmt.Sprintf("%s %s", t.kind.String(), t.number), t.status.String(), "be deleted")
	}
	if !t.IsEmpty() {
		return errs.NewInvalidStateError(
			fmt.Sprintf("%s %s", t.kind.String(), t.number), "not empty", "be deleted")
	}
	return nil
}

func (t *TransportUnit) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *TransportUnit) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	t.number = number
	return nil
}

func (t *TransportUnit) setKind(kind parcel.ContainmentKind) error {
	switch kind {
	case parcel.ContainmentContainer:
		t.kind = kind
		t.service = parcel.ServiceMaritime
	case parcel.ContainmentFlight:
		t.kind = kind
		t.service = parcel.ServiceAir
	default:
		return errs.NewValueIsInvalidErrorWithCause("kind is invalid",
			fmt.Errorf("%s is not a transport unit kind", kind))
	}
	return nil
}
