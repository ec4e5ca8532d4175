package parcel

import (
	"errors"
	"fmt"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

// ErrEventIsNotConstructed is returned when an Event instance was not created
// through the NewEvent or RestoreEvent factory functions.
var ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent or RestoreEvent")

// EventType classifies entries in a parcel's audit trail. The set is closed:
// external collaborators render events through a fixed type-to-message table
// and must never encounter an unclassified entry.
type EventType int

const (
	// EventUnknown represents an invalid or undefined event type.
	EventUnknown EventType = iota

	EventCreated
	EventLoadedOnPallet
	EventRemovedFromPallet
	EventAddedToDispatch
	EventRemovedFromDispatch
	EventReceivedInWarehouse
	EventLoadedInContainer
	EventRemovedFromContainer
	EventLoadedOnFlight
	EventRemovedFromFlight
	EventTransportDeparted
	EventTransportArrived
	EventCustomsHold
	EventCustomsCleared
	EventTransportStatusChanged
	EventOutForDelivery
	EventDeliveryAttempted
	EventDelivered
)

func getEventTypeStrings() map[EventType]string {
	return map[EventType]string{
		EventUnknown:                "Unknown",
		EventCreated:                "Created",
		EventLoadedOnPallet:         "LoadedOnPallet",
		EventRemovedFromPallet:      "RemovedFromPallet",
		EventAddedToDispatch:        "AddedToDispatch",
		EventRemovedFromDispatch:    "RemovedFromDispatch",
		EventReceivedInWarehouse:    "ReceivedInWarehouse",
		EventLoadedInContainer:      "LoadedInContainer",
		EventRemovedFromContainer:   "RemovedFromContainer",
		EventLoadedOnFlight:         "LoadedOnFlight",
		EventRemovedFromFlight:      "RemovedFromFlight",
		EventTransportDeparted:      "TransportDeparted",
		EventTransportArrived:       "TransportArrived",
		EventCustomsHold:            "CustomsHold",
		EventCustomsCleared:         "CustomsCleared",
		EventTransportStatusChanged: "TransportStatusChanged",
		EventOutForDelivery:         "OutForDelivery",
		EventDeliveryAttempted:      "DeliveryAttempted",
		EventDelivered:              "Delivered",
	}
}

// publicMessages maps event types to the customer-facing message shown on the
// tracking page. Types absent from this map are internal: they expose
// operational detail (pallet moves, removals, generic transport updates) that
// customers never see.
func publicMessages() map[EventType]string {
	return map[EventType]string{
		EventCreated:             "Parcel registered",
		EventAddedToDispatch:     "Left origin agency",
		EventReceivedInWarehouse: "Received at carrier warehouse",
		EventLoadedInContainer:   "Loaded for international transport",
		EventLoadedOnFlight:      "Loaded for international transport",
		EventTransportDeparted:   "International transport departed",
		EventTransportArrived:    "Arrived in destination country",
		EventCustomsHold:         "In customs clearance",
		EventCustomsCleared:      "Customs cleared",
		EventOutForDelivery:      "Out for delivery",
		EventDeliveryAttempted:   "Delivery attempted",
		EventDelivered:           "Delivered",
	}
}

// Validate checks that the event type is a defined value other than EventUnknown.
func (t EventType) Validate() error {
	if t == EventUnknown {
		return errs.NewValueIsInvalidErrorWithCause("event type is invalid",
			fmt.Errorf("%d is not a valid event type", t))
	}
	if _, ok := getEventTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("event type is invalid",
			fmt.Errorf("%d is not a valid event type", t))
	}
	return nil
}

// String returns the name of the event type. Implements fmt.Stringer.
func (t EventType) String() string {
	if s, ok := getEventTypeStrings()[t]; ok {
		return s
	}
	return "Unknown"
}

// IsPublic reports whether the event type is visible on the customer-facing
// tracking page.
func (t EventType) IsPublic() bool {
	_, ok := publicMessages()[t]
	return ok
}

// PublicMessage returns the customer-facing message for the event type. The
// second return value is false for internal types.
func (t EventType) PublicMessage() (string, bool) {
	msg, ok := publicMessages()[t]
	return msg, ok
}

// Event is one append-only entry in a parcel's audit trail. It records who
// caused a transition, when, the resulting parcel status, and a reference to
// whichever containment unit triggered it (at most one).
//
// Events are immutable: once appended they are never updated or deleted, and
// their creation order defines the canonical history shown on tracking pages.
// The numeric ID is assigned by the store on append and is zero until then.
type Event struct {
	id              int64
	parcelID        kernel.UUID
	eventType       EventType
	resultingStatus Status
	actorID         kernel.UUID
	note            string
	unitKind        ContainmentKind
	unitID          *kernel.UUID
	createdAt       time.Time

	guard kernel.ConstructorGuard
}

// NewEvent creates an audit trail entry ready to be appended. unitKind and
// unitID reference the containment unit that caused the transition; pass
// ContainmentNone and nil for events with no unit involvement (creation,
// warehouse receipt, delivery).
func NewEvent(
	parcelID kernel.UUID,
	eventType EventType,
	resultingStatus Status,
	actorID kernel.UUID,
	note string,
	unitKind ContainmentKind,
	unitID *kernel.UUID,
) (*Event, error) {
	e := &Event{
		note:      note,
		createdAt: time.Now().UTC(),
		guard:     kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setParcelID(parcelID),
		e.setEventType(eventType),
		e.setResultingStatus(resultingStatus),
		e.setActorID(actorID),
		e.setUnitReference(unitKind, unitID),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreEvent reconstructs an audit trail entry from persistence.
func RestoreEvent(
	id int64,
	parcelID kernel.UUID,
	eventType EventType,
	resultingStatus Status,
	actorID kernel.UUID,
	note string,
	unitKind ContainmentKind,
	unitID *kernel.UUID,
	createdAt time.Time,
) (*Event, error) {
	e, err := NewEvent(parcelID, eventType, resultingStatus, actorID, note, unitKind, unitID)
	if err != nil {
		return nil, err
	}
	e.id = id
	e.createdAt = createdAt
	return e, nil
}

// Validate ensures the event was created through a factory function.
func (e *Event) Validate() error {
	if e == nil {
		return ErrEventIsNotConstructed
	}
	return e.guard.Validate(ErrEventIsNotConstructed)
}

// ID returns the store-assigned identifier, zero before the event is appended.
func (e *Event) ID() int64 {
	return e.id
}

// ParcelID returns the parcel the event belongs to.
func (e *Event) ParcelID() kernel.UUID {
	return e.parcelID
}

// Type returns the event classification.
func (e *Event) Type() EventType {
	return e.eventType
}

// ResultingStatus returns the parcel status after the transition.
func (e *Event) ResultingStatus() Status {
	return e.resultingStatus
}

// ActorID returns the user who caused the transition.
func (e *Event) ActorID() kernel.UUID {
	return e.actorID
}

// Note returns the free-text note attached to the event.
func (e *Event) Note() string {
	return e.note
}

// UnitReference returns the containment unit that triggered the event.
// Kind is ContainmentNone and the ID nil when no unit was involved.
func (e *Event) UnitReference() (ContainmentKind, *kernel.UUID) {
	return e.unitKind, e.unitID
}

// CreatedAt returns the event timestamp.
func (e *Event) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Event) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	e.parcelID = parcelID
	return nil
}

func (e *Event) setEventType(eventType EventType) error {
	if err := eventType.Validate(); err != nil {
		return err
	}
	e.eventType = eventType
	return nil
}

func (e *Event) setResultingStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	e.resultingStatus = status
	return nil
}

func (e *Event) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	e.actorID = actorID
	return nil
}

func (e *Event) setUnitReference(kind ContainmentKind, unitID *kernel.UUID) error {
	if kind == ContainmentNone {
		if unitID != nil {
			return errs.NewValueIsInvalidErrorWithCause("unit reference is invalid",
				errors.New("unit ID provided without a containment kind"))
		}
		return nil
	}
	if err := kind.Validate(); err != nil {
		return err
	}
	if unitID == nil {
		return errs.NewValueIsRequiredError("unitID")
	}
	if err := unitID.Validate(); err != nil {
		return err
	}
	e.unitKind = kind
	e.unitID = unitID
	return nil
}
