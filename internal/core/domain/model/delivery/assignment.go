package delivery

import (
	"errors"
	"fmt"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

// ErrAssignmentIsNotConstructed is returned when an Assignment instance was
// not created through the NewAssignment or RestoreAssignment factory
// functions.
var ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment or RestoreAssignment")

// AssignmentStatus is the state machine of a delivery assignment:
// Assigned → OutForDelivery → Delivered | Failed. Failed assignments can be
// re-queued to OutForDelivery until the attempt budget runs out.
type AssignmentStatus int

const (
	// AssignmentUnknown represents an invalid or undefined status.
	AssignmentUnknown AssignmentStatus = iota

	// AssignmentAssigned means the parcel is booked for delivery.
	AssignmentAssigned

	// AssignmentOutForDelivery means the courier has the parcel.
	AssignmentOutForDelivery

	// AssignmentDelivered means the recipient signed for the parcel. Terminal.
	AssignmentDelivered

	// AssignmentFailed means the last attempt did not reach the recipient.
	AssignmentFailed
)

func getAssignmentStatusStrings() map[AssignmentStatus]string {
	return map[AssignmentStatus]string{
		AssignmentUnknown:        "Unknown",
		AssignmentAssigned:       "Assigned",
		AssignmentOutForDelivery: "OutForDelivery",
		AssignmentDelivered:      "Delivered",
		AssignmentFailed:         "Failed",
	}
}

// Validate checks that the status is a defined assignment status.
func (s AssignmentStatus) Validate() error {
	switch s {
	case AssignmentAssigned, AssignmentOutForDelivery, AssignmentDelivered, AssignmentFailed:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("assignment status is invalid",
			fmt.Errorf("%d is not a valid assignment status", s))
	}
}

// String returns the status name. Implements fmt.Stringer.
func (s AssignmentStatus) String() string {
	if str, ok := getAssignmentStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ProofOfDelivery captures who received the parcel and when.
type ProofOfDelivery struct {
	RecipientName string
	Note          string
	DeliveredAt   time.Time
}

// Assignment books a parcel for last-mile delivery. At most one assignment
// exists per parcel; the database enforces this with a unique index on
// parcel_id.
type Assignment struct {
	id            kernel.UUID
	parcelID      kernel.UUID
	routeID       *kernel.UUID
	courierID     *kernel.UUID
	status        AssignmentStatus
	attemptCount  int
	lastAttemptAt *time.Time
	failureNote   string
	proof         *ProofOfDelivery

	guard kernel.ConstructorGuard
}

// NewAssignment books a parcel either onto a route or directly to a courier.
// Exactly one of routeID and courierID must be set.
func NewAssignment(id, parcelID kernel.UUID, routeID, courierID *kernel.UUID) (*Assignment, error) {
	a := &Assignment{
		status: AssignmentAssigned,
		guard:  kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setParcelID(parcelID),
	); err != nil {
		return nil, err
	}

	if (routeID == nil) == (courierID == nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause("assignment target is invalid",
			errors.New("exactly one of routeID and courierID must be set"))
	}
	if routeID != nil {
		if err := routeID.Validate(); err != nil {
			return nil, err
		}
		a.routeID = routeID
	}
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
		a.courierID = courierID
	}

	return a, nil
}

// RestoreAssignment reconstructs an assignment from persistence.
func RestoreAssignment(
	id, parcelID kernel.UUID,
	routeID, courierID *kernel.UUID,
	status AssignmentStatus,
	attemptCount int,
	lastAttemptAt *time.Time,
	failureNote string,
	proof *ProofOfDelivery,
) (*Assignment, error) {
	a, err := NewAssignment(id, parcelID, routeID, courierID)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	if attemptCount < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("attemptCount is invalid",
			fmt.Errorf("%d is negative", attemptCount))
	}
	if status == AssignmentDelivered && proof == nil {
		return nil, errs.NewValueIsRequiredError("proof of delivery")
	}

	a.status = status
	a.attemptCount = attemptCount
	a.lastAttemptAt = lastAttemptAt
	a.failureNote = failureNote
	a.proof = proof
	return a, nil
}

// Validate ensures the assignment was created through a factory function.
func (a *Assignment) Validate() error {
	if a == nil {
		return ErrAssignmentIsNotConstructed
	}
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

// ID returns the assignment's surrogate identifier.
func (a *Assignment) ID() kernel.UUID {
	return a.id
}

// ParcelID returns the parcel this assignment books.
func (a *Assignment) ParcelID() kernel.UUID {
	return a.parcelID
}

// RouteID returns the route, if the assignment is route-based.
func (a *Assignment) RouteID() *kernel.UUID {
	return a.routeID
}

// CourierID returns the courier, if the assignment is direct.
func (a *Assignment) CourierID() *kernel.UUID {
	return a.courierID
}

// Status returns the assignment status.
func (a *Assignment) Status() AssignmentStatus {
	return a.status
}

// AttemptCount returns how many delivery attempts were made.
func (a *Assignment) AttemptCount() int {
	return a.attemptCount
}

// LastAttemptAt returns the time of the most recent attempt, nil before the
// first.
func (a *Assignment) LastAttemptAt() *time.Time {
	return a.lastAttemptAt
}

// Proof returns the proof of delivery, nil until delivered.
func (a *Assignment) Proof() *ProofOfDelivery {
	return a.proof
}

// Dispatch hands the parcel to the courier: Assigned → OutForDelivery.
func (a *Assignment) Dispatch() error {
	if a.status != AssignmentAssigned && a.status != AssignmentFailed {
		return errs.NewInvalidStateError("assignment", a.status.String(), "go out for delivery")
	}
	a.status = AssignmentOutForDelivery
	return nil
}

// RecordDelivered closes the assignment with proof of delivery.
func (a *Assignment) RecordDelivered(recipientName, note string, at time.Time) error {
	if a.status != AssignmentOutForDelivery {
		return errs.NewInvalidStateError("assignment", a.status.String(), "be delivered")
	}
	if recipientName == "" {
		return errs.NewValueIsRequiredError("recipientName")
	}
	if at.IsZero() {
		at = time.Now().UTC()
	}

	a.attemptCount++
	attemptAt := at
	a.lastAttemptAt = &attemptAt
	a.proof = &ProofOfDelivery{RecipientName: recipientName, Note: note, DeliveredAt: at}
	a.status = AssignmentDelivered
	return nil
}

// RecordFailed records an unsuccessful attempt. The assignment moves to
// Failed and can be re-queued via Dispatch.
func (a *Assignment) RecordFailed(note string, at time.Time) error {
	if a.status != AssignmentOutForDelivery {
		return errs.NewInvalidStateError("assignment", a.status.String(), "record a failed attempt")
	}
	if at.IsZero() {
		at = time.Now().UTC()
	}

	a.attemptCount++
	attemptAt := at
	a.lastAttemptAt = &attemptAt
	a.failureNote = note
	a.status = AssignmentFailed
	return nil
}

// FailureNote returns the note from the most recent failed attempt.
func (a *Assignment) FailureNote() string {
	return a.failureNote
}

func (a *Assignment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Assignment) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	a.parcelID = parcelID
	return nil
}
