package delivery

import (
	"errors"
	"fmt"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

// ErrRouteIsNotConstructed is returned when a Route instance was not created
// through the NewRoute or RestoreRoute factory functions.
var ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute or RestoreRoute")

// RouteStatus is the state machine of a delivery route:
// Planned → InProgress → Completed.
type RouteStatus int

const (
	// RouteUnknown represents an invalid or undefined status.
	RouteUnknown RouteStatus = iota

	// RoutePlanned accepts assignments.
	RoutePlanned

	// RouteInProgress means the courier is out delivering.
	RouteInProgress

	// RouteCompleted means the run is over. Terminal.
	RouteCompleted
)

func getRouteStatusStrings() map[RouteStatus]string {
	return map[RouteStatus]string{
		RouteUnknown:    "Unknown",
		RoutePlanned:    "Planned",
		RouteInProgress: "InProgress",
		RouteCompleted:  "Completed",
	}
}

// Validate checks that the status is a defined route status.
func (s RouteStatus) Validate() error {
	if s != RoutePlanned && s != RouteInProgress && s != RouteCompleted {
		return errs.NewValueIsInvalidErrorWithCause("route status is invalid",
			fmt.Errorf("%d is not a valid route status", s))
	}
	return nil
}

// String returns the status name. Implements fmt.Stringer.
func (s RouteStatus) String() string {
	if str, ok := getRouteStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Route is one courier's delivery run for one day.
type Route struct {
	id        kernel.UUID
	courierID kernel.UUID
	date      time.Time
	status    RouteStatus
	count     int

	guard kernel.ConstructorGuard
}

// NewRoute creates a planned route for the given courier and day. The date is
// truncated to midnight UTC.
func NewRoute(id kernel.UUID, courierID kernel.UUID, date time.Time) (*Route, error) {
	r := &Route{
		status: RoutePlanned,
		guard:  kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setCourierID(courierID),
	); err != nil {
		return nil, err
	}
	if date.IsZero() {
		return nil, errs.NewValueIsRequiredError("date")
	}
	r.date = date.UTC().Truncate(24 * time.Hour)

	return r, nil
}

// RestoreRoute reconstructs a route from persistence.
func RestoreRoute(
	id kernel.UUID,
	courierID kernel.UUID,
	date time.Time,
	status RouteStatus,
	count int,
) (*Route, error) {
	r, err := NewRoute(id, courierID, date)
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

	r.status = status
	r.count = count
	return r, nil
}

// Validate ensures the route was created through a factory function.
func (r *Route) Validate() error {
	if r == nil {
		return ErrRouteIsNotConstructed
	}
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

// ID returns the route's surrogate identifier.
func (r *Route) ID() kernel.UUID {
	return r.id
}

// CourierID returns the courier assigned to the route.
func (r *Route) CourierID() kernel.UUID {
	return r.courierID
}

// Date returns the route's calendar day at midnight UTC.
func (r *Route) Date() time.Time {
	return r.date
}

// Status returns the route status.
func (r *Route) Status() RouteStatus {
	return r.status
}

// Count returns the number of assignments on the route.
func (r *Route) Count() int {
	return r.count
}

// AddAssignment increments the assignment count. Only planned routes accept
// new assignments.
func (r *Route) AddAssignment() error {
	if r.status != RoutePlanned {
		return errs.NewInvalidStateError("route", r.status.String(), "accept assignments")
	}
	r.count++
	return nil
}

// Start moves the route to InProgress. Requires at least one assignment.
func (r *Route) Start() error {
	if r.status != RoutePlanned {
		return errs.NewInvalidStateError("route", r.status.String(), "start")
	}
	if r.count == 0 {
		return errs.NewInvalidStateError("route", "empty", "start")
	}
	r.status = RouteInProgress
	return nil
}

// Complete moves the route to Completed.
func (r *Route) Complete() error {
	if r.status != RouteInProgress {
		return errs.NewInvalidStateError("route", r.status.String(), "complete")
	}
	r.status = RouteCompleted
	return nil
}

func (r *Route) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Route) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	r.courierID = courierID
	return nil
}
