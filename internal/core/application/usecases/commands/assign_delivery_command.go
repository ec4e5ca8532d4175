package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrAssignDeliveryCommandIsNotConstructed = errors.New(
		"AssignDeliveryCommand is not constructed")
	ErrAssignmentTargetIsAmbiguous = errors.New(
		"exactly one of routeID and courierID must be set")
)

// AssignDeliveryCommand hands a parcel to a courier for the last mile, either
// directly or as part of a delivery route.
//
//nolint:recvcheck //using for validation
type AssignDeliveryCommand struct {
	trackingCode string
	routeID      *kernel.UUID
	courierID    *kernel.UUID
	actorID      kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDeliveryCommand creates a new AssignDeliveryCommand.
func NewAssignDeliveryCommand(
	trackingCode string,
	routeID *kernel.UUID,
	courierID *kernel.UUID,
	actorID kernel.UUID,
) (AssignDeliveryCommand, error) {
	cmd := AssignDeliveryCommand{}
	err := errors.Join(
		cmd.setTrackingCode(trackingCode),
		cmd.setTarget(routeID, courierID),
		cmd.setActorID(actorID),
	)
	if err != nil {
		return AssignDeliveryCommand{}, err
	}

	cmd.guard = guard.NewConstructorGuard()
	return cmd, nil
}

func (c *AssignDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryCommandIsNotConstructed)
}

func (c *AssignDeliveryCommand) TrackingCode() string {
	return c.trackingCode
}

func (c *AssignDeliveryCommand) RouteID() *kernel.UUID {
	return c.routeID
}

func (c *AssignDeliveryCommand) CourierID() *kernel.UUID {
	return c.courierID
}

func (c *AssignDeliveryCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *AssignDeliveryCommand) setTrackingCode(trackingCode string) error {
	if trackingCode == "" {
		return ErrTrackingCodeIsRequired
	}
	c.trackingCode = trackingCode
	return nil
}

func (c *AssignDeliveryCommand) setTarget(routeID, courierID *kernel.UUID) error {
	if (routeID == nil) == (courierID == nil) {
		return ErrAssignmentTargetIsAmbiguous
	}
	if routeID != nil {
		if err := routeID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("routeID", err)
		}
	}
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("courierID", err)
		}
	}
	c.routeID = routeID
	c.courierID = courierID
	return nil
}

func (c *AssignDeliveryCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("actorID", err)
	}
	c.actorID = actorID
	return nil
}
