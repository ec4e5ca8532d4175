package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrLoadParcelCommandIsNotConstructed = errors.New(
		"LoadParcelCommand must be created via NewLoadParcelCommand constructor",
	)
	ErrTrackingCodeIsRequired = errors.New("tracking code is required")
)

// LoadParcelCommand represents a request to move one parcel into a
// containment unit. The same command serves pallets, dispatches, containers
// and flights; the unit kind selects the target aggregate and its
// entry rules.
type LoadParcelCommand struct { //nolint:recvcheck //using for validation
	unitKind     parcel.ContainmentKind
	unitID       kernel.UUID
	trackingCode string
	actorID      kernel.UUID

	guard guard.ConstructorGuard
}

// NewLoadParcelCommand creates a command to load a parcel into a unit.
func NewLoadParcelCommand(
	unitKind parcel.ContainmentKind,
	unitID kernel.UUID,
	trackingCode string,
	actorID kernel.UUID,
) (LoadParcelCommand, error) {
	cmd := LoadParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUnitKind(unitKind),
		cmd.setUnitID(unitID),
		cmd.setTrackingCode(trackingCode),
		cmd.setActorID(actorID),
	); err != nil {
		return LoadParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LoadParcelCommand) Validate() error {
	return c.guard.Validate(ErrLoadParcelCommandIsNotConstructed)
}

// UnitKind returns the kind of the destination unit.
func (c LoadParcelCommand) UnitKind() parcel.ContainmentKind {
	return c.unitKind
}

// UnitID returns the destination unit's identifier.
func (c LoadParcelCommand) UnitID() kernel.UUID {
	return c.unitID
}

// TrackingCode returns the tracking code of the parcel to load.
func (c LoadParcelCommand) TrackingCode() string {
	return c.trackingCode
}

// ActorID returns the acting user.
func (c LoadParcelCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *LoadParcelCommand) setUnitKind(kind parcel.ContainmentKind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	c.unitKind = kind
	return nil
}

func (c *LoadParcelCommand) setUnitID(unitID kernel.UUID) error {
	if err := unitID.Validate(); err != nil {
		return err
	}
	c.unitID = unitID
	return nil
}

func (c *LoadParcelCommand) setTrackingCode(trackingCode string) error {
	if trackingCode == "" {
		return ErrTrackingCodeIsRequired
	}
	c.trackingCode = trackingCode
	return nil
}

func (c *LoadParcelCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}
