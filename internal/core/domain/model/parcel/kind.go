package parcel

import (
	"fmt"

	"parceltrack/internal/pkg/errs"
)

// ContainmentKind identifies which kind of containment unit a parcel is
// attached to. A parcel is attached to at most one unit at any time; the
// warehouse custody reference is tracked separately because it is orthogonal
// to containment.
type ContainmentKind int

const (
	// ContainmentNone means the parcel is not attached to any unit.
	ContainmentNone ContainmentKind = iota

	// ContainmentPallet groups parcels inside their origin agency.
	ContainmentPallet

	// ContainmentDispatch moves parcels between agencies and the carrier.
	ContainmentDispatch

	// ContainmentContainer is the maritime international transport unit.
	ContainmentContainer

	// ContainmentFlight is the air international transport unit.
	ContainmentFlight
)

func getContainmentKindStrings() map[ContainmentKind]string {
	return map[ContainmentKind]string{
		ContainmentNone:      "None",
		ContainmentPallet:    "Pallet",
		ContainmentDispatch:  "Dispatch",
		ContainmentContainer: "Container",
		ContainmentFlight:    "Flight",
	}
}

// String returns the human-readable name of the containment kind.
func (k ContainmentKind) String() string {
	if s, ok := getContainmentKindStrings()[k]; ok {
		return s
	}
	return "None"
}

// Validate checks that the kind names an actual unit kind (not ContainmentNone).
func (k ContainmentKind) Validate() error {
	switch k {
	case ContainmentPallet, ContainmentDispatch, ContainmentContainer, ContainmentFlight:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("containment kind is invalid",
			fmt.Errorf("%d is not a valid containment kind", k))
	}
}

// LoadedStatus returns the parcel status designated for parcels attached to
// this kind of unit.
func (k ContainmentKind) LoadedStatus() (Status, error) {
	switch k {
	case ContainmentPallet:
		return InPallet, nil
	case ContainmentDispatch:
		return InDispatch, nil
	case ContainmentContainer:
		return InContainer, nil
	case ContainmentFlight:
		return InFlight, nil
	default:
		return Unknown, errs.NewValueIsInvalidErrorWithCause("containment kind is invalid",
			fmt.Errorf("%d has no loaded status", k))
	}
}

// requiredKind maps kind-specific loaded statuses back to the kind they
// imply. Statuses outside this map carry no containment requirement: a parcel
// can be InTransit while attached to a container or a flight, and InWarehouse
// after customs clearance while still physically inside the unit.
func requiredKind(s Status) (ContainmentKind, bool) {
	switch s {
	case InPallet:
		return ContainmentPallet, true
	case InDispatch:
		return ContainmentDispatch, true
	case InContainer:
		return ContainmentContainer, true
	case InFlight:
		return ContainmentFlight, true
	default:
		return ContainmentNone, false
	}
}

// ServiceKind distinguishes maritime from air shipping service. Containers
// accept only maritime parcels and flights only air parcels.
type ServiceKind int

const (
	// ServiceUnknown represents an invalid or undefined service kind.
	ServiceUnknown ServiceKind = iota

	// ServiceMaritime ships by sea container.
	ServiceMaritime

	// ServiceAir ships by air flight.
	ServiceAir
)

func getServiceKindStrings() map[ServiceKind]string {
	return map[ServiceKind]string{
		ServiceUnknown:  "Unknown",
		ServiceMaritime: "Maritime",
		ServiceAir:      "Air",
	}
}

// String returns the human-readable name of the service kind.
func (s ServiceKind) String() string {
	if str, ok := getServiceKindStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks that the service kind is Maritime or Air.
func (s ServiceKind) Validate() error {
	if s != ServiceMaritime && s != ServiceAir {
		return errs.NewValueIsInvalidErrorWithCause("service kind is invalid",
			fmt.Errorf("%d is not a valid service kind", s))
	}
	return nil
}

// Code returns the single-letter service code embedded in tracking codes.
func (s ServiceKind) Code() string {
	switch s {
	case ServiceMaritime:
		return "M"
	case ServiceAir:
		return "A"
	default:
		return "?"
	}
}
