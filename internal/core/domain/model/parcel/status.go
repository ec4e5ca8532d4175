package parcel

import (
	"fmt"

	"parceltrack/internal/pkg/errs"
)

// Status represents the lifecycle state of a parcel as it moves through the
// logistics pipeline, from agency intake to last-mile delivery.
//
// Base statuses are states a parcel itself can hold. They form a fixed
// advancement order used by the order-status aggregator:
//
//	InAgency < InPallet < InDispatch < InWarehouse < InContainer < InFlight
//	         < InTransit < AtCustoms < OutForDelivery < Delivered
//
// Partial statuses are order-only composites: an order whose parcels are split
// across stages carries the partial counterpart of the most advanced stage
// (e.g. some parcels InContainer, some behind: PartiallyInContainer). Parcels
// never hold a partial status themselves.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// InAgency is the initial status assigned at order intake.
	InAgency

	// InPallet indicates the parcel is grouped on a pallet at its origin agency.
	InPallet

	// InDispatch indicates the parcel travels in an inter-agency dispatch.
	InDispatch

	// InWarehouse indicates the parcel is in carrier warehouse custody.
	InWarehouse

	// InContainer indicates the parcel is loaded in a sea container.
	InContainer

	// InFlight indicates the parcel is loaded on an air flight.
	InFlight

	// InTransit indicates the international transport unit has departed.
	InTransit

	// AtCustoms indicates the parcel awaits or undergoes customs clearance.
	AtCustoms

	// OutForDelivery indicates an active delivery assignment exists.
	OutForDelivery

	// Delivered is the final status.
	Delivered

	// PartiallyInDispatch and the remaining partial statuses are order-only
	// composites produced by the status aggregator.
	PartiallyInDispatch
	PartiallyInContainer
	PartiallyInFlight
	PartiallyInTransit
	PartiallyAtCustoms
	PartiallyOutForDelivery
	PartiallyDelivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:                 "Unknown",
		InAgency:                "InAgency",
		InPallet:                "InPallet",
		InDispatch:              "InDispatch",
		InWarehouse:             "InWarehouse",
		InContainer:             "InContainer",
		InFlight:                "InFlight",
		InTransit:               "InTransit",
		AtCustoms:               "AtCustoms",
		OutForDelivery:          "OutForDelivery",
		Delivered:               "Delivered",
		PartiallyInDispatch:     "PartiallyInDispatch",
		PartiallyInContainer:    "PartiallyInContainer",
		PartiallyInFlight:       "PartiallyInFlight",
		PartiallyInTransit:      "PartiallyInTransit",
		PartiallyAtCustoms:      "PartiallyAtCustoms",
		PartiallyOutForDelivery: "PartiallyOutForDelivery",
		PartiallyDelivered:      "PartiallyDelivered",
	}
}

// basePriority defines the advancement order of base statuses. Higher values
// are further along the pipeline.
func basePriority() map[Status]int {
	return map[Status]int{
		InAgency:       1,
		InPallet:       2,
		InDispatch:     3,
		InWarehouse:    4,
		InContainer:    5,
		InFlight:       6,
		InTransit:      7,
		AtCustoms:      8,
		OutForDelivery: 9,
		Delivered:      10,
	}
}

// partialCounterparts maps a base status to its order-only partial variant.
// Statuses absent from the map (InAgency, InPallet, InWarehouse) have no
// partial counterpart: the aggregator returns the base status itself for them.
func partialCounterparts() map[Status]Status {
	return map[Status]Status{
		InDispatch:     PartiallyInDispatch,
		InContainer:    PartiallyInContainer,
		InFlight:       PartiallyInFlight,
		InTransit:      PartiallyInTransit,
		AtCustoms:      PartiallyAtCustoms,
		OutForDelivery: PartiallyOutForDelivery,
		Delivered:      PartiallyDelivered,
	}
}

// Validate checks that the Status is a defined value other than Unknown.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, or "Unknown" for
// undefined values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsBase reports whether the status is one a parcel itself can hold, as
// opposed to an order-only partial status.
func (s Status) IsBase() bool {
	_, ok := basePriority()[s]
	return ok
}

// Priority returns the advancement rank of a base status. The second return
// value is false for partial and undefined statuses.
func (s Status) Priority() (int, bool) {
	p, ok := basePriority()[s]
	return p, ok
}

// PartialCounterpart returns the order-only partial variant of a base status.
// The second return value is false when no counterpart is defined, in which
// case the aggregator uses the base status unchanged.
func (s Status) PartialCounterpart() (Status, bool) {
	p, ok := partialCounterparts()[s]
	return p, ok
}
