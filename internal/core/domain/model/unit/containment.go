package unit

import (
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
)

// Containment is the shared transfer protocol implemented by every exclusive
// containment unit (Pallet, Dispatch, TransportUnit). The load/unload command
// handlers operate on this interface so the precondition and effect sequence
// is written once.
//
// Accept and Release mutate both sides: the unit's aggregates and the
// parcel's containment reference move together, so they cannot diverge within
// a transaction.
type Containment interface {
	// ID returns the unit's surrogate identifier.
	ID() kernel.UUID

	// Number returns the unit's sequential human-readable number.
	Number() string

	// Kind returns the containment kind recorded on attached parcels.
	Kind() parcel.ContainmentKind

	// CanAccept checks every unit-side precondition for adding the parcel:
	// accepting state, entry allow-list over the parcel's status, and
	// unit-specific compatibility. It performs no mutation.
	CanAccept(p *parcel.Parcel) error

	// Accept attaches the parcel and updates aggregates. If the unit was in
	// its initial status it advances to its in-progress status. Returns the
	// event type to append to the parcel's trail.
	Accept(p *parcel.Parcel) (parcel.EventType, error)

	// Release detaches the parcel, decrements aggregates and resets the
	// parcel to the unit's neutral predecessor status. Allowed only while
	// the unit is still in an early, mutable status. Returns the event type
	// to append.
	Release(p *parcel.Parcel) (parcel.EventType, error)
}

// attachedHere verifies that the parcel's containment reference points at
// this unit. Shared by the Release implementations.
func attachedHere(p *parcel.Parcel, kind parcel.ContainmentKind, id kernel.UUID) bool {
	gotKind, gotID := p.Containment()
	return gotKind == kind && gotID != nil && gotID.IsEqual(id)
}
