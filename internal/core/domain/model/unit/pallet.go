package unit

import (
	"errors"
	"fmt"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"
)

// ErrPalletIsNotConstructed is returned when a Pallet instance was not
// created through the NewPallet or RestorePallet factory functions.
var ErrPalletIsNotConstructed = errors.New("Pallet must be created via NewPallet or RestorePallet")

// PalletStatus is the two-state machine of a pallet.
//
//	Open ⇄ Sealed
//
// Sealing requires at least one parcel and freezes the pallet's content;
// unsealing is blocked once the pallet has been attached to a dispatch.
type PalletStatus int

const (
	// PalletUnknown represents an invalid or undefined status.
	PalletUnknown PalletStatus = iota

	// PalletOpen accepts parcel adds and removes.
	PalletOpen

	// PalletSealed freezes the pallet content for dispatch.
	PalletSealed
)

func getPalletStatusStrings() map[PalletStatus]string {
	return map[PalletStatus]string{
		PalletUnknown: "Unknown",
		PalletOpen:    "Open",
		PalletSealed:  "Sealed",
	}
}

// Validate checks that the status is Open or Sealed.
func (s PalletStatus) Validate() error {
	if s != PalletOpen && s != PalletSealed {
		return errs.NewValueIsInvalidErrorWithCause("pallet status is invalid",
			fmt.Errorf("%d is not a valid pallet status", s))
	}
	return nil
}

// String returns the status name. Implements fmt.Stringer.
func (s PalletStatus) String() string {
	if str, ok := getPalletStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Pallet groups parcels inside their origin agency before inter-agency
// dispatch. Only parcels of the same agency may share a pallet.
//
// Aggregate invariant: weight and count always equal the sum and number of
// currently attached parcels, maintained incrementally by Accept/Release.
type Pallet struct {
	id         kernel.UUID
	number     string
	agencyID   kernel.UUID
	dispatchID *kernel.UUID
	status     PalletStatus
	weight     kernel.Weight
	count      int

	guard kernel.ConstructorGuard
}

// NewPallet creates an empty open pallet for the given agency.
func NewPallet(id kernel.UUID, number string, agencyID kernel.UUID) (*Pallet, error) {
	p := &Pallet{
		status: PalletOpen,
		weight: kernel.ZeroWeight(),
		guard:  kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setNumber(number),
		p.setAgencyID(agencyID),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePallet reconstructs a pallet from persistence.
func RestorePallet(
	id kernel.UUID,
	number string,
	agencyID kernel.UUID,
	dispatchID *kernel.UUID,
	status PalletStatus,
	weight kernel.Weight,
	count int,
) (*Pallet, error) {
	p, err := NewPallet(id, number, agencyID)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if dispatchID != nil {
		if err = dispatchID.Validate(); err != nil {
			return nil, err
		}
	}
	if count < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("count is invalid",
			fmt.Errorf("%d is negative", count))
	}

	p.status = status
	p.dispatchID = dispatchID
	p.weight = weight
	p.count = count
	return p, nil
}

// Validate ensures the pallet was created through a factory function.
func (p *Pallet) Validate() error {
	if p == nil {
		return ErrPalletIsNotConstructed
	}
	return p.guard.Validate(ErrPalletIsNotConstructed)
}

// ID returns the pallet's surrogate identifier.
func (p *Pallet) ID() kernel.UUID {
	return p.id
}

// Number returns the human-readable pallet number.
func (p *Pallet) Number() string {
	return p.number
}

// Kind returns parcel.ContainmentPallet.
func (p *Pallet) Kind() parcel.ContainmentKind {
	return parcel.ContainmentPallet
}

// AgencyID returns the owning agency.
func (p *Pallet) AgencyID() kernel.UUID {
	return p.agencyID
}

// DispatchID returns the dispatch this pallet was loaded into, or nil.
func (p *Pallet) DispatchID() *kernel.UUID {
	return p.dispatchID
}

// Status returns the pallet status.
func (p *Pallet) Status() PalletStatus {
	return p.status
}

// Weight returns the running aggregate weight.
func (p *Pallet) Weight() kernel.Weight {
	return p.weight
}

// Count returns the running parcel count.
func (p *Pallet) Count() int {
	return p.count
}

// IsEmpty reports whether no parcels are attached.
func (p *Pallet) IsEmpty() bool {
	return p.count == 0
}

// CanAccept checks the pallet-side preconditions: the pallet is Open, the
// parcel is InAgency, and both belong to the same agency.
func (p *Pallet) CanAccept(target *parcel.Parcel) error {
	if p.status != PalletOpen {
		return errs.NewInvalidStateError(
			fmt.Sprintf("pallet %s", p.number), p.status.String(), "accept parcels")
	}
	if target.Status() != parcel.InAgency {
		return errs.NewInvalidStateError(
			fmt.Sprintf("parcel %s", target.TrackingCode()), target.Status().String(),
			"enter a pallet")
	}
	if !target.AgencyID().IsEqual(p.agencyID) {
		return errs.NewValueIsInvalidErrorWithCause("agency mismatch",
			fmt.Errorf("parcel %s belongs to a different agency than pallet %s",
				target.TrackingCode(), p.number))
	}
	return nil
}

// Accept attaches the parcel and increments the aggregates.
func (p *Pallet) Accept(target *parcel.Parcel) (parcel.EventType, error) {
	if err := p.CanAccept(target); err != nil {
		return parcel.EventUnknown, err
	}
	if err := target.AttachTo(parcel.ContainmentPallet, p.id, p.number); err != nil {
		return parcel.EventUnknown, err
	}

	p.weight = p.weight.Add(target.Weight())
	p.count++
	return parcel.EventLoadedOnPallet, nil
}

// Release detaches the parcel, resetting it to InAgency. Allowed only while
// the pallet is Open.
func (p *Pallet) Release(target *parcel.Parcel) (parcel.EventType, error) {
	if p.status != PalletOpen {
		return parcel.EventUnknown, errs.NewInvalidStateError(
			fmt.Sprintf("pallet %s", p.number), p.status.String(), "release parcels")
	}
	if !attachedHere(target, parcel.ContainmentPallet, p.id) {
		return parcel.EventUnknown, errs.NewObjectNotFoundError(
			"parcel in pallet", target.TrackingCode())
	}

	if err := target.Detach(parcel.InAgency); err != nil {
		return parcel.EventUnknown, err
	}

	weight, err := p.weight.Sub(target.Weight())
	if err != nil {
		return parcel.EventUnknown, err
	}
	p.weight = weight
	p.count--
	return parcel.EventRemovedFromPallet, nil
}

// Seal closes the pallet for dispatch. Requires at least one parcel.
func (p *Pallet) Seal() error {
	if p.status != PalletOpen {
		return errs.NewInvalidStateError(
			fmt.Sprintf("pallet %s", p.number), p.status.String(), "be sealed")
	}
	if p.IsEmpty() {
		return errs.NewInvalidStateError(
			fmt.Sprintf("pallet %s", p.number), "empty", "be sealed")
	}

	p.status = PalletSealed
	return nil
}

// Unseal reopens a sealed pallet. Blocked once the pallet has been attached
// to a dispatch: its content is then part of the dispatch manifest.
func (p *Pallet) Unseal() error {
	if p.status != PalletSealed {
		return errs.NewInvalidStateError(
			fmt.Sprintf("pallet %s", p.number), p.status.String(), "be unsealed")
	}
	if p.dispatchID != nil {
		return errs.NewObjectAlreadyAttachedError("pallet", p.number,
			fmt.Sprintf("dispatch %s", p.dispatchID))
	}

	p.status = PalletOpen
	return nil
}

// AttachToDispatch records the dispatch this pallet was loaded into. The
// pallet must be sealed and not already dispatched.
func (p *Pallet) AttachToDispatch(dispatchID kernel.UUID) error {
	if p.status != PalletSealed {
		return errs.NewInvalidStateError(
			fmt.Sprintf("pallet %s", p.number), p.status.String(), "be dispatched")
	}
	if p.dispatchID != nil {
		return errs.NewObjectAlreadyAttachedError("pallet", p.number,
			fmt.Sprintf("dispatch %s", p.dispatchID))
	}
	if err := dispatchID.Validate(); err != nil {
		return err
	}

	p.dispatchID = &dispatchID
	return nil
}

// ReleaseForDispatch decrements the aggregates as a parcel is re-homed from
// the pallet into a dispatch. The parcel's containment reference moves to the
// dispatch; the pallet's history survives in the event trail.
func (p *Pallet) ReleaseForDispatch(target *parcel.Parcel) error {
	if !attachedHere(target, parcel.ContainmentPallet, p.id) {
		return errs.NewObjectNotFoundError("parcel in pallet", target.TrackingCode())
	}
	if err := target.Detach(parcel.InAgency); err != nil {
		return err
	}

	weight, err := p.weight.Sub(target.Weight())
	if err != nil {
		return err
	}
	p.weight = weight
	p.count--
	return nil
}

// CanDelete reports whether the pallet may be deleted: empty and still Open.
func (p *Pallet) CanDelete() error {
	if p.status != PalletOpen {
		return errs.NewInvalidStateError(
			fmt.Sprintf("pallet %s", p.number), p.status.String(), "be deleted")
	}
	if !p.IsEmpty() {
		return errs.NewInvalidStateError(
			fmt.Sprintf("pallet %s", p.number), "not empty", "be deleted")
	}
	return nil
}

func (p *Pallet) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Pallet) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	p.number = number
	return nil
}

func (p *Pallet) setAgencyID(agencyID kernel.UUID) error {
	if err := agencyID.Validate(); err != nil {
		return err
	}
	p.agencyID = agencyID
	return nil
}
