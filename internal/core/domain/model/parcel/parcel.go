package parcel

import (
	"errors"
	"fmt"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel instance was not
	// created through the NewParcel or RestoreParcel factory functions.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel")
)

// Parcel is the unit of work tracked through the logistics pipeline. It is an
// aggregate root identified by an immutable, globally unique tracking code.
//
// Parcel maintains these invariants:
//   - At most one containment reference (pallet, dispatch, container or
//     flight) is set at any time.
//   - The containment reference and the status are mutually consistent: a
//     kind-specific status such as InContainer implies an attachment to a
//     unit of that kind.
//   - Weight is strictly positive and never changes after creation.
//   - Parcels are never physically deleted, only soft-deleted through their
//     owning order.
//
// All mutations happen through containment-transfer operations; external code
// never sets status directly.
type Parcel struct {
	// id is the surrogate identifier used for persistence relations
	id kernel.UUID

	// trackingCode is the immutable human-readable identity (HBL)
	trackingCode string

	// description is the customer-supplied line item description
	description string

	// weight is the parcel weight in kilograms
	weight kernel.Weight

	// service distinguishes maritime from air shipping
	service ServiceKind

	// agencyID references the issuing agency
	agencyID kernel.UUID

	// orderID references the owning order, if any
	orderID *kernel.UUID

	// containmentKind and containmentID form the single containment reference
	containmentKind ContainmentKind
	containmentID   *kernel.UUID

	// warehouseID tracks physical custody, orthogonal to containment
	warehouseID *kernel.UUID

	// status is the current pipeline state
	status Status

	// statusDetail is a human-readable elaboration embedding the unit number
	statusDetail string

	// deleted marks the parcel soft-deleted via its owning order
	deleted bool

	guard kernel.ConstructorGuard
}

// NewParcel creates a parcel at order intake. The parcel starts InAgency with
// no containment reference.
//
// All parameters are validated; errors are aggregated with errors.Join.
func NewParcel(
	id kernel.UUID,
	trackingCode string,
	description string,
	weight kernel.Weight,
	service ServiceKind,
	agencyID kernel.UUID,
	orderID *kernel.UUID,
) (*Parcel, error) {
	p := &Parcel{
		status:       InAgency,
		statusDetail: "Received at agency",
		guard:        kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setTrackingCode(trackingCode),
		p.setDescription(description),
		p.setWeight(weight),
		p.setService(service),
		p.setAgencyID(agencyID),
		p.setOrderID(orderID),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel reconstructs a parcel from persistence, including its
// containment reference, warehouse custody and soft-delete marker. The
// containment/status consistency invariant is re-checked on restore.
func RestoreParcel(
	id kernel.UUID,
	trackingCode string,
	description string,
	weight kernel.Weight,
	service ServiceKind,
	agencyID kernel.UUID,
	orderID *kernel.UUID,
	containmentKind ContainmentKind,
	containmentID *kernel.UUID,
	warehouseID *kernel.UUID,
	status Status,
	statusDetail string,
	deleted bool,
) (*Parcel, error) {
	p := &Parcel{
		statusDetail: statusDetail,
		deleted:      deleted,
		guard:        kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setTrackingCode(trackingCode),
		p.setDescription(description),
		p.setWeight(weight),
		p.setService(service),
		p.setAgencyID(agencyID),
		p.setOrderID(orderID),
	); err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	if !status.IsBase() {
		return nil, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is an order-only status", status))
	}
	p.status = status

	if containmentKind != ContainmentNone {
		if containmentID == nil {
			return nil, errs.NewValueIsRequiredError("containmentID")
		}
		if err := containmentID.Validate(); err != nil {
			return nil, err
		}
		if err := containmentKind.Validate(); err != nil {
			return nil, err
		}
	}
	p.containmentKind = containmentKind
	p.containmentID = containmentID

	if warehouseID != nil {
		if err := warehouseID.Validate(); err != nil {
			return nil, err
		}
	}
	p.warehouseID = warehouseID

	if err := p.checkConsistency(); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the parcel was created through a factory function.
func (p *Parcel) Validate() error {
	if p == nil {
		return ErrParcelIsNotConstructed
	}
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

// IsEqual compares two parcels by identity.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's surrogate identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// TrackingCode returns the immutable human-readable tracking code.
func (p *Parcel) TrackingCode() string {
	return p.trackingCode
}

// Description returns the line item description.
func (p *Parcel) Description() string {
	return p.description
}

// Weight returns the parcel weight.
func (p *Parcel) Weight() kernel.Weight {
	return p.weight
}

// Service returns the shipping service kind.
func (p *Parcel) Service() ServiceKind {
	return p.service
}

// AgencyID returns the issuing agency reference.
func (p *Parcel) AgencyID() kernel.UUID {
	return p.agencyID
}

// OrderID returns the owning order reference, or nil.
func (p *Parcel) OrderID() *kernel.UUID {
	return p.orderID
}

// Status returns the current pipeline status.
func (p *Parcel) Status() Status {
	return p.status
}

// StatusDetail returns the human-readable status elaboration.
func (p *Parcel) StatusDetail() string {
	return p.statusDetail
}

// Containment returns the current containment reference. Kind is
// ContainmentNone and the ID nil when the parcel is unattached.
func (p *Parcel) Containment() (ContainmentKind, *kernel.UUID) {
	return p.containmentKind, p.containmentID
}

// IsAttached reports whether the parcel is attached to any containment unit.
func (p *Parcel) IsAttached() bool {
	return p.containmentKind != ContainmentNone
}

// WarehouseID returns the current custody warehouse reference, or nil.
func (p *Parcel) WarehouseID() *kernel.UUID {
	return p.warehouseID
}

// IsDeleted reports whether the parcel has been soft-deleted.
func (p *Parcel) IsDeleted() bool {
	return p.deleted
}

// AttachTo sets the containment reference and moves the parcel to the unit
// kind's designated loaded status. The status detail embeds the destination
// unit's human-readable number.
//
// AttachTo enforces the parcel-side preconditions of the transfer protocol:
// the parcel must not be soft-deleted and must not already be attached to
// another unit. The unit-side preconditions (entry allow-list, accepting
// state, compatibility) are checked by the unit before this is called.
func (p *Parcel) AttachTo(kind ContainmentKind, unitID kernel.UUID, unitNumber string) error {
	if p.deleted {
		return errs.NewInvalidStateError(
			fmt.Sprintf("parcel %s", p.trackingCode), "deleted", "be attached")
	}
	if p.IsAttached() {
		return errs.NewObjectAlreadyAttachedError("parcel", p.trackingCode,
			fmt.Sprintf("%s %s", p.containmentKind, p.containmentID))
	}
	if err := kind.Validate(); err != nil {
		return err
	}
	if err := unitID.Validate(); err != nil {
		return err
	}

	loaded, err := kind.LoadedStatus()
	if err != nil {
		return err
	}

	p.containmentKind = kind
	p.containmentID = &unitID
	p.status = loaded
	p.statusDetail = fmt.Sprintf("Loaded in %s %s", kind, unitNumber)
	return nil
}

// Detach clears the containment reference and resets the parcel to the given
// neutral predecessor status (InAgency or InWarehouse depending on the unit
// kind it is removed from).
func (p *Parcel) Detach(reset Status) error {
	if !p.IsAttached() {
		return errs.NewInvalidStateError(
			fmt.Sprintf("parcel %s", p.trackingCode), "unattached", "be detached")
	}
	if reset != InAgency && reset != InWarehouse {
		return errs.NewValueIsInvalidErrorWithCause("reset status is invalid",
			fmt.Errorf("%s is not a neutral predecessor status", reset))
	}

	from := p.containmentKind.String()
	p.containmentKind = ContainmentNone
	p.containmentID = nil
	p.status = reset
	p.statusDetail = fmt.Sprintf("Removed from %s", from)
	return nil
}

// ApplyCascade applies a status propagated from the parcel's containment
// unit's own status change (e.g. container Departed cascades InTransit to
// every attached parcel). The parcel must currently be attached.
func (p *Parcel) ApplyCascade(status Status, detail string) error {
	if !p.IsAttached() {
		return errs.NewInvalidStateError(
			fmt.Sprintf("parcel %s", p.trackingCode), "unattached", "receive a cascaded status")
	}
	if err := status.Validate(); err != nil {
		return err
	}
	if !status.IsBase() {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is an order-only status", status))
	}

	p.status = status
	p.statusDetail = detail
	return nil
}

// ReceiveInWarehouse takes the parcel into warehouse custody and moves it to
// InWarehouse. The parcel must not be attached to an exclusive containment
// unit: parcels inside a dispatch reach the warehouse through the dispatch's
// Received cascade, which detaches them first. Entry is allowed from
// InAgency, InTransit, AtCustoms and InWarehouse (a transfer between
// warehouses); parcels already out for delivery or delivered never re-enter
// custody.
func (p *Parcel) ReceiveInWarehouse(warehouseID kernel.UUID, warehouseNumber string) error {
	if p.deleted {
		return errs.NewInvalidStateError(
			fmt.Sprintf("parcel %s", p.trackingCode), "deleted", "be received")
	}
	if p.IsAttached() {
		return errs.NewObjectAlreadyAttachedError("parcel", p.trackingCode,
			fmt.Sprintf("%s %s", p.containmentKind, p.containmentID))
	}
	switch p.status {
	case InAgency, InTransit, AtCustoms, InWarehouse:
	default:
		return errs.NewInvalidStateError(
			fmt.Sprintf("parcel %s", p.trackingCode), p.status.String(), "be received in a warehouse")
	}
	if err := warehouseID.Validate(); err != nil {
		return err
	}

	p.warehouseID = &warehouseID
	p.status = InWarehouse
	p.statusDetail = fmt.Sprintf("Received in warehouse %s", warehouseNumber)
	return nil
}

// SetWarehouse updates custody without changing status. Used when a cascade
// already produced the right status (dispatch Received, transport Unloading).
func (p *Parcel) SetWarehouse(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}
	p.warehouseID = &warehouseID
	return nil
}

// ReleaseFromWarehouse clears warehouse custody.
func (p *Parcel) ReleaseFromWarehouse() {
	p.warehouseID = nil
}

// MarkOutForDelivery moves the parcel to OutForDelivery when a delivery
// assignment is created. Allowed from InWarehouse or AtCustoms only.
func (p *Parcel) MarkOutForDelivery(detail string) error {
	if p.IsAttached() {
		return errs.NewObjectAlreadyAttachedError("parcel", p.trackingCode,
			fmt.Sprintf("%s %s", p.containmentKind, p.containmentID))
	}
	if p.status != InWarehouse && p.status != AtCustoms {
		return errs.NewInvalidStateError(
			fmt.Sprintf("parcel %s", p.trackingCode), p.status.String(), "go out for delivery")
	}

	p.status = OutForDelivery
	p.statusDetail = detail
	return nil
}

// MarkDelivered finalizes the parcel. Allowed from OutForDelivery only.
// Warehouse custody, if any remains, is released by the caller through
// Warehouse.ReleaseCustody so the warehouse aggregates move with it.
func (p *Parcel) MarkDelivered(detail string) error {
	if p.status != OutForDelivery {
		return errs.NewInvalidStateError(
			fmt.Sprintf("parcel %s", p.trackingCode), p.status.String(), "be delivered")
	}

	p.status = Delivered
	p.statusDetail = detail
	return nil
}

// SoftDelete marks the parcel deleted. Parcels are only deleted through their
// owning order and never while attached to a containment unit.
func (p *Parcel) SoftDelete() error {
	if p.IsAttached() {
		return errs.NewObjectAlreadyAttachedError("parcel", p.trackingCode,
			fmt.Sprintf("%s %s", p.containmentKind, p.containmentID))
	}
	p.deleted = true
	return nil
}

// checkConsistency verifies the containment/status invariant on restore.
func (p *Parcel) checkConsistency() error {
	if required, ok := requiredKind(p.status); ok {
		if p.containmentKind != required {
			return errs.NewValueIsInvalidErrorWithCause("parcel state is inconsistent",
				fmt.Errorf("status %s requires containment %s, found %s",
					p.status, required, p.containmentKind))
		}
	}
	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setTrackingCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("trackingCode")
	}
	p.trackingCode = code
	return nil
}

func (p *Parcel) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	p.description = description
	return nil
}

func (p *Parcel) setWeight(weight kernel.Weight) error {
	if weight.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("weight is invalid",
			errors.New("weight must be greater than 0"))
	}
	p.weight = weight
	return nil
}

func (p *Parcel) setService(service ServiceKind) error {
	if err := service.Validate(); err != nil {
		return err
	}
	p.service = service
	return nil
}

func (p *Parcel) setAgencyID(agencyID kernel.UUID) error {
	if err := agencyID.Validate(); err != nil {
		return err
	}
	p.agencyID = agencyID
	return nil
}

func (p *Parcel) setOrderID(orderID *kernel.UUID) error {
	if orderID == nil {
		return nil
	}
	if err := orderID.Validate(); err != nil {
		return err
	}
	p.orderID = orderID
	return nil
}
