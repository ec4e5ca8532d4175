package order

import (
	"errors"
	"fmt"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is a customer shipment: a group of parcels sent together by one
// agency. The order itself never moves; its composite status is reduced from
// the statuses of its parcels after every parcel mutation.
type Order struct {
	id           kernel.UUID
	number       string
	agencyID     kernel.UUID
	customerName string
	service      parcel.ServiceKind
	status       parcel.Status
	parcelCount  int
	deleted      bool

	guard kernel.ConstructorGuard
}

// NewOrder creates an order with no parcels yet. The composite status starts
// at InAgency, the reduction of an empty parcel set.
func NewOrder(
	id kernel.UUID,
	number string,
	agencyID kernel.UUID,
	customerName string,
	service parcel.ServiceKind,
) (*Order, error) {
	o := &Order{
		status: parcel.InAgency,
		guard:  kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setAgencyID(agencyID),
		o.setCustomerName(customerName),
		o.setService(service),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence.
func RestoreOrder(
	id kernel.UUID,
	number string,
	agencyID kernel.UUID,
	customerName string,
	service parcel.ServiceKind,
	status parcel.Status,
	parcelCount int,
	deleted bool,
) (*Order, error) {
	o, err := NewOrder(id, number, agencyID, customerName, service)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	if parcelCount < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("parcelCount is invalid",
			fmt.Errorf("%d is negative", parcelCount))
	}

	o.status = status
	o.parcelCount = parcelCount
	o.deleted = deleted
	return o, nil
}

// Validate ensures the order was created through a factory function.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's surrogate identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-readable order number.
func (o *Order) Number() string {
	return o.number
}

// AgencyID returns the agency that booked the order.
func (o *Order) AgencyID() kernel.UUID {
	return o.agencyID
}

// CustomerName returns the sender's name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Service returns the shipping service of the order's parcels.
func (o *Order) Service() parcel.ServiceKind {
	return o.service
}

// Status returns the composite status reduced from the order's parcels.
func (o *Order) Status() parcel.Status {
	return o.status
}

// ParcelCount returns the number of live parcels in the order.
func (o *Order) ParcelCount() int {
	return o.parcelCount
}

// IsDeleted reports whether the order was soft-deleted.
func (o *Order) IsDeleted() bool {
	return o.deleted
}

// AddParcels records newly created parcels on the order.
func (o *Order) AddParcels(n int) error {
	if o.deleted {
		return errs.NewInvalidStateError(
			fmt.Sprintf("order %s", o.number), "deleted", "add parcels")
	}
	if n <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("n is invalid",
			fmt.Errorf("%d is not greater than 0", n))
	}
	o.parcelCount += n
	return nil
}

// SetCompositeStatus stores the status reduced from the order's parcels.
// Unlike parcel statuses, the composite may be any defined status including
// the Partially* family.
func (o *Order) SetCompositeStatus(status parcel.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// SoftDelete marks the order deleted. The caller soft-deletes the order's
// parcels in the same transaction; parcels attached to a unit block the
// whole operation there.
func (o *Order) SoftDelete() error {
	if o.deleted {
		return errs.NewInvalidStateError(
			fmt.Sprintf("order %s", o.number), "deleted", "be deleted again")
	}
	o.deleted = true
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	o.number = number
	return nil
}

func (o *Order) setAgencyID(agencyID kernel.UUID) error {
	if err := agencyID.Validate(); err != nil {
		return err
	}
	o.agencyID = agencyID
	return nil
}

func (o *Order) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerName = customerName
	return nil
}

func (o *Order) setService(service parcel.ServiceKind) error {
	if err := service.Validate(); err != nil {
		return err
	}
	o.service = service
	return nil
}
