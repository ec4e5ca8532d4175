package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand is not constructed")

// CreateOrderCommand opens an empty customer order at an agency. Parcels are
// added afterwards through intake; the order number is issued from the
// agency's daily sequence.
//
//nolint:recvcheck //using for validation
type CreateOrderCommand struct {
	agencyID     kernel.UUID
	customerName string
	service      parcel.ServiceKind

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a new CreateOrderCommand.
func NewCreateOrderCommand(
	agencyID kernel.UUID,
	customerName string,
	service parcel.ServiceKind,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{}
	err := errors.Join(
		cmd.setAgencyID(agencyID),
		cmd.setCustomerName(customerName),
		cmd.setService(service),
	)
	if err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.guard = guard.NewConstructorGuard()
	return cmd, nil
}

func (c *CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c *CreateOrderCommand) AgencyID() kernel.UUID {
	return c.agencyID
}

func (c *CreateOrderCommand) CustomerName() string {
	return c.customerName
}

func (c *CreateOrderCommand) Service() parcel.ServiceKind {
	return c.service
}

func (c *CreateOrderCommand) setAgencyID(agencyID kernel.UUID) error {
	if err := agencyID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("agencyID", err)
	}
	c.agencyID = agencyID
	return nil
}

func (c *CreateOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	c.customerName = customerName
	return nil
}

func (c *CreateOrderCommand) setService(service parcel.ServiceKind) error {
	if err := service.Validate(); err != nil {
		return err
	}
	c.service = service
	return nil
}
