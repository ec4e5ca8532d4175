package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrTrackParcelQueryIsNotConstructed = errors.New(
		"TrackParcelQuery must be created via NewTrackParcelQuery constructor",
	)
)

// TrackParcelQuery retrieves the current state of a single parcel by its
// tracking code.
//
// Example:
//
//	query, err := NewTrackParcelQuery("HBL250831MGYE00001")
//	if err != nil {
//	    return err
//	}
//	handler := NewTrackParcelQueryHandler(db)
//
//	parcel, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to track parcel: %w", err)
//	}
//
//	fmt.Printf("Parcel %s is %s\n", parcel.TrackingCode, parcel.Status)
type TrackParcelQuery struct {
	trackingCode string

	guard guard.ConstructorGuard
}

// NewTrackParcelQuery creates a query for the parcel with the given tracking
// code. The code must be non-empty.
func NewTrackParcelQuery(trackingCode string) (TrackParcelQuery, error) {
	if trackingCode == "" {
		return TrackParcelQuery{}, errs.NewValueIsRequiredError("trackingCode")
	}

	return TrackParcelQuery{
		trackingCode: trackingCode,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// TrackingCode returns the tracking code being looked up.
func (q TrackParcelQuery) TrackingCode() string {
	return q.trackingCode
}

// Validate ensures the query was created through the constructor.
// Returns ErrTrackParcelQueryIsNotConstructed if validation fails.
func (q TrackParcelQuery) Validate() error {
	return q.guard.Validate(ErrTrackParcelQueryIsNotConstructed)
}

// TrackParcelQueryResponse is a read-model projection of one parcel row.
// ContainmentID and OrderID are nil when the parcel is loose or unattached
// to an order.
type TrackParcelQueryResponse struct {
	ID              kernel.UUID
	TrackingCode    string
	Description     string
	Weight          decimal.Decimal
	Service         string
	AgencyID        kernel.UUID
	OrderID         *kernel.UUID
	Status          string
	StatusDetail    string
	ContainmentKind string
	ContainmentID   *kernel.UUID
}
