package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetUnitParcelsQueryIsNotConstructed = errors.New(
		"GetUnitParcelsQuery must be created via NewGetUnitParcelsQuery constructor",
	)
)

// GetUnitParcelsQuery lists the parcels currently attached to one containment
// unit. Used by warehouse staff to verify unit contents before sealing or
// departure.
//
// Example:
//
//	query, err := NewGetUnitParcelsQuery(parcel.ContainmentPallet, palletID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetUnitParcelsQueryHandler(db)
//
//	parcels, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list unit parcels: %w", err)
//	}
//
//	fmt.Printf("Unit holds %d parcels\n", len(parcels))
type GetUnitParcelsQuery struct {
	unitKind parcel.ContainmentKind
	unitID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUnitParcelsQuery creates a contents query for the given unit. The
// kind must be a real containment kind and the unit ID must be valid.
func NewGetUnitParcelsQuery(unitKind parcel.ContainmentKind, unitID kernel.UUID) (GetUnitParcelsQuery, error) {
	if err := errors.Join(
		unitKind.Validate(),
		unitID.Validate(),
	); err != nil {
		return GetUnitParcelsQuery{}, err
	}

	return GetUnitParcelsQuery{
		unitKind: unitKind,
		unitID:   unitID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// UnitKind returns the containment kind of the unit being inspected.
func (q GetUnitParcelsQuery) UnitKind() parcel.ContainmentKind {
	return q.unitKind
}

// UnitID returns the identifier of the unit being inspected.
func (q GetUnitParcelsQuery) UnitID() kernel.UUID {
	return q.unitID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUnitParcelsQueryIsNotConstructed if validation fails.
func (q GetUnitParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetUnitParcelsQueryIsNotConstructed)
}

// GetUnitParcelsQueryResponse is a compact projection of one attached parcel.
type GetUnitParcelsQueryResponse struct {
	ID           kernel.UUID
	TrackingCode string
	Description  string
	Weight       decimal.Decimal
	Service      string
	Status       string
}
