package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetAggregateDriftQueryIsNotConstructed = errors.New(
		"GetAggregateDriftQuery must be created via NewGetAggregateDriftQuery constructor",
	)
)

// GetAggregateDriftQuery finds containment units whose stored weight or
// parcel count disagrees with the parcels actually attached to them. Drift
// indicates a bug in the transfer path or a manual data fix gone wrong; the
// audit job reports it, it is never corrected silently.
type GetAggregateDriftQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAggregateDriftQuery creates a new drift audit query.
func NewGetAggregateDriftQuery() GetAggregateDriftQuery {
	return GetAggregateDriftQuery{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAggregateDriftQueryIsNotConstructed if validation fails.
func (q GetAggregateDriftQuery) Validate() error {
	return q.guard.Validate(ErrGetAggregateDriftQueryIsNotConstructed)
}

// GetAggregateDriftQueryResponse describes one drifted unit: the aggregate
// values it carries versus the values recomputed from its parcels.
type GetAggregateDriftQueryResponse struct {
	UnitKind     string
	UnitID       kernel.UUID
	Number       string
	StoredWeight decimal.Decimal
	ActualWeight decimal.Decimal
	StoredCount  int
	ActualCount  int
}
