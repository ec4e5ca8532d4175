package queries

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrGetParcelHistoryQueryIsNotConstructed = errors.New(
		"GetParcelHistoryQuery must be created via NewGetParcelHistoryQuery constructor",
	)
)

// GetParcelHistoryQuery retrieves the audit trail of a parcel in creation
// order. With publicOnly set, internal events (pallet moves, removals,
// generic transport updates) are filtered out and each remaining entry
// carries the customer-facing message instead of the operational note.
//
// Example:
//
//	query, err := NewGetParcelHistoryQuery("HBL250831MGYE00001", true)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetParcelHistoryQueryHandler(db)
//
//	events, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get history: %w", err)
//	}
//
//	for _, event := range events {
//	    fmt.Printf("%s  %s\n", event.OccurredAt.Format(time.RFC3339), event.Message)
//	}
type GetParcelHistoryQuery struct {
	trackingCode string
	publicOnly   bool

	guard guard.ConstructorGuard
}

// NewGetParcelHistoryQuery creates a history query for the parcel with the
// given tracking code. The code must be non-empty.
func NewGetParcelHistoryQuery(trackingCode string, publicOnly bool) (GetParcelHistoryQuery, error) {
	if trackingCode == "" {
		return GetParcelHistoryQuery{}, errs.NewValueIsRequiredError("trackingCode")
	}

	return GetParcelHistoryQuery{
		trackingCode: trackingCode,
		publicOnly:   publicOnly,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// TrackingCode returns the tracking code whose history is requested.
func (q GetParcelHistoryQuery) TrackingCode() string {
	return q.trackingCode
}

// PublicOnly reports whether internal events should be filtered out.
func (q GetParcelHistoryQuery) PublicOnly() bool {
	return q.publicOnly
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetParcelHistoryQueryIsNotConstructed if validation fails.
func (q GetParcelHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelHistoryQueryIsNotConstructed)
}

// GetParcelHistoryQueryResponse is one audit trail entry. Message holds the
// operational note, or the fixed customer-facing text in public mode. UnitID
// is nil for events not tied to a containment unit.
type GetParcelHistoryQueryResponse struct {
	EventType       string
	ResultingStatus string
	Message         string
	UnitKind        string
	UnitID          *kernel.UUID
	OccurredAt      time.Time
}
