package queries

import (
	"context"
	"database/sql"
	"time"

	"parceltrack/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetParcelHistoryQueryHandler reads a parcel's audit trail from the event
// table. Events are returned in append order, which is the canonical history
// shown on tracking pages.
//
// Example:
//
//	handler := NewGetParcelHistoryQueryHandler(db)
//	query, _ := NewGetParcelHistoryQuery("HBL250831MGYE00001", false)
//
//	events, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get parcel history: %v", err)
//	    return err
//	}
type GetParcelHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelHistoryQueryHandler creates a handler for parcel history queries.
// Requires a GORM database connection for query execution.
func NewGetParcelHistoryQueryHandler(db *gorm.DB) GetParcelHistoryQueryHandler {
	return GetParcelHistoryQueryHandler{db: db}
}

// Handle executes the query. An unknown tracking code yields an empty slice,
// not an error: the read side does not distinguish "no parcel" from "no
// events yet".
func (h GetParcelHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetParcelHistoryQuery,
) ([]GetParcelHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	events := make([]GetParcelHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			e.event_type,
			e.resulting_status,
			e.note,
			e.unit_kind,
			e.unit_id,
			e.created_at
		FROM parcel_events e
		JOIN parcels p ON p.id = e.parcel_id
		WHERE p.tracking_code = ? AND p.deleted = false
		ORDER BY e.created_at, e.id
	`, query.TrackingCode()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			eventType       int
			resultingStatus int
			note            sql.NullString
			unitKind        int
			unitID          uuid.NullUUID
			createdAt       time.Time
		)

		err = rows.Scan(
			&eventType,
			&resultingStatus,
			&note,
			&unitKind,
			&unitID,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		et := parcel.EventType(eventType)
		message := note.String

		if query.PublicOnly() {
			publicMessage, ok := et.PublicMessage()
			if !ok {
				continue
			}
			message = publicMessage
		}

		domainUnitID, idErr := optionalUUID(unitID)
		if idErr != nil {
			return nil, idErr
		}

		events = append(events, GetParcelHistoryQueryResponse{
			EventType:       et.String(),
			ResultingStatus: parcel.Status(resultingStatus).String(),
			Message:         message,
			UnitKind:        parcel.ContainmentKind(unitKind).String(),
			UnitID:          domainUnitID,
			OccurredAt:      createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
