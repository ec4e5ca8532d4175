package queries

import (
	"context"
	"database/sql"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TrackParcelQueryHandler resolves a tracking code to the parcel's current
// state directly from the read model, bypassing the aggregate repositories.
//
// Example:
//
//	handler := NewTrackParcelQueryHandler(db)
//	query, _ := NewTrackParcelQuery("HBL250831MGYE00001")
//
//	parcel, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to track parcel: %v", err)
//	    return err
//	}
type TrackParcelQueryHandler struct {
	db *gorm.DB
}

// NewTrackParcelQueryHandler creates a handler for parcel tracking lookups.
// Requires a GORM database connection for query execution.
func NewTrackParcelQueryHandler(db *gorm.DB) TrackParcelQueryHandler {
	return TrackParcelQueryHandler{db: db}
}

// Handle executes the lookup. Soft-deleted parcels are invisible to tracking.
// Returns errs.ErrObjectNotFound when no live parcel carries the code.
func (h TrackParcelQueryHandler) Handle(
	ctx context.Context,
	query TrackParcelQuery,
) (TrackParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackParcelQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_code,
			description,
			weight,
			service,
			agency_id,
			order_id,
			status,
			status_detail,
			containment_kind,
			containment_id
		FROM parcels
		WHERE tracking_code = ? AND deleted = false
	`, query.TrackingCode()).Rows()
	if err != nil {
		return TrackParcelQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return TrackParcelQueryResponse{}, err
		}
		return TrackParcelQueryResponse{}, errs.NewObjectNotFoundError("trackingCode", query.TrackingCode())
	}

	var (
		resp            TrackParcelQueryResponse
		id              uuid.UUID
		agencyID        uuid.UUID
		orderID         uuid.NullUUID
		containmentID   uuid.NullUUID
		weight          decimal.Decimal
		service         int
		status          int
		containmentKind int
		statusDetail    sql.NullString
	)

	err = rows.Scan(
		&id,
		&resp.TrackingCode,
		&resp.Description,
		&weight,
		&service,
		&agencyID,
		&orderID,
		&status,
		&statusDetail,
		&containmentKind,
		&containmentID,
	)
	if err != nil {
		return TrackParcelQueryResponse{}, err
	}

	resp.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return TrackParcelQueryResponse{}, err
	}

	resp.AgencyID, err = kernel.UUIDFromBytes(agencyID[:])
	if err != nil {
		return TrackParcelQueryResponse{}, err
	}

	resp.OrderID, err = optionalUUID(orderID)
	if err != nil {
		return TrackParcelQueryResponse{}, err
	}

	resp.ContainmentID, err = optionalUUID(containmentID)
	if err != nil {
		return TrackParcelQueryResponse{}, err
	}

	resp.Weight = weight
	resp.Service = parcel.ServiceKind(service).String()
	resp.Status = parcel.Status(status).String()
	resp.StatusDetail = statusDetail.String
	resp.ContainmentKind = parcel.ContainmentKind(containmentKind).String()

	if err = rows.Err(); err != nil {
		return TrackParcelQueryResponse{}, err
	}

	return resp, nil
}

// optionalUUID converts a nullable database UUID to the domain representation.
func optionalUUID(v uuid.NullUUID) (*kernel.UUID, error) {
	if !v.Valid {
		return nil, nil
	}

	id, err := kernel.UUIDFromBytes(v.UUID[:])
	if err != nil {
		return nil, err
	}

	return &id, nil
}
