package queries

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetUnitParcelsQueryHandler lists the parcels attached to one containment
// unit, ordered by tracking code for stable manifests.
//
// Example:
//
//	handler := NewGetUnitParcelsQueryHandler(db)
//	query, _ := NewGetUnitParcelsQuery(parcel.ContainmentPallet, palletID)
//
//	parcels, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to list unit parcels: %v", err)
//	    return err
//	}
type GetUnitParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetUnitParcelsQueryHandler creates a handler for unit content queries.
// Requires a GORM database connection for query execution.
func NewGetUnitParcelsQueryHandler(db *gorm.DB) GetUnitParcelsQueryHandler {
	return GetUnitParcelsQueryHandler{db: db}
}

// Handle executes the query. An empty or unknown unit yields an empty slice.
func (h GetUnitParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetUnitParcelsQuery,
) ([]GetUnitParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	parcels := make([]GetUnitParcelsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_code,
			description,
			weight,
			service,
			status
		FROM parcels
		WHERE containment_kind = ? AND containment_id = ? AND deleted = false
		ORDER BY tracking_code
	`, int(query.UnitKind()), query.UnitID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp    GetUnitParcelsQueryResponse
			id      uuid.UUID
			weight  decimal.Decimal
			service int
			status  int
		)

		err = rows.Scan(
			&id,
			&resp.TrackingCode,
			&resp.Description,
			&weight,
			&service,
			&status,
		)
		if err != nil {
			return nil, err
		}

		resp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		resp.Weight = weight
		resp.Service = parcel.ServiceKind(service).String()
		resp.Status = parcel.Status(status).String()

		parcels = append(parcels, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
