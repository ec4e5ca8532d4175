package queries

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetAggregateDriftQueryHandler recomputes per-unit parcel sums from the
// parcels table and compares them against the aggregate columns on every
// unit table. Pallets, dispatches and transport units match parcels through
// the containment reference; warehouses match through the custody reference.
//
// Example:
//
//	handler := NewGetAggregateDriftQueryHandler(db)
//
//	drifted, err := handler.Handle(ctx, NewGetAggregateDriftQuery())
//	if err != nil {
//	    return err
//	}
//	for _, d := range drifted {
//	    log.Printf("%s %s drifted: weight %s vs %s", d.UnitKind, d.Number,
//	        d.StoredWeight, d.ActualWeight)
//	}
type GetAggregateDriftQueryHandler struct {
	db *gorm.DB
}

// NewGetAggregateDriftQueryHandler creates a handler for the drift audit.
// Requires a GORM database connection for query execution.
func NewGetAggregateDriftQueryHandler(db *gorm.DB) GetAggregateDriftQueryHandler {
	return GetAggregateDriftQueryHandler{db: db}
}

// Handle executes the audit across all four unit tables. Returns one row per
// drifted unit; an empty slice means every aggregate is consistent.
func (h GetAggregateDriftQueryHandler) Handle(
	ctx context.Context,
	query GetAggregateDriftQuery,
) ([]GetAggregateDriftQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		WITH containment_sums AS (
			SELECT
				containment_kind,
				containment_id,
				SUM(weight)  AS total_weight,
				COUNT(*)     AS total_count
			FROM parcels
			WHERE containment_id IS NOT NULL AND deleted = false
			GROUP BY containment_kind, containment_id
		),
		custody_sums AS (
			SELECT
				warehouse_id,
				SUM(weight)  AS total_weight,
				COUNT(*)     AS total_count
			FROM parcels
			WHERE warehouse_id IS NOT NULL AND deleted = false
			GROUP BY warehouse_id
		)
		SELECT 'Pallet' AS unit_kind, u.id, u.number, u.weight, u.parcel_count,
			COALESCE(s.total_weight, 0), COALESCE(s.total_count, 0)
		FROM pallets u
		LEFT JOIN containment_sums s
			ON s.containment_kind = 1 AND s.containment_id = u.id
		WHERE u.weight <> COALESCE(s.total_weight, 0)
			OR u.parcel_count <> COALESCE(s.total_count, 0)
		UNION ALL
		SELECT 'Dispatch', u.id, u.number, u.weight, u.parcel_count,
			COALESCE(s.total_weight, 0), COALESCE(s.total_count, 0)
		FROM dispatches u
		LEFT JOIN containment_sums s
			ON s.containment_kind = 2 AND s.containment_id = u.id
		WHERE u.weight <> COALESCE(s.total_weight, 0)
			OR u.parcel_count <> COALESCE(s.total_count, 0)
		UNION ALL
		SELECT CASE u.kind WHEN 3 THEN 'Container' ELSE 'Flight' END,
			u.id, u.number, u.weight, u.parcel_count,
			COALESCE(s.total_weight, 0), COALESCE(s.total_count, 0)
		FROM transport_units u
		LEFT JOIN containment_sums s
			ON s.containment_kind = u.kind AND s.containment_id = u.id
		WHERE u.weight <> COALESCE(s.total_weight, 0)
			OR u.parcel_count <> COALESCE(s.total_count, 0)
		UNION ALL
		SELECT 'Warehouse', u.id, u.number, u.weight, u.parcel_count,
			COALESCE(s.total_weight, 0), COALESCE(s.total_count, 0)
		FROM warehouses u
		LEFT JOIN custody_sums s ON s.warehouse_id = u.id
		WHERE u.weight <> COALESCE(s.total_weight, 0)
			OR u.parcel_count <> COALESCE(s.total_count, 0)
		ORDER BY unit_kind, number
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drifted := make([]GetAggregateDriftQueryResponse, 0)

	for rows.Next() {
		var (
			resp         GetAggregateDriftQueryResponse
			id           uuid.UUID
			storedWeight decimal.Decimal
			actualWeight decimal.Decimal
		)

		err = rows.Scan(
			&resp.UnitKind,
			&id,
			&resp.Number,
			&storedWeight,
			&resp.StoredCount,
			&actualWeight,
			&resp.ActualCount,
		)
		if err != nil {
			return nil, err
		}

		resp.UnitID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		resp.StoredWeight = storedWeight
		resp.ActualWeight = actualWeight

		drifted = append(drifted, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drifted, nil
}
