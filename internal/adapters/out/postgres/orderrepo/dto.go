// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/order"
	"parceltrack/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status holds the composite status recomputed from the order's parcels after
// every transfer.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number       string    `gorm:"uniqueIndex;not null"`
	AgencyID     uuid.UUID `gorm:"type:uuid;index"`
	CustomerName string
	Service      int
	Status       int
	ParcelCount  int
	Deleted      bool
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		Number:       aggregate.Number(),
		AgencyID:     aggregate.AgencyID().Bytes(),
		CustomerName: aggregate.CustomerName(),
		Service:      int(aggregate.Service()),
		Status:       int(aggregate.Status()),
		ParcelCount:  aggregate.ParcelCount(),
		Deleted:      aggregate.IsDeleted(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including composite status and
// soft-delete marker using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	agencyID, err := kernel.UUIDFromBytes(dto.AgencyID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.Number,
		agencyID,
		dto.CustomerName,
		parcel.ServiceKind(dto.Service),
		parcel.Status(dto.Status),
		dto.ParcelCount,
		dto.Deleted,
	)
}
