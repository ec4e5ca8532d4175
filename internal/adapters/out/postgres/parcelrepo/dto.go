// Package parcelrepo provides data transfer objects and mapping functions for parcel persistence.
// This package implements the repository pattern for the parcel domain aggregate, handling
// the conversion between domain entities and database representations.
package parcelrepo

import (
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ParcelDTO represents the database structure for persisting parcel aggregates.
// The containment reference is spread over two nullable columns; both are set
// or both are null, mirroring the aggregate's single-containment rule.
type ParcelDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingCode    string    `gorm:"uniqueIndex;not null"`
	Description     string
	Weight          decimal.Decimal `gorm:"type:numeric(12,3)"`
	Service         int
	AgencyID        uuid.UUID  `gorm:"type:uuid;index"`
	OrderID         *uuid.UUID `gorm:"type:uuid;index"`
	ContainmentKind int        `gorm:"index:idx_parcels_containment"`
	ContainmentID   *uuid.UUID `gorm:"type:uuid;index:idx_parcels_containment"`
	WarehouseID     *uuid.UUID `gorm:"type:uuid;index"`
	Status          int
	StatusDetail    string
	Deleted         bool
}

// TableName specifies the database table name for parcel entities.
// Overrides GORM's default naming convention to use "parcels".
func (ParcelDTO) TableName() string {
	return "parcels"
}

// fromDomain converts a parcel domain aggregate to its database representation.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	containmentKind, containmentID := aggregate.Containment()

	return ParcelDTO{
		ID:              aggregate.ID().Bytes(),
		TrackingCode:    aggregate.TrackingCode(),
		Description:     aggregate.Description(),
		Weight:          aggregate.Weight().Decimal(),
		Service:         int(aggregate.Service()),
		AgencyID:        aggregate.AgencyID().Bytes(),
		OrderID:         optionalBytes(aggregate.OrderID()),
		ContainmentKind: int(containmentKind),
		ContainmentID:   optionalBytes(containmentID),
		WarehouseID:     optionalBytes(aggregate.WarehouseID()),
		Status:          int(aggregate.Status()),
		StatusDetail:    aggregate.StatusDetail(),
		Deleted:         aggregate.IsDeleted(),
	}
}

// toDomain converts a database DTO to a parcel domain aggregate.
// Reconstructs the complete aggregate including containment reference and
// soft-delete marker using RestoreParcel.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	agencyID, err := kernel.UUIDFromBytes(dto.AgencyID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := optionalUUID(dto.OrderID)
	if err != nil {
		return nil, err
	}

	containmentID, err := optionalUUID(dto.ContainmentID)
	if err != nil {
		return nil, err
	}

	warehouseID, err := optionalUUID(dto.WarehouseID)
	if err != nil {
		return nil, err
	}

	weight, err := kernel.RestoreWeight(dto.Weight)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(
		id,
		dto.TrackingCode,
		dto.Description,
		weight,
		parcel.ServiceKind(dto.Service),
		agencyID,
		orderID,
		parcel.ContainmentKind(dto.ContainmentKind),
		containmentID,
		warehouseID,
		parcel.Status(dto.Status),
		dto.StatusDetail,
		dto.Deleted,
	)
}

func optionalBytes(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}

	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}

	return &id, nil
}
