// Package unitrepo provides data transfer objects and mapping functions for
// containment unit persistence. Pallets, dispatches, transport units and
// warehouses each keep their own table but share one repository, since the
// transfer handlers always work with units through a single port.
package unitrepo

import (
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/unit"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PalletDTO represents the database structure for persisting pallet aggregates.
type PalletDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number      string    `gorm:"uniqueIndex;not null"`
	AgencyID    uuid.UUID `gorm:"type:uuid;index"`
	DispatchID  *uuid.UUID `gorm:"type:uuid;index"`
	Status      int
	Weight      decimal.Decimal `gorm:"type:numeric(12,3)"`
	ParcelCount int
}

// TableName specifies the database table name for pallet entities.
func (PalletDTO) TableName() string {
	return "pallets"
}

// DispatchDTO represents the database structure for persisting dispatch aggregates.
type DispatchDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number      string    `gorm:"uniqueIndex;not null"`
	AgencyID    uuid.UUID `gorm:"type:uuid;index"`
	Status      int
	Weight      decimal.Decimal `gorm:"type:numeric(12,3)"`
	ParcelCount int
}

// TableName specifies the database table name for dispatch entities.
func (DispatchDTO) TableName() string {
	return "dispatches"
}

// TransportUnitDTO represents the database structure for persisting container
// and flight aggregates. Kind distinguishes the two.
type TransportUnitDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number      string    `gorm:"uniqueIndex;not null"`
	Kind        int       `gorm:"index"`
	Status      int
	Weight      decimal.Decimal `gorm:"type:numeric(12,3)"`
	ParcelCount int
}

// TableName specifies the database table name for transport unit entities.
func (TransportUnitDTO) TableName() string {
	return "transport_units"
}

// WarehouseDTO represents the database structure for persisting warehouse aggregates.
type WarehouseDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number      string    `gorm:"uniqueIndex;not null"`
	Name        string
	Country     string
	Status      int
	Weight      decimal.Decimal `gorm:"type:numeric(12,3)"`
	ParcelCount int
}

// TableName specifies the database table name for warehouse entities.
func (WarehouseDTO) TableName() string {
	return "warehouses"
}

func palletFromDomain(aggregate *unit.Pallet) PalletDTO {
	var dispatchID *uuid.UUID
	if id := aggregate.DispatchID(); id != nil {
		raw := id.Bytes()
		dispatchID = &raw
	}

	return PalletDTO{
		ID:          aggregate.ID().Bytes(),
		Number:      aggregate.Number(),
		AgencyID:    aggregate.AgencyID().Bytes(),
		DispatchID:  dispatchID,
		Status:      int(aggregate.Status()),
		Weight:      aggregate.Weight().Decimal(),
		ParcelCount: aggregate.Count(),
	}
}

func palletToDomain(dto PalletDTO) (*unit.Pallet, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	agencyID, err := kernel.UUIDFromBytes(dto.AgencyID[:])
	if err != nil {
		return nil, err
	}

	var dispatchID *kernel.UUID
	if dto.DispatchID != nil {
		dID, dispatchErr := kernel.UUIDFromBytes((*dto.DispatchID)[:])
		if dispatchErr != nil {
			return nil, dispatchErr
		}
		dispatchID = &dID
	}

	weight, err := kernel.RestoreWeight(dto.Weight)
	if err != nil {
		return nil, err
	}

	return unit.RestorePallet(
		id,
		dto.Number,
		agencyID,
		dispatchID,
		unit.PalletStatus(dto.Status),
		weight,
		dto.ParcelCount,
	)
}

func dispatchFromDomain(aggregate *unit.Dispatch) DispatchDTO {
	return DispatchDTO{
		ID:          aggregate.ID().Bytes(),
		Number:      aggregate.Number(),
		AgencyID:    aggregate.AgencyID().Bytes(),
		Status:      int(aggregate.Status()),
		Weight:      aggregate.Weight().Decimal(),
		ParcelCount: aggregate.Count(),
	}
}

func dispatchToDomain(dto DispatchDTO) (*unit.Dispatch, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	agencyID, err := kernel.UUIDFromBytes(dto.AgencyID[:])
	if err != nil {
		return nil, err
	}

	weight, err := kernel.RestoreWeight(dto.Weight)
	if err != nil {
		return nil, err
	}

	return unit.RestoreDispatch(
		id,
		dto.Number,
		agencyID,
		unit.DispatchStatus(dto.Status),
		weight,
		dto.ParcelCount,
	)
}

func transportFromDomain(aggregate *unit.TransportUnit) TransportUnitDTO {
	return TransportUnitDTO{
		ID:          aggregate.ID().Bytes(),
		Number:      aggregate.Number(),
		Kind:        int(aggregate.Kind()),
		Status:      int(aggregate.Status()),
		Weight:      aggregate.Weight().Decimal(),
		ParcelCount: aggregate.Count(),
	}
}

func transportToDomain(dto TransportUnitDTO) (*unit.TransportUnit, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	weight, err := kernel.RestoreWeight(dto.Weight)
	if err != nil {
		return nil, err
	}

	return unit.RestoreTransportUnit(
		id,
		dto.Number,
		parcel.ContainmentKind(dto.Kind),
		unit.TransportStatus(dto.Status),
		weight,
		dto.ParcelCount,
	)
}

func warehouseFromDomain(aggregate *unit.Warehouse) WarehouseDTO {
	return WarehouseDTO{
		ID:          aggregate.ID().Bytes(),
		Number:      aggregate.Number(),
		Name:        aggregate.Name(),
		Country:     aggregate.Country(),
		Status:      int(aggregate.Status()),
		Weight:      aggregate.Weight().Decimal(),
		ParcelCount: aggregate.Count(),
	}
}

func warehouseToDomain(dto WarehouseDTO) (*unit.Warehouse, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	weight, err := kernel.RestoreWeight(dto.Weight)
	if err != nil {
		return nil, err
	}

	return unit.RestoreWarehouse(
		id,
		dto.Number,
		dto.Name,
		dto.Country,
		unit.WarehouseStatus(dto.Status),
		weight,
		dto.ParcelCount,
	)
}
