package unitrepo

import (
	"context"
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/unit"
	"parceltrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUnitRepository implements UnitRepository using GORM.
type GormUnitRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormUnitRepository creates a new GORM unit repository.
func NewGormUnitRepository(db *gorm.DB, tracker aggregateTracker) *GormUnitRepository {
	return &GormUnitRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddPallet saves a new pallet to the database.
func (r *GormUnitRepository) AddPallet(ctx context.Context, aggregate *unit.Pallet) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := palletFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdatePallet saves an existing pallet to the database.
func (r *GormUnitRepository) UpdatePallet(ctx context.Context, aggregate *unit.Pallet) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := palletFromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&PalletDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetPallet retrieves a pallet by ID.
func (r *GormUnitRepository) GetPallet(ctx context.Context, id kernel.UUID) (*unit.Pallet, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PalletDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pallet", id.String())
		}
		return nil, err
	}

	return palletToDomain(dto)
}

// AddDispatch saves a new dispatch to the database.
func (r *GormUnitRepository) AddDispatch(ctx context.Context, aggregate *unit.Dispatch) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := dispatchFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateDispatch saves an existing dispatch to the database.
func (r *GormUnitRepository) UpdateDispatch(ctx context.Context, aggregate *unit.Dispatch) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := dispatchFromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DispatchDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetDispatch retrieves a dispatch by ID.
func (r *GormUnitRepository) GetDispatch(ctx context.Context, id kernel.UUID) (*unit.Dispatch, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DispatchDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dispatch", id.String())
		}
		return nil, err
	}

	return dispatchToDomain(dto)
}

// GetPalletsByDispatch retrieves all pallets attached to a dispatch, ordered
// by pallet number.
func (r *GormUnitRepository) GetPalletsByDispatch(ctx context.Context, dispatchID kernel.UUID) ([]*unit.Pallet, error) {
	if err := dispatchID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PalletDTO
	err := r.db.WithContext(ctx).
		Order("number").
		Find(&dtos, "dispatch_id = ?", dispatchID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	pallets := make([]*unit.Pallet, 0, len(dtos))
	for _, dto := range dtos {
		p, palletErr := palletToDomain(dto)
		if palletErr != nil {
			return nil, palletErr
		}
		pallets = append(pallets, p)
	}

	return pallets, nil
}

// AddTransportUnit saves a new container or flight to the database.
func (r *GormUnitRepository) AddTransportUnit(ctx context.Context, aggregate *unit.TransportUnit) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := transportFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateTransportUnit saves an existing container or flight to the database.
func (r *GormUnitRepository) UpdateTransportUnit(ctx context.Context, aggregate *unit.TransportUnit) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := transportFromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&TransportUnitDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetTransportUnit retrieves a container or flight by ID.
func (r *GormUnitRepository) GetTransportUnit(ctx context.Context, id kernel.UUID) (*unit.TransportUnit, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TransportUnitDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("transport unit", id.String())
		}
		return nil, err
	}

	return transportToDomain(dto)
}

// AddWarehouse saves a new warehouse to the database.
func (r *GormUnitRepository) AddWarehouse(ctx context.Context, aggregate *unit.Warehouse) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := warehouseFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateWarehouse saves an existing warehouse to the database.
func (r *GormUnitRepository) UpdateWarehouse(ctx context.Context, aggregate *unit.Warehouse) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := warehouseFromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&WarehouseDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetWarehouse retrieves a warehouse by ID.
func (r *GormUnitRepository) GetWarehouse(ctx context.Context, id kernel.UUID) (*unit.Warehouse, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WarehouseDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("warehouse", id.String())
		}
		return nil, err
	}

	return warehouseToDomain(dto)
}
