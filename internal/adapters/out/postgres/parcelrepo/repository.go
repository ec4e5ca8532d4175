package parcelrepo

import (
	"context"
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormParcelRepository implements ParcelRepository using GORM.
type GormParcelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormParcelRepository creates a new GORM parcel repository.
func NewGormParcelRepository(db *gorm.DB, tracker aggregateTracker) *GormParcelRepository {
	return &GormParcelRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new parcel to the database.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing parcel to the database. All columns are written,
// so detaching (containment columns going back to null) persists correctly.
func (r *GormParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ParcelDTO{}).
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

// Get retrieves a parcel by ID, soft-deleted ones included.
func (r *GormParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTrackingCode retrieves a live parcel by its tracking code.
// Soft-deleted parcels are not resolvable by code.
func (r *GormParcelRepository) GetByTrackingCode(ctx context.Context, code string) (*parcel.Parcel, error) {
	if code == "" {
		return nil, errs.NewValueIsRequiredError("trackingCode")
	}

	var dto ParcelDTO
	err := r.db.WithContext(ctx).
		First(&dto, "tracking_code = ? AND deleted = false", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("trackingCode", code)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrder retrieves all live parcels belonging to an order, ordered by
// tracking code.
func (r *GormParcelRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*parcel.Parcel, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ParcelDTO
	err := r.db.WithContext(ctx).
		Order("tracking_code").
		Find(&dtos, "order_id = ? AND deleted = false", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetByUnit retrieves all parcels currently attached to the given containment
// unit, ordered by tracking code.
func (r *GormParcelRepository) GetByUnit(
	ctx context.Context,
	kind parcel.ContainmentKind,
	unitID kernel.UUID,
) ([]*parcel.Parcel, error) {
	if err := errors.Join(kind.Validate(), unitID.Validate()); err != nil {
		return nil, err
	}

	var dtos []ParcelDTO
	err := r.db.WithContext(ctx).
		Order("tracking_code").
		Find(&dtos, "containment_kind = ? AND containment_id = ? AND deleted = false",
			int(kind), unitID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetOrderStatuses retrieves only the status column of an order's live
// parcels, which is all the order aggregator needs.
func (r *GormParcelRepository) GetOrderStatuses(ctx context.Context, orderID kernel.UUID) ([]parcel.Status, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var raw []int
	err := r.db.WithContext(ctx).
		Model(&ParcelDTO{}).
		Where("order_id = ? AND deleted = false", orderID.Bytes()).
		Pluck("status", &raw).Error
	if err != nil {
		return nil, err
	}

	statuses := make([]parcel.Status, 0, len(raw))
	for _, s := range raw {
		statuses = append(statuses, parcel.Status(s))
	}

	return statuses, nil
}

func toDomainSlice(dtos []ParcelDTO) ([]*parcel.Parcel, error) {
	parcels := make([]*parcel.Parcel, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		parcels = append(parcels, p)
	}

	return parcels, nil
}
