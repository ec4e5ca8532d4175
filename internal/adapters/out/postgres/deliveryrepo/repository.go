package deliveryrepo

import (
	"context"
	"errors"

	"parceltrack/internal/core/domain/model/delivery"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// uniqueViolation is the postgres error code for unique constraint violations.
const uniqueViolation = "23505"

// GormDeliveryRepository implements DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddRoute saves a new delivery route to the database.
func (r *GormDeliveryRepository) AddRoute(ctx context.Context, aggregate *delivery.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := routeFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateRoute saves an existing delivery route to the database.
func (r *GormDeliveryRepository) UpdateRoute(ctx context.Context, aggregate *delivery.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := routeFromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&RouteDTO{}).
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

// GetRoute retrieves a delivery route by ID.
func (r *GormDeliveryRepository) GetRoute(ctx context.Context, id kernel.UUID) (*delivery.Route, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RouteDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("route", id.String())
		}
		return nil, err
	}

	return routeToDomain(dto)
}

// AddAssignment saves a new delivery assignment to the database. The unique
// index on parcel_id converts a duplicate booking into
// errs.ErrObjectAlreadyAttached, whichever transaction loses the race.
func (r *GormDeliveryRepository) AddAssignment(ctx context.Context, aggregate *delivery.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := assignmentFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return errs.NewObjectAlreadyAttachedError("parcel", aggregate.ParcelID().String(), "a delivery assignment")
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateAssignment saves an existing delivery assignment to the database.
func (r *GormDeliveryRepository) UpdateAssignment(ctx context.Context, aggregate *delivery.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := assignmentFromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&AssignmentDTO{}).
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

// GetAssignment retrieves a delivery assignment by ID.
func (r *GormDeliveryRepository) GetAssignment(ctx context.Context, id kernel.UUID) (*delivery.Assignment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment", id.String())
		}
		return nil, err
	}

	return assignmentToDomain(dto)
}

// GetAssignmentByParcel retrieves the delivery assignment booked for a parcel.
func (r *GormDeliveryRepository) GetAssignmentByParcel(ctx context.Context, parcelID kernel.UUID) (*delivery.Assignment, error) {
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "parcel_id = ?", parcelID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment for parcel", parcelID.String())
		}
		return nil, err
	}

	return assignmentToDomain(dto)
}

// GetFailedAssignments retrieves failed assignments that are still under the
// attempt budget and therefore eligible for a retry dispatch.
func (r *GormDeliveryRepository) GetFailedAssignments(ctx context.Context, maxAttempts int) ([]*delivery.Assignment, error) {
	var dtos []AssignmentDTO
	err := r.db.WithContext(ctx).
		Order("last_attempt_at").
		Find(&dtos, "status = ? AND attempt_count < ?", int(delivery.AssignmentFailed), maxAttempts).Error
	if err != nil {
		return nil, err
	}

	assignments := make([]*delivery.Assignment, 0, len(dtos))
	for _, dto := range dtos {
		a, assignmentErr := assignmentToDomain(dto)
		if assignmentErr != nil {
			return nil, assignmentErr
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}
