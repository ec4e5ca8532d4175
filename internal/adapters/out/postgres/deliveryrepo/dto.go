// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery route and assignment persistence. The unique index on
// assignment parcel_id is the storage-level guarantee that a parcel is never
// booked for delivery twice.
package deliveryrepo

import (
	"time"

	"parceltrack/internal/core/domain/model/delivery"
	"parceltrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// RouteDTO represents the database structure for persisting delivery routes.
type RouteDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CourierID       uuid.UUID `gorm:"type:uuid;index"`
	Date            time.Time `gorm:"type:date"`
	Status          int
	AssignmentCount int
}

// TableName specifies the database table name for delivery routes.
func (RouteDTO) TableName() string {
	return "delivery_routes"
}

// AssignmentDTO represents the database structure for persisting delivery
// assignments. Proof-of-delivery columns are null until the parcel is
// delivered.
type AssignmentDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ParcelID      uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null"`
	RouteID       *uuid.UUID `gorm:"type:uuid;index"`
	CourierID     *uuid.UUID `gorm:"type:uuid;index"`
	Status        int        `gorm:"index"`
	AttemptCount  int
	LastAttemptAt *time.Time
	FailureNote   string
	RecipientName *string
	ProofNote     *string
	DeliveredAt   *time.Time
}

// TableName specifies the database table name for delivery assignments.
func (AssignmentDTO) TableName() string {
	return "delivery_assignments"
}

func routeFromDomain(aggregate *delivery.Route) RouteDTO {
	return RouteDTO{
		ID:              aggregate.ID().Bytes(),
		CourierID:       aggregate.CourierID().Bytes(),
		Date:            aggregate.Date(),
		Status:          int(aggregate.Status()),
		AssignmentCount: aggregate.Count(),
	}
}

func routeToDomain(dto RouteDTO) (*delivery.Route, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}

	return delivery.RestoreRoute(
		id,
		courierID,
		dto.Date,
		delivery.RouteStatus(dto.Status),
		dto.AssignmentCount,
	)
}

func assignmentFromDomain(aggregate *delivery.Assignment) AssignmentDTO {
	dto := AssignmentDTO{
		ID:            aggregate.ID().Bytes(),
		ParcelID:      aggregate.ParcelID().Bytes(),
		RouteID:       optionalBytes(aggregate.RouteID()),
		CourierID:     optionalBytes(aggregate.CourierID()),
		Status:        int(aggregate.Status()),
		AttemptCount:  aggregate.AttemptCount(),
		LastAttemptAt: aggregate.LastAttemptAt(),
		FailureNote:   aggregate.FailureNote(),
	}

	if proof := aggregate.Proof(); proof != nil {
		recipient := proof.RecipientName
		note := proof.Note
		deliveredAt := proof.DeliveredAt
		dto.RecipientName = &recipient
		dto.ProofNote = &note
		dto.DeliveredAt = &deliveredAt
	}

	return dto
}

func assignmentToDomain(dto AssignmentDTO) (*delivery.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}

	routeID, err := optionalUUID(dto.RouteID)
	if err != nil {
		return nil, err
	}

	courierID, err := optionalUUID(dto.CourierID)
	if err != nil {
		return nil, err
	}

	var proof *delivery.ProofOfDelivery
	if dto.RecipientName != nil && dto.DeliveredAt != nil {
		proof = &delivery.ProofOfDelivery{
			RecipientName: *dto.RecipientName,
			DeliveredAt:   *dto.DeliveredAt,
		}
		if dto.ProofNote != nil {
			proof.Note = *dto.ProofNote
		}
	}

	return delivery.RestoreAssignment(
		id,
		parcelID,
		routeID,
		courierID,
		delivery.AssignmentStatus(dto.Status),
		dto.AttemptCount,
		dto.LastAttemptAt,
		dto.FailureNote,
		proof,
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
