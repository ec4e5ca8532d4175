// Package eventrepo persists the append-only parcel audit trail. Events are
// never updated or deleted; the store assigns the numeric ID on append and
// creation order defines the canonical history.
package eventrepo

import (
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// EventDTO represents the database structure for persisting audit trail entries.
type EventDTO struct {
	ID              int64     `gorm:"primaryKey;autoIncrement"`
	ParcelID        uuid.UUID `gorm:"type:uuid;index;not null"`
	EventType       int
	ResultingStatus int
	ActorID         uuid.UUID `gorm:"type:uuid"`
	Note            string
	UnitKind        int
	UnitID          *uuid.UUID `gorm:"type:uuid"`
	CreatedAt       time.Time  `gorm:"index"`
}

// TableName specifies the database table name for audit trail entries.
func (EventDTO) TableName() string {
	return "parcel_events"
}

// fromDomain converts an event to its database representation. The ID is left
// zero so the store assigns it on insert.
func fromDomain(event *parcel.Event) EventDTO {
	unitKind, unitID := event.UnitReference()

	var rawUnitID *uuid.UUID
	if unitID != nil {
		raw := unitID.Bytes()
		rawUnitID = &raw
	}

	return EventDTO{
		ParcelID:        event.ParcelID().Bytes(),
		EventType:       int(event.Type()),
		ResultingStatus: int(event.ResultingStatus()),
		ActorID:         event.ActorID().Bytes(),
		Note:            event.Note(),
		UnitKind:        int(unitKind),
		UnitID:          rawUnitID,
		CreatedAt:       event.CreatedAt(),
	}
}

// toDomain converts a database DTO to an event using RestoreEvent.
func toDomain(dto EventDTO) (*parcel.Event, error) {
	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}

	actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return nil, err
	}

	var unitID *kernel.UUID
	if dto.UnitID != nil {
		uID, unitErr := kernel.UUIDFromBytes((*dto.UnitID)[:])
		if unitErr != nil {
			return nil, unitErr
		}
		unitID = &uID
	}

	return parcel.RestoreEvent(
		dto.ID,
		parcelID,
		parcel.EventType(dto.EventType),
		parcel.Status(dto.ResultingStatus),
		actorID,
		dto.Note,
		parcel.ContainmentKind(dto.UnitKind),
		unitID,
		dto.CreatedAt,
	)
}
