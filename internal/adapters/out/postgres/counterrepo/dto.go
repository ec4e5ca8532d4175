// Package counterrepo persists the per-owner daily sequence counters behind
// tracking code and unit number generation. Reservation is a single atomic
// upsert, so concurrent reservations of the same counter never collide.
package counterrepo

import (
	"time"

	"github.com/google/uuid"
)

// CounterDTO represents one (owner, date) counter row. Value holds the
// highest sequence number handed out so far for that day.
type CounterDTO struct {
	OwnerID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Date    time.Time `gorm:"type:date;primaryKey"`
	Value   int64
}

// TableName specifies the database table name for counter rows.
func (CounterDTO) TableName() string {
	return "counters"
}
