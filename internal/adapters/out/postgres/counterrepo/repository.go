package counterrepo

import (
	"context"
	"fmt"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCounterRepository implements CounterRepository using GORM.
type GormCounterRepository struct {
	db *gorm.DB
}

// NewGormCounterRepository creates a new GORM counter repository.
func NewGormCounterRepository(db *gorm.DB) *GormCounterRepository {
	return &GormCounterRepository{db: db}
}

// Reserve atomically increments the (ownerID, date) counter by quantity and
// returns the post-increment value, creating the row at quantity if absent.
// The upsert runs as one statement, so concurrent reservations for the same
// key serialize on the row and always receive disjoint blocks.
func (r *GormCounterRepository) Reserve(
	ctx context.Context,
	ownerID kernel.UUID,
	date time.Time,
	quantity int64,
) (int64, error) {
	if err := ownerID.Validate(); err != nil {
		return 0, err
	}
	if quantity <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	var value int64
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO counters (owner_id, date, value)
		VALUES (?, ?, ?)
		ON CONFLICT (owner_id, date)
		DO UPDATE SET value = counters.value + EXCLUDED.value
		RETURNING value
	`, ownerID.Bytes(), date.UTC().Format("2006-01-02"), quantity).Scan(&value).Error
	if err != nil {
		return 0, err
	}

	return value, nil
}
