package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

// TrackingCodePrefix starts every parcel tracking code.
const TrackingCodePrefix = "HBL"

// maxOrderScopedPosition bounds the contention-free per-order scheme: the
// two-digit position field caps an order at 99 items.
const maxOrderScopedPosition = 99

// CounterReserver atomically reserves a block of sequence numbers for one
// (owner, day) counter and returns the last number of the block. Two
// concurrent reservations for the same key serialize on the counter row, so
// blocks never overlap; reservations for different owners or days do not
// contend.
type CounterReserver interface {
	Reserve(ctx context.Context, ownerID kernel.UUID, date time.Time, quantity int64) (int64, error)
}

// CodeGenerator issues unique tracking codes and unit numbers from per-owner
// daily sequence counters.
type CodeGenerator struct {
	counters CounterReserver
}

// NewCodeGenerator creates a CodeGenerator backed by the given counter store.
func NewCodeGenerator(counters CounterReserver) CodeGenerator {
	return CodeGenerator{counters: counters}
}

// Format renders one code: PREFIX + YYMMDD + serviceCode + ownerCode + a
// five-digit zero-padded sequence number.
func (CodeGenerator) Format(prefix string, date time.Time, serviceCode, ownerCode string, seq int64) string {
	return fmt.Sprintf("%s%s%s%s%05d", prefix, date.UTC().Format("060102"), serviceCode, ownerCode, seq)
}

// Issue reserves a contiguous block of quantity sequence numbers for the
// owner's counter of the current day and returns the formatted codes in
// order. The reservation is a single atomic increment, so concurrent callers
// for the same owner and day receive disjoint blocks; a failed reservation
// issues nothing. The date is fixed at call start, so one call never spans a
// day rollover.
func (g CodeGenerator) Issue(
	ctx context.Context,
	prefix string,
	serviceCode string,
	ownerID kernel.UUID,
	ownerCode string,
	quantity int,
) ([]string, error) {
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if ownerCode == "" {
		return nil, errs.NewValueIsRequiredError("ownerCode")
	}

	date := time.Now().UTC()
	last, err := g.counters.Reserve(ctx, ownerID, date, int64(quantity))
	if err != nil {
		return nil, err
	}

	codes := make([]string, 0, quantity)
	for seq := last - int64(quantity) + 1; seq <= last; seq++ {
		codes = append(codes, g.Format(prefix, date, serviceCode, ownerCode, seq))
	}
	return codes, nil
}

// OrderScopedCode derives a code from (ownerCode, orderID, position) with no
// shared counter at all. It is contention-free but meaningful only within one
// order: the two-digit position field limits an order to 99 items. Prefer it
// when per-order burst concurrency is high and global ordering is not needed.
func (CodeGenerator) OrderScopedCode(ownerCode string, orderID kernel.UUID, position int) (string, error) {
	if ownerCode == "" {
		return "", errs.NewValueIsRequiredError("ownerCode")
	}
	if err := orderID.Validate(); err != nil {
		return "", err
	}
	if position < 1 || position > maxOrderScopedPosition {
		return "", errs.NewValueIsOutOfRangeError("position", position, 1, maxOrderScopedPosition)
	}

	compact := strings.ToUpper(strings.ReplaceAll(orderID.String(), "-", ""))
	return fmt.Sprintf("%s%s%s%02d", TrackingCodePrefix, ownerCode, compact[:8], position), nil
}
