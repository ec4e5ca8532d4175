package kernel

import (
	"fmt"

	"parceltrack/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Weight is a value object representing a parcel weight or a containment
// unit's aggregate weight in kilograms. It wraps shopspring/decimal so that
// incremental aggregate updates (add on load, subtract on unload) are exact:
// after any sequence of loads and unloads, a unit's aggregate must equal the
// sum over currently attached parcels, which floating point cannot guarantee.
//
// A parcel weight must be strictly positive; aggregates start from
// ZeroWeight and never go negative. Weight is immutable: arithmetic methods
// return new values.
type Weight struct {
	value decimal.Decimal
}

// ZeroWeight returns the zero aggregate weight. This is the only valid way to
// obtain a zero Weight; NewWeight* constructors reject non-positive input.
func ZeroWeight() Weight {
	return Weight{value: decimal.Zero}
}

// NewWeightFromString parses a strictly positive decimal weight, e.g. "20.5".
//
// Returns a ValueIsInvalidError if the string is not a valid decimal or is
// not greater than zero.
func NewWeightFromString(s string) (Weight, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weight is invalid", err)
	}
	return NewWeightFromDecimal(d)
}

// NewWeightFromDecimal wraps a strictly positive decimal as a Weight.
func NewWeightFromDecimal(d decimal.Decimal) (Weight, error) {
	if d.LessThanOrEqual(decimal.Zero) {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause(
			"weight is invalid",
			fmt.Errorf("%s is not greater than 0", d),
		)
	}
	return Weight{value: d}, nil
}

// RestoreWeight reconstructs a Weight from persistence without the positivity
// check, so that zero aggregates of empty units round-trip. Negative values
// are still rejected.
func RestoreWeight(d decimal.Decimal) (Weight, error) {
	if d.IsNegative() {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause(
			"weight is invalid",
			fmt.Errorf("%s is negative", d),
		)
	}
	return Weight{value: d}, nil
}

// Add returns the sum of two weights.
func (w Weight) Add(other Weight) Weight {
	return Weight{value: w.value.Add(other.value)}
}

// Sub returns w minus other. Returns an error if the result would be
// negative, which indicates a corrupted aggregate.
func (w Weight) Sub(other Weight) (Weight, error) {
	result := w.value.Sub(other.value)
	if result.IsNegative() {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause(
			"weight is invalid",
			fmt.Errorf("subtracting %s from %s yields a negative weight", other.value, w.value),
		)
	}
	return Weight{value: result}, nil
}

// IsZero reports whether the weight is zero.
func (w Weight) IsZero() bool {
	return w.value.IsZero()
}

// Equals reports whether two weights represent the same quantity.
// Decimal comparison ignores trailing zeros, so "20.50" equals "20.5".
func (w Weight) Equals(other Weight) bool {
	return w.value.Equal(other.value)
}

// Decimal returns the underlying decimal value.
func (w Weight) Decimal() decimal.Decimal {
	return w.value
}

// String returns the decimal representation of the weight.
func (w Weight) String() string {
	return w.value.String()
}
