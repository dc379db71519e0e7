package decimal

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Zero is decimal zero
var Zero = decimal.Zero

var hundred = decimal.NewFromInt(100)

// FromInt creates decimal from int
func FromInt(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// FromString parses decimal from string
func FromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

// MustFromString parses decimal from string, panics on error
func MustFromString(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Round rounds half away from zero to the given number of places.
// For the non-negative amounts on an invoice this is round-half-up.
func Round(d decimal.Decimal, places int) decimal.Decimal {
	return d.Round(int32(places))
}

// LineTotal computes quantity * unitPrice without rounding
func LineTotal(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return quantity.Mul(unitPrice)
}

// Percentage computes base * (percent/100), rounded to places
func Percentage(base, percent decimal.Decimal, places int) decimal.Decimal {
	return base.Mul(percent).Div(hundred).Round(int32(places))
}

// Sum sums a slice of decimals
func Sum(values []decimal.Decimal) decimal.Decimal {
	result := Zero
	for _, v := range values {
		result = result.Add(v)
	}
	return result
}

// FloorZero returns d, or zero when d is negative
func FloorZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return Zero
	}
	return d
}

// IsPositive returns true if decimal is greater than zero
func IsPositive(d decimal.Decimal) bool {
	return d.GreaterThan(Zero)
}

// IsNonNegative returns true if decimal is >= zero
func IsNonNegative(d decimal.Decimal) bool {
	return d.GreaterThanOrEqual(Zero)
}

// Split separates a non-negative amount rounded to places into its major
// units and its minor units expressed as an integer count of 10^-places.
// The major part is unbounded.
func Split(d decimal.Decimal, places int) (major *big.Int, minor int64) {
	rounded := d.Abs().Round(int32(places))
	whole := rounded.Truncate(0)
	minor = rounded.Sub(whole).Shift(int32(places)).Round(0).IntPart()
	return whole.BigInt(), minor
}
