// SPDX-License-Identifier: MIT
// Package: lvfuzzy/scalar

package scalar

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/katalvlaran/lvfuzzy/fuzzyerr"
	"github.com/shopspring/decimal"
)

// DivisionPlaces is the minimum number of significant digits kept by Div.
const DivisionPlaces int32 = 50

var (
	// ErrMalformed is returned by Parse (and Of for strings) on text that is
	// not a decimal literal.
	ErrMalformed = fmt.Errorf("scalar: malformed decimal literal: %w", fuzzyerr.ErrParse)

	// ErrNotFinite is returned by Of for NaN and ±Inf floats, which have no
	// decimal representation.
	ErrNotFinite = fmt.Errorf("scalar: float is not finite: %w", fuzzyerr.ErrParse)

	// ErrZeroToZero is returned by PowInt for 0^0.
	ErrZeroToZero = fmt.Errorf("scalar: 0^0 is undefined: %w", fuzzyerr.ErrDomain)
)

// Value enumerates the Go types accepted wherever lvfuzzy coerces a scalar.
type Value interface {
	decimal.Decimal | string | int | int32 | int64 | uint | uint32 | uint64 | float32 | float64
}

var (
	// Zero is the additive identity.
	Zero = decimal.Zero
	// One is the multiplicative identity.
	One = decimal.NewFromInt(1)
)

// Parse converts a decimal literal ("1.5", "-2", "1.1e-3") into a Decimal.
// Surrounding whitespace is ignored.
func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("Parse(%q): %w", s, ErrMalformed)
	}

	return d, nil
}

// Of coerces v into a Decimal. Strings go through Parse; floats are converted
// through their shortest exact decimal representation (so 1.5 becomes "1.5",
// not a 53-bit binary expansion).
func Of[T Value](v T) (decimal.Decimal, error) {
	switch x := any(v).(type) {
	case decimal.Decimal:
		return x, nil
	case string:
		return Parse(x)
	case int:
		return decimal.NewFromInt(int64(x)), nil
	case int32:
		return decimal.NewFromInt32(x), nil
	case int64:
		return decimal.NewFromInt(x), nil
	case uint:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(x)), 0), nil
	case uint32:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(x)), 0), nil
	case uint64:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(x), 0), nil
	case float32:
		if isNonFinite(float64(x)) {
			return decimal.Zero, fmt.Errorf("Of(%v): %w", x, ErrNotFinite)
		}
		return decimal.NewFromFloat32(x), nil
	case float64:
		if isNonFinite(x) {
			return decimal.Zero, fmt.Errorf("Of(%v): %w", x, ErrNotFinite)
		}
		return decimal.NewFromFloat(x), nil
	}

	// Unreachable: Value is a closed union.
	return decimal.Zero, fmt.Errorf("Of(%v): unsupported type %T: %w", v, v, fuzzyerr.ErrParse)
}

// MustOf is Of for literals known to be valid; it panics otherwise.
// Intended for tests, examples and package-level constants.
func MustOf[T Value](v T) decimal.Decimal {
	d, err := Of(v)
	if err != nil {
		panic(err)
	}

	return d
}

// Div returns a/b rounded half-up to at least DivisionPlaces significant
// digits. The number of fractional places grows with the ratio of the
// operands' magnitudes, so small quotients are never rounded to zero.
// The caller guarantees b != 0.
func Div(a, b decimal.Decimal) decimal.Decimal {
	if a.IsZero() {
		return decimal.Zero
	}
	places := DivisionPlaces - magnitude(a) + magnitude(b)
	if places < DivisionPlaces {
		places = DivisionPlaces
	}

	return a.DivRound(b, places)
}

// magnitude returns the position of the leading digit of d: 1 for 1..9,
// 0 for 0.1..0.9, -59 for 1e-60.
func magnitude(d decimal.Decimal) int32 {
	return int32(d.NumDigits()) + d.Exponent()
}

// MinMax returns the smallest and the largest of the given values.
// At least one value is required.
// Complexity: O(len(rest)).
func MinMax(first decimal.Decimal, rest ...decimal.Decimal) (lo, hi decimal.Decimal) {
	lo, hi = first, first
	for _, v := range rest {
		if v.LessThan(lo) {
			lo = v
		}
		if v.GreaterThan(hi) {
			hi = v
		}
	}

	return lo, hi
}

// PowInt returns x^n for n >= 0 using exact repeated squaring.
func PowInt(x decimal.Decimal, n int) (decimal.Decimal, error) {
	if n < 0 || n > math.MaxInt32 {
		return decimal.Zero, fmt.Errorf("PowInt: exponent %d: %w", n, fuzzyerr.ErrDomain)
	}
	if n == 0 && x.IsZero() {
		return decimal.Zero, ErrZeroToZero
	}
	p, err := x.PowInt32(int32(n))
	if err != nil {
		return decimal.Zero, fmt.Errorf("PowInt: %v: %w", err, fuzzyerr.ErrDomain)
	}

	return p, nil
}

// Float64 returns the nearest float64 to d.
func Float64(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

func isNonFinite(f float64) bool {
	return math.IsNaN(f) || math.IsInf(f, 0)
}
