// SPDX-License-Identifier: MIT
// Package: lvfuzzy/interval

package interval

import (
	"fmt"

	"github.com/katalvlaran/lvfuzzy/scalar"
	"github.com/shopspring/decimal"
)

// Interval is a closed interval [min, max] of decimals.
//
// The zero value is the empty interval. Intervals are immutable; every
// operation returns a new value, so they are safe to share and copy.
type Interval struct {
	lo, hi decimal.Decimal
	valid  bool // false ⇒ empty
}

// New returns [min(a,b), max(a,b)]; the argument order does not matter.
func New(a, b decimal.Decimal) Interval {
	if b.LessThan(a) {
		a, b = b, a
	}

	return Interval{lo: a, hi: b, valid: true}
}

// Point returns the degenerate interval [v, v].
func Point(v decimal.Decimal) Interval {
	return Interval{lo: v, hi: v, valid: true}
}

// Empty returns the empty interval.
func Empty() Interval {
	return Interval{}
}

// Of coerces both bounds through scalar.Of and builds New(a, b).
func Of[T scalar.Value](a, b T) (Interval, error) {
	x, err := scalar.Of(a)
	if err != nil {
		return Interval{}, fmt.Errorf("interval.Of: %w", err)
	}
	y, err := scalar.Of(b)
	if err != nil {
		return Interval{}, fmt.Errorf("interval.Of: %w", err)
	}

	return New(x, y), nil
}

// OfPoint coerces v through scalar.Of and builds Point(v).
func OfPoint[T scalar.Value](v T) (Interval, error) {
	x, err := scalar.Of(v)
	if err != nil {
		return Interval{}, fmt.Errorf("interval.OfPoint: %w", err)
	}

	return Point(x), nil
}

// Min returns the lower bound (zero for the empty interval).
func (iv Interval) Min() decimal.Decimal { return iv.lo }

// Max returns the upper bound (zero for the empty interval).
func (iv Interval) Max() decimal.Decimal { return iv.hi }

// MinFloat64 returns the lower bound as the nearest float64.
func (iv Interval) MinFloat64() float64 { return scalar.Float64(iv.lo) }

// MaxFloat64 returns the upper bound as the nearest float64.
func (iv Interval) MaxFloat64() float64 { return scalar.Float64(iv.hi) }

// IsEmpty reports whether iv is the empty interval.
func (iv Interval) IsEmpty() bool { return !iv.valid }

// IsDegenerate reports whether min == max. The empty interval is not degenerate.
func (iv Interval) IsDegenerate() bool { return iv.valid && iv.lo.Equal(iv.hi) }

// Width returns max - min.
func (iv Interval) Width() decimal.Decimal { return iv.hi.Sub(iv.lo) }

// MidPoint returns (min + max) / 2.
func (iv Interval) MidPoint() decimal.Decimal {
	return scalar.Div(iv.lo.Add(iv.hi), decimal.NewFromInt(2))
}

// Contains reports whether min ≤ x ≤ max. Nothing is contained in the empty interval.
func (iv Interval) Contains(x decimal.Decimal) bool {
	return iv.valid && iv.lo.LessThanOrEqual(x) && x.LessThanOrEqual(iv.hi)
}

// ContainsInterval reports whether other ⊆ iv, i.e. min ≤ other.min and
// max ≥ other.max.
func (iv Interval) ContainsInterval(other Interval) bool {
	if !iv.valid || !other.valid {
		return false
	}

	return iv.lo.LessThanOrEqual(other.lo) && iv.hi.GreaterThanOrEqual(other.hi)
}

// Intersects reports whether the two intervals share at least one point.
// Always false when either is empty.
func (iv Interval) Intersects(other Interval) bool {
	if !iv.valid || !other.valid {
		return false
	}

	return !(iv.hi.LessThan(other.lo) || iv.lo.GreaterThan(other.hi))
}

// Intersection returns [max(min, other.min), min(max, other.max)].
// Fails with ErrDisjoint when the intervals do not intersect.
func (iv Interval) Intersection(other Interval) (Interval, error) {
	if !iv.Intersects(other) {
		return Interval{}, fmt.Errorf("Intersection(%s, %s): %w", iv, other, ErrDisjoint)
	}

	return New(decimal.Max(iv.lo, other.lo), decimal.Min(iv.hi, other.hi)), nil
}

// Unite returns the union of two intersecting intervals, which is itself an
// interval. Fails with ErrDisjoint otherwise; see UnionHull for the
// unconditional variant.
func (iv Interval) Unite(other Interval) (Interval, error) {
	if !iv.Intersects(other) {
		return Interval{}, fmt.Errorf("Unite(%s, %s): %w", iv, other, ErrDisjoint)
	}

	return iv.hull(other), nil
}

// UnionHull returns the smallest interval containing both operands. The
// empty interval is the identity element.
func (iv Interval) UnionHull(other Interval) Interval {
	if !iv.valid {
		return other
	}
	if !other.valid {
		return iv
	}

	return iv.hull(other)
}

func (iv Interval) hull(other Interval) Interval {
	return New(decimal.Min(iv.lo, other.lo), decimal.Max(iv.hi, other.hi))
}

// Equal reports whether both bounds are equal. Two empty intervals are equal.
func (iv Interval) Equal(other Interval) bool {
	if !iv.valid || !other.valid {
		return iv.valid == other.valid
	}

	return iv.lo.Equal(other.lo) && iv.hi.Equal(other.hi)
}

// Less reports whether iv lies entirely below other (max < other.min).
// Overlapping intervals are neither Less nor Greater.
func (iv Interval) Less(other Interval) bool {
	return iv.valid && other.valid && iv.hi.LessThan(other.lo)
}

// Greater reports whether iv lies entirely above other (min > other.max).
func (iv Interval) Greater(other Interval) bool {
	return iv.valid && other.valid && iv.lo.GreaterThan(other.hi)
}

// LessScalar compares against the degenerate interval [x, x].
func (iv Interval) LessScalar(x decimal.Decimal) bool { return iv.Less(Point(x)) }

// GreaterScalar compares against the degenerate interval [x, x].
func (iv Interval) GreaterScalar(x decimal.Decimal) bool { return iv.Greater(Point(x)) }

// String renders "[min, max]" with canonical decimal text (no trailing
// zeros, no exponent), or "[]" for the empty interval.
func (iv Interval) String() string {
	if !iv.valid {
		return "[]"
	}

	return "[" + iv.lo.String() + ", " + iv.hi.String() + "]"
}
