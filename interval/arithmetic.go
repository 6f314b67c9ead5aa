// SPDX-License-Identifier: MIT
// Package: lvfuzzy/interval
//
// arithmetic.go — standard interval arithmetic. An empty operand makes the
// result empty; no operation here rounds except Div (see scalar.Div).

package interval

import (
	"fmt"

	"github.com/katalvlaran/lvfuzzy/scalar"
	"github.com/shopspring/decimal"
)

// Add returns [a.min + b.min, a.max + b.max].
func (iv Interval) Add(other Interval) Interval {
	if !iv.valid || !other.valid {
		return Interval{}
	}

	return New(iv.lo.Add(other.lo), iv.hi.Add(other.hi))
}

// Sub returns [a.min - b.max, a.max - b.min].
// Note that a.Sub(b) is not computed as a.Add(b.Neg()) bound for bound;
// the rule above is the definition.
func (iv Interval) Sub(other Interval) Interval {
	if !iv.valid || !other.valid {
		return Interval{}
	}

	return New(iv.lo.Sub(other.hi), iv.hi.Sub(other.lo))
}

// Mul returns the hull of the four corner products.
func (iv Interval) Mul(other Interval) Interval {
	if !iv.valid || !other.valid {
		return Interval{}
	}
	lo, hi := scalar.MinMax(
		iv.lo.Mul(other.lo),
		iv.lo.Mul(other.hi),
		iv.hi.Mul(other.lo),
		iv.hi.Mul(other.hi),
	)

	return New(lo, hi)
}

// Div returns the hull of the four corner quotients.
// Fails with ErrDivisionByZero when other contains 0.
func (iv Interval) Div(other Interval) (Interval, error) {
	if !iv.valid || !other.valid {
		return Interval{}, nil
	}
	if other.Contains(decimal.Zero) {
		return Interval{}, fmt.Errorf("Div(%s, %s): %w", iv, other, ErrDivisionByZero)
	}
	lo, hi := scalar.MinMax(
		scalar.Div(iv.lo, other.lo),
		scalar.Div(iv.lo, other.hi),
		scalar.Div(iv.hi, other.lo),
		scalar.Div(iv.hi, other.hi),
	)

	return New(lo, hi), nil
}

// Neg returns [-max, -min].
func (iv Interval) Neg() Interval {
	if !iv.valid {
		return Interval{}
	}

	return New(iv.hi.Neg(), iv.lo.Neg())
}

// Power raises every point of the interval to the n-th power.
//
// Rules:
//   - empty ⇒ empty (checked first);
//   - n == 0 ⇒ [1, 1];
//   - n < 0  ⇒ ErrNegativeExponent;
//   - even n over an interval straddling 0 ⇒ 0 is included:
//     [min(0, m), max(0, m)] with m = max(min^n, max^n);
//   - otherwise ⇒ [min(min^n, max^n), max(min^n, max^n)].
//
// Example: [-2, 3]^2 = [0, 9]; [-2, 3]^3 = [-8, 27].
func (iv Interval) Power(n int) (Interval, error) {
	if !iv.valid {
		return Interval{}, nil
	}
	if n == 0 {
		return Point(scalar.One), nil
	}
	if n < 0 {
		return Interval{}, fmt.Errorf("Power(%s, %d): %w", iv, n, ErrNegativeExponent)
	}

	pLo, err := scalar.PowInt(iv.lo, n)
	if err != nil {
		return Interval{}, fmt.Errorf("Power(%s, %d): %w", iv, n, err)
	}
	pHi, err := scalar.PowInt(iv.hi, n)
	if err != nil {
		return Interval{}, fmt.Errorf("Power(%s, %d): %w", iv, n, err)
	}

	if n%2 == 0 && iv.Contains(decimal.Zero) {
		m := decimal.Max(pLo, pHi)
		return New(decimal.Min(decimal.Zero, m), decimal.Max(decimal.Zero, m)), nil
	}
	lo, hi := scalar.MinMax(pLo, pHi)

	return New(lo, hi), nil
}
