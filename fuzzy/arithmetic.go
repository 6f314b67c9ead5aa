// SPDX-License-Identifier: MIT
// Package: lvfuzzy/fuzzy
//
// arithmetic.go — level-wise arithmetic. Every binary operator goes through
// operation: merge both α-ladders, take the (possibly interpolated) cut of
// each operand at every merged level, combine the intervals, and validate the
// result as a new Number.

package fuzzy

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvfuzzy/alphacut"
	"github.com/katalvlaran/lvfuzzy/interval"
	"github.com/katalvlaran/lvfuzzy/scalar"
	"github.com/shopspring/decimal"
)

// levelOp combines two cuts taken at the same α.
type levelOp func(a, b alphacut.Cut) (alphacut.Cut, error)

// intervalOp lifts an infallible interval operator into a levelOp; the result
// keeps the left operand's α (both are equal by construction).
func intervalOp(op func(a, b interval.Interval) interval.Interval) levelOp {
	return func(a, b alphacut.Cut) (alphacut.Cut, error) {
		return alphacut.New(a.Alpha(), op(a.Interval(), b.Interval()))
	}
}

// operation evaluates op at every level of the sorted union of both α-ladders.
// Complexity: O(L·k) for L merged levels and k stored cuts per operand.
func (n Number) operation(other Number, op levelOp) (Number, error) {
	levels := mergeAlphas(n.Alphas(), other.Alphas())
	out := make([]alphacut.Cut, 0, len(levels))
	for _, alpha := range levels {
		a, err := n.AlphaCut(alpha)
		if err != nil {
			return Number{}, err
		}
		b, err := other.AlphaCut(alpha)
		if err != nil {
			return Number{}, err
		}
		c, err := op(a, b)
		if err != nil {
			return Number{}, err
		}
		out = append(out, c)
	}

	return New(out...)
}

// mergeAlphas returns the sorted union of a and b without duplicates.
func mergeAlphas(a, b []decimal.Decimal) []decimal.Decimal {
	merged := make([]decimal.Decimal, 0, len(a)+len(b))
	merged = append(merged, a...)
	merged = append(merged, b...)
	slices.SortFunc(merged, decimal.Decimal.Cmp)

	return slices.CompactFunc(merged, decimal.Decimal.Equal)
}

// Neg negates every cut; α levels are unchanged.
func (n Number) Neg() Number {
	out := make([]alphacut.Cut, 0, n.Len())
	n.each(func(c alphacut.Cut) { out = append(out, c.Neg()) })
	neg, err := New(out...)
	if err != nil {
		// Negation preserves every invariant of a validated number.
		return Number{}
	}

	return neg
}

// Add returns n + other.
func (n Number) Add(other Number) (Number, error) {
	res, err := n.operation(other, intervalOp(interval.Interval.Add))
	if err != nil {
		return Number{}, fmt.Errorf("Add: %w", err)
	}

	return res, nil
}

// Sub returns n - other, level by level [a.min - b.max, a.max - b.min].
func (n Number) Sub(other Number) (Number, error) {
	res, err := n.operation(other, intervalOp(interval.Interval.Sub))
	if err != nil {
		return Number{}, fmt.Errorf("Sub: %w", err)
	}

	return res, nil
}

// Mul returns n · other.
func (n Number) Mul(other Number) (Number, error) {
	res, err := n.operation(other, intervalOp(interval.Interval.Mul))
	if err != nil {
		return Number{}, fmt.Errorf("Mul: %w", err)
	}

	return res, nil
}

// Div returns n / other. Fails with ErrDivisionByZero when the support of
// other contains 0; by nesting, no narrower cut can then contain 0 either,
// so the check is made once before merging.
func (n Number) Div(other Number) (Number, error) {
	if other.Support().Contains(decimal.Zero) {
		return Number{}, fmt.Errorf("Div: divisor support %s: %w", other.Support(), ErrDivisionByZero)
	}
	res, err := n.operation(other, func(a, b alphacut.Cut) (alphacut.Cut, error) {
		q, err := a.Interval().Div(b.Interval())
		if err != nil {
			return alphacut.Cut{}, err
		}
		return alphacut.New(a.Alpha(), q)
	})
	if err != nil {
		return Number{}, fmt.Errorf("Div: %w", err)
	}

	return res, nil
}

// AddScalar returns n + v, with v lifted by Crisp.
func AddScalar[T scalar.Value](n Number, v T) (Number, error) {
	c, err := CrispOf(v)
	if err != nil {
		return Number{}, err
	}

	return n.Add(c)
}

// SubScalar returns n - v.
func SubScalar[T scalar.Value](n Number, v T) (Number, error) {
	c, err := CrispOf(v)
	if err != nil {
		return Number{}, err
	}

	return n.Sub(c)
}

// MulScalar returns n · v.
func MulScalar[T scalar.Value](n Number, v T) (Number, error) {
	c, err := CrispOf(v)
	if err != nil {
		return Number{}, err
	}

	return n.Mul(c)
}

// DivScalar returns n / v. Fails with ErrDivisionByZero for v = 0.
func DivScalar[T scalar.Value](n Number, v T) (Number, error) {
	c, err := CrispOf(v)
	if err != nil {
		return Number{}, err
	}

	return n.Div(c)
}

// ScalarSub returns v - n.
func ScalarSub[T scalar.Value](v T, n Number) (Number, error) {
	c, err := CrispOf(v)
	if err != nil {
		return Number{}, err
	}

	return c.Sub(n)
}

// ScalarDiv returns v / n.
func ScalarDiv[T scalar.Value](v T, n Number) (Number, error) {
	c, err := CrispOf(v)
	if err != nil {
		return Number{}, err
	}

	return c.Div(n)
}
