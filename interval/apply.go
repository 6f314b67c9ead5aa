// SPDX-License-Identifier: MIT
// Package: lvfuzzy/interval
//
// apply.go — the extension-principle evaluator for a single interval.

package interval

import (
	"fmt"

	"github.com/katalvlaran/lvfuzzy/scalar"
	"github.com/shopspring/decimal"
)

// Func is a scalar function pushed through intervals by ApplyFunction.
// It must be pure and defined over the whole sampled domain; any error it
// returns aborts the evaluation.
type Func func(x decimal.Decimal) (decimal.Decimal, error)

// Pure adapts a total function (one that cannot fail) to Func.
func Pure(f func(x decimal.Decimal) decimal.Decimal) Func {
	return func(x decimal.Decimal) (decimal.Decimal, error) {
		return f(x), nil
	}
}

// ApplyFunction returns the image of iv under f, per the extension principle.
//
// Algorithm:
//   - Monotone path (WithMonotone): evaluate f at min and max only and return
//     [min(f(min), f(max)), max(f(min), f(max))]. Exact for monotone f.
//   - General path: with n = max(Samples, MinSamples), evaluate f at the
//     n+1 points x_i = min + (i/n)·(max-min), i = 0..n (both ends included),
//     and return [min_i f(x_i), max_i f(x_i)]. This is a deterministic
//     approximation, exact only when f has no interior extremum finer than
//     the grid; raise WithSamples for non-monotone functions that need it.
//
// The empty interval maps to the empty interval without calling f.
// The first error returned by f is wrapped with ErrFunction and returned
// immediately; no partial interval is produced.
//
// Complexity: O(1) evaluations (monotone) or O(n) evaluations (general).
func (iv Interval) ApplyFunction(f Func, opts ...Option) (Interval, error) {
	if !iv.valid {
		return Interval{}, nil
	}
	o := Gather(opts...)

	if o.monotone {
		a, err := eval(f, iv.lo)
		if err != nil {
			return Interval{}, err
		}
		b, err := eval(f, iv.hi)
		if err != nil {
			return Interval{}, err
		}

		return New(a, b), nil
	}

	n := o.samples
	if n < MinSamples {
		n = MinSamples
	}
	steps := decimal.NewFromInt(int64(n))
	width := iv.Width()

	var lo, hi decimal.Decimal
	for i := 0; i <= n; i++ {
		var x decimal.Decimal
		switch i {
		case 0:
			x = iv.lo
		case n:
			x = iv.hi
		default:
			t := scalar.Div(decimal.NewFromInt(int64(i)), steps)
			x = iv.lo.Add(t.Mul(width))
		}
		y, err := eval(f, x)
		if err != nil {
			return Interval{}, err
		}
		if i == 0 {
			lo, hi = y, y
			continue
		}
		lo, hi = scalar.MinMax(y, lo, hi)
	}

	return New(lo, hi), nil
}

func eval(f Func, x decimal.Decimal) (decimal.Decimal, error) {
	y, err := f(x)
	if err != nil {
		return decimal.Zero, fmt.Errorf("ApplyFunction: f(%s): %w: %w", x, ErrFunction, err)
	}

	return y, nil
}
