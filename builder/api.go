// SPDX-License-Identifier: MIT
// Package: lvfuzzy/builder
//
// api.go — public shape constructors.
//
// Design contract:
//   - Every constructor coerces its parameters through scalar.Of, validates
//     their order, builds the cut ladder and hands it to fuzzy.New, so the
//     result satisfies exactly the same invariants as a hand-built number.
//   - Never panic; return sentinel errors (wrapped with the method name).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvfuzzy/alphacut"
	"github.com/katalvlaran/lvfuzzy/fuzzy"
	"github.com/katalvlaran/lvfuzzy/interval"
	"github.com/katalvlaran/lvfuzzy/scalar"
	"github.com/shopspring/decimal"
)

// Triangular builds the fuzzy number with support [minimum, maximum] and
// point kernel [kernel, kernel]. Requires minimum ≤ kernel ≤ maximum.
func Triangular[T scalar.Value](minimum, kernel, maximum T, opts ...BuilderOption) (fuzzy.Number, error) {
	p, err := coerce(MethodTriangular, minimum, kernel, maximum)
	if err != nil {
		return fuzzy.Number{}, err
	}
	if !ordered(p...) {
		return fuzzy.Number{}, builderErrorf(MethodTriangular, ErrBadShape,
			"need minimum ≤ kernel ≤ maximum, got %s, %s, %s", p[0], p[1], p[2])
	}

	return ladder(MethodTriangular, p[0], p[1], p[1], p[2], newBuilderConfig(opts...))
}

// Trapezoidal builds the fuzzy number with support [minimum, maximum] and
// kernel [kernelMinimum, kernelMaximum]. Requires
// minimum ≤ kernelMinimum ≤ kernelMaximum ≤ maximum.
func Trapezoidal[T scalar.Value](minimum, kernelMinimum, kernelMaximum, maximum T, opts ...BuilderOption) (fuzzy.Number, error) {
	p, err := coerce(MethodTrapezoidal, minimum, kernelMinimum, kernelMaximum, maximum)
	if err != nil {
		return fuzzy.Number{}, err
	}
	if !ordered(p...) {
		return fuzzy.Number{}, builderErrorf(MethodTrapezoidal, ErrBadShape,
			"need minimum ≤ kernel minimum ≤ kernel maximum ≤ maximum, got %s, %s, %s, %s", p[0], p[1], p[2], p[3])
	}

	return ladder(MethodTrapezoidal, p[0], p[1], p[2], p[3], newBuilderConfig(opts...))
}

// Crisp builds the degenerate fuzzy number {(0, [v, v]), (1, [v, v])}.
func Crisp[T scalar.Value](v T) (fuzzy.Number, error) {
	n, err := fuzzy.CrispOf(v)
	if err != nil {
		return fuzzy.Number{}, fmt.Errorf("%s: %w", MethodCrisp, err)
	}

	return n, nil
}

// ladder stores cfg.cuts levels α_i = i/(n-1) with
//
//	[a + (b-a)/(n-1)·i, d - (d-c)/(n-1)·i]
//
// The outermost and innermost levels use the parameters verbatim.
// Complexity: O(n log n).
func ladder(method string, a, b, c, d decimal.Decimal, cfg builderConfig) (fuzzy.Number, error) {
	alphas, err := fuzzy.AlphaCutValues(cfg.cuts)
	if err != nil {
		return fuzzy.Number{}, fmt.Errorf("%s: %w", method, err)
	}
	last := len(alphas) - 1
	steps := decimal.NewFromInt(int64(last))
	left := scalar.Div(b.Sub(a), steps)
	right := scalar.Div(d.Sub(c), steps)

	cuts := make([]alphacut.Cut, 0, len(alphas))
	for i, alpha := range alphas {
		var lo, hi decimal.Decimal
		switch i {
		case 0:
			lo, hi = a, d
		case last:
			lo, hi = b, c
		default:
			k := decimal.NewFromInt(int64(i))
			lo, hi = a.Add(left.Mul(k)), d.Sub(right.Mul(k))
		}
		cut, err := alphacut.New(alpha, interval.New(lo, hi))
		if err != nil {
			return fuzzy.Number{}, fmt.Errorf("%s: %w", method, err)
		}
		cuts = append(cuts, cut)
	}

	n, err := fuzzy.New(cuts...)
	if err != nil {
		return fuzzy.Number{}, fmt.Errorf("%s: %w", method, err)
	}

	return n, nil
}

func coerce[T scalar.Value](method string, vs ...T) ([]decimal.Decimal, error) {
	out := make([]decimal.Decimal, len(vs))
	for i, v := range vs {
		d, err := scalar.Of(v)
		if err != nil {
			return nil, fmt.Errorf("%s: parameter %d: %w", method, i, err)
		}
		out[i] = d
	}

	return out, nil
}
