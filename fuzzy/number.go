// SPDX-License-Identifier: MIT
// Package: lvfuzzy/fuzzy

package fuzzy

import (
	"fmt"

	"github.com/benbjohnson/immutable"
	"github.com/katalvlaran/lvfuzzy/alphacut"
	"github.com/katalvlaran/lvfuzzy/interval"
	"github.com/katalvlaran/lvfuzzy/scalar"
	"github.com/shopspring/decimal"
)

// cutMap is the storage of a Number: α → cut, ascending by α.
type cutMap = immutable.SortedMap[decimal.Decimal, alphacut.Cut]

// alphaComparer orders map keys numerically, so "0.5" and "0.50" are the
// same key.
type alphaComparer struct{}

func (alphaComparer) Compare(a, b decimal.Decimal) int { return a.Cmp(b) }

// Number is an immutable fuzzy number. The zero value has no cuts and is not
// a valid fuzzy number; build numbers with New, Crisp or the builder package.
type Number struct {
	cuts    *cutMap
	support alphacut.Cut
	kernel  alphacut.Cut
}

// New builds and validates a fuzzy number from cuts given in any order.
// A cut whose α is already present is ignored (first insertion wins).
//
// Validation, in order:
//  1. at least two distinct α levels (ErrTooFewCuts);
//  2. lowest α is exactly 0 (ErrSupportAlpha);
//  3. highest α is exactly 1 (ErrKernelAlpha);
//  4. every cut with α ≠ 0 is contained in the α = 0 cut (ErrNotNested).
//
// All errors wrap fuzzyerr.ErrInvalidArgument. Construction is all-or-nothing.
// Complexity: O(k log k) for k cuts.
func New(cuts ...alphacut.Cut) (Number, error) {
	m := immutable.NewSortedMap[decimal.Decimal, alphacut.Cut](alphaComparer{})
	for i, c := range cuts {
		if c.Interval().IsEmpty() {
			return Number{}, fmt.Errorf("fuzzy.New: cut %d: %w", i, ErrInvalidCut)
		}
		if _, dup := m.Get(c.Alpha()); dup {
			continue
		}
		m = m.Set(c.Alpha(), c)
	}

	return fromMap(m)
}

// fromMap validates m and wraps it in a Number.
func fromMap(m *cutMap) (Number, error) {
	if m.Len() < 2 {
		return Number{}, fmt.Errorf("fuzzy.New: %d distinct alpha levels: %w", m.Len(), ErrTooFewCuts)
	}
	n := Number{cuts: m}
	cuts := n.Cuts()
	support, kernel := cuts[0], cuts[len(cuts)-1]

	if !support.Alpha().IsZero() {
		return Number{}, fmt.Errorf("fuzzy.New: lowest alpha %s: %w", support.Alpha(), ErrSupportAlpha)
	}
	if !kernel.Alpha().Equal(scalar.One) {
		return Number{}, fmt.Errorf("fuzzy.New: highest alpha %s: %w", kernel.Alpha(), ErrKernelAlpha)
	}
	// Only the support is checked; consecutive cuts are not compared.
	for _, c := range cuts[1:] {
		ok, err := support.Contains(c)
		if err != nil {
			return Number{}, fmt.Errorf("fuzzy.New: %w", err)
		}
		if !ok {
			return Number{}, fmt.Errorf("fuzzy.New: %s outside support %s: %w", c, support.Interval(), ErrNotNested)
		}
	}
	n.support, n.kernel = support, kernel

	return n, nil
}

// Crisp lifts v into the degenerate fuzzy number {(0, [v, v]), (1, [v, v])}.
func Crisp(v decimal.Decimal) Number {
	p := interval.Point(v)
	support, _ := alphacut.New(scalar.Zero, p)
	kernel, _ := alphacut.New(scalar.One, p)
	m := immutable.NewSortedMap[decimal.Decimal, alphacut.Cut](alphaComparer{}).
		Set(support.Alpha(), support).
		Set(kernel.Alpha(), kernel)

	return Number{cuts: m, support: support, kernel: kernel}
}

// CrispOf coerces v through scalar.Of and returns Crisp(v).
func CrispOf[T scalar.Value](v T) (Number, error) {
	d, err := scalar.Of(v)
	if err != nil {
		return Number{}, fmt.Errorf("fuzzy.CrispOf: %w", err)
	}

	return Crisp(d), nil
}

// Len returns the number of stored alpha-cuts.
func (n Number) Len() int {
	if n.cuts == nil {
		return 0
	}

	return n.cuts.Len()
}

// AlphaCut returns the cut at level alpha.
//
// A stored cut is returned as is. Otherwise the cut is synthesized from the
// bracketing stored cuts lower.α < α < upper.α by interpolating each bound
// independently:
//
//	t    = (α - lower.α) / (upper.α - lower.α)
//	min' = lower.min + t·(upper.min - lower.min)
//	max' = lower.max + t·(upper.max - lower.max)
//
// Fails with alphacut.ErrAlphaRange (fuzzyerr.ErrRange) for α ∉ [0, 1].
// Complexity: O(log k) for stored levels, O(k) otherwise.
func (n Number) AlphaCut(alpha decimal.Decimal) (alphacut.Cut, error) {
	if err := alphacut.ValidateAlpha(alpha); err != nil {
		return alphacut.Cut{}, fmt.Errorf("AlphaCut: %w", err)
	}
	if n.cuts == nil {
		return alphacut.Cut{}, fmt.Errorf("AlphaCut: %w", ErrTooFewCuts)
	}
	if c, ok := n.cuts.Get(alpha); ok {
		return c, nil
	}

	lower := n.support
	itr := n.cuts.Iterator()
	for !itr.Done() {
		k, upper, _ := itr.Next()
		if k.GreaterThan(alpha) {
			return interpolate(lower, upper, alpha)
		}
		lower = upper
	}

	// Unreachable for a validated number: the kernel has α = 1 ≥ alpha.
	return alphacut.Cut{}, fmt.Errorf("AlphaCut(%s): no bracketing cuts: %w", alpha, ErrKernelAlpha)
}

func interpolate(lower, upper alphacut.Cut, alpha decimal.Decimal) (alphacut.Cut, error) {
	t := scalar.Div(alpha.Sub(lower.Alpha()), upper.Alpha().Sub(lower.Alpha()))
	lo, up := lower.Interval(), upper.Interval()
	minV := lo.Min().Add(t.Mul(up.Min().Sub(lo.Min())))
	maxV := lo.Max().Add(t.Mul(up.Max().Sub(lo.Max())))

	return alphacut.New(alpha, interval.New(minV, maxV))
}

// AlphaCutOf coerces alpha through scalar.Of and delegates to n.AlphaCut.
func AlphaCutOf[T scalar.Value](n Number, alpha T) (alphacut.Cut, error) {
	a, err := scalar.Of(alpha)
	if err != nil {
		return alphacut.Cut{}, fmt.Errorf("AlphaCut: %w", err)
	}

	return n.AlphaCut(a)
}

// Support returns the α = 0 interval.
func (n Number) Support() interval.Interval { return n.support.Interval() }

// Kernel returns the α = 1 interval.
func (n Number) Kernel() interval.Interval { return n.kernel.Interval() }

// Min returns the lower bound of the support.
func (n Number) Min() decimal.Decimal { return n.Support().Min() }

// Max returns the upper bound of the support.
func (n Number) Max() decimal.Decimal { return n.Support().Max() }

// KernelMin returns the lower bound of the kernel.
func (n Number) KernelMin() decimal.Decimal { return n.Kernel().Min() }

// KernelMax returns the upper bound of the kernel.
func (n Number) KernelMax() decimal.Decimal { return n.Kernel().Max() }

// Alphas returns the stored α levels in ascending order.
func (n Number) Alphas() []decimal.Decimal {
	out := make([]decimal.Decimal, 0, n.Len())
	n.each(func(c alphacut.Cut) { out = append(out, c.Alpha()) })

	return out
}

// Cuts returns the stored cuts in ascending α order.
func (n Number) Cuts() []alphacut.Cut {
	out := make([]alphacut.Cut, 0, n.Len())
	n.each(func(c alphacut.Cut) { out = append(out, c) })

	return out
}

func (n Number) each(fn func(alphacut.Cut)) {
	if n.cuts == nil {
		return
	}
	itr := n.cuts.Iterator()
	for !itr.Done() {
		_, c, _ := itr.Next()
		fn(c)
	}
}

// Equal reports whether both numbers store exactly the same cuts.
func (n Number) Equal(other Number) bool {
	a, b := n.Cuts(), other.Cuts()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}

	return true
}

// AlphaCutValues returns count equally spaced levels i/(count-1),
// i = 0..count-1, from 0 to 1 inclusive. Fails with ErrTooFewCuts for count < 2.
func AlphaCutValues(count int) ([]decimal.Decimal, error) {
	if count < 2 {
		return nil, fmt.Errorf("AlphaCutValues(%d): %w", count, ErrTooFewCuts)
	}
	den := decimal.NewFromInt(int64(count - 1))
	out := make([]decimal.Decimal, count)
	for i := range out {
		out[i] = scalar.Div(decimal.NewFromInt(int64(i)), den)
	}

	return out, nil
}
