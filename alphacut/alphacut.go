// SPDX-License-Identifier: MIT
// Package: lvfuzzy/alphacut

package alphacut

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvfuzzy/fuzzyerr"
	"github.com/katalvlaran/lvfuzzy/interval"
	"github.com/katalvlaran/lvfuzzy/scalar"
	"github.com/shopspring/decimal"
)

var (
	// ErrAlphaRange is returned for α outside [0, 1].
	ErrAlphaRange = fmt.Errorf("alphacut: alpha must be in [0, 1]: %w", fuzzyerr.ErrRange)

	// ErrEmptyInterval is returned when a cut is built over the empty interval.
	ErrEmptyInterval = fmt.Errorf("alphacut: interval of an alpha-cut cannot be empty: %w", fuzzyerr.ErrInvalidArgument)

	// ErrContainmentDirection is returned by Contains when the receiver has a
	// higher α than the argument.
	ErrContainmentDirection = fmt.Errorf("alphacut: receiver has a higher alpha than the argument: %w", fuzzyerr.ErrDomain)
)

// Cut is an immutable (α, interval) pair. The zero value is not a valid cut;
// build cuts with New or Of.
type Cut struct {
	alpha decimal.Decimal
	iv    interval.Interval
}

// New validates α ∈ [0,1] and a non-empty interval.
func New(alpha decimal.Decimal, iv interval.Interval) (Cut, error) {
	if err := ValidateAlpha(alpha); err != nil {
		return Cut{}, fmt.Errorf("alphacut.New: %w", err)
	}
	if iv.IsEmpty() {
		return Cut{}, fmt.Errorf("alphacut.New(%s): %w", alpha, ErrEmptyInterval)
	}

	return Cut{alpha: alpha, iv: iv}, nil
}

// Of coerces α through scalar.Of and delegates to New.
func Of[T scalar.Value](alpha T, iv interval.Interval) (Cut, error) {
	a, err := scalar.Of(alpha)
	if err != nil {
		return Cut{}, fmt.Errorf("alphacut.Of: %w", err)
	}

	return New(a, iv)
}

// ValidateAlpha returns ErrAlphaRange unless 0 ≤ alpha ≤ 1.
func ValidateAlpha(alpha decimal.Decimal) error {
	if alpha.IsNegative() || alpha.GreaterThan(scalar.One) {
		return fmt.Errorf("alpha %s: %w", alpha, ErrAlphaRange)
	}

	return nil
}

// Alpha returns the confidence level.
func (c Cut) Alpha() decimal.Decimal { return c.alpha }

// Interval returns the interval of the cut.
func (c Cut) Interval() interval.Interval { return c.iv }

// Contains reports whether other's interval is nested in c's interval.
// It is only meaningful downwards (c.α ≤ other.α) and fails with
// ErrContainmentDirection otherwise.
func (c Cut) Contains(other Cut) (bool, error) {
	if c.alpha.GreaterThan(other.alpha) {
		return false, fmt.Errorf("Contains(%s, %s): %w", c.alpha, other.alpha, ErrContainmentDirection)
	}

	return c.iv.ContainsInterval(other.iv), nil
}

// Neg negates the interval and keeps α.
func (c Cut) Neg() Cut {
	return Cut{alpha: c.alpha, iv: c.iv.Neg()}
}

// ApplyFunction maps the interval through f (see interval.ApplyFunction)
// and keeps α.
func (c Cut) ApplyFunction(f interval.Func, opts ...interval.Option) (Cut, error) {
	iv, err := c.iv.ApplyFunction(f, opts...)
	if err != nil {
		return Cut{}, fmt.Errorf("alpha %s: %w", c.alpha, err)
	}

	return Cut{alpha: c.alpha, iv: iv}, nil
}

// Compare orders cuts by α only: -1, 0 or +1.
func (c Cut) Compare(other Cut) int {
	return c.alpha.Cmp(other.alpha)
}

// Equal reports whether both α and the interval are equal.
func (c Cut) Equal(other Cut) bool {
	return c.alpha.Equal(other.alpha) && c.iv.Equal(other.iv)
}

// String renders "AlphaCut(alpha: <a>, interval: [min, max])".
func (c Cut) String() string {
	return "AlphaCut(alpha: " + c.alpha.String() + ", interval: " + c.iv.String() + ")"
}

// Sort orders cuts by ascending α in place. Cuts with equal α keep their
// relative order.
func Sort(cuts []Cut) {
	slices.SortStableFunc(cuts, Cut.Compare)
}
