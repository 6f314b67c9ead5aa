// SPDX-License-Identifier: MIT
// Package: lvfuzzy/membership

package membership

import (
	"fmt"

	"github.com/katalvlaran/lvfuzzy/fuzzyerr"
	"github.com/katalvlaran/lvfuzzy/scalar"
	"github.com/shopspring/decimal"
)

var (
	// ErrDegreeRange is returned for a membership degree outside [0, 1].
	ErrDegreeRange = fmt.Errorf("membership: degree must be in [0, 1]: %w", fuzzyerr.ErrRange)

	// ErrPossibilityRange is returned for a possibility outside [0, 1].
	ErrPossibilityRange = fmt.Errorf("membership: possibility must be in [0, 1]: %w", fuzzyerr.ErrRange)

	// ErrNecessityRange is returned for a necessity outside [0, 1].
	ErrNecessityRange = fmt.Errorf("membership: necessity must be in [0, 1]: %w", fuzzyerr.ErrRange)
)

func inUnit(v decimal.Decimal) bool {
	return !v.IsNegative() && v.LessThanOrEqual(scalar.One)
}

// Degree is a membership degree μ ∈ [0, 1]. The zero value is μ = 0.
type Degree struct {
	v decimal.Decimal
}

// NewDegree validates v ∈ [0, 1].
func NewDegree(v decimal.Decimal) (Degree, error) {
	if !inUnit(v) {
		return Degree{}, fmt.Errorf("NewDegree(%s): %w", v, ErrDegreeRange)
	}

	return Degree{v: v}, nil
}

// DegreeOf coerces v through scalar.Of and delegates to NewDegree.
func DegreeOf[T scalar.Value](v T) (Degree, error) {
	d, err := scalar.Of(v)
	if err != nil {
		return Degree{}, fmt.Errorf("DegreeOf: %w", err)
	}

	return NewDegree(d)
}

// Value returns μ.
func (d Degree) Value() decimal.Decimal { return d.v }

// Float64 returns μ as the nearest float64.
func (d Degree) Float64() float64 { return scalar.Float64(d.v) }

func (d Degree) Equal(o Degree) bool          { return d.v.Equal(o.v) }
func (d Degree) Less(o Degree) bool           { return d.v.LessThan(o.v) }
func (d Degree) LessOrEqual(o Degree) bool    { return d.v.LessThanOrEqual(o.v) }
func (d Degree) Greater(o Degree) bool        { return d.v.GreaterThan(o.v) }
func (d Degree) GreaterOrEqual(o Degree) bool { return d.v.GreaterThanOrEqual(o.v) }

// String renders "FuzzyMembership(μ)".
func (d Degree) String() string {
	return "FuzzyMembership(" + d.v.String() + ")"
}

// Possibilistic pairs a possibility and a necessity, each in [0, 1].
// The zero value is (0, 0).
type Possibilistic struct {
	possibility, necessity decimal.Decimal
}

// NewPossibilistic validates both measures.
func NewPossibilistic(possibility, necessity decimal.Decimal) (Possibilistic, error) {
	if !inUnit(possibility) {
		return Possibilistic{}, fmt.Errorf("NewPossibilistic(%s, %s): %w", possibility, necessity, ErrPossibilityRange)
	}
	if !inUnit(necessity) {
		return Possibilistic{}, fmt.Errorf("NewPossibilistic(%s, %s): %w", possibility, necessity, ErrNecessityRange)
	}

	return Possibilistic{possibility: possibility, necessity: necessity}, nil
}

// PossibilisticOf coerces both measures through scalar.Of.
func PossibilisticOf[T scalar.Value](possibility, necessity T) (Possibilistic, error) {
	p, err := scalar.Of(possibility)
	if err != nil {
		return Possibilistic{}, fmt.Errorf("PossibilisticOf: %w", err)
	}
	n, err := scalar.Of(necessity)
	if err != nil {
		return Possibilistic{}, fmt.Errorf("PossibilisticOf: %w", err)
	}

	return NewPossibilistic(p, n)
}

// Possibility returns the possibility measure.
func (p Possibilistic) Possibility() decimal.Decimal { return p.possibility }

// Necessity returns the necessity measure.
func (p Possibilistic) Necessity() decimal.Decimal { return p.necessity }

// Equal compares both measures.
func (p Possibilistic) Equal(o Possibilistic) bool {
	return p.possibility.Equal(o.possibility) && p.necessity.Equal(o.necessity)
}

// String renders "PossibilisticMembership(possibility: p, necessity: n)".
func (p Possibilistic) String() string {
	return "PossibilisticMembership(possibility: " + p.possibility.String() + ", necessity: " + p.necessity.String() + ")"
}
