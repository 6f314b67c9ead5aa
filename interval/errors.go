// SPDX-License-Identifier: MIT
// Package: lvfuzzy/interval
//
// errors.go — sentinel errors for the interval package. Each one wraps a
// fuzzyerr kind; check with errors.Is against either.

package interval

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvfuzzy/fuzzyerr"
)

var (
	// ErrDivisionByZero is returned by Div when the divisor contains 0.
	ErrDivisionByZero = fmt.Errorf("interval: division by interval containing zero: %w", fuzzyerr.ErrDomain)

	// ErrDisjoint is returned by Intersection and Unite for intervals that do
	// not intersect (or when either operand is empty).
	ErrDisjoint = fmt.Errorf("interval: intervals do not intersect: %w", fuzzyerr.ErrDomain)

	// ErrNegativeExponent is returned by Power for n < 0.
	ErrNegativeExponent = fmt.Errorf("interval: exponent must be non-negative: %w", fuzzyerr.ErrDomain)

	// ErrFunction wraps an error returned by a caller-supplied Func during
	// ApplyFunction. The function's own error stays reachable through errors.Is/As.
	ErrFunction = errors.New("interval: function evaluation failed")
)
