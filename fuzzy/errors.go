// SPDX-License-Identifier: MIT
// Package: lvfuzzy/fuzzy
//
// errors.go — sentinel errors for the fuzzy package. Construction failures
// wrap fuzzyerr.ErrInvalidArgument; operand-content failures wrap
// fuzzyerr.ErrDomain.

package fuzzy

import (
	"fmt"

	"github.com/katalvlaran/lvfuzzy/fuzzyerr"
)

var (
	// ErrTooFewCuts is returned when fewer than two distinct α levels are given.
	ErrTooFewCuts = fmt.Errorf("fuzzy: at least two alpha-cuts are required: %w", fuzzyerr.ErrInvalidArgument)

	// ErrSupportAlpha is returned when the lowest α is not exactly 0.
	ErrSupportAlpha = fmt.Errorf("fuzzy: first alpha-cut must have alpha 0: %w", fuzzyerr.ErrInvalidArgument)

	// ErrKernelAlpha is returned when the highest α is not exactly 1.
	ErrKernelAlpha = fmt.Errorf("fuzzy: last alpha-cut must have alpha 1: %w", fuzzyerr.ErrInvalidArgument)

	// ErrNotNested is returned when a cut is not contained in the support.
	ErrNotNested = fmt.Errorf("fuzzy: alpha-cut intervals must be nested in the support: %w", fuzzyerr.ErrInvalidArgument)

	// ErrInvalidCut is returned for zero-value cuts (not built by alphacut.New).
	ErrInvalidCut = fmt.Errorf("fuzzy: alpha-cut has an empty interval: %w", fuzzyerr.ErrInvalidArgument)

	// ErrDivisionByZero is returned by Div when the divisor's support contains 0.
	ErrDivisionByZero = fmt.Errorf("fuzzy: division by fuzzy number whose support contains zero: %w", fuzzyerr.ErrDomain)
)
