// SPDX-License-Identifier: MIT
// Package: lvfuzzy/fuzzyerr
//
// errors.go — the error taxonomy shared by every lvfuzzy package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Packages declare their own specific sentinels that WRAP one of the kinds
//     below, so errors.Is matches both the specific error and its kind:
//
//	errors.Is(err, interval.ErrDivisionByZero) // specific
//	errors.Is(err, fuzzyerr.ErrDomain)         // kind
//
//   • Operations never return partial results alongside an error and never
//     clamp silently; every failure surfaces at the point of violation.

package fuzzyerr

import "errors"

var (
	// ErrRange indicates a value outside [0,1] where a confidence level,
	// membership degree, possibility or necessity was required.
	ErrRange = errors.New("lvfuzzy: value out of range [0, 1]")

	// ErrInvalidArgument indicates a structurally invalid argument: an empty
	// interval in an alpha-cut, a cut family violating the fuzzy-number
	// invariants, or malformed shape parameters.
	ErrInvalidArgument = errors.New("lvfuzzy: invalid argument")

	// ErrDomain indicates that the content of an operand violates an
	// operation's precondition (division by an interval containing zero,
	// intersection of disjoint intervals, negative exponents, ...).
	ErrDomain = errors.New("lvfuzzy: domain error")

	// ErrParse indicates a malformed numeric literal.
	ErrParse = errors.New("lvfuzzy: parse error")
)
