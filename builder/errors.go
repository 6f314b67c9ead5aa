// SPDX-License-Identifier: MIT
// Package: lvfuzzy/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed; each wraps a
//     fuzzyerr kind so callers may branch on either.
//   • Constructors attach context with builderErrorf(method, ..., ErrX).
//   • Constructors MUST NOT panic; validation panics are confined to option
//     constructors (WithCuts).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvfuzzy/fuzzyerr"
)

// ErrBadShape indicates shape parameters out of order, e.g. minimum > kernel.
// Usage: if errors.Is(err, ErrBadShape) { /* report parameters */ }.
var ErrBadShape = fmt.Errorf("builder: shape parameters out of order: %w", fuzzyerr.ErrInvalidArgument)

// builderErrorf wraps err with the given method context:
// "<Method>: <formatted message>: <err>".
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)

	return fmt.Errorf("%s: %s: %w", method, inner, err)
}
