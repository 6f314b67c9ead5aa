// SPDX-License-Identifier: MIT
// Package: lvfuzzy/builder
//
// constants.go — shared constants used by the shape constructors.

package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodTriangular is the canonical name for the Triangular constructor.
	MethodTriangular = "Triangular"
	// MethodTrapezoidal is the canonical name for the Trapezoidal constructor.
	MethodTrapezoidal = "Trapezoidal"
	// MethodCrisp is the canonical name for the Crisp constructor.
	MethodCrisp = "Crisp"
)

//-----------------------------------------------------------------------------
// Cut Ladder Defaults
//-----------------------------------------------------------------------------

const (
	// DefaultCuts stores only the support and the kernel.
	DefaultCuts = 2
	// MinCuts is the smallest ladder a fuzzy number can have.
	MinCuts = 2
)
