// SPDX-License-Identifier: MIT
// Package: lvfuzzy/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Later options override earlier ones.

package builder

import "fmt"

// BuilderOption customizes a constructor by mutating a builderConfig before
// the fuzzy number is assembled.
type BuilderOption func(*builderConfig)

// WithCuts sets the number of stored α levels (≥ MinCuts). Levels are
// i/(n-1), i = 0..n-1. Panics if n < MinCuts.
func WithCuts(n int) BuilderOption {
	if n < MinCuts {
		panic(fmt.Sprintf("builder: WithCuts(%d): n must be ≥ %d", n, MinCuts))
	}
	return func(c *builderConfig) {
		c.cuts = n
	}
}
