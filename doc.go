// Package lvfuzzy is an arithmetic library for fuzzy numbers represented by
// their alpha-cuts, with exact decimal bounds.
//
// 🚀 What is lvfuzzy?
//
//	A small, immutable, panic-free toolkit that brings together:
//		• Intervals: closed [min, max] ranges with interval arithmetic, power,
//		  intersection, union and ordering
//		• Alpha-cuts: an interval tagged with a confidence level α ∈ [0, 1]
//		• Fuzzy numbers: validated nested families of alpha-cuts with
//		  interpolated lookup, arithmetic, crisp operands and membership
//		• Extension principle: push any scalar function through an interval
//		  or a fuzzy number, exactly (monotone) or by deterministic sampling
//		• Shapes: triangular, trapezoidal and crisp numbers in one call
//
// ✨ Why choose lvfuzzy?
//
//   - Exact where it can be – decimal bounds, rounding only on division
//   - Values, not objects – every operation returns a new value
//   - One error taxonomy – range, invalid argument, domain and parse kinds
//     matched with errors.Is
//
// Under the hood, everything is organized under these subpackages:
//
//	alphacut/   — Cut: an α level and its interval
//	builder/    — Triangular, Trapezoidal and Crisp constructors
//	fuzzy/      — Number: the alpha-cut family and its algebra
//	fuzzyerr/   — the four error kinds
//	interval/   — Interval arithmetic and the extension-principle evaluator
//	membership/ — membership degree and possibilistic value objects
//	scalar/     — decimal parsing, coercion and the division precision
//	cmd/fuzzycalc — a command-line calculator over all of the above
//
// Quick ASCII example:
//
//	      μ
//	    1 ┤     ╱╲          tri(1, 2, 3) at α = 0.5
//	  0.5 ┤   ─┼──┼─        is the interval [1.5, 2.5]
//	    0 ┼──╱─┴──┴─╲──
//	         1      3
//
//	go get github.com/katalvlaran/lvfuzzy
package lvfuzzy
