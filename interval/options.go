// SPDX-License-Identifier: MIT
// Package: lvfuzzy/interval
//
// options.go — functional configuration of the extension-principle evaluator.
//
// Contract:
//   - Option constructors VALIDATE and PANIC on meaningless inputs
//     (programmer error); evaluation itself never panics.
//   - No hidden globals; every knob flows through Options.
//   - The same Option values are accepted by fuzzy.Number.ApplyFunction, where
//     the sample count is a TOTAL budget split across alpha-cuts.

package interval

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSamples is the number of sampling steps used by the general
	// (non-monotone) path when WithSamples is not given. The evaluator
	// visits DefaultSamples+1 points, both endpoints included.
	DefaultSamples = 1000

	// MinSamples is the floor enforced by the evaluator itself so that
	// both endpoints are always visited with at least one interior point.
	MinSamples = 2

	// DefaultMonotone selects the general sampling path by default.
	DefaultMonotone = false
)

const panicSamplesInvalid = "interval: WithSamples: n must be ≥ 1"

// Option mutates evaluator options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective evaluator configuration. Fields are
// unexported; resolve with Gather.
type Options struct {
	monotone bool
	samples  int
}

// WithMonotone asserts that the function is monotone over the interval, which
// enables the exact two-evaluation fast path. The assertion is not checked.
func WithMonotone() Option {
	return func(o *Options) {
		o.monotone = true
	}
}

// WithSamples sets the number of sampling steps for the general path.
// Panics if n < 1. Values below MinSamples are raised to MinSamples at
// evaluation time.
func WithSamples(n int) Option {
	if n < 1 {
		panic(panicSamplesInvalid)
	}
	return func(o *Options) {
		o.samples = n
	}
}

// Gather resolves opts over the defaults. Nil options are skipped.
// Complexity: O(len(opts)).
func Gather(opts ...Option) Options {
	o := Options{monotone: DefaultMonotone, samples: DefaultSamples}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Monotone reports whether the monotone fast path is selected.
func (o Options) Monotone() bool { return o.monotone }

// Samples reports the configured sample count.
func (o Options) Samples() int { return o.samples }
