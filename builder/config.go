// SPDX-License-Identifier: MIT
// Package: lvfuzzy/builder
//
// config.go — internal configuration and deterministic defaults.

package builder

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	cuts int // ≥ MinCuts
}

// newBuilderConfig applies opts in order over the defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{cuts: DefaultCuts}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
