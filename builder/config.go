// SPDX-License-Identifier: MIT
// Package: pathlab/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng                = nil          (stochastic constructors fail with ErrNeedRandSource)
//   • inversionThreshold = 0.5
//   • sampling           = SamplingAuto
//   • maxSampleAttempts  = 0            (resolved per call: 32·k + 1024)
//   • protectTree        = false        (removed pairs drawn among ALL pairs)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand

	// Density at and above which the complement representation is used.
	inversionThreshold float64

	// Pair-sampling strategy for Density.
	sampling Sampling

	// Upper bound on rejection draws; 0 resolves to attemptsPerPair·k + attemptsSlack.
	maxSampleAttempts int

	// Exclude the pre-existing (tree) edges from the removed set in the
	// inverted regime, which keeps the result connected.
	protectTree bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:                nil,
		inversionThreshold: DefaultInversionThreshold,
		sampling:           SamplingAuto,
		maxSampleAttempts:  0,
		protectTree:        false,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// attemptBudget resolves the rejection budget for k requested pairs.
func (c builderConfig) attemptBudget(k int) int {
	if c.maxSampleAttempts > 0 {
		return c.maxSampleAttempts
	}

	return attemptsPerPair*k + attemptsSlack
}
