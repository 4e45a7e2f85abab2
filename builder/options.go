// SPDX-License-Identifier: MIT
// Package: pathlab/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Sharing one *rand.Rand across many builds avoids re-seeding per trial.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithInversionThreshold sets the density at and above which Density builds
// the complement representation. Panics unless t ∈ [0,1].
func WithInversionThreshold(t float64) BuilderOption {
	if math.IsNaN(t) || t < MinDensity || t > MaxDensity {
		panic(fmt.Sprintf("builder: WithInversionThreshold(%v) outside [0,1]", t))
	}
	return func(c *builderConfig) {
		c.inversionThreshold = t
	}
}

// WithoutInversion disables the complement representation entirely; every
// density is reached by adding explicit edges.
func WithoutInversion() BuilderOption {
	return func(c *builderConfig) {
		c.inversionThreshold = math.Inf(1)
	}
}

// WithSampling selects the pair-sampling strategy. Panics on unknown values.
func WithSampling(s Sampling) BuilderOption {
	if !s.valid() {
		panic(fmt.Sprintf("builder: WithSampling(%q)", string(s)))
	}
	return func(c *builderConfig) {
		c.sampling = s
	}
}

// WithMaxSampleAttempts caps rejection draws per Density call.
// Panics if limit < 1.
func WithMaxSampleAttempts(limit int) BuilderOption {
	if limit < 1 {
		panic("builder: WithMaxSampleAttempts(limit<1)")
	}
	return func(c *builderConfig) {
		c.maxSampleAttempts = limit
	}
}

// WithTreeProtection keeps the spanning tree intact in the inverted regime:
// removed pairs are drawn among non-tree pairs only, so every generated
// graph stays connected.
func WithTreeProtection() BuilderOption {
	return func(c *builderConfig) {
		c.protectTree = true
	}
}
