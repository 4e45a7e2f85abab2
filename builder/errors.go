// SPDX-License-Identifier: MIT
// Package: pathlab/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`:
//       fmt.Errorf("%s: n=%d < min=%d: %w", methodPrufer, n, MinTreeNodes, ErrTooFewVertices)
//   • Constructors MUST NOT panic at runtime; validation panics are confined
//     to option constructors (WithX...).
//
// Classification used by the Monte Carlo harness:
//   • Configuration faults (abort the run): ErrTooFewVertices,
//     ErrInvalidDensity, ErrNeedRandSource, ErrUnsupportedGraphMode,
//     ErrOptionViolation.
//   • Per-trial build failures (log and continue): ErrConstructFailed.

package builder

import "errors"

// ErrTooFewVertices indicates that the graph has fewer vertices than the
// requested constructor needs (trees and density targets need n ≥ 2).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidDensity indicates a density outside the closed interval [0,1] or NaN.
// Usage: if errors.Is(err, ErrInvalidDensity) { /* reject configuration */ }.
var ErrInvalidDensity = errors.New("builder: density out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnsupportedGraphMode indicates the constructor cannot run on the current
// graph state, e.g. a tree constructor on a non-empty graph, or Density on a
// graph that is already inverted.
var ErrUnsupportedGraphMode = errors.New("builder: unsupported graph mode")

// ErrConstructFailed indicates that sampling exhausted its attempt budget or
// ran out of eligible pairs, so the requested density could not be reached.
// Usage: if errors.Is(err, ErrConstructFailed) { /* retry with different seed */ }.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates an unknown strategy name reached runtime
// resolution (ParseSampling, ParseTreeStrategy, TreeFor).
var ErrOptionViolation = errors.New("builder: invalid option value")
