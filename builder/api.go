// SPDX-License-Identifier: MIT
// Package: pathlab/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(n, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same n/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.
//
// Typical composition (one trial of the study):
//
//	g, err := builder.BuildGraph(n, []builder.BuilderOption{builder.WithRand(rng)},
//		builder.PruferTree(), builder.Density(0.3))

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathlab/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Preserve determinism for the same config and call order.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an explicit core.Graph on n vertices, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; the partial graph is discarded.
//
// Complexity:
//   - Resolving options: O(len(bopts)) time, O(1) space.
//   - Applying K constructors: Σ cost of each constructor; wrapper overhead O(K).
//
// Errors:
//   - core.ErrBadVertexCount for n < 1.
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrInvalidDensity, ...).
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	if err = Apply(g, bopts, cons...); err != nil {
		return nil, err
	}

	return g, nil
}

// Apply runs constructors against an existing graph. It is the building
// block of BuildGraph and lets callers reuse one allocation across trials
// after g.Reset(false).
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("BuildGraph: nil graph: %w", ErrConstructFailed)
	}

	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return nil
}

// =============================================================================
// Factories - implemented in impl_*.go
// =============================================================================
//
// Tree constructors require an empty explicit graph with n ≥ 2 and add
// exactly n-1 edges. Density requires an explicit graph and may switch it
// to the inverted representation.

// TreeFor resolves a TreeStrategy to its constructor.
// Unknown strategies return ErrOptionViolation.
func TreeFor(s TreeStrategy) (Constructor, error) {
	switch s {
	case TreePrufer:
		return PruferTree(), nil
	case TreeRecursive:
		return RecursiveTree(), nil
	case TreePath:
		return Path(), nil
	default:
		return nil, fmt.Errorf("TreeFor(%q): %w", string(s), ErrOptionViolation)
	}
}
