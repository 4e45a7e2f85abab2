// SPDX-License-Identifier: MIT
// Package: pathlab/builder
//
// impl_prufer_tree.go - uniform random spanning tree via Prüfer decoding.
//
// Contract:
//   - g.Order() ≥ 2 (else ErrTooFewVertices).
//   - g must be empty and explicit (else ErrUnsupportedGraphMode).
//   - cfg.rng != nil (else ErrNeedRandSource).
//   - Adds exactly n-1 edges forming a tree; each of the n^(n-2) labeled
//     trees is equally likely.
//
// Complexity:
//   - Time: O(n log n) (heap-driven decode plus ordered-set inserts).
//   - Space: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/prufer"
)

// PruferTree returns a Constructor that spans g with a uniformly random
// labeled tree.
func PruferTree() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateTreeTarget(MethodPruferTree, g); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodPruferTree, ErrNeedRandSource)
		}

		n := g.Order()
		seq, err := prufer.RandomSequence(cfg.rng, n)
		if err != nil {
			return fmt.Errorf("%s: sequence: %v: %w", MethodPruferTree, err, ErrConstructFailed)
		}
		edges, err := prufer.Decode(seq, n)
		if err != nil {
			return fmt.Errorf("%s: decode: %v: %w", MethodPruferTree, err, ErrConstructFailed)
		}

		return insertAll(MethodPruferTree, g, edges)
	}
}
