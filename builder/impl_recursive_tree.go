// SPDX-License-Identifier: MIT
// Package: pathlab/builder
//
// impl_recursive_tree.go - random recursive tree.
//
// Contract:
//   - g.Order() ≥ 2 (else ErrTooFewVertices).
//   - g must be empty and explicit (else ErrUnsupportedGraphMode).
//   - cfg.rng != nil (else ErrNeedRandSource).
//   - For i = 1..n-1 emits i—j with j uniform in [0, i).
//
// The distribution is NOT uniform over labeled trees: expected depth is
// O(log n) and low labels collect most of the degree. Use PruferTree when
// uniformity matters.
//
// Complexity:
//   - Time: O(n log n).
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathlab/core"
)

// RecursiveTree returns a Constructor that grows a random recursive tree.
func RecursiveTree() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateTreeTarget(MethodRecursiveTree, g); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodRecursiveTree, ErrNeedRandSource)
		}

		n := g.Order()
		for i := 1; i < n; i++ {
			j := cfg.rng.Intn(i)
			if err := g.InsertEdge(i, j); err != nil {
				return fmt.Errorf("%s: InsertEdge(%d,%d): %w", MethodRecursiveTree, i, j, err)
			}
		}

		return nil
	}
}
