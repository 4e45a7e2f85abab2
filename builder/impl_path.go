// SPDX-License-Identifier: MIT
// Package: pathlab/builder
//
// impl_path.go - implementation of the Path() tree constructor.
//
// Contract:
//   - g.Order() ≥ 2 (else ErrTooFewVertices).
//   - g must be empty and explicit (else ErrUnsupportedGraphMode).
//   - Emits edges (i-1)—i for i=1..n-1 in stable increasing order.
//   - Uses no randomness; cfg.rng may be nil.
//
// Complexity:
//   - Time: O(n log n) through the ordered neighbor sets.
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathlab/core"
)

// Path returns a Constructor that spans g with the simple path P_n.
// The diameter of the result is n-1, the worst case for search depth.
func Path() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateTreeTarget(MethodPath, g); err != nil {
			return err
		}

		n := g.Order()
		for i := 1; i < n; i++ {
			if err := g.InsertEdge(i-1, i); err != nil {
				return fmt.Errorf("%s: InsertEdge(%d,%d): %w", MethodPath, i-1, i, err)
			}
		}

		return nil
	}
}
