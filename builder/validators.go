// Package builder provides validation helpers to enforce parameter
// contracts in Constructor factories.
//
// Each function returns an error wrapping the matching sentinel, prefixed
// with the constructor name, when its precondition is violated.
package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathlab/core"
)

// validateMin ensures that the provided integer 'got' is ≥ 'min'.
// Returns "<Method>: n=<got> < min=<min>: ErrTooFewVertices" otherwise.
//
// Complexity: O(1) time and space.
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateDensity enforces d ∈ [MinDensity, MaxDensity] and rejects NaN.
//
// Complexity: O(1) time and space.
func validateDensity(method string, d float64) error {
	if math.IsNaN(d) || d < MinDensity || d > MaxDensity {
		return fmt.Errorf("%s: density must be in [%.1f,%.1f], got %v: %w",
			method, MinDensity, MaxDensity, d, ErrInvalidDensity)
	}

	return nil
}

// validateTreeTarget checks that g can receive a spanning tree: explicit,
// with no stored pairs and at least MinTreeNodes vertices.
func validateTreeTarget(method string, g *core.Graph) error {
	if err := validateMin(method, g.Order(), MinTreeNodes); err != nil {
		return err
	}
	if g.Inverted() || g.StoredCount() != 0 {
		return fmt.Errorf("%s: graph must be empty and explicit (inverted=%t, stored=%d): %w",
			method, g.Inverted(), g.StoredCount(), ErrUnsupportedGraphMode)
	}

	return nil
}

// insertAll stores edges in order, tagging failures with method.
func insertAll(method string, g *core.Graph, edges []core.Edge) error {
	for _, e := range edges {
		if err := g.InsertEdge(e.U, e.V); err != nil {
			return fmt.Errorf("%s: InsertEdge(%d,%d): %w", method, e.U, e.V, err)
		}
	}

	return nil
}
