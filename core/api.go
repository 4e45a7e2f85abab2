// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin public facade of read-only getters over Graph.
// Policy:
//   - No algorithms or hidden state here.
//   - Every getter is O(1) unless documented otherwise.

package core

// Order returns the number of vertices n.
func (g *Graph) Order() int {
	return len(g.adjacency)
}

// Inverted reports whether stored pairs are removed pairs of K_n.
//
// Notes:
//   - Traversal engines use this flag to pick neighbor resolution: stored
//     adjacency in explicit mode, a full O(n) complement scan otherwise.
func (g *Graph) Inverted() bool {
	return g.inverted
}

// StoredCount returns the number of stored unordered pairs.
func (g *Graph) StoredCount() int {
	return g.stored
}

// MaxEdges returns n(n-1)/2, the size of K_n's edge set.
func (g *Graph) MaxEdges() int {
	n := len(g.adjacency)

	return n * (n - 1) / 2
}

// EdgeCount returns the number of logical edges.
// Explicit mode: stored pairs. Inverted mode: MaxEdges minus stored pairs.
func (g *Graph) EdgeCount() int {
	if g.inverted {
		return g.MaxEdges() - g.stored
	}

	return g.stored
}

// Density returns EdgeCount/MaxEdges, or 0 for a single-vertex graph.
func (g *Graph) Density() float64 {
	maxEdges := g.MaxEdges()
	if maxEdges == 0 {
		return 0
	}

	return float64(g.EdgeCount()) / float64(maxEdges)
}

// Stats produces a snapshot of size and representation counters.
//
// Returns:
//   - *GraphStats: immutable-by-convention snapshot.
//
// Complexity:
//   - Time O(1), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	return &GraphStats{
		Vertices:    g.Order(),
		Inverted:    g.inverted,
		StoredPairs: g.stored,
		EdgeCount:   g.EdgeCount(),
		MaxEdges:    g.MaxEdges(),
		Density:     g.Density(),
	}
}
