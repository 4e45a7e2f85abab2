// SPDX-License-Identifier: MIT
// Package core: Graph method implementations.
//
// Stored pairs live in per-vertex ordered sets, so insertion and membership
// are O(log deg) and every listing (Stored, Neighbors, Edges) is ascending
// without a separate sort. Logical queries (HasEdge, Neighbors, Edges,
// Degrees) interpret the stored relation through the inversion flag.

package core

import (
	"fmt"
)

// InsertEdge stores the unordered pair {u, v}: v joins u's set and u joins
// v's set. In inverted mode this removes the edge u—v from the logical graph.
// Re-inserting a stored pair is a no-op.
// Returns ErrVertexNotFound for ids outside [0, n) and ErrLoopNotAllowed for u == v.
// Complexity: O(log deg).
func (g *Graph) InsertEdge(u, v int) error {
	if !g.valid(u) || !g.valid(v) {
		return fmt.Errorf("core: InsertEdge(%d,%d) on %d vertices: %w", u, v, len(g.adjacency), ErrVertexNotFound)
	}
	if u == v {
		return fmt.Errorf("core: InsertEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}
	if g.adjacency[u].Contains(v) {
		return nil
	}
	g.adjacency[u].Add(v)
	g.adjacency[v].Add(u)
	g.stored++

	return nil
}

// CanInsert reports whether {u, v} may be stored: false iff u == v, the pair
// is already stored, or either id is out of range.
// Complexity: O(log deg).
func (g *Graph) CanInsert(u, v int) bool {
	if u == v || !g.valid(u) || !g.valid(v) {
		return false
	}

	return !g.adjacency[u].Contains(v)
}

// IsStored reports whether the pair {u, v} is physically held.
func (g *Graph) IsStored(u, v int) bool {
	if !g.valid(u) || !g.valid(v) {
		return false
	}

	return g.adjacency[u].Contains(v)
}

// HasEdge reports logical adjacency of u and v.
// Explicit mode: the pair is stored. Inverted mode: the pair is NOT stored.
// Self-pairs and out-of-range ids are never adjacent.
func (g *Graph) HasEdge(u, v int) bool {
	if u == v || !g.valid(u) || !g.valid(v) {
		return false
	}

	return g.adjacency[u].Contains(v) != g.inverted
}

// Stored returns the stored partners of u in ascending order.
// Complexity: O(deg).
func (g *Graph) Stored(u int) ([]int, error) {
	if !g.valid(u) {
		return nil, fmt.Errorf("core: Stored(%d): %w", u, ErrVertexNotFound)
	}

	return toInts(g.adjacency[u].Values()), nil
}

// Neighbors returns the logical neighbors of u in ascending order.
//
// Explicit mode costs O(deg(u)). Inverted mode scans all n ids and skips
// stored (removed) partners and u itself, O(n).
func (g *Graph) Neighbors(u int) ([]int, error) {
	if !g.valid(u) {
		return nil, fmt.Errorf("core: Neighbors(%d): %w", u, ErrVertexNotFound)
	}
	if !g.inverted {
		return toInts(g.adjacency[u].Values()), nil
	}

	removed := g.adjacency[u]
	out := make([]int, 0, len(g.adjacency)-1-removed.Size())
	for v := range g.adjacency {
		if v != u && !removed.Contains(v) {
			out = append(out, v)
		}
	}

	return out, nil
}

// StoredEdges lists every stored pair once, canonical and ascending.
// Complexity: O(n + stored).
func (g *Graph) StoredEdges() []Edge {
	out := make([]Edge, 0, g.stored)
	var (
		u int
		x interface{}
	)
	for u = range g.adjacency {
		for _, x = range g.adjacency[u].Values() {
			if v := x.(int); v > u {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}

	return out
}

// Edges lists every logical edge once, canonical and ascending.
// Inverted mode enumerates all pairs of K_n and costs O(n²); exporters are
// the only intended callers.
func (g *Graph) Edges() []Edge {
	if !g.inverted {
		return g.StoredEdges()
	}

	out := make([]Edge, 0, g.EdgeCount())
	n := len(g.adjacency)
	for u := 0; u < n; u++ {
		removed := g.adjacency[u]
		for v := u + 1; v < n; v++ {
			if !removed.Contains(v) {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}

	return out
}

// Degrees returns the logical degree of every vertex, indexed by id.
// Complexity: O(n).
func (g *Graph) Degrees() []int {
	n := len(g.adjacency)
	deg := make([]int, n)
	for u, set := range g.adjacency {
		if g.inverted {
			deg[u] = n - 1 - set.Size()
		} else {
			deg[u] = set.Size()
		}
	}

	return deg
}

// Reset drops every stored pair and switches the representation.
// Reset(false) yields an edgeless graph, Reset(true) yields K_n.
// Complexity: O(n).
func (g *Graph) Reset(inverted bool) {
	for _, set := range g.adjacency {
		set.Clear()
	}
	g.stored = 0
	g.inverted = inverted
}

// valid reports whether id addresses a vertex of g.
func (g *Graph) valid(id int) bool {
	return id >= 0 && id < len(g.adjacency)
}

// toInts unboxes the ordered set contents.
func toInts(values []interface{}) []int {
	out := make([]int, len(values))
	for i, x := range values {
		out[i] = x.(int)
	}

	return out
}
