// Package core defines the central Graph and Edge types used by every
// other pathlab package: an index-addressed arena of n vertices, each
// owning an ordered set of neighbor ids.
//
// This file declares Edge, Graph, GraphOption, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrBadVertexCount  - graph order is smaller than one vertex.
//	ErrVertexNotFound  - vertex id outside [0, n).
//	ErrLoopNotAllowed  - attempt to store a self-loop.
package core

import (
	"errors"

	"github.com/emirpasic/gods/sets/treeset"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadVertexCount indicates NewGraph was asked for fewer than one vertex.
	ErrBadVertexCount = errors.New("core: vertex count must be positive")

	// ErrVertexNotFound indicates an operation referenced an id outside [0, n).
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted; graphs are always simple.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge is an unordered vertex pair stored canonically with U < V.
type Edge struct {
	// U is the smaller endpoint.
	U int

	// V is the larger endpoint.
	V int
}

// NewEdge returns the canonical form of the pair {u, v}.
func NewEdge(u, v int) Edge {
	if u > v {
		u, v = v, u
	}

	return Edge{U: u, V: v}
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithInverted makes the graph a complement representation: every stored
// pair is a pair REMOVED from the complete graph K_n, and two vertices are
// adjacent unless their pair is stored.
func WithInverted() GraphOption {
	return func(g *Graph) { g.inverted = true }
}

// Graph is a simple undirected graph on the vertices 0..n-1.
//
// Each vertex owns an ordered set of stored neighbor ids. In explicit mode
// the stored pairs are the edges; in inverted mode they are the removed
// pairs of K_n. The stored relation is always symmetric, loop-free and
// duplicate-free.
//
// A Graph is not safe for concurrent use. Monte Carlo trials own their
// graph exclusively and rebuild it per trial.
type Graph struct {
	inverted bool // stored pairs are removed pairs of K_n

	// adjacency[u] holds the stored partners of u, ascending.
	adjacency []*treeset.Set

	// stored is the number of stored unordered pairs.
	stored int
}

// GraphStats is a read-only snapshot of a graph's size and representation.
type GraphStats struct {
	Vertices    int     // n
	Inverted    bool    // complement representation in use
	StoredPairs int     // pairs physically held in adjacency sets
	EdgeCount   int     // logical edges
	MaxEdges    int     // n(n-1)/2
	Density     float64 // EdgeCount / MaxEdges (0 when MaxEdges == 0)
}

// NewGraph creates an edgeless Graph on n vertices (or, with WithInverted,
// the complete graph K_n with nothing removed yet).
// Returns ErrBadVertexCount if n < 1.
// Complexity: O(n).
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 1 {
		return nil, ErrBadVertexCount
	}
	g := &Graph{adjacency: make([]*treeset.Set, n)}
	for i := range g.adjacency {
		g.adjacency[i] = treeset.NewWithIntComparator()
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}
