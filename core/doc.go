// Package core provides the graph store shared by every pathlab component:
// a simple undirected graph G = (V,E) over the vertices 0..n-1.
//
// Representation
//
//   - Index-addressed arena: a flat slice of n ordered neighbor sets keyed
//     by integer id. There are no vertex objects and no pointers between
//     vertices, so graphs are cheap to drop and rebuild per trial.
//   - Symmetric storage: InsertEdge(u, v) records v under u and u under v.
//   - Set semantics: duplicates collapse, self-loops are rejected.
//
// Explicit vs. inverted
//
//	An explicit graph stores its edges. An inverted graph (WithInverted)
//	stores the pairs REMOVED from the complete graph K_n, so a dense graph
//	with d close to 1 holds only the small removed set. HasEdge, Neighbors,
//	Edges, Degrees and EdgeCount interpret the stored relation accordingly.
//
// Methods
//
//	InsertEdge(u, v int) error   // O(log deg), idempotent
//	CanInsert(u, v int) bool     // false iff u == v or already stored
//	HasEdge(u, v int) bool       // logical adjacency
//	Neighbors(u int) ([]int, error)
//	Stored(u int) ([]int, error)
//	Edges() []Edge               // logical, canonical, ascending
//	StoredEdges() []Edge
//	Degrees() []int
//	Reset(inverted bool)
//
// Determinism
//
//	All listings are ascending, so traversal order over a given graph is
//	fully reproducible.
//
// Concurrency
//
//	None. A Graph belongs to exactly one trial at a time.
package core
