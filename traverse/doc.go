// Package traverse searches for a path between two vertices of a core.Graph
// with a frontier discipline chosen per call: FIFO gives breadth-first
// search, LIFO depth-first search.
//
// What:
//
//   - Traverse(from, to, d) pops vertices until `to` is popped (Done) or the
//     frontier empties (Exhausted, ErrPathNotFound).
//   - Path returns [to … from] along predecessor links; Distance its edge count.
//   - Order lists popped vertices; Visited is its length.
//   - Clear returns the Traverser to Idle so it can run again.
//
// Neighbor resolution:
//
//   - Direct: candidates are the stored pairs of the popped vertex.
//   - Complement: candidates are every other vertex NOT stored, O(n) per pop.
//     This is how a graph kept as "K_n minus removed pairs" is searched
//     without materializing its edges.
//
// ResolveAuto (default) picks complement exactly when g.Inverted().
//
// Complexity:
//
//   - Direct:     O(V + E·log Δ) per run.
//   - Complement: O(V²) per run.
//   - Clear:      O(vertices marked by the last run).
//
// A vertex is marked visited when pushed, so each vertex enters the
// frontier at most once and every run ends after at most n pops.
package traverse
