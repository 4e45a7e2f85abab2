// SPDX-License-Identifier: MIT
// Package: pathlab/prufer
//
// prufer.go - random Prüfer sequences and their decoding into labeled trees.
//
// Canonical model:
//   - Cayley: labeled trees on n vertices ↔ sequences in [0,n)^(n-2).
//   - A UNIFORM random sequence therefore decodes into a UNIFORM random
//     labeled tree; decoding is the generator, Encode exists for checks.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices); n == 2 uses the empty sequence.
//   - Labels are 0-based.
//   - Decode emits exactly n-1 canonical edges (U < V).
//
// Complexity:
//   - RandomSequence: O(n).
//   - Decode / Encode: O(n log n) with a binary min-heap leaf pool.

package prufer

import (
	"fmt"
	"math/rand"

	"github.com/emirpasic/gods/trees/binaryheap"

	"github.com/katalvlaran/pathlab/core"
)

const minVertices = 2

// RandomSequence draws n-2 labels independently and uniformly from [0,n).
// Returns ErrTooFewVertices for n < 2 and ErrNeedRandSource for a nil rng.
func RandomSequence(rng *rand.Rand, n int) ([]int, error) {
	if n < minVertices {
		return nil, fmt.Errorf("prufer: RandomSequence: n=%d < min=%d: %w", n, minVertices, ErrTooFewVertices)
	}
	if rng == nil {
		return nil, fmt.Errorf("prufer: RandomSequence: %w", ErrNeedRandSource)
	}

	seq := make([]int, n-2)
	for i := range seq {
		seq[i] = rng.Intn(n)
	}

	return seq, nil
}

// Decode reconstructs the labeled tree encoded by seq.
//
// Implementation:
//   - Stage 1: degree[v] = 1 + occurrences of v in seq.
//   - Stage 2: every v with degree 1 enters the leaf pool (min-heap).
//   - Stage 3: for each u in seq, pop the smallest leaf v, emit {u,v},
//     decrement degree[u]; when it drops to 1, u becomes a leaf.
//   - Stage 4: exactly two leaves remain; join them.
//
// Errors:
//   - ErrTooFewVertices if n < 2.
//   - ErrBadSequence if len(seq) != n-2 or a label is outside [0,n).
func Decode(seq []int, n int) ([]core.Edge, error) {
	if n < minVertices {
		return nil, fmt.Errorf("prufer: Decode: n=%d < min=%d: %w", n, minVertices, ErrTooFewVertices)
	}
	if len(seq) != n-2 {
		return nil, fmt.Errorf("prufer: Decode: length %d, want %d: %w", len(seq), n-2, ErrBadSequence)
	}

	degree := make([]int, n)
	for i := range degree {
		degree[i] = 1
	}
	for i, v := range seq {
		if v < 0 || v >= n {
			return nil, fmt.Errorf("prufer: Decode: seq[%d]=%d outside [0,%d): %w", i, v, n, ErrBadSequence)
		}
		degree[v]++
	}

	leaves := binaryheap.NewWithIntComparator()
	for v, d := range degree {
		if d == 1 {
			leaves.Push(v)
		}
	}

	edges := make([]core.Edge, 0, n-1)
	for _, u := range seq {
		x, _ := leaves.Pop()
		edges = append(edges, core.NewEdge(u, x.(int)))
		degree[u]--
		if degree[u] == 1 {
			leaves.Push(u)
		}
	}

	first, _ := leaves.Pop()
	second, _ := leaves.Pop()
	edges = append(edges, core.NewEdge(first.(int), second.(int)))

	return edges, nil
}

// Encode computes the Prüfer sequence of a labeled tree on n vertices.
// It is the inverse of Decode: Decode(Encode(t), n) lists the edges of t.
//
// Edges must be canonical (U < V), as Decode and core.NewEdge produce them.
//
// Errors:
//   - ErrTooFewVertices if n < 2.
//   - ErrNotTree if edges is not a spanning tree of [0,n).
func Encode(edges []core.Edge, n int) ([]int, error) {
	if n < minVertices {
		return nil, fmt.Errorf("prufer: Encode: n=%d < min=%d: %w", n, minVertices, ErrTooFewVertices)
	}
	if err := validateTree(edges, n); err != nil {
		return nil, err
	}

	// nbrXor[v] is the XOR of v's remaining neighbors, so a leaf's single
	// neighbor is read off in O(1).
	degree := make([]int, n)
	nbrXor := make([]int, n)
	for _, e := range edges {
		degree[e.U]++
		degree[e.V]++
		nbrXor[e.U] ^= e.V
		nbrXor[e.V] ^= e.U
	}

	leaves := binaryheap.NewWithIntComparator()
	for v, d := range degree {
		if d == 1 {
			leaves.Push(v)
		}
	}

	seq := make([]int, 0, n-2)
	for len(seq) < n-2 {
		x, _ := leaves.Pop()
		v := x.(int)
		u := nbrXor[v]
		seq = append(seq, u)
		nbrXor[u] ^= v
		degree[u]--
		if degree[u] == 1 {
			leaves.Push(u)
		}
	}

	return seq, nil
}

// validateTree checks n-1 in-range, loop-free edges that never close a cycle.
func validateTree(edges []core.Edge, n int) error {
	if len(edges) != n-1 {
		return fmt.Errorf("prufer: %d edges on %d vertices: %w", len(edges), n, ErrNotTree)
	}
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	find := func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	for _, e := range edges {
		if e.U < 0 || e.V >= n || e.U >= e.V {
			return fmt.Errorf("prufer: edge %d-%d on %d vertices: %w", e.U, e.V, n, ErrNotTree)
		}
		ru, rv := find(e.U), find(e.V)
		if ru == rv {
			return fmt.Errorf("prufer: edge %d-%d closes a cycle: %w", e.U, e.V, ErrNotTree)
		}
		parent[ru] = rv
	}

	return nil
}
