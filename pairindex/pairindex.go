// SPDX-License-Identifier: MIT
// Package: pathlab/pairindex
//
// pairindex.go - bijection between canonical vertex pairs and linear ranks.
//
// Enumeration (row-major over the strict upper triangle):
//
//	(0,1) (0,2) … (0,n-1) | (1,2) … (1,n-1) | … | (n-2,n-1)
//	  0     1       n-2   |  n-1              |       M-1
//
// where M = n(n-1)/2. Row a holds n-1-a pairs and starts at
//
//	rowStart(a) = a(2n-a-1)/2
//
// so Rank(a,b) = rowStart(a) + (b-a-1).
//
// Unrank works on the mirrored index k = M-1-index: counted from the end,
// row r (r = n-2-a) holds r+1 pairs and starts at r(r+1)/2, hence r is the
// largest integer with r(r+1)/2 ≤ k, i.e. the positive root of the
// quadratic r² + r - 2k = 0 rounded down: r = ⌊(√(8k+1) - 1)/2⌋.
//
// Complexity: O(1) per call (one integer square root).

package pairindex

import (
	"fmt"

	"github.com/katalvlaran/pathlab/core"
)

// MaxVertices bounds n so that 8·M+1 fits in a uint64 with room to spare.
const MaxVertices = 1 << 30

// MaxPairs returns n(n-1)/2, the number of unordered pairs over n vertices.
// Returns 0 for n < 2.
func MaxPairs(n int) int64 {
	if n < 2 {
		return 0
	}
	nn := int64(n)

	return nn * (nn - 1) / 2
}

// rowStart returns the rank of (a, a+1), the first pair of row a.
func rowStart(a, n int64) int64 {
	return a * (2*n - a - 1) / 2
}

// Rank maps the unordered pair {a, b} to its position in [0, M).
// Arguments are canonicalized, so Rank(a,b,n) == Rank(b,a,n).
// Returns ErrRankDomain if a == b, an endpoint is outside [0,n), or n is
// outside [2, MaxVertices].
func Rank(a, b, n int) (int64, error) {
	if n < 2 || n > MaxVertices {
		return 0, fmt.Errorf("pairindex: Rank(%d,%d) with n=%d: %w", a, b, n, ErrRankDomain)
	}
	if a > b {
		a, b = b, a
	}
	if a == b || a < 0 || b >= n {
		return 0, fmt.Errorf("pairindex: Rank(%d,%d) with n=%d: %w", a, b, n, ErrRankDomain)
	}

	return rowStart(int64(a), int64(n)) + int64(b-a-1), nil
}

// Unrank inverts Rank: it returns the canonical pair (a, b), a < b, whose
// rank is index.
//
// Implementation:
//   - Stage 1: validate index ∈ [0, M).
//   - Stage 2: mirror k = M-1-index and solve r(r+1)/2 ≤ k with ISqrt.
//   - Stage 3: correct r by ±1 so that r(r+1)/2 ≤ k < (r+1)(r+2)/2 holds
//     exactly, whatever the rounding of the square root seed.
//   - Stage 4: a = n-2-r; b = index - rowStart(a) + a + 1.
//   - Stage 5: re-validate 0 ≤ a < b < n.
//
// Errors:
//   - ErrRankDomain if index or n is out of domain, or if the recovered pair
//     violates 0 ≤ a < b < n (which would indicate a defect, not bad input).
func Unrank(index int64, n int) (int, int, error) {
	if n < 2 || n > MaxVertices {
		return 0, 0, fmt.Errorf("pairindex: Unrank(%d) with n=%d: %w", index, n, ErrRankDomain)
	}
	m := MaxPairs(n)
	if index < 0 || index >= m {
		return 0, 0, fmt.Errorf("pairindex: Unrank(%d) outside [0,%d): %w", index, m, ErrRankDomain)
	}

	k := uint64(m - 1 - index)
	r := (ISqrt(8*k+1) - 1) / 2
	for r*(r+1)/2 > k {
		r--
	}
	for (r+1)*(r+2)/2 <= k {
		r++
	}

	nn := int64(n)
	a := nn - 2 - int64(r)
	b := index - rowStart(a, nn) + a + 1
	if a < 0 || a >= b || b >= nn {
		return 0, 0, fmt.Errorf("pairindex: Unrank(%d) with n=%d produced (%d,%d): %w", index, n, a, b, ErrRankDomain)
	}

	return int(a), int(b), nil
}

// RankEdge is Rank over a core.Edge.
func RankEdge(e core.Edge, n int) (int64, error) {
	return Rank(e.U, e.V, n)
}

// UnrankEdge is Unrank returning a canonical core.Edge.
func UnrankEdge(index int64, n int) (core.Edge, error) {
	a, b, err := Unrank(index, n)
	if err != nil {
		return core.Edge{}, err
	}

	return core.Edge{U: a, V: b}, nil
}
