package pairindex_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/pairindex"
)

func TestMaxPairs(t *testing.T) {
	cases := map[int]int64{-3: 0, 0: 0, 1: 0, 2: 1, 3: 3, 5: 10, 100: 4950}
	for n, want := range cases {
		assert.Equal(t, want, pairindex.MaxPairs(n), "n=%d", n)
	}
}

// TestRank_Enumeration checks the row-major enumeration order directly.
func TestRank_Enumeration(t *testing.T) {
	const n = 6
	var want int64
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			got, err := pairindex.Rank(a, b, n)
			require.NoError(t, err)
			assert.Equal(t, want, got, "Rank(%d,%d)", a, b)
			want++
		}
	}
	assert.Equal(t, pairindex.MaxPairs(n), want)
}

// TestRoundTrip_PairToRank covers unrank(rank(a,b)) == (a,b) for all valid pairs.
func TestRoundTrip_PairToRank(t *testing.T) {
	for _, n := range []int{2, 3, 4, 7, 31, 64, 200} {
		for a := 0; a < n; a++ {
			for b := a + 1; b < n; b++ {
				idx, err := pairindex.Rank(a, b, n)
				require.NoError(t, err)
				ga, gb, err := pairindex.Unrank(idx, n)
				require.NoError(t, err)
				if ga != a || gb != b {
					t.Fatalf("n=%d: Unrank(Rank(%d,%d)=%d) = (%d,%d)", n, a, b, idx, ga, gb)
				}
			}
		}
	}
}

// TestRoundTrip_RankToPair covers rank(unrank(i)) == i for all ranks.
func TestRoundTrip_RankToPair(t *testing.T) {
	for _, n := range []int{2, 3, 5, 10, 57, 300} {
		m := pairindex.MaxPairs(n)
		for idx := int64(0); idx < m; idx++ {
			a, b, err := pairindex.Unrank(idx, n)
			require.NoError(t, err)
			require.Less(t, a, b)
			got, err := pairindex.Rank(a, b, n)
			require.NoError(t, err)
			if got != idx {
				t.Fatalf("n=%d: Rank(Unrank(%d)) = %d", n, idx, got)
			}
		}
	}
}

// TestUnrank_LargeN probes row boundaries where float rounding would bite.
func TestUnrank_LargeN(t *testing.T) {
	n := pairindex.MaxVertices
	m := pairindex.MaxPairs(n)
	for _, idx := range []int64{0, 1, int64(n) - 2, int64(n) - 1, m / 2, m - 3, m - 2, m - 1} {
		a, b, err := pairindex.Unrank(idx, n)
		require.NoError(t, err, "idx=%d", idx)
		got, err := pairindex.Rank(a, b, n)
		require.NoError(t, err)
		assert.Equal(t, idx, got, "idx=%d -> (%d,%d)", idx, a, b)
	}
}

func TestRank_Symmetric(t *testing.T) {
	x, err := pairindex.Rank(7, 3, 10)
	require.NoError(t, err)
	y, err := pairindex.Rank(3, 7, 10)
	require.NoError(t, err)
	assert.Equal(t, x, y)
}

func TestRank_Errors(t *testing.T) {
	cases := []struct {
		name    string
		a, b, n int
	}{
		{"self pair", 2, 2, 5},
		{"negative", -1, 2, 5},
		{"b out of range", 1, 5, 5},
		{"n too small", 0, 1, 1},
		{"n too large", 0, 1, pairindex.MaxVertices + 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pairindex.Rank(tc.a, tc.b, tc.n)
			assert.ErrorIs(t, err, pairindex.ErrRankDomain)
		})
	}
}

func TestUnrank_Errors(t *testing.T) {
	for _, tc := range []struct {
		idx int64
		n   int
	}{{-1, 5}, {10, 5}, {0, 1}, {0, 0}} {
		_, _, err := pairindex.Unrank(tc.idx, tc.n)
		assert.ErrorIs(t, err, pairindex.ErrRankDomain, "Unrank(%d,%d)", tc.idx, tc.n)
	}
}

func TestEdgeWrappers(t *testing.T) {
	idx, err := pairindex.RankEdge(core.NewEdge(4, 1), 6)
	require.NoError(t, err)
	e, err := pairindex.UnrankEdge(idx, 6)
	require.NoError(t, err)
	assert.Equal(t, core.Edge{U: 1, V: 4}, e)

	_, err = pairindex.UnrankEdge(15, 6)
	assert.ErrorIs(t, err, pairindex.ErrRankDomain)
}

func TestISqrt(t *testing.T) {
	for x := uint64(0); x < 10000; x++ {
		r := pairindex.ISqrt(x)
		require.True(t, r*r <= x && (r+1)*(r+1) > x, "ISqrt(%d)=%d", x, r)
	}
	for _, r := range []uint64{1 << 26, 1<<26 + 1, 94906265, 1<<32 - 2, 1<<32 - 1} {
		sq := r * r
		assert.Equal(t, r, pairindex.ISqrt(sq), "exact square of %d", r)
		if sq > 0 {
			assert.Equal(t, r-1, pairindex.ISqrt(sq-1), "just below square of %d", r)
		}
	}
	assert.Equal(t, uint64(1<<32-1), pairindex.ISqrt(math.MaxUint64))
}

func ExampleUnrank() {
	idx, _ := pairindex.Rank(2, 5, 10)
	a, b, _ := pairindex.Unrank(idx, 10)
	fmt.Println(idx, a, b)
	// Output: 19 2 5
}
