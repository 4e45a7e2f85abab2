// File: builder_impl_test.go
// Package builder_test contains functional tests for the tree and density
// constructors, verifying edge counts, connectivity, representation and
// error sentinels.
package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathlab/builder"
	"github.com/katalvlaran/pathlab/core"
)

// connected reports whether every vertex of g is reachable from 0.
func connected(t *testing.T, g *core.Graph) bool {
	t.Helper()
	seen := make([]bool, g.Order())
	seen[0] = true
	queue := []int{0}
	count := 1
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		nbrs, err := g.Neighbors(u)
		require.NoError(t, err)
		for _, v := range nbrs {
			if !seen[v] {
				seen[v] = true
				count++
				queue = append(queue, v)
			}
		}
	}

	return count == g.Order()
}

// TestTrees_Functional checks that every tree constructor spans the graph
// with exactly n-1 edges.
func TestTrees_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
	}{
		{"PruferTree", builder.PruferTree()},
		{"RecursiveTree", builder.RecursiveTree()},
		{"Path", builder.Path()},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			for _, n := range []int{2, 3, 10, 257} {
				g, err := builder.BuildGraph(n, []builder.BuilderOption{builder.WithSeed(int64(n))}, tc.ctor)
				require.NoError(t, err)
				assert.False(t, g.Inverted())
				assert.Equal(t, n-1, g.EdgeCount())
				assert.True(t, connected(t, g), "n=%d", n)
			}
		})
	}
}

func TestPath_Shape(t *testing.T) {
	g, err := builder.BuildGraph(4, nil, builder.Path())
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}}, g.Edges())
}

func TestRecursiveTree_ParentIsEarlier(t *testing.T) {
	g, err := builder.BuildGraph(50, []builder.BuilderOption{builder.WithSeed(3)}, builder.RecursiveTree())
	require.NoError(t, err)
	for i := 1; i < 50; i++ {
		nbrs, err := g.Neighbors(i)
		require.NoError(t, err)
		require.NotEmpty(t, nbrs)
		assert.Less(t, nbrs[0], i, "vertex %d must attach to an earlier vertex", i)
	}
}

// TestPruferTree_CoversAllTrees samples the three labeled trees on 3
// vertices; each is the star centered at its unique degree-2 vertex.
func TestPruferTree_CoversAllTrees(t *testing.T) {
	const samples = 3000
	rng := rand.New(rand.NewSource(11))
	var centers [3]int
	for i := 0; i < samples; i++ {
		g, err := builder.BuildGraph(3, []builder.BuilderOption{builder.WithRand(rng)}, builder.PruferTree())
		require.NoError(t, err)
		for v, d := range g.Degrees() {
			if d == 2 {
				centers[v]++
			}
		}
	}
	for v, c := range centers {
		assert.InDelta(t, samples/3, c, 200, "center %d", v)
	}
}

func TestTrees_Errors(t *testing.T) {
	t.Parallel()

	seeded := []builder.BuilderOption{builder.WithSeed(1)}

	_, err := builder.BuildGraph(1, seeded, builder.PruferTree())
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(5, nil, builder.PruferTree())
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(5, nil, builder.RecursiveTree())
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(5, seeded, builder.Path(), builder.PruferTree())
	assert.ErrorIs(t, err, builder.ErrUnsupportedGraphMode)

	_, err = builder.BuildGraph(5, seeded, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.BuildGraph(0, seeded)
	assert.ErrorIs(t, err, core.ErrBadVertexCount)

	assert.ErrorIs(t, builder.Apply(nil, seeded), builder.ErrConstructFailed)
}

func TestTargetEdges(t *testing.T) {
	tests := []struct {
		n    int
		d    float64
		want int
	}{
		{10, 0, 9},    // clamped to n-1
		{10, 0.3, 14}, // round(13.5)
		{10, 0.5, 23}, // round(22.5)
		{10, 0.8, 36},
		{10, 1, 45},
		{2, 0.1, 1},
		{1, 0.5, 0},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, builder.TargetEdges(tc.n, tc.d), "n=%d d=%v", tc.n, tc.d)
	}
}

// requireSimple fails unless g's logical edges are canonical, in range,
// loop-free and distinct, and their count matches EdgeCount.
func requireSimple(t *testing.T, g *core.Graph) {
	t.Helper()
	edges := g.Edges()
	require.Len(t, edges, g.EdgeCount())
	seen := make(map[core.Edge]bool, len(edges))
	for _, e := range edges {
		require.NotEqual(t, e.U, e.V, "self-loop at %d", e.U)
		require.True(t, 0 <= e.U && e.U < e.V && e.V < g.Order(), "edge %v out of range", e)
		require.False(t, seen[e], "duplicate edge %v", e)
		seen[e] = true
	}
}

// TestDensity_ExactTarget checks both regimes reach the clamped target with
// a simple graph, for every sampling strategy and several seeds.
func TestDensity_ExactTarget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		vertices  []int
		densities []float64
		seeds     []int64
	}{
		{[]int{3, 10, 100}, []float64{0, 0.1, 0.5, 0.9, 1}, []int64{1, 2, 3, 4, 5}},
		{[]int{2, 5, 60}, []float64{0.3, 0.49, 0.75, 0.95}, []int64{42}},
	}
	samplings := []builder.Sampling{builder.SamplingAuto, builder.SamplingRejection, builder.SamplingEnumeration}

	for _, tc := range tests {
		for _, n := range tc.vertices {
			for _, d := range tc.densities {
				for _, s := range samplings {
					for _, seed := range tc.seeds {
						opts := []builder.BuilderOption{builder.WithSeed(seed), builder.WithSampling(s)}
						g, err := builder.BuildGraph(n, opts, builder.PruferTree(), builder.Density(d))
						require.NoError(t, err, "n=%d d=%v s=%s seed=%d", n, d, s, seed)

						assert.Equal(t, builder.TargetEdges(n, d), g.EdgeCount(), "n=%d d=%v s=%s seed=%d", n, d, s, seed)
						assert.Equal(t, d >= builder.DefaultInversionThreshold, g.Inverted(), "n=%d d=%v", n, d)
						requireSimple(t, g)
					}
				}
			}
		}
	}
}

func TestDensity_RegimeStorage(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(5)}

	sparse, err := builder.BuildGraph(10, opts, builder.PruferTree(), builder.Density(0.3))
	require.NoError(t, err)
	assert.False(t, sparse.Inverted())
	assert.Equal(t, 14, sparse.StoredCount())

	dense, err := builder.BuildGraph(10, opts, builder.PruferTree(), builder.Density(0.8))
	require.NoError(t, err)
	assert.True(t, dense.Inverted())
	assert.Equal(t, 45-36, dense.StoredCount())

	full, err := builder.BuildGraph(10, opts, builder.PruferTree(), builder.Density(1))
	require.NoError(t, err)
	assert.True(t, full.Inverted())
	assert.Zero(t, full.StoredCount())
	assert.Equal(t, 45, full.EdgeCount())
}

func TestDensity_ThresholdOptions(t *testing.T) {
	g, err := builder.BuildGraph(20, []builder.BuilderOption{builder.WithSeed(1), builder.WithInversionThreshold(0.9)},
		builder.PruferTree(), builder.Density(0.8))
	require.NoError(t, err)
	assert.False(t, g.Inverted())
	assert.Equal(t, builder.TargetEdges(20, 0.8), g.EdgeCount())

	g, err = builder.BuildGraph(20, []builder.BuilderOption{builder.WithSeed(1), builder.WithoutInversion()},
		builder.PruferTree(), builder.Density(1))
	require.NoError(t, err)
	assert.False(t, g.Inverted())
	assert.Equal(t, 190, g.StoredCount())

	g, err = builder.BuildGraph(20, []builder.BuilderOption{builder.WithSeed(1), builder.WithInversionThreshold(0)},
		builder.PruferTree(), builder.Density(0.1))
	require.NoError(t, err)
	assert.True(t, g.Inverted())
	assert.Equal(t, builder.TargetEdges(20, 0.1), g.EdgeCount())
}

// TestDensity_TreeProtection verifies that no tree edge is removed and the
// result stays connected in the inverted regime.
func TestDensity_TreeProtection(t *testing.T) {
	t.Parallel()

	for seed := int64(0); seed < 20; seed++ {
		opts := []builder.BuilderOption{builder.WithSeed(seed), builder.WithTreeProtection()}
		g, err := core.NewGraph(30)
		require.NoError(t, err)
		require.NoError(t, builder.Apply(g, opts, builder.PruferTree()))
		tree := g.StoredEdges()

		require.NoError(t, builder.Apply(g, opts, builder.Density(0.9)))
		require.True(t, g.Inverted())
		assert.Equal(t, builder.TargetEdges(30, 0.9), g.EdgeCount())
		for _, e := range tree {
			assert.True(t, g.HasEdge(e.U, e.V), "seed=%d tree edge %v removed", seed, e)
		}
		assert.True(t, connected(t, g), "seed=%d", seed)
	}
}

func TestDensity_Determinism(t *testing.T) {
	build := func() *core.Graph {
		g, err := builder.BuildGraph(40, []builder.BuilderOption{builder.WithSeed(99)},
			builder.PruferTree(), builder.Density(0.7))
		require.NoError(t, err)
		return g
	}
	a, b := build(), build()
	assert.Equal(t, a.Inverted(), b.Inverted())
	assert.Equal(t, a.StoredEdges(), b.StoredEdges())
}

func TestDensity_KeepsDenserInput(t *testing.T) {
	g, err := builder.BuildGraph(10, []builder.BuilderOption{builder.WithSeed(2)},
		builder.PruferTree(), builder.Density(0.3), builder.Density(0.2))
	require.NoError(t, err)
	assert.Equal(t, 14, g.EdgeCount())
}

func TestDensity_Errors(t *testing.T) {
	t.Parallel()

	seeded := []builder.BuilderOption{builder.WithSeed(1)}

	for _, d := range []float64{-0.1, 1.5, math.NaN()} {
		_, err := builder.BuildGraph(10, seeded, builder.PruferTree(), builder.Density(d))
		assert.ErrorIs(t, err, builder.ErrInvalidDensity, "d=%v", d)
	}

	_, err := builder.BuildGraph(1, seeded, builder.Density(0.5))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(10, seeded, builder.PruferTree(), builder.Density(0.8), builder.Density(0.9))
	assert.ErrorIs(t, err, builder.ErrUnsupportedGraphMode)

	g, err := core.NewGraph(10)
	require.NoError(t, err)
	require.NoError(t, builder.Apply(g, nil, builder.Path()))
	assert.ErrorIs(t, builder.Apply(g, nil, builder.Density(0.3)), builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(50, []builder.BuilderOption{
		builder.WithSeed(1), builder.WithSampling(builder.SamplingRejection), builder.WithMaxSampleAttempts(1),
	}, builder.PruferTree(), builder.Density(0.4))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestTreeFor(t *testing.T) {
	for _, s := range []builder.TreeStrategy{builder.TreePrufer, builder.TreeRecursive, builder.TreePath} {
		ctor, err := builder.TreeFor(s)
		require.NoError(t, err)
		g, err := builder.BuildGraph(8, []builder.BuilderOption{builder.WithSeed(1)}, ctor)
		require.NoError(t, err)
		assert.Equal(t, 7, g.EdgeCount())
	}

	_, err := builder.TreeFor("star")
	assert.ErrorIs(t, err, builder.ErrOptionViolation)
}

func TestParseStrategies(t *testing.T) {
	s, err := builder.ParseTreeStrategy(" Prufer ")
	require.NoError(t, err)
	assert.Equal(t, builder.TreePrufer, s)
	_, err = builder.ParseTreeStrategy("wilson")
	assert.ErrorIs(t, err, builder.ErrOptionViolation)

	sm, err := builder.ParseSampling("ENUMERATION")
	require.NoError(t, err)
	assert.Equal(t, builder.SamplingEnumeration, sm)
	_, err = builder.ParseSampling("reservoir")
	assert.ErrorIs(t, err, builder.ErrOptionViolation)
}
