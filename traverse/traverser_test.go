package traverse_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathlab/builder"
	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/traverse"
)

// graphOf builds an explicit graph on n vertices from edge pairs.
func graphOf(t *testing.T, n int, pairs ...[2]int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for _, p := range pairs {
		require.NoError(t, g.InsertEdge(p[0], p[1]))
	}
	return g
}

// TestTraverse_Chain covers the 0-1-2-3-4 chain at density 0.
func TestTraverse_Chain(t *testing.T) {
	g, err := builder.BuildGraph(5, []builder.BuilderOption{builder.WithSeed(1)}, builder.Path(), builder.Density(0))
	require.NoError(t, err)
	require.Equal(t, 4, g.EdgeCount())

	for _, d := range []traverse.Discipline{traverse.FIFO, traverse.LIFO} {
		tr, err := traverse.New(g)
		require.NoError(t, err)
		require.NoError(t, tr.Traverse(0, 4, d), d.String())

		path, err := tr.Path()
		require.NoError(t, err)
		assert.Equal(t, []int{4, 3, 2, 1, 0}, path, d.String())

		dist, err := tr.Distance()
		require.NoError(t, err)
		assert.Equal(t, 4, dist)
		assert.Equal(t, []int{0, 1, 2, 3, 4}, tr.Order())
		assert.Equal(t, 5, tr.Visited())
		assert.Equal(t, traverse.Done, tr.State())
	}
}

// TestTraverse_Complete checks every pair of K_6 (stored inverted) is one hop apart.
func TestTraverse_Complete(t *testing.T) {
	g, err := builder.BuildGraph(6, []builder.BuilderOption{builder.WithSeed(3)}, builder.PruferTree(), builder.Density(1))
	require.NoError(t, err)
	require.True(t, g.Inverted())

	tr, err := traverse.New(g)
	require.NoError(t, err)
	for _, d := range []traverse.Discipline{traverse.FIFO, traverse.LIFO} {
		for from := 0; from < 6; from++ {
			for to := 0; to < 6; to++ {
				if from == to {
					continue
				}
				require.NoError(t, tr.Traverse(from, to, d))
				path, err := tr.Path()
				require.NoError(t, err)
				assert.Equal(t, []int{to, from}, path)
				dist, err := tr.Distance()
				require.NoError(t, err)
				assert.Equal(t, 1, dist)
				tr.Clear()
			}
		}
	}
}

// TestTraverse_Unreachable verifies exhaustion on an isolated vertex in
// both representations.
func TestTraverse_Unreachable(t *testing.T) {
	explicit := graphOf(t, 4, [2]int{0, 1}, [2]int{1, 2})

	inverted, err := core.NewGraph(4, core.WithInverted())
	require.NoError(t, err)
	for _, u := range []int{0, 1, 2} {
		require.NoError(t, inverted.InsertEdge(u, 3))
	}

	for name, g := range map[string]*core.Graph{"explicit": explicit, "inverted": inverted} {
		for _, d := range []traverse.Discipline{traverse.FIFO, traverse.LIFO} {
			tr, err := traverse.New(g)
			require.NoError(t, err)

			err = tr.Traverse(0, 3, d)
			require.ErrorIs(t, err, traverse.ErrPathNotFound, name)
			assert.Equal(t, traverse.Exhausted, tr.State())
			assert.Equal(t, 3, tr.Visited(), name)

			_, err = tr.Path()
			assert.ErrorIs(t, err, traverse.ErrNoResult)
			_, err = tr.Distance()
			assert.ErrorIs(t, err, traverse.ErrNoResult)
		}
	}
}

// TestTraverse_Disciplines contrasts BFS and DFS orders on a star.
func TestTraverse_Disciplines(t *testing.T) {
	g := graphOf(t, 5, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3}, [2]int{0, 4})

	tr, err := traverse.New(g)
	require.NoError(t, err)

	require.NoError(t, tr.Traverse(1, 4, traverse.FIFO))
	assert.Equal(t, []int{1, 0, 2, 3, 4}, tr.Order())
	assert.Equal(t, traverse.FIFO, tr.Discipline())
	tr.Clear()

	require.NoError(t, tr.Traverse(1, 4, traverse.LIFO))
	assert.Equal(t, []int{1, 0, 4}, tr.Order())
	path, err := tr.Path()
	require.NoError(t, err)
	assert.Equal(t, []int{4, 0, 1}, path)
}

// TestTraverse_ComplementMatchesExplicit compares an inverted graph with
// its materialized explicit twin: orders and paths must coincide.
func TestTraverse_ComplementMatchesExplicit(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	for trial := 0; trial < 10; trial++ {
		inv, err := builder.BuildGraph(25, []builder.BuilderOption{builder.WithRand(rng)},
			builder.PruferTree(), builder.Density(0.6+0.04*float64(trial)))
		require.NoError(t, err)
		require.True(t, inv.Inverted())

		exp, err := core.NewGraph(25)
		require.NoError(t, err)
		for _, e := range inv.Edges() {
			require.NoError(t, exp.InsertEdge(e.U, e.V))
		}

		a, err := traverse.New(inv)
		require.NoError(t, err)
		b, err := traverse.New(exp)
		require.NoError(t, err)
		for s := 0; s < 10; s++ {
			from, to := rng.Intn(25), rng.Intn(25)
			for _, d := range []traverse.Discipline{traverse.FIFO, traverse.LIFO} {
				errA := a.Traverse(from, to, d)
				errB := b.Traverse(from, to, d)
				assert.Equal(t, errA == nil, errB == nil)
				assert.Equal(t, a.Order(), b.Order())
				if errA == nil {
					pa, _ := a.Path()
					pb, _ := b.Path()
					assert.Equal(t, pa, pb)
				}
				a.Clear()
				b.Clear()
			}
		}
	}
}

// TestTraverse_BFSIsShortest checks BFS distance never exceeds DFS distance.
func TestTraverse_BFSIsShortest(t *testing.T) {
	g, err := builder.BuildGraph(60, []builder.BuilderOption{builder.WithSeed(8)}, builder.PruferTree(), builder.Density(0.05))
	require.NoError(t, err)

	tr, err := traverse.New(g, traverse.WithSeed(2))
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		from, to, err := tr.Endpoints()
		require.NoError(t, err)
		require.NotEqual(t, from, to)

		require.NoError(t, tr.Traverse(from, to, traverse.FIFO))
		bfs, _ := tr.Distance()
		tr.Clear()
		require.NoError(t, tr.Traverse(from, to, traverse.LIFO))
		dfs, _ := tr.Distance()
		tr.Clear()
		assert.LessOrEqual(t, bfs, dfs)
	}
}

func TestTraverse_Resolution(t *testing.T) {
	// Stored pairs 0-1 and 1-2; as removed pairs the complement is 0-2 only.
	g := graphOf(t, 3, [2]int{0, 1}, [2]int{1, 2})

	direct, err := traverse.New(g, traverse.WithResolution(traverse.ResolveDirect))
	require.NoError(t, err)
	require.NoError(t, direct.Traverse(0, 2, traverse.FIFO))
	dist, _ := direct.Distance()
	assert.Equal(t, 2, dist)

	comp, err := traverse.New(g, traverse.WithResolution(traverse.ResolveComplement))
	require.NoError(t, err)
	require.NoError(t, comp.Traverse(0, 2, traverse.FIFO))
	dist, _ = comp.Distance()
	assert.Equal(t, 1, dist)
	comp.Clear()
	assert.ErrorIs(t, comp.Traverse(0, 1, traverse.FIFO), traverse.ErrPathNotFound)
}

func TestTraverse_SameEndpoint(t *testing.T) {
	g := graphOf(t, 3, [2]int{0, 1})
	tr, err := traverse.New(g)
	require.NoError(t, err)
	require.NoError(t, tr.Traverse(2, 2, traverse.LIFO))
	path, err := tr.Path()
	require.NoError(t, err)
	assert.Equal(t, []int{2}, path)
	assert.Equal(t, 1, tr.Visited())
}

func TestTraverse_Random(t *testing.T) {
	g, err := builder.BuildGraph(30, []builder.BuilderOption{builder.WithSeed(4)}, builder.PruferTree())
	require.NoError(t, err)

	tr, err := traverse.New(g, traverse.WithRand(rand.New(rand.NewSource(9))))
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		from, to, err := tr.TraverseRandom(traverse.FIFO)
		require.NoError(t, err)
		assert.NotEqual(t, from, to)
		order := tr.Order()
		assert.Equal(t, from, order[0])
		assert.Equal(t, to, order[len(order)-1])
		tr.Clear()
	}
}

func TestTraverse_Errors(t *testing.T) {
	_, err := traverse.New(nil)
	assert.ErrorIs(t, err, traverse.ErrGraphNil)

	g := graphOf(t, 3, [2]int{0, 1}, [2]int{1, 2})
	_, err = traverse.New(g, traverse.WithRand(nil))
	assert.ErrorIs(t, err, traverse.ErrOptionViolation)
	_, err = traverse.New(g, traverse.WithResolution(traverse.Resolution(9)))
	assert.ErrorIs(t, err, traverse.ErrOptionViolation)

	tr, err := traverse.New(g)
	require.NoError(t, err)
	assert.Equal(t, traverse.Idle, tr.State())

	_, err = tr.Path()
	assert.ErrorIs(t, err, traverse.ErrNoResult)
	assert.ErrorIs(t, tr.Traverse(0, 3, traverse.FIFO), traverse.ErrVertexNotFound)
	assert.ErrorIs(t, tr.Traverse(-1, 2, traverse.FIFO), traverse.ErrVertexNotFound)
	assert.ErrorIs(t, tr.Traverse(0, 2, traverse.Discipline(7)), traverse.ErrOptionViolation)
	assert.Equal(t, traverse.Idle, tr.State())

	_, _, err = tr.TraverseRandom(traverse.FIFO)
	assert.ErrorIs(t, err, traverse.ErrNeedRandSource)

	require.NoError(t, tr.Traverse(0, 2, traverse.FIFO))
	assert.ErrorIs(t, tr.Traverse(0, 2, traverse.FIFO), traverse.ErrBusy)
	tr.Clear()
	assert.Equal(t, traverse.Idle, tr.State())
	assert.Empty(t, tr.Order())
	require.NoError(t, tr.Traverse(2, 0, traverse.LIFO))

	single := graphOf(t, 1)
	one, err := traverse.New(single, traverse.WithSeed(1))
	require.NoError(t, err)
	_, _, err = one.TraverseRandom(traverse.LIFO)
	assert.ErrorIs(t, err, traverse.ErrTooFewVertices)
}

func TestNewFrontier(t *testing.T) {
	q, err := traverse.NewFrontier(traverse.FIFO)
	require.NoError(t, err)
	s, err := traverse.NewFrontier(traverse.LIFO)
	require.NoError(t, err)
	for _, v := range []int{1, 2, 3} {
		q.Push(v)
		s.Push(v)
	}
	assert.Equal(t, 3, q.Len())

	v, ok := q.Pop()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	v, ok = s.Pop()
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	q.Clear()
	_, ok = q.Pop()
	assert.False(t, ok)

	_, err = traverse.NewFrontier(traverse.Discipline(2))
	assert.ErrorIs(t, err, traverse.ErrOptionViolation)
}
