// SPDX-License-Identifier: MIT
// Package: pathlab/traverse
//
// traverser.go - direct and complement reachability search.

package traverse

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/pathlab/core"
)

const noPred = -1

// Traverser runs reachability searches over one graph.
// It is not safe for concurrent use.
type Traverser struct {
	graph      *core.Graph
	rng        *rand.Rand
	resolution Resolution

	frontiers [2]Frontier

	state      State
	discipline Discipline
	from, to   int
	visited    []bool
	pred       []int
	marked     []int // vertices whose visited/pred slots are set
	order      []int
}

// New binds a Traverser to g.
// Returns ErrGraphNil for a nil graph or ErrOptionViolation for a bad option.
func New(g *core.Graph, opts ...Option) (*Traverser, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.Order()
	t := &Traverser{
		graph:      g,
		rng:        o.rng,
		resolution: o.resolution,
		visited:    make([]bool, n),
		pred:       make([]int, n),
	}
	for i := range t.pred {
		t.pred[i] = noPred
	}

	return t, nil
}

// Traverse searches from `from` until `to` is popped or the frontier is
// exhausted. Every vertex is pushed at most once, so the loop ends after at
// most n pops.
//
// Errors: ErrBusy unless Idle, ErrVertexNotFound for bad endpoints,
// ErrOptionViolation for an unknown discipline, ErrPathNotFound when `to`
// is unreachable (state becomes Exhausted).
func (t *Traverser) Traverse(from, to int, d Discipline) error {
	if t.state != Idle {
		return fmt.Errorf("traverse: state %s: %w", t.state, ErrBusy)
	}
	n := t.graph.Order()
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("traverse: endpoints (%d,%d) on %d vertices: %w", from, to, n, ErrVertexNotFound)
	}
	frontier, err := t.frontier(d)
	if err != nil {
		return err
	}

	t.state = Running
	t.discipline = d
	t.from, t.to = from, to

	complement := t.complementMode()
	t.mark(from, noPred)
	frontier.Push(from)
	for {
		u, ok := frontier.Pop()
		if !ok {
			break
		}
		t.order = append(t.order, u)
		if u == to {
			t.state = Done
			return nil
		}
		if complement {
			t.expandComplement(u, frontier)
		} else {
			t.expandDirect(u, frontier)
		}
	}

	t.state = Exhausted
	return fmt.Errorf("traverse: %s from %d to %d after %d visits: %w", d, from, to, len(t.order), ErrPathNotFound)
}

// TraverseRandom draws two distinct uniform vertices and traverses between
// them, returning the endpoints it used.
func (t *Traverser) TraverseRandom(d Discipline) (from, to int, err error) {
	if from, to, err = t.Endpoints(); err != nil {
		return 0, 0, err
	}

	return from, to, t.Traverse(from, to, d)
}

// Endpoints draws two distinct uniform vertices without traversing, so the
// same pair can be searched under several disciplines.
func (t *Traverser) Endpoints() (from, to int, err error) {
	n := t.graph.Order()
	if n < 2 {
		return 0, 0, fmt.Errorf("traverse: n=%d: %w", n, ErrTooFewVertices)
	}
	if t.rng == nil {
		return 0, 0, ErrNeedRandSource
	}
	from = t.rng.Intn(n)
	to = t.rng.Intn(n - 1)
	if to >= from {
		to++
	}

	return from, to, nil
}

// Path walks predecessors from the target back to the source: [to … from].
// Returns ErrNoResult unless the last run is Done.
func (t *Traverser) Path() ([]int, error) {
	if t.state != Done {
		return nil, fmt.Errorf("traverse: state %s: %w", t.state, ErrNoResult)
	}
	path := []int{t.to}
	for cur := t.to; t.pred[cur] != noPred; {
		cur = t.pred[cur]
		path = append(path, cur)
	}

	return path, nil
}

// Distance is the edge count of Path.
func (t *Traverser) Distance() (int, error) {
	if t.state != Done {
		return 0, fmt.Errorf("traverse: state %s: %w", t.state, ErrNoResult)
	}
	dist := 0
	for cur := t.to; t.pred[cur] != noPred; cur = t.pred[cur] {
		dist++
	}

	return dist, nil
}

// Order returns the visitation order of the last run. The slice is owned
// by the Traverser and is invalidated by Clear.
func (t *Traverser) Order() []int { return t.order }

// Visited is the number of vertices popped by the last run.
func (t *Traverser) Visited() int { return len(t.order) }

// State reports the lifecycle position.
func (t *Traverser) State() State { return t.state }

// Discipline reports the discipline of the last run.
func (t *Traverser) Discipline() Discipline { return t.discipline }

// Clear resets scratch state to Idle in O(marked) time.
func (t *Traverser) Clear() {
	for _, v := range t.marked {
		t.visited[v] = false
		t.pred[v] = noPred
	}
	t.marked = t.marked[:0]
	t.order = t.order[:0]
	for _, f := range t.frontiers {
		if f != nil {
			f.Clear()
		}
	}
	t.state = Idle
}

func (t *Traverser) frontier(d Discipline) (Frontier, error) {
	if d != FIFO && d != LIFO {
		return nil, fmt.Errorf("%w: unknown discipline %d", ErrOptionViolation, int(d))
	}
	if t.frontiers[d] == nil {
		f, err := NewFrontier(d)
		if err != nil {
			return nil, err
		}
		t.frontiers[d] = f
	}

	return t.frontiers[d], nil
}

func (t *Traverser) complementMode() bool {
	switch t.resolution {
	case ResolveDirect:
		return false
	case ResolveComplement:
		return true
	default:
		return t.graph.Inverted()
	}
}

func (t *Traverser) mark(v, from int) {
	t.visited[v] = true
	t.pred[v] = from
	t.marked = append(t.marked, v)
}

// expandDirect pushes unvisited members of u's stored set.
func (t *Traverser) expandDirect(u int, frontier Frontier) {
	stored, _ := t.graph.Stored(u)
	for _, v := range stored {
		if !t.visited[v] {
			t.mark(v, u)
			frontier.Push(v)
		}
	}
}

// expandComplement pushes every unvisited v ≠ u absent from u's stored
// set, merging against the ascending stored list in O(n).
func (t *Traverser) expandComplement(u int, frontier Frontier) {
	stored, _ := t.graph.Stored(u)
	n := t.graph.Order()
	j := 0
	for v := 0; v < n; v++ {
		if j < len(stored) && stored[j] == v {
			j++
			continue
		}
		if v == u || t.visited[v] {
			continue
		}
		t.mark(v, u)
		frontier.Push(v)
	}
}
