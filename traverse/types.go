// SPDX-License-Identifier: MIT
// Package: pathlab/traverse
//
// types.go - options, enumerations and error definitions for reachability
// search over a core.Graph.

package traverse

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for traversal.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed to New.
	ErrGraphNil = errors.New("traverse: graph is nil")

	// ErrVertexNotFound is returned when an endpoint lies outside [0, n).
	ErrVertexNotFound = errors.New("traverse: vertex not found")

	// ErrPathNotFound is returned when the frontier exhausts before the
	// target is popped. Recoverable: the trial failed, the run continues.
	ErrPathNotFound = errors.New("traverse: path not found")

	// ErrBusy is returned by Traverse when the previous run was not cleared.
	ErrBusy = errors.New("traverse: traverser not cleared")

	// ErrNoResult is returned by Path and Distance unless the last run
	// reached its target.
	ErrNoResult = errors.New("traverse: no completed traversal")

	// ErrTooFewVertices is returned by TraverseRandom on graphs with n < 2.
	ErrTooFewVertices = errors.New("traverse: need at least two vertices")

	// ErrNeedRandSource is returned by TraverseRandom without WithRand/WithSeed.
	ErrNeedRandSource = errors.New("traverse: rng is required")

	// ErrOptionViolation is returned when an invalid Option or Discipline
	// is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")
)

// Discipline selects the frontier order.
type Discipline int

const (
	// FIFO pops the oldest vertex: breadth-first search.
	FIFO Discipline = iota
	// LIFO pops the newest vertex: depth-first search.
	LIFO
)

// String returns "bfs" or "dfs".
func (d Discipline) String() string {
	switch d {
	case FIFO:
		return "bfs"
	case LIFO:
		return "dfs"
	default:
		return fmt.Sprintf("Discipline(%d)", int(d))
	}
}

// Resolution selects how neighbor candidates are derived from stored pairs.
type Resolution int

const (
	// ResolveAuto follows the graph: complement when g.Inverted(), else direct.
	ResolveAuto Resolution = iota
	// ResolveDirect takes the stored set of the popped vertex.
	ResolveDirect
	// ResolveComplement takes every other vertex NOT in the stored set.
	// O(n) per pop.
	ResolveComplement
)

// State is the lifecycle position of a Traverser.
type State int

const (
	// Idle: fresh or cleared; Traverse may be called.
	Idle State = iota
	// Running: a traversal is in progress.
	Running
	// Done: the target was popped; Path and Distance are available.
	Done
	// Exhausted: the frontier emptied before reaching the target.
	Exhausted
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Done:
		return "done"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Option configures a Traverser via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by New.
type Option func(*options)

type options struct {
	rng        *rand.Rand
	resolution Resolution
	err        error
}

func defaultOptions() options {
	return options{resolution: ResolveAuto}
}

// WithRand sets the randomness source used by TraverseRandom.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		if r == nil {
			o.err = fmt.Errorf("%w: nil rand source", ErrOptionViolation)
			return
		}
		o.rng = r
	}
}

// WithSeed seeds a private randomness source for TraverseRandom.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithResolution overrides neighbor resolution.
func WithResolution(r Resolution) Option {
	return func(o *options) {
		switch r {
		case ResolveAuto, ResolveDirect, ResolveComplement:
			o.resolution = r
		default:
			o.err = fmt.Errorf("%w: unknown resolution %d", ErrOptionViolation, int(r))
		}
	}
}
