// SPDX-License-Identifier: MIT
// Package: pathlab/traverse
//
// frontier.go - FIFO and LIFO frontiers backed by gods containers.

package traverse

import (
	"fmt"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/emirpasic/gods/stacks/arraystack"
)

// Frontier holds vertices discovered but not yet visited.
type Frontier interface {
	Push(v int)
	// Pop removes the next vertex; ok is false when empty.
	Pop() (v int, ok bool)
	Len() int
	Clear()
}

// NewFrontier returns the frontier implementing d: a queue for FIFO, a
// stack for LIFO.
func NewFrontier(d Discipline) (Frontier, error) {
	switch d {
	case FIFO:
		return &queueFrontier{q: linkedlistqueue.New()}, nil
	case LIFO:
		return &stackFrontier{s: arraystack.New()}, nil
	default:
		return nil, fmt.Errorf("%w: unknown discipline %d", ErrOptionViolation, int(d))
	}
}

type queueFrontier struct{ q *linkedlistqueue.Queue }

func (f *queueFrontier) Push(v int) { f.q.Enqueue(v) }

func (f *queueFrontier) Pop() (int, bool) {
	v, ok := f.q.Dequeue()
	if !ok {
		return 0, false
	}
	return v.(int), true
}

func (f *queueFrontier) Len() int { return f.q.Size() }
func (f *queueFrontier) Clear()   { f.q.Clear() }

type stackFrontier struct{ s *arraystack.Stack }

func (f *stackFrontier) Push(v int) { f.s.Push(v) }

func (f *stackFrontier) Pop() (int, bool) {
	v, ok := f.s.Pop()
	if !ok {
		return 0, false
	}
	return v.(int), true
}

func (f *stackFrontier) Len() int { return f.s.Size() }
func (f *stackFrontier) Clear()   { f.s.Clear() }
