package prufer

import "errors"

// Sentinel errors for sequence sampling and decoding.
var (
	// ErrTooFewVertices indicates n < 2; no tree has a Prüfer sequence then.
	ErrTooFewVertices = errors.New("prufer: too few vertices")

	// ErrNeedRandSource indicates a nil *rand.Rand was supplied.
	ErrNeedRandSource = errors.New("prufer: rng is required")

	// ErrBadSequence indicates a sequence of the wrong length or with a label outside [0,n).
	ErrBadSequence = errors.New("prufer: malformed sequence")

	// ErrNotTree indicates Encode received an edge list that is not a spanning tree.
	ErrNotTree = errors.New("prufer: edges do not form a spanning tree")
)
