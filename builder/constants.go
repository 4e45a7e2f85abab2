// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodPruferTree is the canonical name for the PruferTree constructor.
	MethodPruferTree = "PruferTree"
	// MethodRecursiveTree is the canonical name for the RecursiveTree constructor.
	MethodRecursiveTree = "RecursiveTree"
	// MethodDensity is the canonical name for the Density constructor.
	MethodDensity = "Density"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinTreeNodes is the smallest graph on which a spanning tree has an edge.
// Complexity impact: every tree constructor adds exactly n-1 edges.
const MinTreeNodes = 2

//-----------------------------------------------------------------------------
// Density Bounds and Defaults
//-----------------------------------------------------------------------------

// MinDensity and MaxDensity bound the density target d.
const (
	MinDensity = 0.0
	MaxDensity = 1.0
)

// DefaultInversionThreshold is the density at and above which Density
// switches to the complement representation: the removed set M-T is then
// no larger than the kept set T.
const DefaultInversionThreshold = 0.5

// attemptsPerPair and attemptsSlack size the default rejection budget as
// attemptsPerPair·k + attemptsSlack draws for k pairs.
const (
	attemptsPerPair = 32
	attemptsSlack   = 1024
)
