package montecarlo

import (
	"time"

	"github.com/pkg/errors"

	"github.com/katalvlaran/pathlab/builder"
	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/traverse"
)

// ErrConfig marks an experiment configuration that cannot run.
var ErrConfig = errors.New("montecarlo: invalid configuration")

// Result is one successful search pair: BFS and DFS between the same
// endpoints of one graph.
type Result struct {
	Vertices    int
	Density     float64
	Graph       int // graph index within the density
	Search      int // search index within the graph
	From, To    int
	Distance    int // BFS distance, the shortest path length
	DFSDistance int
	BFSVisited  int
	DFSVisited  int
}

// BuildFailure describes a graph that could not be built.
type BuildFailure struct {
	Vertices int
	Density  float64
	Graph    int
	Err      error
}

// SearchFailure describes a search whose target was unreachable.
type SearchFailure struct {
	Vertices   int
	Density    float64
	Graph      int
	Search     int
	Discipline traverse.Discipline
	From, To   int
	Err        error
	// Snapshot is the graph the search ran on. It stays valid only for the
	// duration of the SearchFailed call.
	Snapshot *core.Graph
}

// Recorder receives per-trial outcomes. A returned error aborts the run.
type Recorder interface {
	Record(Result) error
	BuildFailed(BuildFailure) error
	SearchFailed(SearchFailure) error
}

// GraphHook observes every successfully built graph before it is searched.
// A returned error aborts the run.
type GraphHook func(density float64, graph int, g *core.Graph) error

// DensityStats aggregates the trials of one density.
type DensityStats struct {
	Density        float64
	Graphs         int // graphs built
	BuildFailures  int
	Searches       int // endpoint pairs found by both disciplines
	SearchFailures int
	MeanDistance   float64
	MeanDFSDist    float64
	MeanBFSVisited float64
	MeanDFSVisited float64
	MeanEdges      float64 // logical edges per built graph
}

// Summary is the outcome of Run.
type Summary struct {
	Vertices  int
	Seed      int64
	Densities []DensityStats
	Elapsed   time.Duration
}

// IsRecoverable reports whether err is a per-trial failure after which the
// run continues: an unreachable target or a build that ran out of samples.
func IsRecoverable(err error) bool {
	return errors.Is(err, traverse.ErrPathNotFound) || errors.Is(err, builder.ErrConstructFailed)
}

// nopRecorder discards everything.
type nopRecorder struct{}

func (nopRecorder) Record(Result) error              { return nil }
func (nopRecorder) BuildFailed(BuildFailure) error   { return nil }
func (nopRecorder) SearchFailed(SearchFailure) error { return nil }
