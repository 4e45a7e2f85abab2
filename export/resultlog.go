package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/montecarlo"
)

// ResultLog writes one line per result to out and one line per failure to
// errw. Result lines read "n density distance bfsVisited dfsVisited".
type ResultLog struct {
	out       io.Writer
	errw      io.Writer
	dumpGraph bool
}

// ResultLogOption configures a ResultLog.
type ResultLogOption func(*ResultLog)

// WithGraphDump appends the stored adjacency of the searched graph after
// every search failure line.
func WithGraphDump() ResultLogOption {
	return func(l *ResultLog) {
		l.dumpGraph = true
	}
}

// NewResultLog returns a ResultLog. A nil writer discards its lines.
func NewResultLog(out, errw io.Writer, opts ...ResultLogOption) *ResultLog {
	if out == nil {
		out = io.Discard
	}
	if errw == nil {
		errw = io.Discard
	}
	l := &ResultLog{out: out, errw: errw}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

var _ montecarlo.Recorder = (*ResultLog)(nil)

// Record writes a result line.
func (l *ResultLog) Record(r montecarlo.Result) error {
	_, err := fmt.Fprintf(l.out, "%d %g %d %d %d\n", r.Vertices, r.Density, r.Distance, r.BFSVisited, r.DFSVisited)
	return errors.Wrap(err, "write result")
}

// BuildFailed writes a build error line.
func (l *ResultLog) BuildFailed(f montecarlo.BuildFailure) error {
	_, err := fmt.Fprintf(l.errw, "Error while building graph on %d vertices with density %g: %v\n",
		f.Vertices, f.Density, f.Err)
	return errors.Wrap(err, "write build failure")
}

// SearchFailed writes a search error line and, with WithGraphDump, the graph.
func (l *ResultLog) SearchFailed(f montecarlo.SearchFailure) error {
	_, err := fmt.Fprintf(l.errw, "Error while %s searching graph on %d vertices from %d to %d with density %g: %v\n",
		strings.ToUpper(f.Discipline.String()), f.Vertices, f.From, f.To, f.Density, f.Err)
	if err != nil {
		return errors.Wrap(err, "write search failure")
	}
	if l.dumpGraph && f.Snapshot != nil {
		return errors.Wrap(WriteAdjacency(l.errw, f.Snapshot), "write graph dump")
	}

	return nil
}

// WriteAdjacency writes the stored pairs of g, one vertex per line as
// "<count> <v1> … <vk>", after a header naming the representation.
func WriteAdjacency(w io.Writer, g *core.Graph) error {
	kind := "edges"
	if g.Inverted() {
		kind = "removed pairs"
	}
	if _, err := fmt.Fprintf(w, "graph representation (%s): <count> <v1> <v2> ... <vk>\n", kind); err != nil {
		return err
	}
	var sb strings.Builder
	for u := 0; u < g.Order(); u++ {
		stored, err := g.Stored(u)
		if err != nil {
			return err
		}
		sb.Reset()
		fmt.Fprintf(&sb, "%d", len(stored))
		for _, v := range stored {
			fmt.Fprintf(&sb, " %d", v)
		}
		sb.WriteByte('\n')
		if _, err = io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}

	return nil
}
