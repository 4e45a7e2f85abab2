// Package export serializes study artifacts for external tools.
//
//   - WriteDOT:       Graphviz "graph G { u -- v; }" edge lists.
//   - WriteHistogram: little-endian uint64 count followed by int32 counts.
//   - ResultLog:      plain-text result and error lines; implements
//     montecarlo.Recorder.
//
// The core packages never touch files; everything here writes to an
// io.Writer chosen by the caller.
package export
