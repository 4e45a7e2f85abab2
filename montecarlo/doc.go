// Package montecarlo runs the path-search study: for every configured
// density it builds G random graphs (spanning tree plus densification) and
// runs S endpoint pairs on each, searching every pair breadth-first and then
// depth-first.
//
// Failure policy:
//
//   - builder.ErrConstructFailed and traverse.ErrPathNotFound are per-trial
//     failures: logged, passed to the Recorder, counted, skipped.
//   - Everything else aborts Run: ErrConfig, rank-domain faults, and errors
//     returned by the Recorder or the GraphHook.
//
// Logging goes through an injected logrus.FieldLogger with the fields
// vertices, density, graph, search, from, to and op.
//
// Example:
//
//	cfg := montecarlo.DefaultConfig()
//	cfg.Vertices, cfg.Densities = 500, []float64{0.01, 0.9}
//	h, err := montecarlo.New(cfg, montecarlo.WithLogger(log))
//	if err != nil { ... }
//	sum, err := h.Run()
package montecarlo
