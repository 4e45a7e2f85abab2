// Package builder assembles the random graphs of the path-search study from
// composable "functional-options" constructors.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:       allocate an explicit core.Graph and run constructors in order.
//     – Apply:            run constructors against an existing graph.
//     – Constructor:      func(*core.Graph, builderConfig) error.
//   - Spanning trees (require an empty explicit graph, n ≥ 2):
//     – PruferTree:       uniform labeled tree decoded from a random Prüfer sequence.
//     – RecursiveTree:    vertex i attaches to a uniform earlier vertex.
//     – Path:             the chain 0—1—…—(n-1).
//     – TreeFor:          resolve a TreeStrategy name to one of the above.
//   - Densification:
//     – Density(d):       raise the graph to T = clamp(round(d·M), n-1, M) edges,
//     switching to the complement representation at d ≥ threshold.
//     – TargetEdges:      the T used by Density.
//   - Options:
//     – WithSeed / WithRand:       deterministic randomness (required by stochastic constructors).
//     – WithInversionThreshold:    density at which the complement is stored (default 0.5).
//     – WithoutInversion:          always store explicit edges.
//     – WithSampling:              auto, rejection or enumeration pair sampling.
//     – WithMaxSampleAttempts:     rejection budget (default 32·k + 1024).
//     – WithTreeProtection:        keep tree edges when removing pairs.
//
// Guarantees:
//
//   - Determinism: identical n, options, seed and constructor order yield
//     identical graphs.
//   - Fast-fail on invalid option parameters via panics in option-constructors.
//   - Constructors never panic; they return errors wrapping package sentinels.
//
// Example:
//
//	rng := rand.New(rand.NewSource(7))
//	g, err := builder.BuildGraph(1000, []builder.BuilderOption{builder.WithRand(rng)},
//		builder.PruferTree(), builder.Density(0.8))
//	// g.Inverted() == true, g.EdgeCount() == builder.TargetEdges(1000, 0.8)
package builder
