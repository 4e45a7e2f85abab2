// Package pathlab measures how breadth-first and depth-first search behave
// on random graphs of controlled edge density.
//
// Each trial samples a uniformly random labeled spanning tree, raises it to
// a target density and searches random vertex pairs with both disciplines.
// Dense graphs are stored as "complete graph minus removed pairs" so memory
// follows the smaller side of the density.
//
// Under the hood, everything is organized under these subpackages:
//
//	pairindex/  - bijection between unordered vertex pairs and ranks in [0, n(n-1)/2)
//	prufer/     - random Prüfer sequences and their decoding into labeled trees
//	core/       - index-addressed graph store with explicit or complement representation
//	builder/    - spanning-tree and density constructors composed by BuildGraph
//	traverse/   - FIFO/LIFO reachability search with direct or complement neighbors
//	montecarlo/ - the density × graphs × searches experiment loop
//	export/     - DOT, binary degree histograms and plain-text result logs
//	metrics/    - Prometheus counters and histograms for a run
//	cmd/pathlab - the command-line front end
//
// Quick start:
//
//	g, err := builder.BuildGraph(1000, []builder.BuilderOption{builder.WithSeed(1)},
//		builder.PruferTree(), builder.Density(0.05))
//	tr, _ := traverse.New(g)
//	err = tr.Traverse(0, 999, traverse.FIFO)
//	dist, _ := tr.Distance()
package pathlab
