package montecarlo

import (
	"io"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathlab/builder"
	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/metrics"
	"github.com/katalvlaran/pathlab/traverse"
)

// Option configures a Harness.
type Option func(*Harness)

// WithRecorder sends per-trial outcomes to r.
func WithRecorder(r Recorder) Option {
	return func(h *Harness) {
		if r != nil {
			h.recorder = r
		}
	}
}

// WithLogger sets the structured logger. The default discards output.
func WithLogger(l logrus.FieldLogger) Option {
	return func(h *Harness) {
		if l != nil {
			h.log = l
		}
	}
}

// WithMetrics records build and search outcomes on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(h *Harness) {
		h.metrics = m
	}
}

// WithGraphHook calls fn for every built graph.
func WithGraphHook(fn GraphHook) Option {
	return func(h *Harness) {
		h.hook = fn
	}
}

// WithRand overrides the run's randomness source; Config.Seed is then
// reported but not used.
func WithRand(r *rand.Rand) Option {
	return func(h *Harness) {
		if r != nil {
			h.rng = r
		}
	}
}

// Harness runs the density × graphs × searches experiment sequentially.
// One *rand.Rand feeds tree sampling, density sampling and endpoint draws.
type Harness struct {
	cfg      Config
	seed     int64
	rng      *rand.Rand
	tree     builder.Constructor
	bopts    []builder.BuilderOption
	recorder Recorder
	log      logrus.FieldLogger
	metrics  *metrics.Metrics
	hook     GraphHook
}

// New validates cfg and prepares a Harness.
func New(cfg Config, opts ...Option) (*Harness, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	strategy, _ := builder.ParseTreeStrategy(cfg.Tree)
	tree, err := builder.TreeFor(strategy)
	if err != nil {
		return nil, errors.Wrap(ErrConfig, err.Error())
	}

	discard := logrus.New()
	discard.SetOutput(io.Discard)

	h := &Harness{
		cfg:      cfg,
		seed:     cfg.Seed,
		tree:     tree,
		recorder: nopRecorder{},
		log:      discard,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.rng == nil {
		if h.seed == 0 {
			h.seed = time.Now().UnixNano()
		}
		h.rng = rand.New(rand.NewSource(h.seed))
	}
	h.bopts = append(cfg.builderOptions(), builder.WithRand(h.rng))

	return h, nil
}

// Seed is the seed of the run (meaningless when WithRand was used).
func (h *Harness) Seed() int64 { return h.seed }

// Run executes every trial. Build failures and unreachable targets are
// logged, recorded and skipped; configuration faults, rank faults, hook
// errors and recorder errors abort the run.
func (h *Harness) Run() (*Summary, error) {
	start := time.Now()
	sum := &Summary{
		Vertices:  h.cfg.Vertices,
		Seed:      h.seed,
		Densities: make([]DensityStats, 0, len(h.cfg.Densities)),
	}

	log := h.log.WithField("vertices", h.cfg.Vertices)
	log.WithFields(logrus.Fields{
		"densities": h.cfg.Densities,
		"graphs":    h.cfg.Graphs,
		"searches":  h.cfg.Searches,
		"seed":      h.seed,
	}).Info("run started")

	for _, d := range h.cfg.Densities {
		stats, err := h.runDensity(log.WithField("density", d), d)
		if err != nil {
			return nil, err
		}
		sum.Densities = append(sum.Densities, stats)
	}

	sum.Elapsed = time.Since(start)
	log.WithField("elapsed", sum.Elapsed).Info("run finished")

	return sum, nil
}

// accumulator sums per-density observations before averaging.
type accumulator struct {
	distance, dfsDistance, bfsVisited, dfsVisited, edges int64
}

func (h *Harness) runDensity(log logrus.FieldLogger, d float64) (DensityStats, error) {
	stats := DensityStats{Density: d}
	var acc accumulator

	for gi := 0; gi < h.cfg.Graphs; gi++ {
		glog := log.WithField("graph", gi)

		g, err := builder.BuildGraph(h.cfg.Vertices, h.bopts, h.tree, builder.Density(d))
		if err != nil {
			if !IsRecoverable(err) {
				return stats, errors.Wrapf(err, "build graph %d at density %v", gi, d)
			}
			stats.BuildFailures++
			h.metrics.GraphBuilt(false)
			glog.WithError(err).WithField("op", "build").Warn("graph build failed")
			fail := BuildFailure{Vertices: h.cfg.Vertices, Density: d, Graph: gi, Err: err}
			if err = h.recorder.BuildFailed(fail); err != nil {
				return stats, errors.Wrap(err, "record build failure")
			}
			continue
		}

		stats.Graphs++
		acc.edges += int64(g.EdgeCount())
		h.metrics.GraphBuilt(true)
		glog.WithFields(logrus.Fields{
			"edges":    g.EdgeCount(),
			"inverted": g.Inverted(),
		}).Debug("graph built")

		if h.hook != nil {
			if err = h.hook(d, gi, g); err != nil {
				return stats, errors.Wrapf(err, "graph hook at graph %d", gi)
			}
		}

		if err = h.searchGraph(glog, g, d, gi, &stats, &acc); err != nil {
			return stats, err
		}
	}

	if stats.Graphs > 0 {
		stats.MeanEdges = float64(acc.edges) / float64(stats.Graphs)
	}
	if stats.Searches > 0 {
		s := float64(stats.Searches)
		stats.MeanDistance = float64(acc.distance) / s
		stats.MeanDFSDist = float64(acc.dfsDistance) / s
		stats.MeanBFSVisited = float64(acc.bfsVisited) / s
		stats.MeanDFSVisited = float64(acc.dfsVisited) / s
	}
	log.WithFields(logrus.Fields{
		"built":           stats.Graphs,
		"build_failures":  stats.BuildFailures,
		"searches":        stats.Searches,
		"search_failures": stats.SearchFailures,
		"mean_distance":   stats.MeanDistance,
	}).Info("density finished")

	return stats, nil
}

// searchGraph runs the configured number of BFS/DFS pairs on g. The
// Traverser is scoped to g, so its scratch state is dropped with the graph.
func (h *Harness) searchGraph(log logrus.FieldLogger, g *core.Graph, d float64, gi int, stats *DensityStats, acc *accumulator) error {
	tr, err := traverse.New(g, traverse.WithRand(h.rng))
	if err != nil {
		return errors.Wrap(err, "new traverser")
	}

	for si := 0; si < h.cfg.Searches; si++ {
		from, to, err := tr.Endpoints()
		if err != nil {
			return errors.Wrap(err, "draw endpoints")
		}
		slog := log.WithFields(logrus.Fields{"search": si, "from": from, "to": to})

		res := Result{Vertices: h.cfg.Vertices, Density: d, Graph: gi, Search: si, From: from, To: to}

		ok, err := h.search(slog, tr, g, traverse.FIFO, &res)
		if err != nil {
			return err
		}
		if ok {
			ok, err = h.search(slog, tr, g, traverse.LIFO, &res)
			if err != nil {
				return err
			}
		}
		if !ok {
			stats.SearchFailures++
			continue
		}

		stats.Searches++
		acc.distance += int64(res.Distance)
		acc.dfsDistance += int64(res.DFSDistance)
		acc.bfsVisited += int64(res.BFSVisited)
		acc.dfsVisited += int64(res.DFSVisited)
		slog.WithFields(logrus.Fields{
			"distance":    res.Distance,
			"bfs_visited": res.BFSVisited,
			"dfs_visited": res.DFSVisited,
		}).Debug("search finished")
		if err = h.recorder.Record(res); err != nil {
			return errors.Wrap(err, "record result")
		}
	}

	return nil
}

// search runs one discipline between res.From and res.To and fills its
// half of res. It reports false after recording an unreachable target.
func (h *Harness) search(log logrus.FieldLogger, tr *traverse.Traverser, g *core.Graph, disc traverse.Discipline, res *Result) (bool, error) {
	defer tr.Clear()

	err := tr.Traverse(res.From, res.To, disc)
	if err != nil {
		if !IsRecoverable(err) {
			return false, errors.Wrapf(err, "%s search", disc)
		}
		h.metrics.SearchNotFound(disc.String())
		log.WithError(err).WithField("op", disc.String()).Warn("search failed")
		fail := SearchFailure{
			Vertices:   res.Vertices,
			Density:    res.Density,
			Graph:      res.Graph,
			Search:     res.Search,
			Discipline: disc,
			From:       res.From,
			To:         res.To,
			Err:        err,
			Snapshot:   g,
		}
		if err = h.recorder.SearchFailed(fail); err != nil {
			return false, errors.Wrap(err, "record search failure")
		}
		return false, nil
	}

	dist, err := tr.Distance()
	if err != nil {
		return false, errors.Wrapf(err, "%s distance", disc)
	}
	h.metrics.SearchFound(disc.String(), tr.Visited(), dist)
	if disc == traverse.FIFO {
		res.Distance, res.BFSVisited = dist, tr.Visited()
	} else {
		res.DFSDistance, res.DFSVisited = dist, tr.Visited()
	}

	return true, nil
}
