package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/export"
	"github.com/katalvlaran/pathlab/metrics"
	"github.com/katalvlaran/pathlab/montecarlo"
)

// flags holds command-line values that are not part of montecarlo.Config.
type flags struct {
	configPath  string
	logPath     string
	errPath     string
	dotPath     string
	histPath    string
	metricsPath string
	dumpGraphs  bool
	verbose     bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		f   flags
		cfg = montecarlo.DefaultConfig()
	)

	cmd := &cobra.Command{
		Use:   "pathlab [n d g s]",
		Short: "Measure BFS and DFS path searches on random graphs of given density",
		Long: `pathlab builds random graphs (a spanning tree raised to a target density)
and searches random vertex pairs breadth-first and depth-first, logging
"n density distance bfsVisited dfsVisited" per pair.`,
		Args:         positionalArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			merged, err := resolveConfig(cmd.Flags(), cfg, f.configPath, args)
			if err != nil {
				return err
			}
			return run(merged, f, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	bindExperimentFlags(cmd.Flags(), &cfg)
	bindOutputFlags(cmd.Flags(), &f)

	return cmd
}

// bindExperimentFlags registers the flags that mirror montecarlo.Config.
func bindExperimentFlags(fs *pflag.FlagSet, cfg *montecarlo.Config) {
	fs.IntVarP(&cfg.Vertices, "vertices", "n", cfg.Vertices, "vertices per graph")
	fs.Float64SliceVarP(&cfg.Densities, "density", "d", cfg.Densities, "densities to study, comma separated")
	fs.IntVarP(&cfg.Graphs, "graphs", "g", cfg.Graphs, "graphs built per density")
	fs.IntVarP(&cfg.Searches, "searches", "s", cfg.Searches, "vertex pairs searched per graph")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 seeds from the clock)")
	fs.Float64Var(&cfg.Threshold, "threshold", cfg.Threshold, "density at which graphs are stored as complements")
	fs.StringVar(&cfg.Tree, "tree", cfg.Tree, "spanning tree: prufer, recursive or path")
	fs.StringVar(&cfg.Sampling, "sampling", cfg.Sampling, "pair sampling: auto, rejection or enumeration")
	fs.BoolVar(&cfg.ProtectTree, "protect-tree", cfg.ProtectTree, "never remove tree edges from dense graphs")
	fs.IntVar(&cfg.MaxSampleAttempts, "max-sample-attempts", cfg.MaxSampleAttempts, "rejection draws per graph (0 = automatic)")
}

func bindOutputFlags(fs *pflag.FlagSet, f *flags) {
	fs.StringVarP(&f.configPath, "config", "c", "", "YAML experiment file; flags override its values")
	fs.StringVar(&f.logPath, "log", "-", "result lines destination (- for stdout)")
	fs.StringVar(&f.errPath, "err", "-", "failure lines destination (- for stderr)")
	fs.StringVar(&f.dotPath, "dot", "", "write the first built graph as Graphviz DOT")
	fs.StringVar(&f.histPath, "hist", "", "write the degree histogram of all built graphs (binary)")
	fs.StringVar(&f.metricsPath, "metrics-file", "", "write Prometheus metrics in textfile format")
	fs.BoolVar(&f.dumpGraphs, "dump-graphs", false, "dump the stored pairs of the graph after every search failure")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "verbose output")
}

// positionalArgs accepts nothing or the four values "n d g s".
func positionalArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 0 && len(args) != 4 {
		return errors.Errorf("expected 0 or 4 arguments (n d g s), got %d", len(args))
	}
	return nil
}

// resolveConfig layers defaults, the YAML file, explicitly set flags and
// positional arguments, in that order.
func resolveConfig(fs *pflag.FlagSet, flagged montecarlo.Config, path string, args []string) (montecarlo.Config, error) {
	cfg := montecarlo.DefaultConfig()
	if path != "" {
		fh, err := os.Open(path)
		if err != nil {
			return cfg, errors.Wrap(err, "open config")
		}
		defer fh.Close()
		if cfg, err = montecarlo.LoadConfig(fh); err != nil {
			return cfg, errors.Wrapf(err, "load %s", path)
		}
	}

	overrides := map[string]func(){
		"vertices":            func() { cfg.Vertices = flagged.Vertices },
		"density":             func() { cfg.Densities = flagged.Densities },
		"graphs":              func() { cfg.Graphs = flagged.Graphs },
		"searches":            func() { cfg.Searches = flagged.Searches },
		"seed":                func() { cfg.Seed = flagged.Seed },
		"threshold":           func() { cfg.Threshold = flagged.Threshold },
		"tree":                func() { cfg.Tree = flagged.Tree },
		"sampling":            func() { cfg.Sampling = flagged.Sampling },
		"protect-tree":        func() { cfg.ProtectTree = flagged.ProtectTree },
		"max-sample-attempts": func() { cfg.MaxSampleAttempts = flagged.MaxSampleAttempts },
	}
	for name, apply := range overrides {
		if fs.Changed(name) {
			apply()
		}
	}

	if len(args) == 4 {
		var err error
		if cfg.Vertices, err = strconv.Atoi(args[0]); err != nil {
			return cfg, errors.Wrapf(montecarlo.ErrConfig, "n=%q: %v", args[0], err)
		}
		d, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return cfg, errors.Wrapf(montecarlo.ErrConfig, "d=%q: %v", args[1], err)
		}
		cfg.Densities = []float64{d}
		if cfg.Graphs, err = strconv.Atoi(args[2]); err != nil {
			return cfg, errors.Wrapf(montecarlo.ErrConfig, "g=%q: %v", args[2], err)
		}
		if cfg.Searches, err = strconv.Atoi(args[3]); err != nil {
			return cfg, errors.Wrapf(montecarlo.ErrConfig, "s=%q: %v", args[3], err)
		}
	}

	return cfg, cfg.Validate()
}

// newLogger writes text to terminals and JSON everywhere else.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.New()
	logger.SetOutput(w)
	logger.SetFormatter(&log.JSONFormatter{})
	if fh, ok := w.(*os.File); ok && (isatty.IsTerminal(fh.Fd()) || isatty.IsCygwinTerminal(fh.Fd())) {
		logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	return logger
}

// openOutput maps "-" to fallback and anything else to a created file.
func openOutput(path string, fallback io.Writer) (io.Writer, func() error, error) {
	if path == "-" || path == "" {
		return fallback, func() error { return nil }, nil
	}
	fh, err := os.Create(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "create %s", path)
	}

	return fh, fh.Close, nil
}

func run(cfg montecarlo.Config, f flags, stdout, stderr io.Writer) (err error) {
	logger := newLogger(stderr, f.verbose)
	entry := logger.WithField("run", uuid.New().String())

	out, closeOut, err := openOutput(f.logPath, stdout)
	if err != nil {
		return err
	}
	defer func() { err = firstErr(err, closeOut()) }()
	errw, closeErr, err := openOutput(f.errPath, stderr)
	if err != nil {
		return err
	}
	defer func() { err = firstErr(err, closeErr()) }()

	var logOpts []export.ResultLogOption
	if f.dumpGraphs {
		logOpts = append(logOpts, export.WithGraphDump())
	}

	var (
		hist    []int32
		dotDone bool
		meter   *metrics.Metrics
	)
	hook := func(_ float64, _ int, g *core.Graph) error {
		if f.histPath != "" {
			hist = export.AccumulateDegrees(hist, g.Degrees())
		}
		if f.dotPath != "" && !dotDone {
			dotDone = true
			return writeFile(f.dotPath, func(w io.Writer) error { return export.WriteDOT(w, g.Edges()) })
		}
		return nil
	}

	opts := []montecarlo.Option{
		montecarlo.WithLogger(entry),
		montecarlo.WithRecorder(export.NewResultLog(out, errw, logOpts...)),
		montecarlo.WithGraphHook(hook),
	}
	if f.metricsPath != "" {
		meter = metrics.New()
		opts = append(opts, montecarlo.WithMetrics(meter))
	}

	h, err := montecarlo.New(cfg, opts...)
	if err != nil {
		return err
	}
	sum, err := h.Run()
	if err != nil {
		entry.WithError(err).Error("run aborted")
		return err
	}

	for _, st := range sum.Densities {
		entry.WithFields(log.Fields{
			"density":          st.Density,
			"graphs":           st.Graphs,
			"build_failures":   st.BuildFailures,
			"searches":         st.Searches,
			"search_failures":  st.SearchFailures,
			"mean_distance":    fmt.Sprintf("%.3f", st.MeanDistance),
			"mean_dfs_dist":    fmt.Sprintf("%.3f", st.MeanDFSDist),
			"mean_bfs_visited": fmt.Sprintf("%.3f", st.MeanBFSVisited),
			"mean_dfs_visited": fmt.Sprintf("%.3f", st.MeanDFSVisited),
		}).Info("summary")
	}

	if f.histPath != "" {
		if err = writeFile(f.histPath, func(w io.Writer) error { return export.WriteHistogram(w, hist) }); err != nil {
			return err
		}
	}

	return meter.WriteTextfile(f.metricsPath)
}

// writeFile creates path and hands it to write.
func writeFile(path string, write func(io.Writer) error) error {
	fh, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err = write(fh); err != nil {
		fh.Close()
		return errors.Wrapf(err, "write %s", path)
	}

	return errors.Wrapf(fh.Close(), "close %s", path)
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
