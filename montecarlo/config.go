package montecarlo

import (
	"io"
	"math"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathlab/builder"
)

// Config describes one experiment.
type Config struct {
	// Vertices is the graph size n (≥ 2).
	Vertices int `yaml:"vertices"`
	// Densities are visited in order; each lies in [0,1].
	Densities []float64 `yaml:"densities"`
	// Graphs is the number of graphs built per density.
	Graphs int `yaml:"graphs"`
	// Searches is the number of endpoint pairs searched per graph.
	Searches int `yaml:"searches"`
	// Seed fixes the run; 0 draws one from the clock.
	Seed int64 `yaml:"seed"`
	// Threshold is the density at which graphs are stored as complements.
	Threshold float64 `yaml:"threshold"`
	// Tree names the spanning-tree strategy: prufer, recursive or path.
	Tree string `yaml:"tree"`
	// Sampling names the pair sampler: auto, rejection or enumeration.
	Sampling string `yaml:"sampling"`
	// ProtectTree keeps tree edges when removing pairs from dense graphs.
	ProtectTree bool `yaml:"protect_tree"`
	// MaxSampleAttempts caps rejection draws per graph; 0 keeps the default.
	MaxSampleAttempts int `yaml:"max_sample_attempts"`
}

// DefaultConfig returns the baseline experiment.
func DefaultConfig() Config {
	return Config{
		Vertices:  1000,
		Densities: []float64{0.001, 0.01, 0.1, 0.5, 0.9},
		Graphs:    10,
		Searches:  10,
		Threshold: builder.DefaultInversionThreshold,
		Tree:      string(builder.TreePrufer),
		Sampling:  string(builder.SamplingAuto),
	}
}

// LoadConfig decodes YAML on top of DefaultConfig, so a file only needs
// the keys it changes. Unknown keys are rejected.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(ErrConfig, err.Error())
	}

	return cfg, cfg.Validate()
}

// Validate checks every field; the error wraps ErrConfig.
func (c Config) Validate() error {
	switch {
	case c.Vertices < builder.MinTreeNodes:
		return errors.Wrapf(ErrConfig, "vertices=%d, need at least %d", c.Vertices, builder.MinTreeNodes)
	case len(c.Densities) == 0:
		return errors.Wrap(ErrConfig, "no densities")
	case c.Graphs < 1:
		return errors.Wrapf(ErrConfig, "graphs=%d, need at least 1", c.Graphs)
	case c.Searches < 1:
		return errors.Wrapf(ErrConfig, "searches=%d, need at least 1", c.Searches)
	case c.MaxSampleAttempts < 0:
		return errors.Wrapf(ErrConfig, "max_sample_attempts=%d is negative", c.MaxSampleAttempts)
	case math.IsNaN(c.Threshold) || c.Threshold < builder.MinDensity || c.Threshold > builder.MaxDensity:
		return errors.Wrapf(ErrConfig, "threshold=%v outside [0,1]", c.Threshold)
	}
	for i, d := range c.Densities {
		if math.IsNaN(d) || d < builder.MinDensity || d > builder.MaxDensity {
			return errors.Wrapf(ErrConfig, "densities[%d]=%v outside [0,1]", i, d)
		}
	}
	if _, err := builder.ParseTreeStrategy(c.Tree); err != nil {
		return errors.Wrap(ErrConfig, err.Error())
	}
	if _, err := builder.ParseSampling(c.Sampling); err != nil {
		return errors.Wrap(ErrConfig, err.Error())
	}

	return nil
}

// builderOptions translates a validated Config into builder options.
func (c Config) builderOptions() []builder.BuilderOption {
	sampling, _ := builder.ParseSampling(c.Sampling)
	opts := []builder.BuilderOption{
		builder.WithInversionThreshold(c.Threshold),
		builder.WithSampling(sampling),
	}
	if c.ProtectTree {
		opts = append(opts, builder.WithTreeProtection())
	}
	if c.MaxSampleAttempts > 0 {
		opts = append(opts, builder.WithMaxSampleAttempts(c.MaxSampleAttempts))
	}

	return opts
}
