// Package metrics exposes Prometheus instruments for a path-search study.
//
// Instruments live in a private registry, never the global default, so
// several studies in one process do not collide. A nil *Metrics is a valid
// no-op receiver.
package metrics

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	OutcomeBuilt    = "built"
	OutcomeFailed   = "failed"
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
)

// Metrics groups the study instruments.
type Metrics struct {
	registry *prometheus.Registry

	// graphsTotal counts graph builds by outcome.
	// Labels: "built", "failed"
	graphsTotal *prometheus.CounterVec

	// searchesTotal counts searches by discipline and outcome.
	// Labels: discipline ("bfs", "dfs"), outcome ("found", "not_found")
	searchesTotal *prometheus.CounterVec

	// visitedVertices observes vertices popped per successful search.
	visitedVertices *prometheus.HistogramVec

	// pathDistance observes the edge count of found paths.
	pathDistance *prometheus.HistogramVec
}

// New registers all instruments on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		graphsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pathlab_graphs_total",
			Help: "Graph builds by outcome",
		}, []string{"outcome"}),
		searchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pathlab_searches_total",
			Help: "Searches by discipline and outcome",
		}, []string{"discipline", "outcome"}),
		visitedVertices: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pathlab_visited_vertices",
			Help:    "Vertices visited per successful search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"discipline"}),
		pathDistance: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pathlab_path_distance",
			Help:    "Edges on found paths",
			Buckets: prometheus.ExponentialBuckets(1, 2, 14),
		}, []string{"discipline"}),
	}
}

// GraphBuilt counts one graph build.
func (m *Metrics) GraphBuilt(ok bool) {
	if m == nil {
		return
	}
	outcome := OutcomeBuilt
	if !ok {
		outcome = OutcomeFailed
	}
	m.graphsTotal.WithLabelValues(outcome).Inc()
}

// SearchFound records a successful search.
func (m *Metrics) SearchFound(discipline string, visited, distance int) {
	if m == nil {
		return
	}
	m.searchesTotal.WithLabelValues(discipline, OutcomeFound).Inc()
	m.visitedVertices.WithLabelValues(discipline).Observe(float64(visited))
	m.pathDistance.WithLabelValues(discipline).Observe(float64(distance))
}

// SearchNotFound records a search that exhausted its frontier.
func (m *Metrics) SearchNotFound(discipline string) {
	if m == nil {
		return
	}
	m.searchesTotal.WithLabelValues(discipline, OutcomeNotFound).Inc()
}

// Registry returns the private registry for exposition or testing.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes the registry in text exposition format to path,
// atomically, for the node_exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return errors.Wrapf(err, "write metrics to %s", path)
	}

	return nil
}
