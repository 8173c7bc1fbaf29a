// Package metrics provides Prometheus metrics collection for asyncdoc.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector holds all Prometheus metrics for asyncdoc.
type Collector struct {
	// Generation metrics
	DocumentsGenerated prometheus.Counter
	GenerationDuration prometheus.Histogram
	SchemasGenerated   prometheus.Gauge
	DiagnosticsTotal   *prometheus.CounterVec

	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Config metrics
	ConfigReloads      prometheus.Counter
	ConfigReloadErrors prometheus.Counter
}

// New creates a new metrics collector registered on the default registry.
func New() *Collector {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry creates a new metrics collector with a custom registry.
// Useful for testing to avoid global state.
func NewWithRegistry(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		DocumentsGenerated: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "asyncdoc",
				Name:      "documents_generated_total",
				Help:      "Total number of documents generated",
			},
		),
		GenerationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "asyncdoc",
				Name:      "generation_duration_seconds",
				Help:      "Document generation duration in seconds",
				Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
			},
		),
		SchemasGenerated: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "asyncdoc",
				Name:      "schemas_generated",
				Help:      "Number of component schemas in the last generated document",
			},
		),
		DiagnosticsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "asyncdoc",
				Name:      "diagnostics_total",
				Help:      "Total diagnostics recorded during generation",
			},
			[]string{"kind"},
		),
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "asyncdoc",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests served",
			},
			[]string{"path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "asyncdoc",
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"path", "status"},
		),
		ConfigReloads: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "asyncdoc",
				Name:      "config_reloads_total",
				Help:      "Total number of configuration reloads",
			},
		),
		ConfigReloadErrors: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "asyncdoc",
				Name:      "config_reload_errors_total",
				Help:      "Total number of failed configuration reloads",
			},
		),
	}
}
