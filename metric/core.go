// Package metric provides prometheus instrumentation for the engine.
package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains all engine-level metrics. Every metric carries an
// "engine" label so hosts running several independent instances can tell
// them apart.
type Metrics struct {
	DocumentsLoaded *prometheus.CounterVec
	TriplesLoaded   *prometheus.CounterVec
	ParseErrors     *prometheus.CounterVec
	QueriesTotal    *prometheus.CounterVec
	QueryDuration   *prometheus.HistogramVec
	StoreTriples    *prometheus.GaugeVec
}

// NewMetrics creates a new Metrics instance with all engine metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		DocumentsLoaded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "semgraph",
				Subsystem: "load",
				Name:      "documents_total",
				Help:      "Total number of Turtle documents loaded successfully",
			},
			[]string{"engine"},
		),

		TriplesLoaded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "semgraph",
				Subsystem: "load",
				Name:      "triples_total",
				Help:      "Total number of triples loaded into the store",
			},
			[]string{"engine"},
		),

		ParseErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "semgraph",
				Subsystem: "load",
				Name:      "parse_errors_total",
				Help:      "Total number of Turtle documents rejected with a parse error",
			},
			[]string{"engine"},
		),

		QueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "semgraph",
				Subsystem: "query",
				Name:      "total",
				Help:      "Total number of queries served, by query name",
			},
			[]string{"engine", "query"},
		),

		QueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "semgraph",
				Subsystem: "query",
				Name:      "duration_seconds",
				Help:      "Query execution duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"engine", "query"},
		),

		StoreTriples: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "semgraph",
				Subsystem: "store",
				Name:      "triples",
				Help:      "Current number of triples resident in the store",
			},
			[]string{"engine"},
		),
	}
}

// Register registers all engine metrics with the given registerer.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		m.DocumentsLoaded,
		m.TriplesLoaded,
		m.ParseErrors,
		m.QueriesTotal,
		m.QueryDuration,
		m.StoreTriples,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// RecordDocumentLoaded increments the loaded-documents counter and adds
// the document's triples to the load counter.
func (m *Metrics) RecordDocumentLoaded(engine string, triples int) {
	m.DocumentsLoaded.WithLabelValues(engine).Inc()
	m.TriplesLoaded.WithLabelValues(engine).Add(float64(triples))
}

// RecordParseError increments the parse error counter.
func (m *Metrics) RecordParseError(engine string) {
	m.ParseErrors.WithLabelValues(engine).Inc()
}

// RecordQuery increments the query counter and records its duration.
func (m *Metrics) RecordQuery(engine, query string, duration time.Duration) {
	m.QueriesTotal.WithLabelValues(engine, query).Inc()
	m.QueryDuration.WithLabelValues(engine, query).Observe(duration.Seconds())
}

// RecordStoreSize updates the store size gauge.
func (m *Metrics) RecordStoreSize(engine string, triples int) {
	m.StoreTriples.WithLabelValues(engine).Set(float64(triples))
}
