// Package processor implements the semantic-graph engine: it loads Turtle
// documents into an in-memory triple store and answers the fixed sinople
// query surface (constructs, entanglements, characters, relationship
// lookups, and the network-graph projection).
//
// A Processor is an explicit handle owned by the host - there is no
// process-wide instance. The engine is synchronous and performs no I/O;
// it is not safe for concurrent mutation, and the host serializes calls.
package processor

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hyperpolymath/semgraph/config"
	"github.com/hyperpolymath/semgraph/errors"
	"github.com/hyperpolymath/semgraph/metric"
	"github.com/hyperpolymath/semgraph/store"
	"github.com/hyperpolymath/semgraph/turtle"
)

// Processor is the engine handle: one triple store, the namespace table
// for query-side compact-IRI expansion, and the ambient logger/metrics.
type Processor struct {
	id         string
	store      *store.TripleStore
	namespaces map[string]string
	logger     *slog.Logger
	metrics    *metric.Metrics
}

// New creates an engine with an empty store. A nil config falls back to
// the default namespace table, a nil logger to slog.Default(), and nil
// metrics disable instrumentation.
func New(cfg *config.Config, logger *slog.Logger, metrics *metric.Metrics) *Processor {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}

	id := uuid.NewString()
	return &Processor{
		id:         id,
		store:      store.New(),
		namespaces: cfg.Namespaces,
		logger:     logger.With(slog.String("engine", id)),
		metrics:    metrics,
	}
}

// ID returns the engine instance id used in log and metric labels.
func (p *Processor) ID() string {
	return p.id
}

// LoadTurtle parses one Turtle document and appends its triples to the
// store. Loading is all-or-nothing: on a parse error nothing is appended
// and previously loaded triples are untouched. Prior data is never
// cleared implicitly; use Clear for that.
func (p *Processor) LoadTurtle(text string) error {
	triples, err := turtle.NewParser(text).Parse()
	if err != nil {
		if p.metrics != nil {
			p.metrics.RecordParseError(p.id)
		}
		p.logger.Warn("rejected turtle document",
			slog.String("error", err.Error()))
		return errors.WrapParse(err, "Processor", "LoadTurtle", "parsing turtle document")
	}

	p.store.Load(triples)

	if p.metrics != nil {
		p.metrics.RecordDocumentLoaded(p.id, len(triples))
		p.metrics.RecordStoreSize(p.id, p.store.Count())
	}
	p.logger.Debug("loaded turtle document",
		slog.Int("triples", len(triples)),
		slog.Int("store_size", p.store.Count()))

	return nil
}

// TripleCount returns the number of triples currently resident, duplicate
// statements included.
func (p *Processor) TripleCount() int {
	return p.store.Count()
}

// Clear empties the store.
func (p *Processor) Clear() {
	p.store.Clear()
	if p.metrics != nil {
		p.metrics.RecordStoreSize(p.id, 0)
	}
	p.logger.Debug("cleared store")
}

// observe records one query execution. Used via defer with the query's
// start time.
func (p *Processor) observe(query string, start time.Time) {
	if p.metrics != nil {
		p.metrics.RecordQuery(p.id, query, time.Since(start))
	}
}
