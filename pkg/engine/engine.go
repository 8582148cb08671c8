// Package engine exposes the public metadata query surface: listing the
// available collections and fetching one with positional restriction values.
//
// A fetch resolves the collection's descriptor from the catalog, builds a
// parameterized statement with pkg/query, delegates execution to the
// injected executor, and projects the raw rows onto the declared schema.
// The engine holds no mutable state between calls; the only blocking point
// is the executor's round-trip, which inherits the caller's context
// untouched. Execution failures propagate immediately; retry policy belongs
// to the caller.
package engine

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/leapstack-labs/metaql/pkg/catalog"
	"github.com/leapstack-labs/metaql/pkg/executor"
	"github.com/leapstack-labs/metaql/pkg/query"
	"golang.org/x/sync/errgroup"
)

// fetchConcurrency bounds FetchAll's parallel executor calls.
const fetchConcurrency = 4

// Engine answers metadata collection queries for one backend.
type Engine struct {
	catalog *catalog.Catalog
	exec    executor.Executor
	logger  *slog.Logger
	strict  bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine's logger. The default discards.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithStrictRestrictions makes Fetch fail with a
// query.MalformedRestrictionError when the restriction count does not match
// the collection's restriction-column count. The default is permissive:
// shorter or longer restriction slices are tolerated.
func WithStrictRestrictions() Option {
	return func(e *Engine) { e.strict = true }
}

// New creates an Engine over the given catalog and executor.
func New(cat *catalog.Catalog, exec executor.Executor, opts ...Option) *Engine {
	e := &Engine{
		catalog: cat,
		exec:    exec,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Collections returns the available collection summaries in stable catalog
// order.
func (e *Engine) Collections() []catalog.Summary {
	return e.catalog.List()
}

// Fetch runs the named collection's query with the given positional
// restriction values and returns the projected rows. Static collections
// (reserved words, data-source capabilities) are served from memory and
// ignore restrictions entirely.
func (e *Engine) Fetch(ctx context.Context, name string, restrictions []string) (*ResultSet, error) {
	desc, err := e.catalog.Resolve(name)
	if err != nil {
		return nil, err
	}

	if desc.Static() {
		return projectStatic(desc), nil
	}

	opts := []query.Option{}
	if desc.Conjoined {
		opts = append(opts, query.Conjoined())
	}
	if e.strict {
		opts = append(opts, query.Strict())
	}

	stmt, err := query.Build(desc.Template, desc.Restrictions, restrictions, opts...)
	if err != nil {
		return nil, err
	}

	fetchID := uuid.New().String()
	e.logger.Debug("fetching collection",
		slog.String("fetch_id", fetchID),
		slog.String("collection", desc.Name),
		slog.Int("params", len(stmt.Params)))

	raw, err := e.exec.Query(ctx, stmt.Text, stmt.Params)
	if err != nil {
		return nil, &ExecutionError{Collection: desc.Name, Err: err}
	}

	rs := project(desc, raw)
	e.logger.Debug("collection fetched",
		slog.String("fetch_id", fetchID),
		slog.String("collection", desc.Name),
		slog.Int("rows", len(rs.Rows)))
	return rs, nil
}

// Request names a collection and its restriction values for FetchAll.
type Request struct {
	Collection   string
	Restrictions []string
}

// FetchAll fetches several collections concurrently and returns the results
// in request order. The first failure cancels the remaining fetches.
func (e *Engine) FetchAll(ctx context.Context, requests []Request) ([]*ResultSet, error) {
	results := make([]*ResultSet, len(requests))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)
	for i, req := range requests {
		g.Go(func() error {
			rs, err := e.Fetch(ctx, req.Collection, req.Restrictions)
			if err != nil {
				return err
			}
			results[i] = rs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
