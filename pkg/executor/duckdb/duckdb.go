// Package duckdb provides a DuckDB executor backend for metaql.
package duckdb

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/metaql/pkg/executor"

	_ "github.com/marcboeker/go-duckdb" // duckdb driver
)

// Executor implements the executor.Executor interface for DuckDB.
type Executor struct {
	executor.BaseSQLExecutor
}

// New creates a new DuckDB executor instance.
// If logger is nil, a discard logger is used.
func New(logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Executor{
		BaseSQLExecutor: executor.BaseSQLExecutor{
			Logger:      logger,
			Placeholder: executor.PlaceholderQuestion,
		},
	}
}

// Backend returns the registered backend name.
func (e *Executor) Backend() string {
	return "duckdb"
}

// Connect establishes a connection to DuckDB.
// Use ":memory:" as the path for an in-memory database.
func (e *Executor) Connect(ctx context.Context, cfg executor.Config) error {
	path := cfg.Path
	if path == "" {
		path = ":memory:"
	}

	e.Logger.Debug("connecting to duckdb", slog.String("path", path))

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return fmt.Errorf("failed to open duckdb connection: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping duckdb: %w", err)
	}

	e.DB = db
	e.Cfg = cfg
	return nil
}

func init() {
	executor.Register("duckdb", func(logger *slog.Logger) executor.Executor { return New(logger) })
}

// Ensure Executor implements executor.Executor interface
var _ executor.Executor = (*Executor)(nil)
