// Package sqlite provides a SQLite executor backend for metaql, using the
// pure-Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/metaql/pkg/executor"

	_ "modernc.org/sqlite" // SQLite driver (pure Go)
)

// Executor implements the executor.Executor interface for SQLite.
type Executor struct {
	executor.BaseSQLExecutor
}

// New creates a new SQLite executor instance.
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
	return "sqlite"
}

// Connect opens the SQLite database.
// Use ":memory:" as the path for an in-memory database.
func (e *Executor) Connect(ctx context.Context, cfg executor.Config) error {
	path := cfg.Path
	if path == "" {
		path = ":memory:"
	}

	e.Logger.Debug("opening sqlite database", slog.String("path", path))

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	e.DB = db
	e.Cfg = cfg
	return nil
}

func init() {
	executor.Register("sqlite", func(logger *slog.Logger) executor.Executor { return New(logger) })
}

// Ensure Executor implements executor.Executor interface
var _ executor.Executor = (*Executor)(nil)
