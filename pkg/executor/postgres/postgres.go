// Package postgres provides a PostgreSQL executor backend for metaql.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the pgx database/sql driver
	"github.com/leapstack-labs/metaql/pkg/executor"
)

// Executor implements the executor.Executor interface for PostgreSQL.
type Executor struct {
	executor.BaseSQLExecutor
}

// New creates a new PostgreSQL executor instance.
// If logger is nil, a discard logger is used.
func New(logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Executor{
		BaseSQLExecutor: executor.BaseSQLExecutor{
			Logger:      logger,
			Placeholder: executor.PlaceholderDollar,
		},
	}
}

// Backend returns the registered backend name.
func (e *Executor) Backend() string {
	return "postgres"
}

// Connect establishes a connection to PostgreSQL.
func (e *Executor) Connect(ctx context.Context, cfg executor.Config) error {
	dsn := buildDSN(cfg)

	e.Logger.Debug("connecting to postgres", slog.String("host", cfg.Host), slog.String("database", cfg.Database))

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("failed to open postgres connection: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping postgres: %w", err)
	}

	e.DB = db
	e.Cfg = cfg
	return nil
}

// buildDSN constructs a key=value PostgreSQL connection string.
func buildDSN(cfg executor.Config) string {
	host := cfg.Host
	if host == "" {
		host = "localhost"
	}

	port := cfg.Port
	if port == 0 {
		port = 5432
	}

	sslmode := "disable"
	if cfg.Options != nil {
		if mode, ok := cfg.Options["sslmode"]; ok {
			sslmode = mode
		}
	}

	dsn := fmt.Sprintf("host=%s port=%d dbname=%s sslmode=%s",
		host, port, cfg.Database, sslmode)

	if cfg.User != "" {
		dsn += fmt.Sprintf(" user=%s", cfg.User)
	}
	if cfg.Password != "" {
		dsn += fmt.Sprintf(" password=%s", cfg.Password)
	}

	return dsn
}

func init() {
	executor.Register("postgres", func(logger *slog.Logger) executor.Executor { return New(logger) })
}

// Ensure Executor implements executor.Executor interface
var _ executor.Executor = (*Executor)(nil)
