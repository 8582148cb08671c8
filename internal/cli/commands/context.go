// Package commands implements the metaql CLI subcommands.
package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/leapstack-labs/metaql/internal/cli/config"
	"github.com/leapstack-labs/metaql/pkg/catalog"
	"github.com/leapstack-labs/metaql/pkg/engine"
	"github.com/leapstack-labs/metaql/pkg/executor"
	"github.com/spf13/cobra"

	// Register all built-in executor backends.
	_ "github.com/leapstack-labs/metaql/pkg/executor/duckdb"
	_ "github.com/leapstack-labs/metaql/pkg/executor/postgres"
	_ "github.com/leapstack-labs/metaql/pkg/executor/sqlite"
)

// ConfigKey is the context key under which the root command stores the
// loaded configuration.
type ConfigKey struct{}

// getConfig retrieves the loaded configuration from the command context.
func getConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, ok := cmd.Context().Value(ConfigKey{}).(*config.Config)
	if !ok || cfg == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}
	return cfg, nil
}

// newLogger builds the CLI logger from the verbosity setting.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// newCatalog returns the collection manifest for a backend type.
func newCatalog(backend string) (*catalog.Catalog, error) {
	switch backend {
	case "postgres":
		return catalog.Postgres()
	case "duckdb":
		return catalog.DuckDB()
	case "sqlite":
		return catalog.SQLite()
	default:
		return nil, fmt.Errorf("no collection manifest for backend %q", backend)
	}
}

// newEngine builds a connected engine from the CLI configuration. The
// returned cleanup closes the backend connection.
func newEngine(cmd *cobra.Command, cfg *config.Config) (*engine.Engine, func(), error) {
	cat, err := newCatalog(cfg.Source.Type)
	if err != nil {
		return nil, nil, err
	}

	logger := newLogger(cfg.Verbose)
	exec, err := executor.New(*cfg.Source, logger)
	if err != nil {
		return nil, nil, err
	}

	if err := exec.Connect(cmd.Context(), *cfg.Source); err != nil {
		return nil, nil, fmt.Errorf("failed to connect to %s: %w", cfg.Source.Type, err)
	}
	cleanup := func() { _ = exec.Close() }

	opts := []engine.Option{engine.WithLogger(logger)}
	if cfg.Strict {
		opts = append(opts, engine.WithStrictRestrictions())
	}
	return engine.New(cat, exec, opts...), cleanup, nil
}
