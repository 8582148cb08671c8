// Package executor defines the statement-execution contract the metadata
// engine delegates to, plus a database/sql implementation layer and a
// registry of concrete backends.
//
// The engine hands an executor a statement text with :name parameter markers
// and an ordered parameter list; the executor owns placeholder rewriting,
// driver argument mapping, and the network round-trip. Connection lifetime
// is owned by whoever constructed the executor, never by the engine.
package executor

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/leapstack-labs/metaql/pkg/query"
)

// Config holds the connection settings for a backend.
type Config struct {
	// Type names the registered backend ("postgres", "duckdb", "sqlite").
	Type string `koanf:"type"`

	// Path is the file path for file-based backends; ":memory:" for
	// in-memory databases.
	Path string `koanf:"path"`

	// Network backends.
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Database string `koanf:"database"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`

	// Schema is the default schema, where the backend has one.
	Schema string `koanf:"schema"`

	// Options contains additional driver-specific options.
	Options map[string]string `koanf:"options"`
}

// Param is an alias for query.Param, so backends can be implemented
// without importing pkg/query directly.
type Param = query.Param

// Result is the raw tabular output of one statement execution.
type Result struct {
	Columns []string
	Rows    [][]any
}

// Executor runs parameterized statements against a backend.
type Executor interface {
	// Connect establishes the backend connection.
	Connect(ctx context.Context, cfg Config) error

	// Close releases the connection.
	Close() error

	// Query executes a statement with :name parameter markers, binding
	// params in order, and returns the raw rows.
	Query(ctx context.Context, text string, params []query.Param) (*Result, error)

	// Backend returns the registered backend name.
	Backend() string
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]func(*slog.Logger) Executor)
)

// Register adds an executor factory to the registry.
// Called by backend implementations in their init() functions.
func Register(name string, factory func(*slog.Logger) Executor) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = factory
}

// Get retrieves an executor factory by name.
func Get(name string) (func(*slog.Logger) Executor, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := registry[name]
	return f, ok
}

// New creates an executor for the configured backend type.
// A nil logger means discard.
func New(cfg Config, logger *slog.Logger) (Executor, error) {
	if cfg.Type == "" {
		return nil, fmt.Errorf("backend type not specified")
	}

	factory, ok := Get(cfg.Type)
	if !ok {
		return nil, &UnknownBackendError{
			Type:      cfg.Type,
			Available: List(),
		}
	}
	return factory(logger), nil
}

// List returns all registered backend names (sorted).
func List() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a backend type is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[name]
	return ok
}

// UnknownBackendError is returned when an unknown backend type is requested.
type UnknownBackendError struct {
	Type      string
	Available []string
}

func (e *UnknownBackendError) Error() string {
	return fmt.Sprintf("unknown backend type %q\nAvailable backends: %v\nHint: Check source.type in metaql.yaml", e.Type, e.Available)
}
