package executor

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/metaql/pkg/query"
)

// BaseSQLExecutor provides common database/sql functionality for backends.
// Embed this struct in concrete executor implementations to get standard
// Close and Query implementations; the backend supplies Connect and its
// placeholder style.
type BaseSQLExecutor struct {
	DB          *sql.DB
	Cfg         Config
	Logger      *slog.Logger
	Placeholder PlaceholderStyle
}

// Close closes the database connection.
func (b *BaseSQLExecutor) Close() error {
	if b.DB != nil {
		if b.Logger != nil {
			b.Logger.Debug("closing database connection")
		}
		return b.DB.Close()
	}
	return nil
}

// IsConnected returns true if the database connection is established.
func (b *BaseSQLExecutor) IsConnected() bool {
	return b.DB != nil
}

// Query rewrites :name markers to the backend's placeholder style, executes
// the statement, and materializes the rows. []byte column values are
// converted to strings so drivers that return raw bytes stay comparable.
func (b *BaseSQLExecutor) Query(ctx context.Context, text string, params []query.Param) (*Result, error) {
	if b.DB == nil {
		return nil, fmt.Errorf("database connection not established")
	}

	stmt, args, err := expandNamed(text, params, b.Placeholder)
	if err != nil {
		return nil, err
	}

	rows, err := b.DB.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read result columns: %w", err)
	}

	result := &Result{Columns: cols}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		for i, v := range values {
			if bs, ok := v.([]byte); ok {
				values[i] = string(bs)
			}
		}
		result.Rows = append(result.Rows, values)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return result, nil
}
