package executor

import (
	"context"
	"log/slog"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseSQLExecutor_Query_NotConnected(t *testing.T) {
	base := &BaseSQLExecutor{}
	_, err := base.Query(context.Background(), "SELECT 1", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not established")
}

func TestBaseSQLExecutor_Query(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	base := &BaseSQLExecutor{DB: db, Placeholder: PlaceholderDollar}

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT table_schema, table_name FROM information_schema.tables WHERE table_schema = $1",
	)).
		WithArgs("public").
		WillReturnRows(sqlmock.NewRows([]string{"table_schema", "table_name"}).
			AddRow("public", []byte("orders")).
			AddRow("public", "customers"))

	result, err := base.Query(context.Background(),
		"SELECT table_schema, table_name FROM information_schema.tables WHERE table_schema = :table_schema",
		[]Param{{Name: "table_schema", Value: "public"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"table_schema", "table_name"}, result.Columns)
	require.Len(t, result.Rows, 2)
	// []byte values come back as strings.
	assert.Equal(t, []any{"public", "orders"}, result.Rows[0])
	assert.Equal(t, []any{"public", "customers"}, result.Rows[1])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBaseSQLExecutor_Query_QuestionStyle(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	base := &BaseSQLExecutor{DB: db, Placeholder: PlaceholderQuestion}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT name FROM t WHERE a = ? AND b = ?")).
		WithArgs("x", "y").
		WillReturnRows(sqlmock.NewRows([]string{"name"}))

	result, err := base.Query(context.Background(),
		"SELECT name FROM t WHERE a = :a AND b = :b",
		[]Param{{Name: "a", Value: "x"}, {Name: "b", Value: "y"}})
	require.NoError(t, err)
	assert.Empty(t, result.Rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBaseSQLExecutor_Query_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	base := &BaseSQLExecutor{DB: db}

	mock.ExpectQuery("SELECT broken").WillReturnError(assert.AnError)

	_, err = base.Query(context.Background(), "SELECT broken", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBaseSQLExecutor_Close(t *testing.T) {
	t.Run("nil DB", func(t *testing.T) {
		base := &BaseSQLExecutor{}
		assert.NoError(t, base.Close())
		assert.False(t, base.IsConnected())
	})

	t.Run("open DB", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		mock.ExpectClose()

		base := &BaseSQLExecutor{DB: db}
		assert.True(t, base.IsConnected())
		assert.NoError(t, base.Close())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRegistry(t *testing.T) {
	Register("test_backend_internal", func(_ *slog.Logger) Executor { return nil })

	assert.True(t, IsRegistered("test_backend_internal"))

	factory, ok := Get("test_backend_internal")
	assert.True(t, ok)
	assert.NotNil(t, factory)

	assert.Contains(t, List(), "test_backend_internal")
}

func TestNew_EmptyType(t *testing.T) {
	_, err := New(Config{}, nil)
	require.Error(t, err)
	assert.Equal(t, "backend type not specified", err.Error())
}

func TestNew_UnknownType(t *testing.T) {
	_, err := New(Config{Type: "fake_db"}, nil)

	var uerr *UnknownBackendError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "fake_db", uerr.Type)
	assert.Contains(t, err.Error(), "fake_db")
	assert.Contains(t, err.Error(), "metaql.yaml")
}
