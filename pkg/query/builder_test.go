package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	const template = "SELECT table_catalog, table_schema, table_name, table_type FROM information_schema.tables"
	columns := []string{"table_catalog", "table_schema", "table_name", "table_type"}

	tests := []struct {
		name         string
		restrictions []string
		wantText     string
		wantParams   []Param
	}{
		{
			name:         "nil restrictions leave template untouched",
			restrictions: nil,
			wantText:     template,
		},
		{
			name:         "all-empty restrictions leave template untouched",
			restrictions: []string{"", "", "", ""},
			wantText:     template,
		},
		{
			name:         "single restriction opens WHERE without AND",
			restrictions: []string{"", "public", "", ""},
			wantText:     template + " WHERE table_schema = :table_schema",
			wantParams:   []Param{{Name: "table_schema", Value: "public"}},
		},
		{
			name:         "two restrictions join with AND in index order",
			restrictions: []string{"", "public", "orders", ""},
			wantText:     template + " WHERE table_schema = :table_schema AND table_name = :table_name",
			wantParams: []Param{
				{Name: "table_schema", Value: "public"},
				{Name: "table_name", Value: "orders"},
			},
		},
		{
			name:         "gap before last slot still aligns by index",
			restrictions: []string{"", "", "", "VIEW"},
			wantText:     template + " WHERE table_type = :table_type",
			wantParams:   []Param{{Name: "table_type", Value: "VIEW"}},
		},
		{
			name:         "first and last present skip the middle",
			restrictions: []string{"main", "", "", "BASE TABLE"},
			wantText:     template + " WHERE table_catalog = :table_catalog AND table_type = :table_type",
			wantParams: []Param{
				{Name: "table_catalog", Value: "main"},
				{Name: "table_type", Value: "BASE TABLE"},
			},
		},
		{
			name:         "shorter restriction slice drops trailing columns",
			restrictions: []string{"main", "public"},
			wantText:     template + " WHERE table_catalog = :table_catalog AND table_schema = :table_schema",
			wantParams: []Param{
				{Name: "table_catalog", Value: "main"},
				{Name: "table_schema", Value: "public"},
			},
		},
		{
			name:         "extra restriction positions are ignored",
			restrictions: []string{"", "", "", "VIEW", "ignored", "also ignored"},
			wantText:     template + " WHERE table_type = :table_type",
			wantParams:   []Param{{Name: "table_type", Value: "VIEW"}},
		},
		{
			name:         "all slots present",
			restrictions: []string{"main", "public", "orders", "BASE TABLE"},
			wantText: template +
				" WHERE table_catalog = :table_catalog" +
				" AND table_schema = :table_schema" +
				" AND table_name = :table_name" +
				" AND table_type = :table_type",
			wantParams: []Param{
				{Name: "table_catalog", Value: "main"},
				{Name: "table_schema", Value: "public"},
				{Name: "table_name", Value: "orders"},
				{Name: "table_type", Value: "BASE TABLE"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, err := Build(template, columns, tt.restrictions)
			require.NoError(t, err)
			assert.Equal(t, tt.wantText, stmt.Text)
			assert.Equal(t, tt.wantParams, stmt.Params)
		})
	}
}

func TestBuild_NoRestrictionColumns(t *testing.T) {
	stmt, err := Build("SELECT ReservedWord FROM keywords", nil, []string{"ignored"})
	require.NoError(t, err)
	assert.Equal(t, "SELECT ReservedWord FROM keywords", stmt.Text)
	assert.Empty(t, stmt.Params)
}

func TestBuild_Conjoined(t *testing.T) {
	const template = "SELECT table_name, table_type FROM m WHERE table_type IN ('table', 'view')"
	columns := []string{"table_name", "table_type"}

	t.Run("first predicate joins with AND", func(t *testing.T) {
		stmt, err := Build(template, columns, []string{"orders", ""}, Conjoined())
		require.NoError(t, err)
		assert.Equal(t, template+" AND table_name = :table_name", stmt.Text)
		require.Len(t, stmt.Params, 1)
		assert.Equal(t, Param{Name: "table_name", Value: "orders"}, stmt.Params[0])
	})

	t.Run("no restrictions leave template untouched", func(t *testing.T) {
		stmt, err := Build(template, columns, nil, Conjoined())
		require.NoError(t, err)
		assert.Equal(t, template, stmt.Text)
		assert.Empty(t, stmt.Params)
	})

	t.Run("never emits WHERE", func(t *testing.T) {
		stmt, err := Build(template, columns, []string{"orders", "view"}, Conjoined())
		require.NoError(t, err)
		assert.Equal(t, template+" AND table_name = :table_name AND table_type = :table_type", stmt.Text)
	})
}

func TestBuild_Strict(t *testing.T) {
	columns := []string{"a", "b"}

	t.Run("matching arity passes", func(t *testing.T) {
		stmt, err := Build("SELECT a, b FROM t", columns, []string{"", "x"}, Strict())
		require.NoError(t, err)
		assert.Equal(t, "SELECT a, b FROM t WHERE b = :b", stmt.Text)
	})

	t.Run("short slice fails", func(t *testing.T) {
		_, err := Build("SELECT a, b FROM t", columns, []string{"x"}, Strict())
		var merr *MalformedRestrictionError
		require.ErrorAs(t, err, &merr)
		assert.Equal(t, 2, merr.Want)
		assert.Equal(t, 1, merr.Got)
	})

	t.Run("long slice fails", func(t *testing.T) {
		_, err := Build("SELECT a, b FROM t", columns, []string{"x", "y", "z"}, Strict())
		var merr *MalformedRestrictionError
		require.ErrorAs(t, err, &merr)
		assert.Equal(t, 3, merr.Got)
	})
}

func TestBuild_ValuesAreBoundNotInterpolated(t *testing.T) {
	stmt, err := Build("SELECT a FROM t", []string{"a"}, []string{"'; DROP TABLE t; --"})
	require.NoError(t, err)
	assert.Equal(t, "SELECT a FROM t WHERE a = :a", stmt.Text)
	assert.NotContains(t, stmt.Text, "DROP TABLE")
	require.Len(t, stmt.Params, 1)
	assert.Equal(t, "'; DROP TABLE t; --", stmt.Params[0].Value)
}
