package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/leapstack-labs/metaql/pkg/catalog"
	"github.com/leapstack-labs/metaql/pkg/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResultSet() *engine.ResultSet {
	return &engine.ResultSet{
		Collection: "tables",
		Columns: []catalog.Column{
			{Name: "table_schema", Type: catalog.TypeText},
			{Name: "table_name", Type: catalog.TypeText},
			{Name: "row_count", Type: catalog.TypeInt},
		},
		Rows: []engine.Row{
			{"table_schema": "public", "table_name": "orders", "row_count": int64(42)},
			{"table_schema": "public", "table_name": "users, archived", "row_count": nil},
		},
	}
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderResultSet(&buf, sampleResultSet(), "table"))

	out := buf.String()
	assert.Contains(t, out, "TABLE_SCHEMA")
	assert.Contains(t, out, "orders")
	assert.Contains(t, out, "NULL")
	assert.Contains(t, out, "(2 rows)")
}

func TestRenderTable_Empty(t *testing.T) {
	rs := sampleResultSet()
	rs.Rows = nil

	var buf bytes.Buffer
	require.NoError(t, renderResultSet(&buf, rs, "table"))
	assert.Equal(t, "(0 rows)\n", buf.String())
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderResultSet(&buf, sampleResultSet(), "json"))

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "orders", rows[0]["table_name"])
	assert.Nil(t, rows[1]["row_count"])
}

func TestRenderCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderResultSet(&buf, sampleResultSet(), "csv"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "table_schema,table_name,row_count", lines[0])
	assert.Equal(t, "public,orders,42", lines[1])
	// Values containing commas get quoted.
	assert.Equal(t, `public,"users, archived",NULL`, lines[2])
}

func TestRenderYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderResultSet(&buf, sampleResultSet(), "yaml"))

	out := buf.String()
	assert.Contains(t, out, "table_name: orders")
	assert.Contains(t, out, "row_count: 42")
}

func TestNewCatalog_Unknown(t *testing.T) {
	_, err := newCatalog("oracle")
	require.Error(t, err)
}
