package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/metaql/pkg/engine"
	"gopkg.in/yaml.v3"
)

// renderResultSet writes a fetched collection in the requested format.
// Column order always follows the collection's declared schema.
func renderResultSet(w io.Writer, rs *engine.ResultSet, format string) error {
	switch format {
	case "json":
		return renderJSON(w, rs)
	case "csv":
		return renderCSV(w, rs)
	case "yaml":
		return renderYAML(w, rs)
	default:
		return renderTable(w, rs)
	}
}

func renderTable(w io.Writer, rs *engine.ResultSet) error {
	if len(rs.Rows) == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	headerRow := make(table.Row, len(rs.Columns))
	for i, col := range rs.Columns {
		headerRow[i] = col.Name
	}
	t.AppendHeader(headerRow)

	for _, r := range rs.Rows {
		row := make(table.Row, len(rs.Columns))
		for i, col := range rs.Columns {
			row[i] = formatValue(r[col.Name])
		}
		t.AppendRow(row)
	}

	t.Render()
	_, _ = fmt.Fprintf(w, "(%d rows)\n", len(rs.Rows))
	return nil
}

// orderedRows converts result rows to column-ordered maps for the tree-ish
// encoders.
func orderedRows(rs *engine.ResultSet) []map[string]any {
	out := make([]map[string]any, 0, len(rs.Rows))
	for _, r := range rs.Rows {
		m := make(map[string]any, len(rs.Columns))
		for _, col := range rs.Columns {
			m[col.Name] = r[col.Name]
		}
		out = append(out, m)
	}
	return out
}

func renderJSON(w io.Writer, rs *engine.ResultSet) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(orderedRows(rs))
}

func renderYAML(w io.Writer, rs *engine.ResultSet) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()
	return enc.Encode(orderedRows(rs))
}

func renderCSV(w io.Writer, rs *engine.ResultSet) error {
	cols := make([]string, len(rs.Columns))
	for i, col := range rs.Columns {
		cols[i] = col.Name
	}
	_, _ = fmt.Fprintln(w, strings.Join(cols, ","))

	for _, r := range rs.Rows {
		values := make([]string, len(rs.Columns))
		for i, col := range rs.Columns {
			values[i] = escapeCSV(formatValue(r[col.Name]))
		}
		_, _ = fmt.Fprintln(w, strings.Join(values, ","))
	}
	return nil
}

func formatValue(v any) string {
	if v == nil {
		return "NULL"
	}
	return fmt.Sprintf("%v", v)
}

func escapeCSV(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}
