package engine

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/metaql/pkg/catalog"
	"github.com/leapstack-labs/metaql/pkg/executor"
)

// Row maps column names to typed values.
type Row map[string]any

// ResultSet is a schema-tagged collection result. Columns come strictly from
// the collection's descriptor; the executor's output never widens them.
type ResultSet struct {
	Collection string
	Columns    []catalog.Column
	Rows       []Row
}

// project maps raw executor rows onto the descriptor's declared column order
// and semantic types. Columns the executor did not return come back nil.
func project(desc *catalog.Descriptor, raw *executor.Result) *ResultSet {
	index := make(map[string]int, len(raw.Columns))
	for i, name := range raw.Columns {
		index[strings.ToLower(name)] = i
	}

	rs := &ResultSet{Collection: desc.Name, Columns: desc.Columns}
	for _, rawRow := range raw.Rows {
		row := make(Row, len(desc.Columns))
		for _, col := range desc.Columns {
			var v any
			if i, ok := index[strings.ToLower(col.Name)]; ok && i < len(rawRow) {
				v = rawRow[i]
			}
			row[col.Name] = coerce(v, col.Type)
		}
		rs.Rows = append(rs.Rows, row)
	}
	return rs
}

// projectStatic materializes a static descriptor's in-memory rows, which are
// already positionally aligned to its columns.
func projectStatic(desc *catalog.Descriptor) *ResultSet {
	rs := &ResultSet{Collection: desc.Name, Columns: desc.Columns}
	for _, src := range desc.Rows {
		row := make(Row, len(desc.Columns))
		for i, col := range desc.Columns {
			var v any
			if i < len(src) {
				v = src[i]
			}
			row[col.Name] = coerce(v, col.Type)
		}
		rs.Rows = append(rs.Rows, row)
	}
	return rs
}

// coerce converts a driver value to the column's semantic type. Values that
// cannot be converted pass through unchanged rather than failing the fetch.
func coerce(v any, t catalog.Type) any {
	if v == nil {
		return nil
	}
	switch t {
	case catalog.TypeInt:
		switch n := v.(type) {
		case int64:
			return n
		case int:
			return int64(n)
		case int32:
			return int64(n)
		case uint32:
			return int64(n)
		case float64:
			return int64(n)
		}
	case catalog.TypeBool:
		switch b := v.(type) {
		case bool:
			return b
		case int64:
			return b != 0
		case int:
			return b != 0
		case string:
			// information_schema reports booleans as YES/NO
			switch strings.ToLower(b) {
			case "yes", "true", "t", "1":
				return true
			case "no", "false", "f", "0":
				return false
			}
		}
	default:
		if s, ok := v.(string); ok {
			return s
		}
		if bs, ok := v.([]byte); ok {
			return string(bs)
		}
		return fmt.Sprintf("%v", v)
	}
	return v
}
