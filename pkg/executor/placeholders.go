package executor

import (
	"fmt"
	"strconv"
	"strings"
)

// PlaceholderStyle defines how a backend formats query parameters.
type PlaceholderStyle int

const (
	// PlaceholderQuestion uses "?" markers (DuckDB, SQLite).
	PlaceholderQuestion PlaceholderStyle = iota
	// PlaceholderDollar uses "$1", "$2", ... markers (PostgreSQL).
	PlaceholderDollar
)

// formatPlaceholder returns the marker for a 1-based parameter index.
func (s PlaceholderStyle) formatPlaceholder(index int) string {
	if s == PlaceholderDollar {
		return "$" + strconv.Itoa(index)
	}
	return "?"
}

func isIdentByte(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// expandNamed rewrites :name markers in text to the backend's placeholder
// style and returns the driver arguments in marker occurrence order. Catalog
// templates never use the :: cast operator, so a ':' followed by an
// identifier character is always a marker. A marker with no matching
// parameter fails.
func expandNamed(text string, params []Param, style PlaceholderStyle) (string, []any, error) {
	values := make(map[string]any, len(params))
	for _, p := range params {
		values[p.Name] = p.Value
	}

	var sb strings.Builder
	var args []any
	seen := make(map[string]bool, len(params))

	for i := 0; i < len(text); i++ {
		if text[i] != ':' || i+1 >= len(text) || !isIdentByte(text[i+1]) {
			sb.WriteByte(text[i])
			continue
		}
		j := i + 1
		for j < len(text) && isIdentByte(text[j]) {
			j++
		}
		name := text[i+1 : j]
		value, ok := values[name]
		if !ok {
			return "", nil, fmt.Errorf("statement references unbound parameter :%s", name)
		}
		args = append(args, value)
		seen[name] = true
		sb.WriteString(style.formatPlaceholder(len(args)))
		i = j - 1
	}

	for _, p := range params {
		if !seen[p.Name] {
			return "", nil, fmt.Errorf("parameter %q not referenced by statement", p.Name)
		}
	}

	return sb.String(), args, nil
}
