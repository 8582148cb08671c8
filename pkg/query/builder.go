// Package query builds parameterized metadata statements from positional
// restriction values.
//
// A collection's base template is combined with its ordered restriction-column
// list and a caller-supplied restriction slice. Restrictions align to columns
// by index; an entry is present iff it is non-empty. Present entries become
// `col = :col` predicates with the value bound as a named parameter, never
// interpolated into the statement text.
package query

import (
	"fmt"
	"strings"
)

// Param is a single named statement parameter.
type Param struct {
	Name  string
	Value any
}

// BoundStatement is a fully parameterized statement ready for execution.
// It is built fresh on every call and carries no shared state.
type BoundStatement struct {
	Text   string
	Params []Param
}

// MalformedRestrictionError is returned in strict mode when the restriction
// count does not match the declared restriction-column count.
type MalformedRestrictionError struct {
	Want int
	Got  int
}

func (e *MalformedRestrictionError) Error() string {
	return fmt.Sprintf("restriction count mismatch: got %d values for %d restriction columns", e.Got, e.Want)
}

// Option configures a single Build call.
type Option func(*builder)

type builder struct {
	conjoined bool
	strict    bool
}

// Conjoined marks the template as already carrying a WHERE clause, so the
// first appended predicate joins with AND instead of opening a new WHERE.
func Conjoined() Option {
	return func(b *builder) { b.conjoined = true }
}

// Strict enables arity validation: Build fails with a
// MalformedRestrictionError unless len(restrictions) == len(columns).
// The default mode is permissive and tolerates any length.
func Strict() Option {
	return func(b *builder) { b.strict = true }
}

// Build appends restriction predicates to template and binds the present
// restriction values as named parameters.
//
// Restrictions align to columns positionally. Iteration stops at the shorter
// of the two slices; empty entries are skipped without consuming a clause
// slot, so a present entry after a gap still lines up with its column. With
// no present entries the template is returned verbatim with zero parameters.
func Build(template string, columns []string, restrictions []string, opts ...Option) (BoundStatement, error) {
	var b builder
	for _, opt := range opts {
		opt(&b)
	}

	if b.strict && len(restrictions) != len(columns) {
		return BoundStatement{}, &MalformedRestrictionError{Want: len(columns), Got: len(restrictions)}
	}

	var sb strings.Builder
	sb.WriteString(template)

	stmt := BoundStatement{}
	first := !b.conjoined
	for i := 0; i < len(columns) && i < len(restrictions); i++ {
		if restrictions[i] == "" {
			continue
		}
		if first {
			sb.WriteString(" WHERE ")
			first = false
		} else {
			sb.WriteString(" AND ")
		}
		sb.WriteString(columns[i])
		sb.WriteString(" = :")
		sb.WriteString(columns[i])
		stmt.Params = append(stmt.Params, Param{Name: columns[i], Value: restrictions[i]})
	}

	stmt.Text = sb.String()
	return stmt, nil
}
