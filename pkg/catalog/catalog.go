// Package catalog holds the declarative definitions of the metadata
// collections a backend exposes.
//
// A Catalog maps collection names to immutable Descriptors: the result
// schema, the base query template, and the ordered restriction-column list
// consumed by pkg/query. Built-in manifests are provided for PostgreSQL,
// DuckDB, and SQLite backends; catalog content is data, not engine behavior.
package catalog

import (
	"fmt"
	"strings"
)

// Type is the semantic type of a result column.
type Type int

const (
	// TypeText is a string-valued column.
	TypeText Type = iota
	// TypeInt is an integer-valued column.
	TypeInt
	// TypeBool is a boolean-valued column.
	TypeBool
)

// String returns the string representation of Type.
func (t Type) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeBool:
		return "bool"
	default:
		return "text"
	}
}

// Column is one column of a collection's declared result schema.
type Column struct {
	Name string
	Type Type
}

// Descriptor defines a single metadata collection. Descriptors are immutable
// once registered; a Catalog never mutates them after construction.
type Descriptor struct {
	// Name identifies the collection, unique within a Catalog.
	Name string

	// Columns is the declared result schema, in output order.
	Columns []Column

	// Template is the base query sent to the executor. Empty for static
	// collections served from Rows.
	Template string

	// Restrictions lists the filterable column names, in the positional
	// order callers supply restriction values.
	Restrictions []string

	// Conjoined marks templates that already carry a WHERE clause, so
	// appended predicates must join with AND.
	Conjoined bool

	// Rows holds the literal row source for static collections such as
	// reserved words. Restriction values are ignored for these.
	Rows [][]any
}

// Static reports whether the collection is served from in-memory rows
// rather than a backend query.
func (d *Descriptor) Static() bool {
	return d.Template == ""
}

// Summary is the discoverable shape of a collection: its name and the
// restriction columns it accepts, in positional order.
type Summary struct {
	Name         string
	Restrictions []string
}

// UnknownCollectionError is returned when a requested collection name has no
// registered descriptor.
type UnknownCollectionError struct {
	Name      string
	Available []string
}

func (e *UnknownCollectionError) Error() string {
	return fmt.Sprintf("unknown collection %q (available: %s)", e.Name, strings.Join(e.Available, ", "))
}

// Catalog resolves collection names to descriptors. It is read-only after
// construction and safe for unlimited concurrent lookups.
type Catalog struct {
	byName map[string]*Descriptor
	order  []string
}

// New builds a Catalog from the given descriptors. Registration order is
// preserved by List. Duplicate names fail construction.
func New(descriptors ...*Descriptor) (*Catalog, error) {
	c := &Catalog{byName: make(map[string]*Descriptor, len(descriptors))}
	for _, d := range descriptors {
		key := strings.ToLower(d.Name)
		if _, dup := c.byName[key]; dup {
			return nil, fmt.Errorf("duplicate collection %q", d.Name)
		}
		c.byName[key] = d
		c.order = append(c.order, key)
	}
	return c, nil
}

// Resolve returns the descriptor for name. Lookup is case-insensitive.
func (c *Catalog) Resolve(name string) (*Descriptor, error) {
	d, ok := c.byName[strings.ToLower(name)]
	if !ok {
		return nil, &UnknownCollectionError{Name: name, Available: c.Names()}
	}
	return d, nil
}

// Names returns all collection names in registration order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.order))
	for _, key := range c.order {
		names = append(names, c.byName[key].Name)
	}
	return names
}

// List returns collection summaries in registration order. The order is
// stable across calls within a process.
func (c *Catalog) List() []Summary {
	summaries := make([]Summary, 0, len(c.order))
	for _, key := range c.order {
		d := c.byName[key]
		summaries = append(summaries, Summary{Name: d.Name, Restrictions: d.Restrictions})
	}
	return summaries
}
