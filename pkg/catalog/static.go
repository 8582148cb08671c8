package catalog

// reservedWords is a manually maintained list of keywords that need quoting
// when used as identifiers. Grouped by rough category rather than sorted;
// consumers that want ordering sort on their side.
var reservedWords = []string{
	// Statement keywords
	"SELECT", "INSERT", "UPDATE", "DELETE", "CREATE", "ALTER", "DROP",
	"GRANT", "REVOKE", "COMMIT", "ROLLBACK",
	// Clause keywords
	"FROM", "WHERE", "GROUP", "HAVING", "ORDER", "BY", "LIMIT", "OFFSET",
	"INTO", "VALUES", "SET", "RETURNING", "WINDOW", "WITH",
	// Join keywords
	"JOIN", "INNER", "OUTER", "LEFT", "RIGHT", "FULL", "CROSS", "NATURAL",
	"ON", "USING", "LATERAL",
	// Predicates and operators
	"AND", "OR", "NOT", "IN", "IS", "NULL", "LIKE", "ILIKE", "SIMILAR",
	"BETWEEN", "EXISTS", "ANY", "ALL", "SOME", "UNION", "INTERSECT",
	"EXCEPT", "CASE", "WHEN", "THEN", "ELSE", "END", "CAST", "COLLATE",
	// Constraint keywords
	"PRIMARY", "FOREIGN", "REFERENCES", "UNIQUE", "CHECK", "CONSTRAINT",
	"DEFAULT", "INDEX", "KEY",
	// Identifier-ish words that trip people up
	"TABLE", "COLUMN", "VIEW", "USER", "SESSION_USER",
	"CURRENT_USER", "CURRENT_DATE", "CURRENT_TIME", "CURRENT_TIMESTAMP",
	"LOCALTIME", "LOCALTIMESTAMP", "CURRENT_CATALOG", "CURRENT_SCHEMA",
	// Misc
	"AS", "ASC", "DESC", "DISTINCT", "TRUE", "FALSE", "TO", "FOR", "DO",
	"BOTH", "LEADING", "TRAILING", "ONLY", "FETCH", "ARRAY", "BINARY",
	"SYMMETRIC", "ASYMMETRIC", "VARIADIC", "PLACING", "OVERLAPS", "FREEZE",
}

// ReservedWordsDescriptor returns the degenerate reserved-words collection:
// a single-column, in-memory row source with zero restriction columns.
// Restriction values are ignored and every call sees the same row set.
func ReservedWordsDescriptor() *Descriptor {
	rows := make([][]any, 0, len(reservedWords))
	for _, w := range reservedWords {
		rows = append(rows, []any{w})
	}
	return &Descriptor{
		Name:    "reserved_words",
		Columns: []Column{{Name: "ReservedWord", Type: TypeText}},
		Rows:    rows,
	}
}

// SourceInfo describes a backend's capabilities for the data_source_info
// collection.
type SourceInfo struct {
	ProductName         string
	ParameterMarker     string
	IdentifierQuote     string
	CompositeSeparator  string
	MaxIdentifierLength int
	SupportsSchemas     bool
}

// DataSourceInfoDescriptor returns the static capability collection for a
// backend: a single row, no restriction columns.
func DataSourceInfoDescriptor(info SourceInfo) *Descriptor {
	return &Descriptor{
		Name: "data_source_info",
		Columns: []Column{
			{Name: "product_name", Type: TypeText},
			{Name: "parameter_marker", Type: TypeText},
			{Name: "identifier_quote", Type: TypeText},
			{Name: "composite_separator", Type: TypeText},
			{Name: "max_identifier_length", Type: TypeInt},
			{Name: "supports_schemas", Type: TypeBool},
		},
		Rows: [][]any{{
			info.ProductName,
			info.ParameterMarker,
			info.IdentifierQuote,
			info.CompositeSeparator,
			info.MaxIdentifierLength,
			info.SupportsSchemas,
		}},
	}
}
