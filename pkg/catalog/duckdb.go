package catalog

// DuckDB returns the collection manifest for DuckDB backends. It leans on
// DuckDB's table functions (duckdb_databases, duckdb_tables, ...), whose
// column names are usable directly in appended predicates. The tables
// template already filters out internal catalogs, so it is marked Conjoined.
// DuckDB has no user accounts, so the users collection is absent here.
func DuckDB() (*Catalog, error) {
	return New(
		&Descriptor{
			Name: "databases",
			Columns: []Column{
				{Name: "database_name", Type: TypeText},
				{Name: "path", Type: TypeText},
			},
			Template:     `SELECT database_name, path FROM duckdb_databases()`,
			Restrictions: []string{"database_name"},
		},
		&Descriptor{
			Name: "tables",
			Columns: []Column{
				{Name: "database_name", Type: TypeText},
				{Name: "schema_name", Type: TypeText},
				{Name: "table_name", Type: TypeText},
				{Name: "estimated_size", Type: TypeInt},
				{Name: "column_count", Type: TypeInt},
			},
			Template: `SELECT database_name, schema_name, table_name, estimated_size,
	column_count FROM duckdb_tables() WHERE NOT internal`,
			Restrictions: []string{"database_name", "schema_name", "table_name"},
			Conjoined:    true,
		},
		&Descriptor{
			Name: "columns",
			Columns: []Column{
				{Name: "table_catalog", Type: TypeText},
				{Name: "table_schema", Type: TypeText},
				{Name: "table_name", Type: TypeText},
				{Name: "column_name", Type: TypeText},
				{Name: "ordinal_position", Type: TypeInt},
				{Name: "column_default", Type: TypeText},
				{Name: "is_nullable", Type: TypeBool},
				{Name: "data_type", Type: TypeText},
			},
			Template: `SELECT table_catalog, table_schema, table_name, column_name,
	ordinal_position, column_default, is_nullable, data_type
	FROM information_schema.columns`,
			Restrictions: []string{"table_catalog", "table_schema", "table_name", "column_name"},
		},
		&Descriptor{
			Name: "views",
			Columns: []Column{
				{Name: "database_name", Type: TypeText},
				{Name: "schema_name", Type: TypeText},
				{Name: "view_name", Type: TypeText},
				{Name: "sql", Type: TypeText},
			},
			Template:     `SELECT database_name, schema_name, view_name, sql FROM duckdb_views()`,
			Restrictions: []string{"database_name", "schema_name", "view_name"},
		},
		&Descriptor{
			Name: "indexes",
			Columns: []Column{
				{Name: "database_name", Type: TypeText},
				{Name: "schema_name", Type: TypeText},
				{Name: "table_name", Type: TypeText},
				{Name: "index_name", Type: TypeText},
				{Name: "is_unique", Type: TypeBool},
				{Name: "sql", Type: TypeText},
			},
			Template: `SELECT database_name, schema_name, table_name, index_name,
	is_unique, sql FROM duckdb_indexes()`,
			Restrictions: []string{"database_name", "schema_name", "table_name", "index_name"},
		},
		ReservedWordsDescriptor(),
		DataSourceInfoDescriptor(SourceInfo{
			ProductName:         "DuckDB",
			ParameterMarker:     "?",
			IdentifierQuote:     `"`,
			CompositeSeparator:  ".",
			MaxIdentifierLength: 255,
			SupportsSchemas:     true,
		}),
	)
}
