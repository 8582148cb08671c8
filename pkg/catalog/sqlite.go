package catalog

// SQLite returns the collection manifest for SQLite backends. Most templates
// wrap a pragma table function or sqlite_master projection in a subselect so
// the renamed columns are addressable by appended predicates. The tables
// template keeps its shape filter in the outer query and is marked Conjoined.
// SQLite has no user accounts, so the users collection is absent here.
func SQLite() (*Catalog, error) {
	return New(
		&Descriptor{
			Name: "databases",
			Columns: []Column{
				{Name: "database_name", Type: TypeText},
				{Name: "database_file", Type: TypeText},
			},
			Template: `SELECT database_name, database_file FROM (
	SELECT name AS database_name, file AS database_file
	FROM pragma_database_list) dbs`,
			Restrictions: []string{"database_name"},
		},
		&Descriptor{
			Name: "tables",
			Columns: []Column{
				{Name: "table_name", Type: TypeText},
				{Name: "table_type", Type: TypeText},
				{Name: "root_page", Type: TypeInt},
			},
			Template: `SELECT table_name, table_type, root_page FROM (
	SELECT name AS table_name, type AS table_type, rootpage AS root_page
	FROM sqlite_master) m WHERE table_type IN ('table', 'view')`,
			Restrictions: []string{"table_name", "table_type"},
			Conjoined:    true,
		},
		&Descriptor{
			Name: "columns",
			Columns: []Column{
				{Name: "table_name", Type: TypeText},
				{Name: "column_name", Type: TypeText},
				{Name: "data_type", Type: TypeText},
				{Name: "not_null", Type: TypeBool},
				{Name: "ordinal_position", Type: TypeInt},
			},
			Template: `SELECT table_name, column_name, data_type, not_null, ordinal_position FROM (
	SELECT m.name AS table_name, c.name AS column_name, c.type AS data_type,
	       c."notnull" AS not_null, c.cid + 1 AS ordinal_position
	FROM sqlite_master m, pragma_table_info(m.name) c
	WHERE m.type = 'table') t`,
			Restrictions: []string{"table_name", "column_name"},
		},
		&Descriptor{
			Name: "views",
			Columns: []Column{
				{Name: "view_name", Type: TypeText},
				{Name: "view_definition", Type: TypeText},
			},
			Template: `SELECT view_name, view_definition FROM (
	SELECT name AS view_name, sql AS view_definition
	FROM sqlite_master WHERE type = 'view') v`,
			Restrictions: []string{"view_name"},
		},
		&Descriptor{
			Name: "indexes",
			Columns: []Column{
				{Name: "table_name", Type: TypeText},
				{Name: "index_name", Type: TypeText},
				{Name: "is_unique", Type: TypeBool},
				{Name: "origin", Type: TypeText},
			},
			Template: `SELECT table_name, index_name, is_unique, origin FROM (
	SELECT m.name AS table_name, il.name AS index_name,
	       il."unique" AS is_unique, il.origin AS origin
	FROM sqlite_master m, pragma_index_list(m.name) il
	WHERE m.type = 'table') ix`,
			Restrictions: []string{"table_name", "index_name"},
		},
		&Descriptor{
			Name: "index_columns",
			Columns: []Column{
				{Name: "index_name", Type: TypeText},
				{Name: "column_name", Type: TypeText},
				{Name: "ordinal_position", Type: TypeInt},
			},
			Template: `SELECT index_name, column_name, ordinal_position FROM (
	SELECT il.name AS index_name, ii.name AS column_name,
	       ii.seqno + 1 AS ordinal_position
	FROM sqlite_master m, pragma_index_list(m.name) il,
	     pragma_index_info(il.name) ii
	WHERE m.type = 'table') ic`,
			Restrictions: []string{"index_name", "column_name"},
		},
		ReservedWordsDescriptor(),
		DataSourceInfoDescriptor(SourceInfo{
			ProductName:         "SQLite",
			ParameterMarker:     "?",
			IdentifierQuote:     `"`,
			CompositeSeparator:  ".",
			MaxIdentifierLength: 0,
			SupportsSchemas:     false,
		}),
	)
}
