package catalog

// Postgres returns the collection manifest for PostgreSQL backends.
//
// Restriction columns always name real output columns of the template, so an
// appended `col = :col` predicate resolves without qualification. Templates
// that project renamed pg_catalog columns wrap the projection in a subselect
// for the same reason.
func Postgres() (*Catalog, error) {
	return New(
		&Descriptor{
			Name: "databases",
			Columns: []Column{
				{Name: "database_name", Type: TypeText},
				{Name: "owner_name", Type: TypeText},
				{Name: "encoding_name", Type: TypeText},
			},
			Template: `SELECT database_name, owner_name, encoding_name FROM (
	SELECT d.datname AS database_name,
	       pg_catalog.pg_get_userbyid(d.datdba) AS owner_name,
	       pg_catalog.pg_encoding_to_char(d.encoding) AS encoding_name
	FROM pg_catalog.pg_database d) db`,
			Restrictions: []string{"database_name"},
		},
		&Descriptor{
			Name: "tables",
			Columns: []Column{
				{Name: "table_catalog", Type: TypeText},
				{Name: "table_schema", Type: TypeText},
				{Name: "table_name", Type: TypeText},
				{Name: "table_type", Type: TypeText},
			},
			Template:     `SELECT table_catalog, table_schema, table_name, table_type FROM information_schema.tables`,
			Restrictions: []string{"table_catalog", "table_schema", "table_name", "table_type"},
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
				{Name: "character_maximum_length", Type: TypeInt},
			},
			Template: `SELECT table_catalog, table_schema, table_name, column_name,
	ordinal_position, column_default, is_nullable, data_type,
	character_maximum_length FROM information_schema.columns`,
			Restrictions: []string{"table_catalog", "table_schema", "table_name", "column_name"},
		},
		&Descriptor{
			Name: "views",
			Columns: []Column{
				{Name: "table_catalog", Type: TypeText},
				{Name: "table_schema", Type: TypeText},
				{Name: "table_name", Type: TypeText},
				{Name: "check_option", Type: TypeText},
				{Name: "is_updatable", Type: TypeBool},
			},
			Template: `SELECT table_catalog, table_schema, table_name, check_option,
	is_updatable FROM information_schema.views`,
			Restrictions: []string{"table_catalog", "table_schema", "table_name"},
		},
		&Descriptor{
			Name: "users",
			Columns: []Column{
				{Name: "user_name", Type: TypeText},
				{Name: "user_id", Type: TypeInt},
				{Name: "is_superuser", Type: TypeBool},
				{Name: "can_create_db", Type: TypeBool},
			},
			Template: `SELECT user_name, user_id, is_superuser, can_create_db FROM (
	SELECT u.usename AS user_name, u.usesysid AS user_id,
	       u.usesuper AS is_superuser, u.usecreatedb AS can_create_db
	FROM pg_catalog.pg_user u) us`,
			Restrictions: []string{"user_name"},
		},
		&Descriptor{
			Name: "indexes",
			Columns: []Column{
				{Name: "table_schema", Type: TypeText},
				{Name: "table_name", Type: TypeText},
				{Name: "index_name", Type: TypeText},
				{Name: "index_definition", Type: TypeText},
			},
			Template: `SELECT table_schema, table_name, index_name, index_definition FROM (
	SELECT i.schemaname AS table_schema, i.tablename AS table_name,
	       i.indexname AS index_name, i.indexdef AS index_definition
	FROM pg_catalog.pg_indexes i) ix`,
			Restrictions: []string{"table_schema", "table_name", "index_name"},
		},
		&Descriptor{
			Name: "index_columns",
			Columns: []Column{
				{Name: "table_schema", Type: TypeText},
				{Name: "table_name", Type: TypeText},
				{Name: "index_name", Type: TypeText},
				{Name: "column_name", Type: TypeText},
				{Name: "ordinal_position", Type: TypeInt},
			},
			Template: `SELECT table_schema, table_name, index_name, column_name, ordinal_position FROM (
	SELECT n.nspname AS table_schema, t.relname AS table_name,
	       c.relname AS index_name, a.attname AS column_name,
	       a.attnum AS ordinal_position
	FROM pg_catalog.pg_index ix
	JOIN pg_catalog.pg_class c ON c.oid = ix.indexrelid
	JOIN pg_catalog.pg_class t ON t.oid = ix.indrelid
	JOIN pg_catalog.pg_namespace n ON n.oid = t.relnamespace
	JOIN pg_catalog.pg_attribute a ON a.attrelid = t.oid AND a.attnum = ANY(ix.indkey)
	WHERE a.attnum > 0) ic`,
			Restrictions: []string{"table_schema", "table_name", "index_name", "column_name"},
		},
		ReservedWordsDescriptor(),
		DataSourceInfoDescriptor(SourceInfo{
			ProductName:         "PostgreSQL",
			ParameterMarker:     "$1",
			IdentifierQuote:     `"`,
			CompositeSeparator:  ".",
			MaxIdentifierLength: 63,
			SupportsSchemas:     true,
		}),
	)
}
