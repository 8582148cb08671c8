package commands

import (
	"github.com/spf13/cobra"
)

// NewFetchCommand creates the fetch command.
func NewFetchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch <collection> [restriction...]",
		Short: "Fetch a metadata collection",
		Long: `Fetch a metadata collection, optionally filtered by positional restriction
values. Restrictions align by position to the collection's restriction
columns (see 'metaql collections'); pass "" to leave a slot unrestricted.
Trailing slots may simply be omitted.`,
		Example: `  # All tables
  metaql fetch tables

  # Tables in the public schema (first slot, table_catalog, left open)
  metaql fetch tables "" public

  # Columns of one table, as JSON
  metaql fetch columns "" public orders --output json

  # Reserved words (restrictions are ignored for static collections)
  metaql fetch reserved_words`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := getConfig(cmd)
			if err != nil {
				return err
			}

			eng, cleanup, err := newEngine(cmd, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			rs, err := eng.Fetch(cmd.Context(), args[0], args[1:])
			if err != nil {
				return err
			}

			return renderResultSet(cmd.OutOrStdout(), rs, cfg.OutputFormat)
		},
	}
}
