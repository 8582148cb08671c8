package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewCollectionsCommand creates the collections command.
func NewCollectionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "collections",
		Short: "List the available metadata collections",
		Long: `List every metadata collection the configured backend exposes, together
with the restriction columns each one accepts, in positional order.`,
		Example: `  # List collections for the configured source
  metaql collections

  # List collections for a PostgreSQL source as JSON
  metaql collections --source-type postgres --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := getConfig(cmd)
			if err != nil {
				return err
			}

			// Listing needs only the manifest, not a connection.
			cat, err := newCatalog(cfg.Source.Type)
			if err != nil {
				return err
			}
			summaries := cat.List()

			if cfg.OutputFormat == "json" {
				type summaryJSON struct {
					Name         string   `json:"name"`
					Restrictions []string `json:"restrictions"`
				}
				out := make([]summaryJSON, 0, len(summaries))
				for _, s := range summaries {
					out = append(out, summaryJSON{Name: s.Name, Restrictions: s.Restrictions})
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"collection", "restriction columns"})
			for _, s := range summaries {
				t.AppendRow(table.Row{s.Name, strings.Join(s.Restrictions, ", ")})
			}
			t.Render()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "(%d collections)\n", len(summaries))
			return nil
		},
	}
}
