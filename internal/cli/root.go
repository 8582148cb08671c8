// Package cli provides the command-line interface for metaql.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/leapstack-labs/metaql/internal/cli/commands"
	"github.com/leapstack-labs/metaql/internal/cli/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "metaql",
		Short: "metaql - Metadata Catalog Query Engine",
		Long: `metaql queries the metadata collections of a relational backend:
databases, tables, columns, views, users, indexes, index columns,
reserved words, and data-source capabilities.

Each collection accepts an ordered list of optional restriction values
that filter results positionally; pass "" to leave a slot open.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			var err error
			cfg, err = config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			cmd.SetContext(context.WithValue(cmd.Context(), commands.ConfigKey{}, cfg))

			if cfg.Verbose {
				if configFile := config.GetConfigFileUsed(); configFile != "" {
					fmt.Fprintf(os.Stderr, "Using config file: %s\n", configFile)
				}
			}

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
Metadata Catalog Query Engine
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./metaql.yaml)")
	rootCmd.PersistentFlags().String("source-type", "", "Backend type (postgres, duckdb, sqlite)")
	rootCmd.PersistentFlags().String("path", "", "Database file path for file-based backends (\":memory:\" for in-memory)")
	rootCmd.PersistentFlags().String("host", "", "Database host for network backends")
	rootCmd.PersistentFlags().Int("port", 0, "Database port for network backends")
	rootCmd.PersistentFlags().String("database", "", "Database name")
	rootCmd.PersistentFlags().String("user", "", "Database user")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().Bool("strict", false, "Fail when restriction count does not match a collection's restriction columns")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (table|json|csv|yaml)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"table", "json", "csv", "yaml"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("source-type", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"postgres", "duckdb", "sqlite"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewCollectionsCommand())
	rootCmd.AddCommand(commands.NewFetchCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
