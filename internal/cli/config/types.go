// Package config provides configuration management for the metaql CLI.
//
// Configuration is layered with koanf. Precedence (highest to lowest):
// CLI flags > METAQL_ environment variables > metaql.yaml > defaults.
package config

import (
	"github.com/leapstack-labs/metaql/pkg/executor"
)

// Config holds all CLI configuration options.
type Config struct {
	// Source is the backend connection the CLI queries.
	Source *executor.Config `koanf:"source"`

	// OutputFormat selects how fetched collections are rendered
	// (table, json, csv, yaml).
	OutputFormat string `koanf:"output"`

	// Strict enables restriction-arity validation on fetch.
	Strict bool `koanf:"strict"`

	Verbose bool `koanf:"verbose"`
}

// Default configuration values.
const (
	DefaultSourceType = "duckdb"
	DefaultOutput     = "table"
)
