package config

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/metaql/pkg/executor"
)

// validOutputs lists the renderer formats the CLI understands.
var validOutputs = []string{"table", "json", "csv", "yaml"}

// Validate checks the loaded configuration for consistency.
func (c *Config) Validate() error {
	if c.Source == nil || c.Source.Type == "" {
		return fmt.Errorf("source.type is required (available backends: %s)",
			strings.Join(executor.List(), ", "))
	}
	if !executor.IsRegistered(c.Source.Type) {
		return &executor.UnknownBackendError{
			Type:      c.Source.Type,
			Available: executor.List(),
		}
	}

	valid := false
	for _, o := range validOutputs {
		if c.OutputFormat == o {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid output format %q (valid: %s)",
			c.OutputFormat, strings.Join(validOutputs, ", "))
	}

	return nil
}
