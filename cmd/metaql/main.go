// Command metaql queries the metadata collections of a relational backend.
package main

import (
	"github.com/leapstack-labs/metaql/internal/cli"
)

func main() {
	cli.Execute()
}
