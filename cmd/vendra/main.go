// Command vendra is the marketplace catalog client.
package main

import (
	"os"

	"github.com/vendra-labs/vendra-cli/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
