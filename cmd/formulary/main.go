// Command formulary browses and searches the formula catalog.
package main

import (
	"os"

	"github.com/mesh-intelligence/formulary/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
