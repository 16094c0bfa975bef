// Command widgetlist lays out and renders virtualized terminal lists.
package main

import (
	"fmt"
	"os"

	"github.com/rshade/widgetlist/internal/cli"
	"github.com/rshade/widgetlist/pkg/version"
)

func run() error {
	return cli.NewRootCmd(version.String()).Execute()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
