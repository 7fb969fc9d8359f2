package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/jiravec-cli/internal/adapters/driving/cli"
)

// version is stamped by the release build via -ldflags.
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}
