// Package main is the entry point for the projtrack CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/projtrack/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
