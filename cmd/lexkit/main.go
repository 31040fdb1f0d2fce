// Package main provides the lexkit command-line tool.
package main

import (
	"os"

	"github.com/leapstack-labs/lexkit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
