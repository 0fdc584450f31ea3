// Package main provides the leapcss command.
package main

import (
	"os"

	"github.com/leapstack-labs/leapcss/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
