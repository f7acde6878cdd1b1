// Package main is the entry point for the dbot CLI/TUI.
package main

import (
	"os"

	"github.com/watchfire-io/dbot/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
