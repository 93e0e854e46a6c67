// Package main is the entry point for the vehicle-cost CLI.
package main

import (
	"os"

	"vehicle-cost/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
