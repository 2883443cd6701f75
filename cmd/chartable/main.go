// Package main is the entry point for the chartable CLI.
package main

import (
	"os"

	"github.com/f3rmion/chartable/cmd/chartable/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
