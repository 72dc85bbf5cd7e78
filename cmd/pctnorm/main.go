// Package main is the entry point for the pctnorm CLI.
package main

import (
	"os"

	"github.com/jmylchreest/pctnorm/cmd/pctnorm/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
