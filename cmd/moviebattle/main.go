// Package main is the entry point for the moviebattle CLI.
package main

import (
	"os"

	"github.com/cit5940-25sp/cit-5940-final-project-warriors/cmd/moviebattle/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
