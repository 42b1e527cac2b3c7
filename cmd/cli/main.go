// Package main is the entry point for the wageman CLI.
package main

import (
	"fmt"
	"os"

	"wageman/cmd/cli/cmd"
	"wageman/internal/logging"
)

func main() {
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	logging.Sync()
	os.Exit(cmd.ExitCode(err))
}
