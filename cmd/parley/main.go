// main is the entry point for the parley CLI.
package main

import (
	"github.com/vinsol-ai/parley/cmd"
	"github.com/vinsol-ai/parley/internal/contract"
)

func main() {
	err := cmd.Execute()

	// Always stop profiling, even on command failure, so partial profiles
	// are still written.
	if perr := cmd.StopProfiling(); perr != nil {
		contract.LogWarn("Failed to stop profiling", perr)
	}

	if err != nil {
		contract.LogFatal("Command failed", err)
	}
}
