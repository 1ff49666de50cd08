// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/katalvlaran/lvqec/cmd/lvqec/commands"
)

// Version information, set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)

	// Errors are already printed by the printer.
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
