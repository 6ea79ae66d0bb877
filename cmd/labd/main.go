// Package main implements the lab server daemon (labd).
// labd serves lab pages and runs the solver for every submitted form.
package main

import (
	"os"

	"github.com/concave-dev/labform/cmd/labd/commands"
)

func main() {
	commands.SetupCommands()

	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
