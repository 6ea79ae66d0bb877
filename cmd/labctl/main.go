// Package main provides the entry point for labctl, the lab form submitter.
package main

import (
	"os"

	"github.com/concave-dev/labform/cmd/labctl/commands"
	"github.com/concave-dev/labform/cmd/labctl/config"
	"github.com/concave-dev/labform/cmd/labctl/handlers"
)

func init() {
	rootCmd := commands.RootCmd

	rootCmd.Version = config.Version
	rootCmd.PersistentPreRunE = config.ValidateGlobalFlags

	commands.SetupCommands()

	commands.SetupGlobalFlags(rootCmd, &config.Global.APIAddr, &config.Global.LogLevel,
		&config.Global.Timeout, &config.Global.Verbose, &config.Global.Output, config.DefaultAPIAddr)

	fieldsCmd, submitCmd, solveCmd := commands.GetFormCommands()
	commands.SetupFormFlags(fieldsCmd, submitCmd, solveCmd,
		&config.Form.PageURL, &config.Form.PageFile, &config.Form.LabID,
		&config.Submit.Set, &config.Submit.Async, &config.Submit.NoPage,
		&config.Solve.N, &config.Solve.K, &config.Solve.T, config.DefaultLabID)

	fieldsCmd.RunE = handlers.HandleFields
	submitCmd.RunE = handlers.HandleSubmit
	solveCmd.RunE = handlers.HandleSolve
}

func main() {
	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
