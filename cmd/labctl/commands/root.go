// Package commands defines the labctl command tree.
//
//   - fields: show the labeled inputs of a lab page and the resulting payload
//   - submit: post a page's form to labd
//   - solve: post typed grid parameters to labd
package commands

import (
	"github.com/spf13/cobra"
)

// RootCmd is the labctl root command
var RootCmd = &cobra.Command{
	Use:   "labctl",
	Short: "Submit lab forms to a lab server",
	Long: `labctl reads the labeled inputs of a lab page, turns them into the JSON
payload the page's Solve button sends, and posts it to labd.`,
	SilenceUsage: true,
	Example: `  # Show what lab 5's form would send
  labctl fields

  # Submit lab 5 with one value changed
  labctl submit --set N=20

  # Submit a saved page to another server
  labctl --api=10.0.0.5:8080 submit --file=lab5.html

  # Send typed parameters and print JSON
  labctl -o json solve --n=10 --k=100 --t=1`,
}

// SetupCommands initializes all commands and their relationships
func SetupCommands() {
	RootCmd.AddCommand(fieldsCmd)
	RootCmd.AddCommand(submitCmd)
	RootCmd.AddCommand(solveCmd)
}

// SetupGlobalFlags configures all global persistent flags
func SetupGlobalFlags(rootCmd *cobra.Command, apiAddrPtr *string, logLevelPtr *string,
	timeoutPtr *int, verbosePtr *bool, outputPtr *string, defaultAPIAddr string) {
	rootCmd.PersistentFlags().StringVar(apiAddrPtr, "api", defaultAPIAddr,
		"Lab server address (host:port)")
	rootCmd.PersistentFlags().StringVar(logLevelPtr, "log-level", "ERROR",
		"Log level: DEBUG, INFO, WARN, ERROR")
	rootCmd.PersistentFlags().IntVar(timeoutPtr, "timeout", 0,
		"Request timeout in seconds (0 waits indefinitely)")
	rootCmd.PersistentFlags().BoolVarP(verbosePtr, "verbose", "v", false,
		"Show verbose output")
	rootCmd.PersistentFlags().StringVarP(outputPtr, "output", "o", "table",
		"Output format: table, json")
}
