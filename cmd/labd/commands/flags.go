// Package commands contains Cobra CLI command definitions for labd.
package commands

import (
	"github.com/concave-dev/labform/cmd/labd/config"
	"github.com/spf13/cobra"
)

// SetupFlags configures all command line flags for the daemon
func SetupFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&config.Global.ConfigFile, "config", config.StdinDefaults,
		"YAML configuration file (\"-\" uses built-in defaults)")

	cmd.Flags().StringVar(&config.Global.Addr, "addr", config.DefaultAddr,
		"Address and port to listen on (e.g., 0.0.0.0:8080)")
	cmd.Flags().StringVar(&config.Global.Script, "script", config.DefaultScript,
		"Solver script run with the lab id as argument and the form JSON on stdin")
	cmd.Flags().StringVar(&config.Global.LabsDir, "labs-dir", "",
		"Directory with labN.html/labN.js files overriding the bundled labs")

	cmd.Flags().StringVar(&config.Global.LogLevel, "log-level", config.DefaultLogLevel,
		"Log level: DEBUG, INFO, WARN, ERROR")
	cmd.Flags().StringVar(&config.Global.LogFile, "log-file", "",
		"Append logs to this file instead of stderr")
}

// CheckExplicitFlags checks if flags were explicitly set by the user
func CheckExplicitFlags(cmd *cobra.Command) {
	config.Global.SetExplicitlySet(config.AddrField, cmd.Flags().Changed("addr"))
	config.Global.SetExplicitlySet(config.ScriptField, cmd.Flags().Changed("script"))
	config.Global.SetExplicitlySet(config.LabsDirField, cmd.Flags().Changed("labs-dir"))
	config.Global.SetExplicitlySet(config.LogLevelField, cmd.Flags().Changed("log-level"))
	config.Global.SetExplicitlySet(config.LogFileField, cmd.Flags().Changed("log-file"))
}
