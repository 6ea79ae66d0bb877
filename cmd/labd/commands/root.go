package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/concave-dev/labform/cmd/labd/config"
	"github.com/concave-dev/labform/cmd/labd/daemon"
	"github.com/concave-dev/labform/cmd/labd/utils"
	"github.com/concave-dev/labform/internal/logging"
	"github.com/concave-dev/labform/internal/version"
	"github.com/spf13/cobra"
)

// Log file handle kept open for the daemon's lifetime
var logFileHandle *os.File

// CleanupLogFile closes the log file handle if it exists
func CleanupLogFile() {
	if logFileHandle != nil {
		if err := logFileHandle.Close(); err != nil {
			// The logger may point at this file, so report on stderr directly
			fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
		}
		logFileHandle = nil
	}
}

// RootCmd is the labd root command
var RootCmd = &cobra.Command{
	Use:   "labd",
	Short: "Lab server: serves lab pages and solves submitted forms",
	Long: `labd serves the lab pages and the /labs endpoint their forms post to.

Each POST /labs?lab_id=N runs the solver script with N as its argument and
the request body on stdin; the script's output is the response.`,
	Version:      version.LabdVersion,
	SilenceUsage: true,
	Example: `  # Serve the bundled labs with the default solver
  labd

  # Listen on all interfaces with a custom solver
  labd --addr=0.0.0.0:8080 --script=/opt/labs/labs.py

  # Load settings from a file, overriding the log level
  labd --config=labd.yaml --log-level=DEBUG`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		utils.DisplayLogo(cmd.OutOrStdout(), version.LabdVersion)
	},
	PreRunE: func(cmd *cobra.Command, args []string) error {
		CheckExplicitFlags(cmd)

		// Apply the flag level first so config loading honors it
		logging.SetLevel(config.Global.LogLevel)
		if err := config.InitializeConfig(); err != nil {
			return err
		}

		if config.Global.LogFile != "" {
			if err := openLogFile(config.Global.LogFile); err != nil {
				return err
			}
		}

		logging.SetLevel(config.Global.LogLevel)
		if err := config.ValidateConfig(); err != nil {
			CleanupLogFile()
			return err
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		defer CleanupLogFile()
		return daemon.Run()
	},
}

// openLogFile redirects all logging to path, creating parent directories
func openLogFile(path string) error {
	logDir := filepath.Dir(path)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory %s: %w", logDir, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	logFileHandle = f
	logging.SetOutput(f)
	return nil
}

// SetupCommands initializes all commands and their relationships
func SetupCommands() {
	SetupFlags(RootCmd)
}
