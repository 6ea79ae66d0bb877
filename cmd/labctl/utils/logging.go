// Package utils provides utility functions for the labctl CLI.
package utils

import (
	"os"
	"strings"

	"github.com/concave-dev/labform/cmd/labctl/config"
	"github.com/concave-dev/labform/internal/logging"
)

// SetupLogging applies --log-level, or DEBUG when DEBUG=true is set in the
// environment. --verbose lowers the level to INFO so progress is shown.
// ERROR suppresses everything else so only command output remains.
func SetupLogging() {
	switch {
	case os.Getenv("DEBUG") == "true":
		logging.RestoreOutput()
		logging.SetLevel("DEBUG")
	case config.Global.Verbose && config.Global.LogLevel != "DEBUG":
		logging.SetLevel("INFO")
	case strings.EqualFold(config.Global.LogLevel, "ERROR"):
		logging.SuppressOutput()
	default:
		logging.SetLevel(config.Global.LogLevel)
	}
}
