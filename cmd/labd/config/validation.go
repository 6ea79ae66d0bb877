package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/concave-dev/labform/internal/logging"
	"github.com/concave-dev/labform/internal/validate"
)

// InitializeConfig loads the config file and applies environment overrides.
func InitializeConfig() error {
	file, err := LoadFile(Global.ConfigFile)
	if err != nil {
		return err
	}
	Global.Merge(file)

	if os.Getenv("DEBUG") == "true" {
		Global.LogLevel = "DEBUG"
		logging.Info("DEBUG environment variable detected, setting log level to DEBUG")
	}

	return nil
}

// ValidateConfig checks and normalizes Global before the daemon starts.
func ValidateConfig() error {
	Global.LogLevel = strings.ToUpper(Global.LogLevel)
	if err := logging.ValidateLogLevel(Global.LogLevel); err != nil {
		return err
	}

	netAddr, err := validate.ParseBindAddress(Global.Addr)
	if err != nil {
		logging.Error("Invalid listen address '%s': %v", Global.Addr, err)
		return fmt.Errorf("invalid listen address: %w", err)
	}
	if netAddr.Host == "" {
		netAddr.Host = "0.0.0.0"
	}
	Global.BindAddr = netAddr.Host
	Global.BindPort = netAddr.Port

	if err := validate.ValidateRequiredString(Global.Script, "script"); err != nil {
		return err
	}
	if _, err := os.Stat(Global.Script); err != nil {
		// Not fatal: the script may be installed after startup
		logging.Warn("Solver script %s is not accessible: %v", Global.Script, err)
	}

	if Global.LabsDir != "" {
		info, err := os.Stat(Global.LabsDir)
		if err != nil {
			return fmt.Errorf("invalid labs directory: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("labs directory %s is not a directory", Global.LabsDir)
		}
	}

	if err := validate.ValidateNonNegativeTimeout(Global.ReadTimeout, "read timeout"); err != nil {
		return err
	}
	return validate.ValidateNonNegativeTimeout(Global.WriteTimeout, "write timeout")
}
