// Package api provides the HTTP server labs are served and solved from.
//
// The server renders lab pages, forwards submitted forms to the solver
// and answers with whatever the solver printed.
package api

import (
	"fmt"
	"time"

	"github.com/concave-dev/labform/internal/config"
	"github.com/concave-dev/labform/internal/solver"
	"github.com/concave-dev/labform/internal/validate"
)

// Config holds the parameters of the lab server.
type Config struct {
	BindAddr     string        // HTTP bind address (e.g. "127.0.0.1")
	BindPort     int           // HTTP bind port, 0 picks a free one
	ScriptPath   string        // solver script run by the default runner
	LabsDir      string        // optional directory overriding embedded lab pages
	ReadTimeout  time.Duration // 0 disables
	WriteTimeout time.Duration // 0 disables; solvers may run long
	Runner       solver.Runner // overrides the script runner when set
}

// DefaultConfig returns a loopback configuration running the bundled script.
func DefaultConfig() *Config {
	addr, _ := validate.ParseBindAddress(config.DefaultServerAddr)

	return &Config{
		BindAddr:    addr.Host,
		BindPort:    addr.Port,
		ScriptPath:  config.DefaultScriptPath,
		ReadTimeout: 15 * time.Second,
	}
}

// Validate checks the configuration before the server is built.
func (c *Config) Validate() error {
	if err := validate.ValidateRequiredString(c.BindAddr, "bind address"); err != nil {
		return err
	}
	if err := validate.ValidateField(c.BindAddr, "ip"); err != nil {
		return fmt.Errorf("bind address %q is not an IP address", c.BindAddr)
	}
	if c.BindPort != 0 {
		if err := validate.ValidatePortRange(c.BindPort); err != nil {
			return fmt.Errorf("bind port validation failed: %w", err)
		}
	}
	if c.Runner == nil {
		if err := validate.ValidateRequiredString(c.ScriptPath, "script path"); err != nil {
			return err
		}
	}
	if err := validate.ValidateNonNegativeTimeout(c.ReadTimeout, "read timeout"); err != nil {
		return err
	}
	if err := validate.ValidateNonNegativeTimeout(c.WriteTimeout, "write timeout"); err != nil {
		return err
	}

	return nil
}

// runner returns the configured runner or one executing ScriptPath.
func (c *Config) runner() solver.Runner {
	if c.Runner != nil {
		return c.Runner
	}
	return solver.ExecRunner{ScriptPath: c.ScriptPath}
}
