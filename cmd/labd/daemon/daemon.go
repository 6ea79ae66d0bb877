// Package daemon runs the lab server until it is signalled to stop.
package daemon

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/concave-dev/labform/cmd/labd/config"
	"github.com/concave-dev/labform/internal/api"
	"github.com/concave-dev/labform/internal/logging"
	"github.com/concave-dev/labform/internal/version"
)

// ShutdownTimeout bounds how long running solves may finish after a signal
const ShutdownTimeout = 10 * time.Second

// buildAPIConfig converts the daemon config to the server config
func buildAPIConfig() *api.Config {
	apiConfig := api.DefaultConfig()

	apiConfig.BindAddr = config.Global.BindAddr
	apiConfig.BindPort = config.Global.BindPort
	apiConfig.ScriptPath = config.Global.Script
	apiConfig.LabsDir = config.Global.LabsDir
	apiConfig.ReadTimeout = config.Global.ReadTimeout
	apiConfig.WriteTimeout = config.Global.WriteTimeout

	return apiConfig
}

// Run starts the server and blocks until SIGINT or SIGTERM.
func Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return RunContext(ctx)
}

// RunContext starts the server and blocks until ctx is done, then shuts
// the server down gracefully.
func RunContext(ctx context.Context) error {
	logging.Info("Starting labd v%s", version.LabdVersion)

	// http.Server reports accept and TLS errors through the standard logger
	logging.RedirectStandardLog(logging.NewLevelWriter("ERROR", "http"))

	server, err := api.NewServer(buildAPIConfig())
	if err != nil {
		return fmt.Errorf("failed to create lab server: %w", err)
	}
	if err := server.Start(); err != nil {
		return fmt.Errorf("failed to start lab server: %w", err)
	}

	logging.Info("  - Lab pages: http://%s/labs/lab<N>", server.Addr())
	logging.Info("  - Solver: %s", config.Global.Script)
	logging.Info("Daemon running... Press Ctrl+C to shutdown")

	<-ctx.Done()
	logging.Info("Initiating graceful shutdown...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error("Error shutting down lab server: %v", err)
		return fmt.Errorf("shutdown: %w", err)
	}

	logging.Success("labd shutdown completed")
	return nil
}
