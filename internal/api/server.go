package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/concave-dev/labform/internal/labs"
	"github.com/concave-dev/labform/internal/logging"
	"github.com/concave-dev/labform/internal/netutil"
	"github.com/concave-dev/labform/internal/solver"
	"github.com/gin-gonic/gin"
)

// Server is the lab HTTP server.
type Server struct {
	runner     solver.Runner
	store      *labs.Store
	solverName string
	startTime  time.Time

	router     *gin.Engine
	httpServer *http.Server

	mu       sync.Mutex
	listener net.Listener
}

// NewServer validates config, loads the lab pages and builds the router.
func NewServer(config *Config) (*Server, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid API config: %w", err)
	}

	store, err := labs.NewStore(config.LabsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load labs: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)

	// Route gin's own output through our logger unless a CLI already did
	if !logging.IsConfiguredByCLI() {
		gin.DefaultWriter = logging.NewLevelWriter("DEBUG", "gin")
		gin.DefaultErrorWriter = logging.NewLevelWriter("ERROR", "gin")
	}

	s := &Server{
		runner:     config.runner(),
		store:      store,
		solverName: config.ScriptPath,
		startTime:  time.Now(),
	}
	if config.Runner != nil {
		s.solverName = ""
	}

	s.router = gin.New()
	s.router.Use(s.requestIDMiddleware())
	s.router.Use(s.loggingMiddleware())
	s.router.Use(s.corsMiddleware())
	s.router.Use(gin.Recovery())
	s.setupRoutes(s.router)

	s.httpServer = &http.Server{
		Addr:         net.JoinHostPort(config.BindAddr, strconv.Itoa(config.BindPort)),
		Handler:      s.router,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start binds the listener and serves in the background. Binding errors
// are returned immediately.
func (s *Server) Start() error {
	logging.Info("Starting lab server on %s", s.httpServer.Addr)

	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		if netutil.IsAddressInUseError(err) {
			logging.Error("Address %s is already in use, is another labd running?", s.httpServer.Addr)
		}
		return fmt.Errorf("failed to bind to %s: %w", s.httpServer.Addr, err)
	}

	s.mu.Lock()
	s.listener = listener
	s.mu.Unlock()

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("HTTP server failed: %v", err)
		}
	}()

	logging.Success("Lab server listening on %s", listener.Addr())
	return nil
}

// Addr returns the bound address, or the configured one before Start.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.httpServer.Addr
}

// Shutdown stops accepting requests and waits for running ones.
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down lab server...")
	return s.httpServer.Shutdown(ctx)
}
