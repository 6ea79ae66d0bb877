package api

import (
	"github.com/concave-dev/labform/internal/api/handlers"
	"github.com/concave-dev/labform/internal/config"
	"github.com/concave-dev/labform/internal/version"
	"github.com/gin-gonic/gin"
)

// Configures all routes
func (s *Server) setupRoutes(router *gin.Engine) {
	router.GET("/health", handlers.HandleHealth(version.LabdVersion, s.startTime, s.solverName))

	// The solver endpoint accepts any method, the page posts to it
	router.Any(config.LabsPath, handlers.HandleSolve(s.runner))
	router.GET(config.LabsPath+"/:lab", handlers.HandleLabPage(s.store))

	router.NoRoute(handlers.HandleNotFound())
}
