package handlers

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/concave-dev/labform/internal/config"
	"github.com/concave-dev/labform/internal/labs"
	"github.com/concave-dev/labform/internal/logging"
	"github.com/concave-dev/labform/internal/solver"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of client errors.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// HandleSolve runs the solver for the lab named by the lab_id parameter,
// streaming the request body to its stdin. lab_id is read from the query
// or, for form-encoded requests, the body, which then leaves stdin empty.
// The solver's stdout
// is the reply. When the solver fails the reply is a 500 carrying its
// stderr followed by whatever it printed to stdout.
func HandleSolve(runner solver.Runner) gin.HandlerFunc {
	return func(c *gin.Context) {
		labID := c.Request.FormValue(config.LabIDParam)

		if _, err := strconv.Atoi(labID); err != nil {
			logging.Error("Failed to get lab ID (raw %q): %v", labID, err)
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Status:  "error",
				Message: "lab_id must be an integer",
			})
			return
		}

		var payload bytes.Buffer
		stdin := io.TeeReader(c.Request.Body, &payload)

		var stdout, stderr bytes.Buffer
		err := runner.Run(c.Request.Context(), labID, stdin, &stdout, &stderr)
		logging.Debug("Lab %s payload: %s", labID, strings.TrimSpace(payload.String()))

		if err != nil {
			logging.Error("Failed to run lab %s: %v", labID, err)
			c.Status(http.StatusInternalServerError)
			_, _ = stderr.WriteTo(c.Writer)
			_, _ = stdout.WriteTo(c.Writer)
			return
		}

		c.Data(http.StatusOK, "application/json", stdout.Bytes())
	}
}

// HandleLabPage renders the page of the lab named by the :lab path
// parameter, e.g. /labs/lab5.
func HandleLabPage(store *labs.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := strings.CutPrefix(c.Param("lab"), "lab")
		id, err := strconv.Atoi(raw)
		if !ok || err != nil || id <= 0 {
			c.Status(http.StatusNotFound)
			return
		}

		var page bytes.Buffer
		if err := store.Render(&page, id); err != nil {
			if errors.Is(err, labs.ErrLabNotFound) {
				logging.Warn("Lab %d page requested but not available: %v", id, err)
				c.Status(http.StatusNotFound)
				return
			}
			logging.Error("Failed to render lab %d: %v", id, err)
			c.Status(http.StatusInternalServerError)
			return
		}

		c.Data(http.StatusOK, "text/html; charset=utf-8", page.Bytes())
	}
}

// HandleNotFound logs and rejects requests no route matched.
func HandleNotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		logging.Info("Not found: %s %s", c.Request.Method, c.Request.URL)
		c.JSON(http.StatusNotFound, ErrorResponse{
			Status:  "error",
			Message: "not found",
		})
	}
}
