package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/concave-dev/labform/internal/labs"
	"github.com/concave-dev/labform/internal/solver"
	"github.com/gin-gonic/gin"
)

// echoRunner answers with the lab id and the payload it was given
func echoRunner(gotLab *string) solver.Runner {
	return solver.RunnerFunc(func(ctx context.Context, labID string, stdin io.Reader, stdout, stderr io.Writer) error {
		*gotLab = labID
		body, err := io.ReadAll(stdin)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, `{"lab":%q,"input":%s}`, labID, body)
		return nil
	})
}

func newSolveRouter(runner solver.Runner) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Any("/labs", HandleSolve(runner))
	return router
}

func TestHandleSolve_Success(t *testing.T) {
	var gotLab string
	router := newSolveRouter(echoRunner(&gotLab))

	body := `{"N":"10","equation_type":"implicit"}`
	req := httptest.NewRequest(http.MethodPost, "/labs?lab_id=5", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %q)", w.Code, w.Body.String())
	}
	if gotLab != "5" {
		t.Errorf("runner lab = %q, want 5", gotLab)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("Content-Type = %q", ct)
	}

	var reply struct {
		Lab   string            `json:"lab"`
		Input map[string]string `json:"input"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &reply); err != nil {
		t.Fatalf("reply is not JSON: %v (%q)", err, w.Body.String())
	}
	if reply.Input["equation_type"] != "implicit" || reply.Input["N"] != "10" {
		t.Errorf("runner saw input %v", reply.Input)
	}
}

func TestHandleSolve_FormEncodedLabID(t *testing.T) {
	var gotLab string
	router := newSolveRouter(echoRunner(&gotLab))

	req := httptest.NewRequest(http.MethodPost, "/labs", strings.NewReader("lab_id=7"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %q)", w.Code, w.Body.String())
	}
	if gotLab != "7" {
		t.Errorf("runner lab = %q, want 7", gotLab)
	}
}

func TestHandleSolve_BadLabID(t *testing.T) {
	called := false
	router := newSolveRouter(solver.RunnerFunc(func(context.Context, string, io.Reader, io.Writer, io.Writer) error {
		called = true
		return nil
	}))

	for _, target := range []string{"/labs", "/labs?lab_id=", "/labs?lab_id=five"} {
		t.Run(target, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(`{}`))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}

	if called {
		t.Error("runner invoked for an invalid lab id")
	}
}

func TestHandleSolve_RunnerFailure(t *testing.T) {
	router := newSolveRouter(solver.RunnerFunc(func(ctx context.Context, labID string, stdin io.Reader, stdout, stderr io.Writer) error {
		io.WriteString(stdout, "partial")
		io.WriteString(stderr, "Traceback: KeyError 'N'\n")
		return errors.New("exit status 1")
	}))

	req := httptest.NewRequest(http.MethodPost, "/labs?lab_id=5", strings.NewReader(`{}`))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if got, want := w.Body.String(), "Traceback: KeyError 'N'\npartial"; got != want {
		t.Errorf("body = %q, want %q", got, want)
	}
}

func TestHandleLabPage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store, err := labs.NewStore("")
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	router := gin.New()
	router.GET("/labs/:lab", HandleLabPage(store))

	tests := []struct {
		path       string
		wantStatus int
	}{
		{"/labs/lab5", http.StatusOK},
		{"/labs/lab42", http.StatusNotFound},
		{"/labs/lab", http.StatusNotFound},
		{"/labs/lab-1", http.StatusNotFound},
		{"/labs/index", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK && !strings.Contains(w.Body.String(), "<label>") {
				t.Error("lab page has no labeled inputs")
			}
		})
	}
}

func TestHandleNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.NoRoute(HandleNotFound())

	req := httptest.NewRequest(http.MethodGet, "/nowhere", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
