package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/concave-dev/labform/cmd/labctl/config"
	"github.com/concave-dev/labform/internal/api"
	"github.com/concave-dev/labform/internal/solver"
	"github.com/concave-dev/labform/internal/submit"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
)

// recordingSolver remembers every payload and answers as finished
type recordingSolver struct {
	mu       sync.Mutex
	payloads []string
	fail     bool
}

func (r *recordingSolver) Run(ctx context.Context, labID string, stdin io.Reader, stdout, stderr io.Writer) error {
	body, err := io.ReadAll(stdin)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.payloads = append(r.payloads, string(body))
	r.mu.Unlock()

	if r.fail {
		io.WriteString(stderr, "solver crashed")
		return errors.New("exit status 1")
	}
	io.WriteString(stdout, `{"IsFinished":true,"Progress":100}`)
	return nil
}

func (r *recordingSolver) last(t *testing.T) string {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.payloads) == 0 {
		t.Fatal("solver received no payload")
	}
	return r.payloads[len(r.payloads)-1]
}

// startLabServer runs labd's server on a free port and points labctl at it
func startLabServer(t *testing.T, runner solver.Runner) {
	t.Helper()

	cfg := api.DefaultConfig()
	cfg.BindPort = 0
	cfg.Runner = runner

	server, err := api.NewServer(cfg)
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	if err := server.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	t.Cleanup(func() { server.Shutdown(context.Background()) })

	savedGlobal, savedForm, savedSubmit, savedSolve := config.Global, config.Form, config.Submit, config.Solve
	t.Cleanup(func() {
		config.Global = savedGlobal
		config.Form = savedForm
		config.Submit = savedSubmit
		config.Solve = savedSolve
	})

	config.Global.APIAddr = server.Addr()
	config.Global.LogLevel = "ERROR"
	config.Global.Output = "json"
	config.Global.Timeout = 5
	config.Form.LabID = 5
	config.Form.PageURL = ""
	config.Form.PageFile = ""
	config.Submit.Set = nil
	config.Submit.Async = false
	config.Submit.NoPage = false
}

func newCommand(out *bytes.Buffer) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetOut(out)
	cmd.SetContext(context.Background())
	return cmd
}

func TestHandleFields_FromServer(t *testing.T) {
	startLabServer(t, &recordingSolver{})

	var out bytes.Buffer
	if err := HandleFields(newCommand(&out), nil); err != nil {
		t.Fatalf("HandleFields() error = %v", err)
	}

	var got struct {
		Payload map[string]string `json:"payload"`
	}
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}

	want := map[string]string{"N": "10", "K": "100", "T": "1", "equation_type": "implicit"}
	if diff := cmp.Diff(want, got.Payload); diff != "" {
		t.Errorf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestHandleSubmit_OverridesPageValues(t *testing.T) {
	runner := &recordingSolver{}
	startLabServer(t, runner)
	config.Submit.Set = []string{"N=20"}

	var out bytes.Buffer
	if err := HandleSubmit(newCommand(&out), nil); err != nil {
		t.Fatalf("HandleSubmit() error = %v", err)
	}

	want := `{"N":"20","K":"100","T":"1","equation_type":"implicit"}`
	if got := runner.last(t); got != want {
		t.Errorf("solver payload = %s, want %s", got, want)
	}
	if !strings.Contains(out.String(), `"finished": true`) {
		t.Errorf("output does not report completion:\n%s", out.String())
	}
}

func TestHandleSubmit_SetOnly(t *testing.T) {
	runner := &recordingSolver{}
	startLabServer(t, runner)
	config.Submit.Set = []string{"x=3", "y=ihsan's typo"}
	config.Submit.NoPage = true

	var out bytes.Buffer
	if err := HandleSubmit(newCommand(&out), nil); err != nil {
		t.Fatalf("HandleSubmit() error = %v", err)
	}

	want := `{"x":"3","y":"ihsan's typo","equation_type":"implicit"}`
	if got := runner.last(t); got != want {
		t.Errorf("solver payload = %s, want %s", got, want)
	}
}

func TestHandleSubmit_FileAsync(t *testing.T) {
	runner := &recordingSolver{}
	startLabServer(t, runner)

	path := filepath.Join(t.TempDir(), "lab.html")
	page := `<form><label>a <input value="1"></label><label>a <input value="2"></label></form>`
	if err := os.WriteFile(path, []byte(page), 0644); err != nil {
		t.Fatal(err)
	}
	config.Form.PageFile = path
	config.Submit.Async = true

	var out bytes.Buffer
	if err := HandleSubmit(newCommand(&out), nil); err != nil {
		t.Fatalf("HandleSubmit() error = %v", err)
	}

	if got, want := runner.last(t), `{"a":"2","equation_type":"implicit"}`; got != want {
		t.Errorf("solver payload = %s, want %s", got, want)
	}
}

func TestHandleSubmit_ServerError(t *testing.T) {
	startLabServer(t, &recordingSolver{fail: true})
	config.Submit.Set = []string{"N=1"}
	config.Submit.NoPage = true

	var out bytes.Buffer
	err := HandleSubmit(newCommand(&out), nil)

	var statusErr *submit.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("HandleSubmit() error = %v, want *submit.StatusError", err)
	}
	if statusErr.StatusCode != 500 {
		t.Errorf("status = %d, want 500", statusErr.StatusCode)
	}
	if !strings.Contains(out.String(), "solver crashed") {
		t.Errorf("output does not carry the solver error:\n%s", out.String())
	}
}

func TestHandleSolve(t *testing.T) {
	runner := &recordingSolver{}
	startLabServer(t, runner)
	config.Solve.N, config.Solve.K, config.Solve.T = "10", "100", "0.5"

	var out bytes.Buffer
	if err := HandleSolve(newCommand(&out), nil); err != nil {
		t.Fatalf("HandleSolve() error = %v", err)
	}

	want := `{"N":"10","K":"100","T":"0.5","equation_type":"implicit"}`
	if got := runner.last(t); got != want {
		t.Errorf("solver payload = %s, want %s", got, want)
	}
}

func TestHandleSolve_InvalidParams(t *testing.T) {
	runner := &recordingSolver{}
	startLabServer(t, runner)
	config.Solve.N, config.Solve.K, config.Solve.T = "ten", "100", "1"

	var out bytes.Buffer
	if err := HandleSolve(newCommand(&out), nil); err == nil {
		t.Fatal("HandleSolve() with a non-numeric N should fail")
	}
	if len(runner.payloads) != 0 {
		t.Error("invalid parameters reached the solver")
	}
}
