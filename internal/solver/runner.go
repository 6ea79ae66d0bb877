// Package solver runs a lab's numerical solver as an external process.
//
// The solver script receives the lab id as its only argument, reads the
// submitted JSON payload on stdin and prints its JSON answer on stdout.
package solver

import (
	"context"
	"fmt"
	"io"
	"os/exec"
)

// Runner executes the solver for one lab.
type Runner interface {
	Run(ctx context.Context, labID string, stdin io.Reader, stdout, stderr io.Writer) error
}

// ExecRunner runs ScriptPath as a child process. The process is killed
// when ctx is done, so a client hanging up stops the computation.
type ExecRunner struct {
	ScriptPath string
}

// Run starts the script and waits for it to exit.
func (r ExecRunner) Run(ctx context.Context, labID string, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, r.ScriptPath, labID)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("solver %s failed for lab %s: %w", r.ScriptPath, labID, err)
	}
	return nil
}

// RunnerFunc adapts a function to Runner.
type RunnerFunc func(ctx context.Context, labID string, stdin io.Reader, stdout, stderr io.Writer) error

// Run calls f.
func (f RunnerFunc) Run(ctx context.Context, labID string, stdin io.Reader, stdout, stderr io.Writer) error {
	return f(ctx, labID, stdin, stdout, stderr)
}
