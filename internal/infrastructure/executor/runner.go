// Package executor invokes external processes for the CLI: package
// managers, the privilege helper, and the shell's control plane.
package executor

import (
	"context"
	"os"
	"os/exec"

	"github.com/noctalia-dev/noctalia-cli/internal/ports"
)

// Runner executes commands on the host, blocking until completion.
type Runner struct{}

// NewRunner builds a runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes the command with the controlling terminal inherited, so
// interactive subprocesses (sudo password prompts, package manager
// confirmations) reach the user directly.
func (r *Runner) Run(ctx context.Context, name string, args ...string) error {
	return r.RunEnv(ctx, nil, name, args...)
}

// RunEnv is Run with extra environment variables appended to the current
// environment.
func (r *Runner) RunEnv(ctx context.Context, extraEnv []string, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if len(extraEnv) > 0 {
		cmd.Env = append(os.Environ(), extraEnv...)
	}
	return cmd.Run()
}

// Output executes the command and captures stdout. A non-zero exit is
// reported as an error, which is how callers query installed state.
func (r *Runner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

var _ ports.CommandRunner = (*Runner)(nil)
