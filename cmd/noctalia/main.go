package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/noctalia-dev/noctalia-cli/internal/domain"
	"github.com/noctalia-dev/noctalia-cli/internal/infrastructure/cli"
)

func main() {
	ctx := context.Background()
	opts := cli.Options{Verbose: isVerbose()}

	root, err := cli.NewRootCmd(ctx, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps errors to the CLI's exit contract: 2 for the conflicting
// source flags, a delegated child's own code when one failed, 1 otherwise.
func exitCode(err error) int {
	if errors.Is(err, domain.ErrConflictingSources) {
		return 2
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code > 0 {
			return code
		}
	}
	return 1
}

func isVerbose() bool {
	return strings.EqualFold(os.Getenv("NOCTALIA_DEBUG"), "1") || strings.EqualFold(os.Getenv("NOCTALIA_DEBUG"), "true")
}
