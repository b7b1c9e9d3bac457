package cli

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/noctalia-dev/noctalia-cli/internal/app"
	"github.com/noctalia-dev/noctalia-cli/internal/domain"
	"github.com/noctalia-dev/noctalia-cli/internal/ports"
)

func newIPCCommand(container *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ipc",
		Short: "IPC commands for noctalia-shell",
		Long:  "Send IPC commands to the running noctalia-shell instance.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newIPCCallCommand(container))
	cmd.AddCommand(newIPCShowCommand(container))
	return cmd
}

func newIPCCallCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "call <target> <function>",
		Short: "Send an IPC call to noctalia-shell",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			container.UI.Section("Noctalia IPC Call")
			if err := checkIPCPrerequisites(cmd.Context(), container); err != nil {
				return err
			}

			container.UI.Step(fmt.Sprintf("Sending IPC call: %s %s", args[0], args[1]))
			return container.Runner.Run(cmd.Context(), "qs", "-c", "noctalia-shell", "ipc", "call", args[0], args[1])
		},
	}
}

func newIPCShowCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show available IPC targets and functions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			container.UI.Section("Noctalia IPC Show")
			if err := checkIPCPrerequisites(cmd.Context(), container); err != nil {
				return err
			}

			container.UI.Step("Fetching available IPC targets and functions")
			out, err := container.Runner.Output(cmd.Context(), "qs", "-c", "noctalia-shell", "ipc", "show")
			if err != nil {
				return fmt.Errorf("get IPC information: %w", err)
			}

			text := strings.TrimSpace(string(out))
			if text == "" {
				container.UI.Info("No IPC targets found")
				return nil
			}

			container.UI.Info("Available IPC Targets and Functions:")
			fmt.Fprintln(cmd.OutOrStdout())
			renderShowOutput(cmd, container.UI, text)
			return nil
		},
	}
}

func checkIPCPrerequisites(ctx context.Context, container *app.Container) error {
	if !container.Store.InstalledWithEvidence(domain.ComponentShell) {
		return domain.ErrNotInstalled
	}
	if !shellRunning(ctx, container.Runner) {
		return domain.ErrNotRunning
	}
	return nil
}

// shellRunning detects a live quickshell process loaded with the noctalia
// configuration. pgrep exiting non-zero means no match; pgrep being
// unavailable falls back to scanning ps output.
func shellRunning(ctx context.Context, runner ports.CommandRunner) bool {
	_, err := runner.Output(ctx, "pgrep", "-f", "qs.*noctalia-shell")
	if err == nil {
		return true
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return false
	}

	out, err := runner.Output(ctx, "ps", "-eo", "cmd")
	if err != nil {
		return false
	}
	for _, line := range strings.Split(string(out), "\n") {
		if strings.Contains(line, "qs") && strings.Contains(line, "noctalia-shell") {
			return true
		}
	}
	return false
}

// renderShowOutput regroups quickshell's raw "target"/"function" dump into
// per-target bullet lists.
func renderShowOutput(cmd *cobra.Command, ui ports.UI, raw string) {
	w := cmd.OutOrStdout()
	flush := func(target string, functions []string) {
		if target == "" {
			return
		}
		ui.Info(target)
		for _, fn := range functions {
			fmt.Fprintf(w, "  • %s\n", fn)
		}
		fmt.Fprintln(w)
	}

	var (
		target    string
		functions []string
	)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
		case strings.HasPrefix(line, "target "):
			flush(target, functions)
			target = strings.TrimPrefix(line, "target ")
			functions = functions[:0]
		case strings.HasPrefix(line, "function "):
			functions = append(functions, formatFunctionSignature(strings.TrimPrefix(line, "function ")))
		}
	}
	flush(target, functions)
}

// formatFunctionSignature reduces a typed signature like
// "set(path: string, screen: string): void" to "set(path, screen)".
// Parameterless functions render as the bare name.
func formatFunctionSignature(sig string) string {
	parenStart := strings.Index(sig, "(")
	if parenStart < 0 {
		return sig
	}
	name := sig[:parenStart]
	rest := sig[parenStart+1:]

	parenEnd := strings.Index(rest, ")")
	if parenEnd < 0 {
		return name
	}

	var names []string
	for _, param := range strings.Split(rest[:parenEnd], ",") {
		param = strings.TrimSpace(param)
		if colon := strings.Index(param, ":"); colon >= 0 {
			param = strings.TrimSpace(param[:colon])
		}
		if param != "" {
			names = append(names, param)
		}
	}
	if len(names) == 0 {
		return name
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(names, ", "))
}
