// Package systemd installs the user service unit that launches the shell
// at login.
package systemd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/noctalia-dev/noctalia-cli/internal/domain"
	"github.com/noctalia-dev/noctalia-cli/internal/infrastructure/archive"
	"github.com/noctalia-dev/noctalia-cli/internal/pkg/paths"
	"github.com/noctalia-dev/noctalia-cli/internal/ports"
)

const (
	unitName = "noctalia.service"

	// unitDir is the global user-unit directory the shipped unit is copied
	// into. Writing there requires privilege elevation.
	unitDir = "/usr/lib/systemd/user"
)

// unitRelPath is where the shell ships its unit file inside the
// installation tree.
var unitRelPath = filepath.Join("Assets", "Services", "systemd", unitName)

// Installer copies the shipped unit into the systemd user-unit directory
// and optionally enables and starts it.
type Installer struct {
	Runner   ports.CommandRunner
	Prompter ports.Prompter
	UI       ports.UI

	// SystemdMarker overrides the runtime-directory probe in tests.
	SystemdMarker string
}

// NewInstaller builds a service installer.
func NewInstaller(runner ports.CommandRunner, prompter ports.Prompter, ui ports.UI) *Installer {
	return &Installer{Runner: runner, Prompter: prompter, UI: ui, SystemdMarker: "/run/systemd/system"}
}

// Install places the unit file, reloads the user daemon, and walks the
// enable/start confirmations. It requires an existing shell installation
// and a systemd host.
func (in *Installer) Install(ctx context.Context) error {
	root, ok := paths.FindInstallRoot()
	if !ok {
		return domain.ErrNotInstalled
	}

	in.UI.Step("Checking if systemd is available")
	if !in.systemdAvailable(ctx) {
		return fmt.Errorf("systemd is not running on this system")
	}
	in.UI.Info("Systemd is available")

	source := filepath.Join(root, unitRelPath)
	if _, err := os.Stat(source); err != nil {
		return fmt.Errorf("service unit not found at %s: %w", source, err)
	}

	in.UI.Step("Installing systemd user service")
	in.UI.Info("This operation requires sudo permissions. You will be prompted for your password.")

	dest := filepath.Join(unitDir, unitName)
	cmd := fmt.Sprintf("mkdir -p %s && cp %s %s && chmod 644 %s",
		archive.ShellQuote(unitDir),
		archive.ShellQuote(source),
		archive.ShellQuote(dest),
		archive.ShellQuote(dest))
	if err := in.Runner.Run(ctx, "sudo", "sh", "-c", cmd); err != nil {
		return fmt.Errorf("install service unit: %w", err)
	}
	in.UI.Success("Service file installed successfully")

	in.UI.Step("Reloading systemd daemon")
	if err := in.Runner.Run(ctx, "systemctl", "--user", "daemon-reload"); err != nil {
		return fmt.Errorf("reload systemd user daemon: %w", err)
	}
	in.UI.Success("Systemd daemon reloaded")

	return in.offerActivation(ctx)
}

// systemdAvailable probes the runtime directory and falls back to asking
// systemctl itself.
func (in *Installer) systemdAvailable(ctx context.Context) bool {
	if _, err := os.Stat(in.SystemdMarker); err == nil {
		return true
	}
	_, err := in.Runner.Output(ctx, "systemctl", "--version")
	return err == nil
}

// offerActivation asks before enabling and starting. Without a terminal
// the unit is left installed but inactive.
func (in *Installer) offerActivation(ctx context.Context) error {
	if !in.Prompter.Enabled() {
		in.UI.Info("Enable it later with: systemctl --user enable --now " + unitName)
		return nil
	}

	enable, err := in.Prompter.Confirm("Would you like to enable the noctalia.service?", true)
	if err != nil || !enable {
		in.UI.Info("Service installed. You can enable it later with:")
		in.UI.Info("  systemctl --user enable " + unitName)
		return err
	}
	if err := in.Runner.Run(ctx, "systemctl", "--user", "enable", unitName); err != nil {
		return fmt.Errorf("enable service: %w", err)
	}
	in.UI.Success("Service enabled successfully")

	start, err := in.Prompter.Confirm("Would you like to start the service now?", true)
	if err != nil || !start {
		in.UI.Info("Start it later with: systemctl --user start " + unitName)
		return err
	}
	if err := in.Runner.Run(ctx, "systemctl", "--user", "start", unitName); err != nil {
		return fmt.Errorf("start service: %w", err)
	}
	in.UI.Success("Service started successfully")
	return nil
}
