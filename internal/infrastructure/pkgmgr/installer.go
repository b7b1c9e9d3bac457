// Package pkgmgr resolves the shell's system dependencies onto the
// detected distribution family and drives that family's native package
// manager. Each family is an independent strategy behind a single
// Install entry point; the quirky branches (Fedora's COPR opt-in, Arch's
// AUR helper requirement) stay isolated in their own files.
package pkgmgr

import (
	"context"
	"fmt"

	"github.com/noctalia-dev/noctalia-cli/internal/domain"
	"github.com/noctalia-dev/noctalia-cli/internal/ports"
)

// Installer installs system dependencies via the distribution's native
// package manager.
type Installer struct {
	Runner   ports.CommandRunner
	Prompter ports.Prompter
	UI       ports.UI
	Logger   ports.Logger
}

// NewInstaller builds a package installer.
func NewInstaller(runner ports.CommandRunner, prompter ports.Prompter, ui ports.UI, log ports.Logger) *Installer {
	return &Installer{Runner: runner, Prompter: prompter, UI: ui, Logger: log}
}

// Install resolves the dependency mapping for the family and dispatches
// to its strategy. Any dependency without an installation path fails the
// whole operation; the shell is never installed with missing system
// dependencies.
func (i *Installer) Install(ctx context.Context, family domain.DistroFamily) error {
	mapping := Mapping(family)

	switch family {
	case domain.DistroArch:
		return i.installArch(ctx, mapping)
	case domain.DistroFedora:
		return i.installFedora(ctx, mapping)
	case domain.DistroDebian:
		return i.installDebian(ctx, mapping)
	case domain.DistroGentoo:
		return i.installGentoo(ctx, mapping)
	case domain.DistroVoid:
		return i.installVoid(ctx, mapping)
	default:
		i.UI.Error("Unknown Linux distribution detected.")
		i.UI.Info("Required packages for your distribution:")
		for _, dep := range Dependencies {
			i.UI.Info(fmt.Sprintf("  - %s", dep))
		}
		i.UI.Info("Please install these packages manually using your distribution's package manager.")
		return domain.ErrUnknownDistribution
	}
}

// partition splits the mapping into packages still to install and generic
// names with no native package, skipping anything installedFn reports as
// already present.
func (i *Installer) partition(ctx context.Context, mapping domain.PackageMapping, installedFn func(context.Context, string) bool) (toInstall, missing []string) {
	for _, candidate := range mapping {
		if !candidate.Available() {
			missing = append(missing, candidate.Generic)
			continue
		}
		if installedFn(ctx, candidate.Native) {
			i.UI.Info(fmt.Sprintf("%s is already installed", candidate.Generic))
			continue
		}
		toInstall = append(toInstall, candidate.Native)
	}
	return toInstall, missing
}

func (i *Installer) reportUnavailable(family domain.DistroFamily, missing []string, hint string) error {
	i.UI.Error(fmt.Sprintf("The following packages are not available in %s repositories:", family.DisplayName()))
	for _, pkg := range missing {
		i.UI.Error(fmt.Sprintf("  - %s", pkg))
	}
	if hint != "" {
		i.UI.Info(hint)
	}
	return &domain.UnavailableError{Family: family, Packages: missing}
}

// sudoRun invokes the native install command through the privilege helper
// with the terminal inherited.
func (i *Installer) sudoRun(ctx context.Context, args ...string) error {
	return i.Runner.Run(ctx, "sudo", args...)
}
