package pkgmgr

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/noctalia-dev/noctalia-cli/internal/domain"
)

var errNoAURHelper = errors.New("no AUR helper available to install packages")

func (i *Installer) installArch(ctx context.Context, mapping domain.PackageMapping) error {
	toInstall, missing := i.partition(ctx, mapping, func(ctx context.Context, pkg string) bool {
		_, err := i.Runner.Output(ctx, "pacman", "-Q", pkg)
		return err == nil
	})

	if len(missing) > 0 {
		return i.reportUnavailable(domain.DistroArch, missing, "")
	}
	if len(toInstall) == 0 {
		i.UI.Success("All packages are already installed")
		return nil
	}

	helper := i.detectAURHelper(ctx)
	if helper == "" {
		i.UI.Error("No AUR helper found (yay/paru). Please install one of the following:")
		i.UI.Info("  yay: https://github.com/Jguer/yay")
		i.UI.Info("  paru: https://github.com/Morganamilo/paru")
		i.UI.Info("")
		i.UI.Info("Then install the required packages manually:")
		i.UI.Info(fmt.Sprintf("  yay -S %s", strings.Join(toInstall, " ")))
		return errNoAURHelper
	}

	i.UI.Info(fmt.Sprintf("Using %s to install packages", helper))
	i.UI.Step(fmt.Sprintf("Installing %d package(s)", len(toInstall)))
	args := append([]string{"-S", "--noconfirm"}, toInstall...)
	if err := i.Runner.Run(ctx, helper, args...); err != nil {
		return fmt.Errorf("install packages with %s: %w", helper, err)
	}
	i.UI.Success("Packages installed successfully")
	return nil
}

// detectAURHelper probes for a usable AUR helper, preferring yay.
func (i *Installer) detectAURHelper(ctx context.Context) string {
	for _, helper := range []string{"yay", "paru"} {
		if _, err := i.Runner.Output(ctx, helper, "--version"); err == nil {
			return helper
		}
	}
	return ""
}
