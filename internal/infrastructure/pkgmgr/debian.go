package pkgmgr

import (
	"context"
	"fmt"
	"strings"

	"github.com/noctalia-dev/noctalia-cli/internal/domain"
)

func (i *Installer) installDebian(ctx context.Context, mapping domain.PackageMapping) error {
	toInstall, missing := i.partition(ctx, mapping, func(ctx context.Context, pkg string) bool {
		out, err := i.Runner.Output(ctx, "dpkg", "-l", pkg)
		// dpkg exits zero for known-but-removed packages; "ii" marks an
		// actually installed one.
		return err == nil && strings.Contains(string(out), "ii")
	})

	if len(missing) > 0 {
		return i.reportUnavailable(domain.DistroDebian, missing, "You may need to add a PPA or build from source.")
	}
	if len(toInstall) == 0 {
		i.UI.Success("All packages are already installed")
		return nil
	}

	i.UI.Step(fmt.Sprintf("Installing %d package(s) with apt", len(toInstall)))
	args := append([]string{"apt", "install", "-y"}, toInstall...)
	if err := i.sudoRun(ctx, args...); err != nil {
		return fmt.Errorf("install packages with apt: %w", err)
	}
	i.UI.Success("Packages installed successfully")
	return nil
}
