package pkgmgr

import (
	"context"
	"fmt"

	"github.com/noctalia-dev/noctalia-cli/internal/domain"
)

func (i *Installer) installVoid(ctx context.Context, mapping domain.PackageMapping) error {
	toInstall, missing := i.partition(ctx, mapping, func(ctx context.Context, pkg string) bool {
		_, err := i.Runner.Output(ctx, "xbps-query", pkg)
		return err == nil
	})

	if len(missing) > 0 {
		return i.reportUnavailable(domain.DistroVoid, missing, "You may need to build from source or use xbps-src.")
	}
	if len(toInstall) == 0 {
		i.UI.Success("All packages are already installed")
		return nil
	}

	i.UI.Step(fmt.Sprintf("Installing %d package(s) with xbps-install", len(toInstall)))
	args := append([]string{"xbps-install", "-S", "-y"}, toInstall...)
	if err := i.sudoRun(ctx, args...); err != nil {
		return fmt.Errorf("install packages with xbps-install: %w", err)
	}
	i.UI.Success("Packages installed successfully")
	return nil
}
