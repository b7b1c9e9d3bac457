package pkgmgr

import (
	"context"
	"fmt"

	"github.com/noctalia-dev/noctalia-cli/internal/domain"
)

func (i *Installer) installGentoo(ctx context.Context, mapping domain.PackageMapping) error {
	toInstall, missing := i.partition(ctx, mapping, func(ctx context.Context, pkg string) bool {
		_, err := i.Runner.Output(ctx, "equery", "list", pkg)
		return err == nil
	})

	if len(missing) > 0 {
		return i.reportUnavailable(domain.DistroGentoo, missing, "You may need to add an overlay or build from source.")
	}
	if len(toInstall) == 0 {
		i.UI.Success("All packages are already installed")
		return nil
	}

	i.UI.Step(fmt.Sprintf("Installing %d package(s) with emerge", len(toInstall)))
	args := append([]string{"emerge", "-av"}, toInstall...)
	if err := i.sudoRun(ctx, args...); err != nil {
		return fmt.Errorf("install packages with emerge: %w", err)
	}
	i.UI.Success("Packages installed successfully")
	return nil
}
