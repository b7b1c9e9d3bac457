package pkgmgr

import (
	"context"
	"fmt"

	"github.com/noctalia-dev/noctalia-cli/internal/domain"
)

// coprRepo is the third-party repository that carries quickshell builds
// for Fedora.
const coprRepo = "errornointernet/quickshell"

func (i *Installer) installFedora(ctx context.Context, mapping domain.PackageMapping) error {
	toInstall, missing := i.partition(ctx, mapping, func(ctx context.Context, pkg string) bool {
		_, err := i.Runner.Output(ctx, "rpm", "-q", pkg)
		return err == nil
	})

	// quickshell is absent from the default repositories but can come
	// from COPR with the user's consent.
	if contains(missing, quickshellPkg) {
		i.UI.Info("quickshell is not available in standard Fedora repositories.")
		i.UI.Info(fmt.Sprintf("It can be installed from the COPR repository: %s", coprRepo))

		enabled, err := i.offerCOPR(ctx)
		if err != nil {
			return err
		}
		if enabled {
			missing = remove(missing, quickshellPkg)
			toInstall = append(toInstall, quickshellPkg)
		} else {
			i.UI.Info("Skipping COPR repository setup. quickshell will not be installed.")
			i.UI.Info(fmt.Sprintf("You can enable it manually later with: sudo dnf copr enable %s", coprRepo))
		}
	}

	if len(missing) > 0 {
		return i.reportUnavailable(domain.DistroFedora, missing, "You may need to install them from COPR or build from source.")
	}
	if len(toInstall) == 0 {
		i.UI.Success("All packages are already installed")
		return nil
	}

	i.UI.Step(fmt.Sprintf("Installing %d package(s) with dnf", len(toInstall)))
	args := append([]string{"dnf", "install", "-y"}, toInstall...)
	if err := i.sudoRun(ctx, args...); err != nil {
		return fmt.Errorf("install packages with dnf: %w", err)
	}
	i.UI.Success("Packages installed successfully")
	return nil
}

// offerCOPR asks the user to enable the quickshell COPR repository and
// enables it when accepted. A declined or non-interactive prompt leaves
// the package unavailable.
func (i *Installer) offerCOPR(ctx context.Context) (bool, error) {
	if !i.Prompter.Enabled() {
		return false, nil
	}
	accepted, err := i.Prompter.Confirm(
		fmt.Sprintf("Would you like to enable the COPR repository %s?", coprRepo), false)
	if err != nil || !accepted {
		return false, nil
	}

	i.UI.Step(fmt.Sprintf("Enabling COPR repository %s", coprRepo))
	if err := i.sudoRun(ctx, "dnf", "copr", "enable", "-y", coprRepo); err != nil {
		return false, fmt.Errorf("enable COPR repository: %w", err)
	}
	i.UI.Success("COPR repository enabled successfully")
	return true, nil
}

func contains(list []string, want string) bool {
	for _, item := range list {
		if item == want {
			return true
		}
	}
	return false
}

func remove(list []string, drop string) []string {
	out := list[:0]
	for _, item := range list {
		if item != drop {
			out = append(out, item)
		}
	}
	return out
}
