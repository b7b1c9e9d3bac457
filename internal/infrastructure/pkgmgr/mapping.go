package pkgmgr

import "github.com/noctalia-dev/noctalia-cli/internal/domain"

// Dependencies is the fixed list of system packages the shell needs, in
// generic (distro-agnostic) naming.
var Dependencies = []string{"quickshell", "gpu-screen-recorder", "brightnessctl"}

// quickshellPkg is the dependency that is missing from several default
// repositories and drives the Fedora COPR branch.
const quickshellPkg = "quickshell"

// Mapping resolves the generic dependency list onto a distribution
// family's native package names. An empty native name means the package is
// not available in that distribution's default repositories.
func Mapping(family domain.DistroFamily) domain.PackageMapping {
	native := func(quickshell string) domain.PackageMapping {
		return domain.PackageMapping{
			{Generic: "quickshell", Native: quickshell},
			{Generic: "gpu-screen-recorder", Native: "gpu-screen-recorder"},
			{Generic: "brightnessctl", Native: "brightnessctl"},
		}
	}

	switch family {
	case domain.DistroArch, domain.DistroVoid:
		return native("quickshell")
	case domain.DistroFedora, domain.DistroDebian, domain.DistroGentoo:
		// quickshell needs COPR / a PPA / an overlay on these families.
		return native("")
	default:
		return domain.PackageMapping{
			{Generic: "quickshell"},
			{Generic: "gpu-screen-recorder"},
			{Generic: "brightnessctl"},
		}
	}
}
