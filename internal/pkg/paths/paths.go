// Package paths centralizes where the managed shell lives on disk. Two
// roots exist: the current per-user location and the legacy system
// location that older installers used.
package paths

import (
	"os"
	"path/filepath"

	"github.com/noctalia-dev/noctalia-cli/internal/pkg/filesystem"
)

// SystemInstallRoot is the legacy system-scoped installation path.
// Operations touching it require privilege elevation.
const SystemInstallRoot = "/etc/xdg/quickshell/noctalia-shell"

// UserInstallRoot returns the per-user installation path.
func UserInstallRoot() string {
	return filepath.Join(filesystem.UserHomeDir(), ".config", "quickshell", "noctalia-shell")
}

// FindInstallRoot returns the existing installation directory, preferring
// the legacy system location, or false when neither exists.
func FindInstallRoot() (string, bool) {
	if dirExists(SystemInstallRoot) {
		return SystemInstallRoot, true
	}
	if user := UserInstallRoot(); dirExists(user) {
		return user, true
	}
	return "", false
}

// ShellOnDisk reports filesystem evidence of an installation at either
// known root. Used by the config reconciliation policy.
func ShellOnDisk() bool {
	_, ok := FindInstallRoot()
	return ok
}

func dirExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
