// Package filesystem holds small path helpers shared by the adapters.
package filesystem

import "os"

// UserHomeDir resolves the invoking user's home directory, degrading to
// the current directory when the environment gives no answer. Install
// roots, the config path, and the download staging dir all hang off it.
func UserHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}
