package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConflictingSources is returned when both --git and --release are
	// passed. The CLI maps it to exit code 2 before any side effect.
	ErrConflictingSources = errors.New("both --git and --release provided; please specify only one")

	// ErrNotInstalled is returned when update/run/ipc is attempted before
	// a successful install.
	ErrNotInstalled = errors.New("noctalia shell is not installed; run 'noctalia install shell' first")

	// ErrNotRunning is returned when an IPC command targets a shell that
	// is not currently running.
	ErrNotRunning = errors.New("noctalia shell is not running; run 'noctalia run' first")

	// ErrPackagesUnavailable is the sentinel wrapped by UnavailableError.
	ErrPackagesUnavailable = errors.New("required packages are not available in repositories")

	// ErrUnknownDistribution is returned when no package manager can be
	// determined for the host.
	ErrUnknownDistribution = errors.New("cannot determine package manager for unknown distribution")
)

// UnavailableError reports dependencies that have no installation path on
// the detected distribution. It wraps ErrPackagesUnavailable so callers
// can classify it with errors.Is.
type UnavailableError struct {
	Family   DistroFamily
	Packages []string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("packages not available on %s: %s", e.Family.DisplayName(), strings.Join(e.Packages, ", "))
}

func (e *UnavailableError) Unwrap() error { return ErrPackagesUnavailable }
