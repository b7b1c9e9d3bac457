// Package ports defines the interfaces between the lifecycle core and its
// adapters. The application layer depends only on these abstractions; the
// concrete implementations live under internal/infrastructure.
package ports

import (
	"context"

	"github.com/noctalia-dev/noctalia-cli/internal/domain"
)

// ConfigStore loads and persists the per-component install state.
// Load never fails the caller: an absent or unparseable file degrades to
// the empty document. Save replaces the file in full.
type ConfigStore interface {
	Load() (domain.Config, string)
	Save(cfg domain.Config, path string) error

	// InstalledWithEvidence is the reconciling read used by preconditions:
	// it consults live filesystem evidence, silently repairs a stale
	// not-installed record, and never demotes an installed one.
	InstalledWithEvidence(component string) bool
}

// DistroDetector classifies the host distribution. Implementations must be
// a pure function of OS metadata and marker-file presence, with no process
// or network calls.
type DistroDetector interface {
	Detect() domain.DistroFamily
}

// PackageInstaller resolves and installs the component's system
// dependencies for one distribution family. Any dependency without an
// installation path fails the whole operation.
type PackageInstaller interface {
	Install(ctx context.Context, family domain.DistroFamily) error
}

// ReleaseFetcher talks to the upstream repository: latest-version metadata
// and artifact downloads. No retries; a transient failure aborts the
// command.
type ReleaseFetcher interface {
	LatestCommitSHA(ctx context.Context) (string, error)
	LatestRelease(ctx context.Context) (domain.ReleaseInfo, error)
	DownloadMainSnapshot(ctx context.Context) (string, error)
	DownloadRelease(ctx context.Context, info domain.ReleaseInfo) (string, error)
}

// ArchiveInstaller replaces the target directory with the archive's
// contents, normalizing the wrapper directory and electing a privileged
// strategy when the target lives under the system path. The archive file
// is removed after success.
type ArchiveInstaller interface {
	Apply(ctx context.Context, target string, archivePath string) error
}

// CommandRunner invokes external processes. Run inherits the controlling
// terminal so native prompts (package managers, sudo) reach the user;
// Output captures stdout for query-style invocations.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) error
	RunEnv(ctx context.Context, extraEnv []string, name string, args ...string) error
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// Prompter handles the CLI's interactive moments. Enabled reports whether
// a terminal is attached; callers take documented defaults when it is not.
type Prompter interface {
	Enabled() bool
	Select(title string, options []string, defaultIndex int) (int, error)
	Confirm(title string, defaultValue bool) (bool, error)
}

// Journal records completed lifecycle operations. Appending is
// best-effort: failures are logged, never fatal.
type Journal interface {
	Append(entry domain.JournalEntry) error
	Entries(limit int) ([]domain.JournalEntry, error)
	Close() error
}

// UI renders the terminal banners the pipeline emits as it progresses.
type UI interface {
	Section(title string)
	Step(message string)
	Success(message string)
	Info(message string)
	Error(message string)
}

// Logger provides structured logging for the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
