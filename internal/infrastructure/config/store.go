// Package config persists the CLI's per-component install state as a YAML
// document under the user's configuration directory.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/noctalia-dev/noctalia-cli/internal/domain"
	"github.com/noctalia-dev/noctalia-cli/internal/pkg/filesystem"
	"github.com/noctalia-dev/noctalia-cli/internal/pkg/paths"
	"github.com/noctalia-dev/noctalia-cli/internal/ports"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// Store reads and writes ~/.config/noctalia/cli.yaml (overridable via
// NOCTALIA_CONFIG or the constructor path).
type Store struct {
	overridePath string
	evidence     func() bool
}

// NewStore builds a store. An empty path uses the default location.
func NewStore(path string) *Store {
	return &Store{overridePath: path, evidence: paths.ShellOnDisk}
}

// Load returns the current state and the resolved file path. It never
// fails the caller: an absent file or a parse error degrades to the empty
// document, so a corrupt config reads as component-not-installed.
func (s *Store) Load() (domain.Config, string) {
	path := s.resolvePath()
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Config{}, path
	}
	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, path
	}
	return cfg, path
}

// Save writes a full serialized replacement of the file, creating any
// missing parent directories.
func (s *Store) Save(cfg domain.Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return err
	}
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, filePermissions)
}

// InstalledWithEvidence implements the reconciling read: for the shell
// component it checks both known install roots and silently repairs a
// stale not-installed record. The repair is one-directional; a missing
// directory never demotes an installed record.
func (s *Store) InstalledWithEvidence(component string) bool {
	cfg, path := s.Load()
	if component != domain.ComponentShell {
		return cfg.Installed(component)
	}
	onDisk := s.evidence()
	if domain.ReconcileInstalled(&cfg, component, onDisk) {
		_ = s.Save(cfg, path)
	}
	return onDisk || cfg.Installed(component)
}

func (s *Store) resolvePath() string {
	if s.overridePath != "" {
		return s.overridePath
	}
	if custom := os.Getenv("NOCTALIA_CONFIG"); custom != "" {
		return custom
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "noctalia", "cli.yaml")
	}
	return filepath.Join(filesystem.UserHomeDir(), ".config", "noctalia", "cli.yaml")
}

var _ ports.ConfigStore = (*Store)(nil)
