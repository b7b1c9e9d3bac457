// Package lifecycle implements the install and update pipelines for
// managed components. It orchestrates the adapters through their ports and
// owns the ordering guarantees: state is persisted only after the
// filesystem operation that it describes has succeeded.
package lifecycle

import (
	"context"
	"fmt"
	"time"

	"github.com/noctalia-dev/noctalia-cli/internal/domain"
	"github.com/noctalia-dev/noctalia-cli/internal/pkg/paths"
	"github.com/noctalia-dev/noctalia-cli/internal/ports"
)

// Service runs component lifecycle operations.
type Service struct {
	Store    ports.ConfigStore
	Detector ports.DistroDetector
	Packages ports.PackageInstaller
	Fetcher  ports.ReleaseFetcher
	Archive  ports.ArchiveInstaller
	Journal  ports.Journal
	Logger   ports.Logger
	UI       ports.UI
}

// NeedsUpdate decides whether the installed version marker warrants
// fetching a new artifact. An empty marker always does; otherwise any
// difference from the latest marker does. Markers are opaque strings, not
// ordered versions.
func NeedsUpdate(installed, latest string) bool {
	return installed == "" || installed != latest
}

// upstream is the resolved latest state of one source channel: the version
// marker used for comparison and persistence, plus the release metadata
// needed to download it when the channel is release.
type upstream struct {
	marker  string
	release domain.ReleaseInfo
}

// Install runs the full installation pipeline for the shell: system
// dependencies, artifact download, extraction, and state persistence.
func (s *Service) Install(ctx context.Context, source domain.SourceKind) error {
	started := time.Now()
	s.UI.Section("Installing noctalia shell")

	family := s.Detector.Detect()
	s.Logger.Debug("detected distribution", map[string]interface{}{"family": string(family)})
	if err := s.Packages.Install(ctx, family); err != nil {
		return err
	}

	up, err := s.resolveLatest(ctx, source)
	if err != nil {
		return err
	}
	archivePath, err := s.download(ctx, source, up)
	if err != nil {
		return err
	}

	target := paths.UserInstallRoot()
	s.UI.Step("Installing to " + target)
	if err := s.Archive.Apply(ctx, target, archivePath); err != nil {
		return err
	}

	if err := s.persist(source, up.marker); err != nil {
		return err
	}
	s.record(domain.ActionInstall, source, up.marker, started)
	s.UI.Success("noctalia shell installed (" + displayVersion(source, up.marker) + ")")
	return nil
}

// Update refreshes an existing installation in place. It fails fast when
// no installation is recorded or evidenced, and skips the download when
// the persisted marker already matches the latest upstream marker.
func (s *Service) Update(ctx context.Context, source domain.SourceKind) error {
	started := time.Now()
	s.UI.Section("Updating noctalia shell")

	if !s.Store.InstalledWithEvidence(domain.ComponentShell) {
		return domain.ErrNotInstalled
	}

	cfg, _ := s.Store.Load()
	installed := cfg.Version(domain.ComponentShell)
	if installed != "" {
		s.UI.Info("Current version: " + displayVersion(source, installed))
	}

	up, err := s.resolveLatest(ctx, source)
	if err != nil {
		return err
	}
	if !NeedsUpdate(installed, up.marker) {
		s.UI.Success("Already up to date (" + displayVersion(source, installed) + ")")
		return nil
	}

	archivePath, err := s.download(ctx, source, up)
	if err != nil {
		return err
	}

	target, ok := paths.FindInstallRoot()
	if !ok {
		target = paths.UserInstallRoot()
	}
	s.UI.Step("Updating " + target)
	if err := s.Archive.Apply(ctx, target, archivePath); err != nil {
		return err
	}

	if err := s.persist(source, up.marker); err != nil {
		return err
	}
	s.record(domain.ActionUpdate, source, up.marker, started)
	s.UI.Success("noctalia shell updated (" + displayVersion(source, up.marker) + ")")
	return nil
}

// resolveLatest queries upstream once per operation for the channel's
// current marker.
func (s *Service) resolveLatest(ctx context.Context, source domain.SourceKind) (upstream, error) {
	switch source {
	case domain.SourceGit:
		s.UI.Step("Checking latest commit")
		commit, err := s.Fetcher.LatestCommitSHA(ctx)
		if err != nil {
			return upstream{}, fmt.Errorf("fetch latest commit: %w", err)
		}
		return upstream{marker: commit}, nil
	default:
		s.UI.Step("Checking latest release")
		release, err := s.Fetcher.LatestRelease(ctx)
		if err != nil {
			return upstream{}, fmt.Errorf("fetch latest release: %w", err)
		}
		return upstream{marker: release.TagName, release: release}, nil
	}
}

func (s *Service) download(ctx context.Context, source domain.SourceKind, up upstream) (string, error) {
	s.UI.Step("Downloading " + displayVersion(source, up.marker))
	switch source {
	case domain.SourceGit:
		path, err := s.Fetcher.DownloadMainSnapshot(ctx)
		if err != nil {
			return "", fmt.Errorf("download snapshot: %w", err)
		}
		return path, nil
	default:
		path, err := s.Fetcher.DownloadRelease(ctx, up.release)
		if err != nil {
			return "", fmt.Errorf("download release: %w", err)
		}
		return path, nil
	}
}

// persist writes the component record after the install has landed on
// disk. A persistence failure is surfaced; the next invocation repairs
// the record from filesystem evidence.
func (s *Service) persist(source domain.SourceKind, version string) error {
	cfg, path := s.Store.Load()
	cfg.SetSource(domain.ComponentShell, source)
	cfg.SetInstalled(domain.ComponentShell, true)
	cfg.SetVersion(domain.ComponentShell, version)
	if err := s.Store.Save(cfg, path); err != nil {
		return fmt.Errorf("persist install state: %w", err)
	}
	return nil
}

// record appends to the operation journal. Journal failures are logged
// and swallowed.
func (s *Service) record(action domain.JournalAction, source domain.SourceKind, version string, started time.Time) {
	if s.Journal == nil {
		return
	}
	entry := domain.JournalEntry{
		Timestamp:  started,
		Component:  domain.ComponentShell,
		Action:     action,
		Source:     source,
		Version:    version,
		DurationMS: time.Since(started).Milliseconds(),
	}
	if err := s.Journal.Append(entry); err != nil {
		s.Logger.Warn("could not record operation", map[string]interface{}{"err": err.Error()})
	}
}

// displayVersion shortens commit hashes for banners; release tags pass
// through unchanged.
func displayVersion(source domain.SourceKind, marker string) string {
	if source == domain.SourceGit {
		return domain.ShortSHA(marker)
	}
	return marker
}
