package lifecycle_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/noctalia-dev/noctalia-cli/internal/application/lifecycle"
	"github.com/noctalia-dev/noctalia-cli/internal/domain"
)

type fakeStore struct {
	cfg      domain.Config
	path     string
	evidence bool
	saves    int
}

func (f *fakeStore) Load() (domain.Config, string) { return f.cfg, f.path }

func (f *fakeStore) Save(cfg domain.Config, _ string) error {
	f.cfg = cfg
	f.saves++
	return nil
}

func (f *fakeStore) InstalledWithEvidence(component string) bool {
	return f.evidence || f.cfg.Installed(component)
}

type fakeDetector struct{ family domain.DistroFamily }

func (f *fakeDetector) Detect() domain.DistroFamily { return f.family }

type fakePackages struct {
	err    error
	called bool
}

func (f *fakePackages) Install(_ context.Context, _ domain.DistroFamily) error {
	f.called = true
	return f.err
}

type fakeFetcher struct {
	sha       string
	release   domain.ReleaseInfo
	metaErr   error
	downloads int
}

func (f *fakeFetcher) LatestCommitSHA(_ context.Context) (string, error) {
	return f.sha, f.metaErr
}

func (f *fakeFetcher) LatestRelease(_ context.Context) (domain.ReleaseInfo, error) {
	return f.release, f.metaErr
}

func (f *fakeFetcher) DownloadMainSnapshot(_ context.Context) (string, error) {
	f.downloads++
	return "/tmp/noctalia-shell-main.tar.gz", nil
}

func (f *fakeFetcher) DownloadRelease(_ context.Context, info domain.ReleaseInfo) (string, error) {
	f.downloads++
	return "/tmp/noctalia-shell-" + info.TagName + ".tar.gz", nil
}

type fakeArchive struct {
	err     error
	targets []string
}

func (f *fakeArchive) Apply(_ context.Context, target, _ string) error {
	f.targets = append(f.targets, target)
	return f.err
}

type fakeJournal struct{ entries []domain.JournalEntry }

func (f *fakeJournal) Append(entry domain.JournalEntry) error {
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeJournal) Entries(int) ([]domain.JournalEntry, error) { return f.entries, nil }
func (f *fakeJournal) Close() error                               { return nil }

type silentUI struct{}

func (silentUI) Section(string) {}
func (silentUI) Step(string)    {}
func (silentUI) Success(string) {}
func (silentUI) Info(string)    {}
func (silentUI) Error(string)   {}

type silentLogger struct{}

func (silentLogger) Debug(string, map[string]interface{})        {}
func (silentLogger) Info(string, map[string]interface{})         {}
func (silentLogger) Warn(string, map[string]interface{})         {}
func (silentLogger) Error(string, error, map[string]interface{}) {}

type fixture struct {
	service  *lifecycle.Service
	store    *fakeStore
	packages *fakePackages
	fetcher  *fakeFetcher
	archive  *fakeArchive
	journal  *fakeJournal
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	f := &fixture{
		store:    &fakeStore{path: "/tmp/cli.yaml"},
		packages: &fakePackages{},
		fetcher: &fakeFetcher{
			sha:     "0123456789abcdef0123456789abcdef01234567",
			release: domain.ReleaseInfo{TagName: "v3.1.0", TarballURL: "https://example.test/v3.1.0"},
		},
		archive: &fakeArchive{},
		journal: &fakeJournal{},
	}
	f.service = &lifecycle.Service{
		Store:    f.store,
		Detector: &fakeDetector{family: domain.DistroArch},
		Packages: f.packages,
		Fetcher:  f.fetcher,
		Archive:  f.archive,
		Journal:  f.journal,
		Logger:   silentLogger{},
		UI:       silentUI{},
	}
	return f
}

// TestNeedsUpdate tests the update decision on opaque version markers
func TestNeedsUpdate(t *testing.T) {
	tests := []struct {
		name      string
		installed string
		latest    string
		want      bool
	}{
		{name: "no recorded version always updates", installed: "", latest: "v3.1.0", want: true},
		{name: "different markers update", installed: "v3.0.0", latest: "v3.1.0", want: true},
		{name: "equal markers skip", installed: "v3.1.0", latest: "v3.1.0", want: false},
		{name: "markers are not ordered", installed: "v3.2.0", latest: "v3.1.0", want: true},
		{name: "commit hashes compare exactly", installed: "abc", latest: "abc", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lifecycle.NeedsUpdate(tt.installed, tt.latest); got != tt.want {
				t.Errorf("NeedsUpdate(%q, %q) = %v, want %v", tt.installed, tt.latest, got, tt.want)
			}
		})
	}
}

// TestService_Install tests the release install pipeline
func TestService_Install(t *testing.T) {
	f := newFixture(t)

	if err := f.service.Install(context.Background(), domain.SourceRelease); err != nil {
		t.Fatalf("Install() error: %v", err)
	}

	if !f.packages.called {
		t.Error("dependencies were not installed")
	}
	if f.fetcher.downloads != 1 {
		t.Errorf("downloads = %d, want 1", f.fetcher.downloads)
	}
	if len(f.archive.targets) != 1 {
		t.Fatalf("archive applied %d times, want 1", len(f.archive.targets))
	}
	if base := filepath.Base(f.archive.targets[0]); base != "noctalia-shell" {
		t.Errorf("unexpected install target %s", f.archive.targets[0])
	}

	if src, _ := f.store.cfg.SourceOf(domain.ComponentShell); src != domain.SourceRelease {
		t.Errorf("persisted source = %v, want release", src)
	}
	if !f.store.cfg.Installed(domain.ComponentShell) {
		t.Error("installed flag not persisted")
	}
	if got := f.store.cfg.Version(domain.ComponentShell); got != "v3.1.0" {
		t.Errorf("persisted version = %q, want v3.1.0", got)
	}

	if len(f.journal.entries) != 1 || f.journal.entries[0].Action != domain.ActionInstall {
		t.Errorf("journal entries = %+v, want one install", f.journal.entries)
	}
}

// TestService_Install_GitRecordsFullHash tests that git installs persist
// the complete commit hash
func TestService_Install_GitRecordsFullHash(t *testing.T) {
	f := newFixture(t)

	if err := f.service.Install(context.Background(), domain.SourceGit); err != nil {
		t.Fatalf("Install() error: %v", err)
	}
	if got := f.store.cfg.Version(domain.ComponentShell); got != f.fetcher.sha {
		t.Errorf("persisted version = %q, want full hash %q", got, f.fetcher.sha)
	}
}

// TestService_Install_DependencyFailureStopsPipeline tests ordering
func TestService_Install_DependencyFailureStopsPipeline(t *testing.T) {
	f := newFixture(t)
	f.packages.err = domain.ErrUnknownDistribution

	err := f.service.Install(context.Background(), domain.SourceRelease)
	if !errors.Is(err, domain.ErrUnknownDistribution) {
		t.Fatalf("expected dependency error, got %v", err)
	}
	if f.fetcher.downloads != 0 {
		t.Error("nothing should be downloaded after a dependency failure")
	}
	if f.store.saves != 0 {
		t.Error("no state should be persisted after a dependency failure")
	}
}

// TestService_Install_ApplyFailureDoesNotPersist tests that failed
// extraction leaves the record untouched
func TestService_Install_ApplyFailureDoesNotPersist(t *testing.T) {
	f := newFixture(t)
	f.archive.err = errors.New("disk full")

	if err := f.service.Install(context.Background(), domain.SourceRelease); err == nil {
		t.Fatal("expected apply failure")
	}
	if f.store.saves != 0 {
		t.Error("no state should be persisted after an apply failure")
	}
	if len(f.journal.entries) != 0 {
		t.Error("no journal entry should be recorded after an apply failure")
	}
}

// TestService_Update tests the update pipeline
func TestService_Update(t *testing.T) {
	t.Run("fails when not installed", func(t *testing.T) {
		f := newFixture(t)
		err := f.service.Update(context.Background(), domain.SourceRelease)
		if !errors.Is(err, domain.ErrNotInstalled) {
			t.Errorf("expected ErrNotInstalled, got %v", err)
		}
	})

	t.Run("skips download when already current", func(t *testing.T) {
		f := newFixture(t)
		f.store.cfg.SetInstalled(domain.ComponentShell, true)
		f.store.cfg.SetVersion(domain.ComponentShell, "v3.1.0")

		if err := f.service.Update(context.Background(), domain.SourceRelease); err != nil {
			t.Fatalf("Update() error: %v", err)
		}
		if f.fetcher.downloads != 0 {
			t.Error("no download expected when markers match")
		}
		if len(f.archive.targets) != 0 {
			t.Error("no apply expected when markers match")
		}
	})

	t.Run("applies and persists a newer release", func(t *testing.T) {
		f := newFixture(t)
		f.store.cfg.SetInstalled(domain.ComponentShell, true)
		f.store.cfg.SetVersion(domain.ComponentShell, "v3.0.0")

		if err := f.service.Update(context.Background(), domain.SourceRelease); err != nil {
			t.Fatalf("Update() error: %v", err)
		}
		if got := f.store.cfg.Version(domain.ComponentShell); got != "v3.1.0" {
			t.Errorf("persisted version = %q, want v3.1.0", got)
		}
		if len(f.journal.entries) != 1 || f.journal.entries[0].Action != domain.ActionUpdate {
			t.Errorf("journal entries = %+v, want one update", f.journal.entries)
		}
	})

	t.Run("missing version marker forces an update", func(t *testing.T) {
		f := newFixture(t)
		f.store.evidence = true

		if err := f.service.Update(context.Background(), domain.SourceRelease); err != nil {
			t.Fatalf("Update() error: %v", err)
		}
		if f.fetcher.downloads != 1 {
			t.Errorf("downloads = %d, want 1", f.fetcher.downloads)
		}
	})
}
