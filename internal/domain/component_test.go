package domain_test

import (
	"testing"

	"github.com/noctalia-dev/noctalia-cli/internal/domain"
)

// TestSourceKind_Valid tests source kind validation
func TestSourceKind_Valid(t *testing.T) {
	tests := []struct {
		name string
		kind domain.SourceKind
		want bool
	}{
		{name: "release is valid", kind: domain.SourceRelease, want: true},
		{name: "git is valid", kind: domain.SourceGit, want: true},
		{name: "empty is invalid", kind: domain.SourceKind(""), want: false},
		{name: "arbitrary string is invalid", kind: domain.SourceKind("nightly"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestConfig_Accessors tests reading and writing component records
func TestConfig_Accessors(t *testing.T) {
	var cfg domain.Config

	if _, ok := cfg.SourceOf("shell"); ok {
		t.Error("expected no source on empty config")
	}
	if cfg.Installed("shell") {
		t.Error("expected not installed on empty config")
	}
	if got := cfg.Version("shell"); got != "" {
		t.Errorf("expected empty version, got %q", got)
	}

	cfg.SetSource("shell", domain.SourceGit)
	if src, ok := cfg.SourceOf("shell"); !ok || src != domain.SourceGit {
		t.Errorf("SourceOf() = %v, %v, want git, true", src, ok)
	}

	cfg.SetVersion("shell", "abc123")
	cfg.SetInstalled("shell", true)

	// Later writes must not clobber earlier fields.
	if src, _ := cfg.SourceOf("shell"); src != domain.SourceGit {
		t.Errorf("source lost after other writes: %v", src)
	}
	if !cfg.Installed("shell") {
		t.Error("installed flag lost")
	}
	if got := cfg.Version("shell"); got != "abc123" {
		t.Errorf("Version() = %q, want abc123", got)
	}
}

// TestConfig_SourceOf_InvalidPersistedValue tests that an unrecognized
// persisted source reads as absent
func TestConfig_SourceOf_InvalidPersistedValue(t *testing.T) {
	cfg := domain.Config{Components: map[string]domain.ComponentRecord{
		"shell": {Source: "nightly"},
	}}
	if _, ok := cfg.SourceOf("shell"); ok {
		t.Error("expected invalid source to read as absent")
	}
}

// TestReconcileInstalled tests the one-directional repair policy
func TestReconcileInstalled(t *testing.T) {
	tests := []struct {
		name          string
		installed     bool
		evidence      bool
		wantChanged   bool
		wantInstalled bool
	}{
		{name: "evidence promotes stale record", installed: false, evidence: true, wantChanged: true, wantInstalled: true},
		{name: "no evidence never demotes", installed: true, evidence: false, wantChanged: false, wantInstalled: true},
		{name: "agreement installed is a no-op", installed: true, evidence: true, wantChanged: false, wantInstalled: true},
		{name: "agreement not installed is a no-op", installed: false, evidence: false, wantChanged: false, wantInstalled: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg domain.Config
			cfg.SetInstalled("shell", tt.installed)

			changed := domain.ReconcileInstalled(&cfg, "shell", tt.evidence)
			if changed != tt.wantChanged {
				t.Errorf("ReconcileInstalled() = %v, want %v", changed, tt.wantChanged)
			}
			if got := cfg.Installed("shell"); got != tt.wantInstalled {
				t.Errorf("Installed() = %v, want %v", got, tt.wantInstalled)
			}
		})
	}
}

// TestDistroFamily_DisplayName tests the human-facing family names
func TestDistroFamily_DisplayName(t *testing.T) {
	tests := []struct {
		family domain.DistroFamily
		want   string
	}{
		{family: domain.DistroArch, want: "Arch"},
		{family: domain.DistroFedora, want: "Fedora"},
		{family: domain.DistroDebian, want: "Debian/Ubuntu"},
		{family: domain.DistroGentoo, want: "Gentoo"},
		{family: domain.DistroVoid, want: "Void"},
		{family: domain.DistroUnknown, want: "unknown"},
	}

	for _, tt := range tests {
		t.Run(string(tt.family), func(t *testing.T) {
			if got := tt.family.DisplayName(); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestShortSHA tests commit hash shortening for display
func TestShortSHA(t *testing.T) {
	tests := []struct {
		name string
		sha  string
		want string
	}{
		{name: "long hash is truncated", sha: "0123456789abcdef0123", want: "01234567"},
		{name: "short value passes through", sha: "abc", want: "abc"},
		{name: "empty passes through", sha: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := domain.ShortSHA(tt.sha); got != tt.want {
				t.Errorf("ShortSHA(%q) = %q, want %q", tt.sha, got, tt.want)
			}
		})
	}
}
