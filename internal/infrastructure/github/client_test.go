package github_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/noctalia-dev/noctalia-cli/internal/domain"
	"github.com/noctalia-dev/noctalia-cli/internal/infrastructure/github"
)

// TestClient_LatestCommitSHA tests commit metadata retrieval
func TestClient_LatestCommitSHA(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/noctalia-dev/noctalia-shell/commits/main" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if ua := r.Header.Get("User-Agent"); !strings.Contains(ua, "noctalia-cli") {
			t.Errorf("missing user agent, got %q", ua)
		}
		w.Write([]byte(`{"sha":"0123456789abcdef0123456789abcdef01234567"}`))
	}))
	defer server.Close()

	client := github.NewClient(github.WithBaseURL(server.URL))
	sha, err := client.LatestCommitSHA(context.Background())
	if err != nil {
		t.Fatalf("LatestCommitSHA() error: %v", err)
	}
	if sha != "0123456789abcdef0123456789abcdef01234567" {
		t.Errorf("unexpected sha %q", sha)
	}
}

// TestClient_LatestCommitSHA_MissingField tests the empty-sha guard
func TestClient_LatestCommitSHA_MissingField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := github.NewClient(github.WithBaseURL(server.URL))
	if _, err := client.LatestCommitSHA(context.Background()); err == nil {
		t.Error("expected error for response without sha")
	}
}

// TestClient_LatestRelease tests release metadata retrieval
func TestClient_LatestRelease(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/noctalia-dev/noctalia-shell/releases/latest" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"tag_name":"v3.1.0","tarball_url":"https://example.test/tarball/v3.1.0"}`))
	}))
	defer server.Close()

	client := github.NewClient(github.WithBaseURL(server.URL))
	rel, err := client.LatestRelease(context.Background())
	if err != nil {
		t.Fatalf("LatestRelease() error: %v", err)
	}
	if rel.TagName != "v3.1.0" || rel.TarballURL != "https://example.test/tarball/v3.1.0" {
		t.Errorf("unexpected release %+v", rel)
	}
}

// TestClient_LatestRelease_HTTPError tests non-2xx handling
func TestClient_LatestRelease_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := github.NewClient(github.WithBaseURL(server.URL))
	if _, err := client.LatestRelease(context.Background()); err == nil {
		t.Error("expected error for 404 response")
	}
}

// TestClient_Downloads tests archive staging for both channels
func TestClient_Downloads(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("tarball-bytes"))
	}))
	defer server.Close()

	t.Run("main snapshot", func(t *testing.T) {
		client := github.NewClient(github.WithSnapshotURL(server.URL + "/tar.gz/refs/heads/main"))
		path, err := client.DownloadMainSnapshot(context.Background())
		if err != nil {
			t.Fatalf("DownloadMainSnapshot() error: %v", err)
		}
		if filepath.Base(path) != "noctalia-shell-main.tar.gz" {
			t.Errorf("unexpected filename %s", path)
		}
		assertFileContent(t, path, "tarball-bytes")
	})

	t.Run("release tarball named after tag", func(t *testing.T) {
		client := github.NewClient()
		info := domain.ReleaseInfo{TagName: "v3.1.0", TarballURL: server.URL + "/tarball/v3.1.0"}
		path, err := client.DownloadRelease(context.Background(), info)
		if err != nil {
			t.Fatalf("DownloadRelease() error: %v", err)
		}
		if filepath.Base(path) != "noctalia-shell-v3.1.0.tar.gz" {
			t.Errorf("unexpected filename %s", path)
		}
		if filepath.Dir(path) != filepath.Join(home, "Downloads") {
			t.Errorf("expected staging under Downloads, got %s", path)
		}
	})
}

func assertFileContent(t *testing.T, path, want string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	if string(data) != want {
		t.Errorf("file content = %q, want %q", data, want)
	}
}
