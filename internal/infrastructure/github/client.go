// Package github resolves the shell's latest-version metadata and
// downloads its archives from the upstream repository.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/noctalia-dev/noctalia-cli/internal/domain"
	"github.com/noctalia-dev/noctalia-cli/internal/pkg/filesystem"
	"github.com/noctalia-dev/noctalia-cli/internal/ports"
)

const (
	defaultBaseURL = "https://api.github.com"
	repoPath       = "/repos/noctalia-dev/noctalia-shell"

	// codeloadMainURL is the fixed tarball location for git-main snapshots.
	codeloadMainURL = "https://codeload.github.com/noctalia-dev/noctalia-shell/tar.gz/refs/heads/main"

	userAgent = "noctalia-cli (+https://github.com/noctalia-dev/noctalia)"

	snapshotFilename = "noctalia-shell-main.tar.gz"
)

type (
	// Client queries the GitHub API for the shell repository and streams
	// archive downloads to the staging directory.
	Client struct {
		httpClient  *http.Client
		baseURL     string
		snapshotURL string
	}

	// Option configures a Client during construction.
	Option func(*Client)

	commitInfo struct {
		SHA string `json:"sha"`
	}

	releaseInfo struct {
		TagName    string `json:"tag_name"`
		TarballURL string `json:"tarball_url"`
	}
)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(g *Client) {
		g.httpClient = c
	}
}

// WithBaseURL overrides the API base URL, primarily for test servers.
func WithBaseURL(base string) Option {
	return func(g *Client) {
		g.baseURL = base
	}
}

// WithSnapshotURL overrides the git-main tarball URL, primarily for test
// servers.
func WithSnapshotURL(url string) Option {
	return func(g *Client) {
		g.snapshotURL = url
	}
}

// NewClient builds a client against the real GitHub endpoints.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient:  http.DefaultClient,
		baseURL:     defaultBaseURL,
		snapshotURL: codeloadMainURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LatestCommitSHA fetches the full hash of the newest commit on main.
func (c *Client) LatestCommitSHA(ctx context.Context) (string, error) {
	var commit commitInfo
	if err := c.getJSON(ctx, c.baseURL+repoPath+"/commits/main", &commit); err != nil {
		return "", err
	}
	if commit.SHA == "" {
		return "", fmt.Errorf("commit response missing sha")
	}
	return commit.SHA, nil
}

// LatestRelease fetches the newest tagged release's identity.
func (c *Client) LatestRelease(ctx context.Context) (domain.ReleaseInfo, error) {
	var rel releaseInfo
	if err := c.getJSON(ctx, c.baseURL+repoPath+"/releases/latest", &rel); err != nil {
		return domain.ReleaseInfo{}, err
	}
	if rel.TagName == "" || rel.TarballURL == "" {
		return domain.ReleaseInfo{}, fmt.Errorf("release response missing tag_name or tarball_url")
	}
	return domain.ReleaseInfo{TagName: rel.TagName, TarballURL: rel.TarballURL}, nil
}

// DownloadMainSnapshot downloads the git-main tarball and returns its
// local path.
func (c *Client) DownloadMainSnapshot(ctx context.Context) (string, error) {
	return c.download(ctx, c.snapshotURL, snapshotFilename)
}

// DownloadRelease downloads a release tarball and returns its local path.
func (c *Client) DownloadRelease(ctx context.Context, info domain.ReleaseInfo) (string, error) {
	return c.download(ctx, info.TarballURL, fmt.Sprintf("noctalia-shell-%s.tar.gz", info.TagName))
}

func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	resp, err := c.get(ctx, url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}

// download streams the response body to a deterministic filename in the
// staging directory, truncating any previous download of the same name.
func (c *Client) download(ctx context.Context, url, filename string) (string, error) {
	resp, err := c.get(ctx, url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	out := filepath.Join(stagingDir(), filename)
	file, err := os.Create(out)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", out, err)
	}
	defer file.Close()

	if _, err := io.Copy(file, resp.Body); err != nil {
		return "", fmt.Errorf("write %s: %w", out, err)
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, fmt.Errorf("GET %s: http %s", url, resp.Status)
	}
	return resp, nil
}

// stagingDir prefers $HOME/Downloads, creating it when missing, and falls
// back to /tmp.
func stagingDir() string {
	dir := filepath.Join(filesystem.UserHomeDir(), "Downloads")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return os.TempDir()
	}
	return dir
}

var _ ports.ReleaseFetcher = (*Client)(nil)
