// Package archive replaces an installation directory with the contents of
// a downloaded tar.gz, stripping the synthetic wrapper directory GitHub
// puts around repository snapshots. Targets under the system path are
// applied through the privilege helper; the extraction itself always runs
// with the caller's own rights in a staging directory so the privileged
// surface stays one copy-and-replace command.
package archive

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/noctalia-dev/noctalia-cli/internal/ports"
)

// gitMainWrapper is the wrapper directory name codeload produces for
// main-branch snapshots. Release tarballs use an unpredictable name.
const gitMainWrapper = "noctalia-shell-main"

// systemPrefix marks targets that the invoking user cannot write to
// directly.
const systemPrefix = "/etc"

// Installer applies downloaded archives to installation targets.
type Installer struct {
	Runner ports.CommandRunner
	UI     ports.UI
	Logger ports.Logger
}

// NewInstaller builds an archive installer.
func NewInstaller(runner ports.CommandRunner, ui ports.UI, log ports.Logger) *Installer {
	return &Installer{Runner: runner, UI: ui, Logger: log}
}

// Apply destroys any previous installation at target and replaces it with
// the archive's normalized contents, electing the elevated strategy when
// the target lives under the system path. The archive file is deleted
// after success; deletion failure is non-fatal.
func (in *Installer) Apply(ctx context.Context, target string, archivePath string) error {
	var err error
	if strings.HasPrefix(target, systemPrefix) {
		err = in.applyElevated(ctx, target, archivePath)
	} else {
		err = in.applyDirect(target, archivePath)
	}
	if err != nil {
		return err
	}

	if rmErr := os.Remove(archivePath); rmErr != nil && in.Logger != nil {
		in.Logger.Warn("could not remove downloaded archive", map[string]interface{}{
			"path": archivePath, "err": rmErr.Error(),
		})
	}
	return nil
}

// applyDirect performs remove-recreate-extract-strip with the caller's
// own filesystem permissions.
func (in *Installer) applyDirect(target, archivePath string) error {
	if err := os.RemoveAll(target); err != nil {
		return fmt.Errorf("remove existing installation: %w", err)
	}
	if err := os.MkdirAll(target, 0o755); err != nil {
		return fmt.Errorf("create target directory: %w", err)
	}
	if err := untar(archivePath, target); err != nil {
		return err
	}
	return normalize(target)
}

// applyElevated stages the extraction in a process-scoped temporary
// directory with user rights, then replaces the target through a single
// elevated shell command with every path quoted.
func (in *Installer) applyElevated(ctx context.Context, target, archivePath string) error {
	stage, err := os.MkdirTemp("", fmt.Sprintf("noctalia-shell-%d-", os.Getpid()))
	if err != nil {
		return fmt.Errorf("create staging directory: %w", err)
	}
	defer os.RemoveAll(stage)

	if err := untar(archivePath, stage); err != nil {
		return err
	}
	if err := normalize(stage); err != nil {
		return err
	}

	cmd := fmt.Sprintf("rm -rf %s && mkdir -p %s && cp -R %s %s",
		ShellQuote(target),
		ShellQuote(filepath.Dir(target)),
		ShellQuote(stage+"/."),
		ShellQuote(target))

	in.UI.Info("Elevating with sudo. You may be prompted for your password.")
	if err := in.Runner.Run(ctx, "sudo", "sh", "-c", cmd); err != nil {
		return fmt.Errorf("install files with elevated permissions: %w", err)
	}
	return nil
}

// untar unpacks a gzip-compressed tar into dir, rejecting entries that
// would escape it.
func untar(archivePath, dir string) error {
	file, err := os.Open(archivePath)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer file.Close()

	gz, err := gzip.NewReader(file)
	if err != nil {
		return fmt.Errorf("decompress archive: %w", err)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read archive: %w", err)
		}

		dest, err := securePath(dir, header.Name)
		if err != nil {
			return err
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(dest, os.FileMode(header.Mode).Perm()|0o700); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := writeFile(dest, tr, os.FileMode(header.Mode).Perm()); err != nil {
				return err
			}
		case tar.TypeSymlink:
			if err := secureLinkname(dir, dest, header.Linkname); err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
				return err
			}
			if err := os.Symlink(header.Linkname, dest); err != nil {
				return err
			}
		default:
			// pax headers and other metadata entries carry no content.
		}
	}
}

func writeFile(dest string, r io.Reader, mode os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func securePath(dir, name string) (string, error) {
	dest := filepath.Join(dir, name)
	if !strings.HasPrefix(dest, filepath.Clean(dir)+string(os.PathSeparator)) {
		return "", fmt.Errorf("archive entry escapes target directory: %s", name)
	}
	return dest, nil
}

// secureLinkname rejects symlink entries whose target lands outside the
// extraction root. Without this, a symlink to an outside directory followed
// by a file entry routed through it would defeat the path check on names.
func secureLinkname(dir, dest, linkname string) error {
	if filepath.IsAbs(linkname) {
		return fmt.Errorf("archive symlink points outside target directory: %s", linkname)
	}
	resolved := filepath.Join(filepath.Dir(dest), linkname)
	root := filepath.Clean(dir)
	if resolved != root && !strings.HasPrefix(resolved, root+string(os.PathSeparator)) {
		return fmt.Errorf("archive symlink points outside target directory: %s", linkname)
	}
	return nil
}

// normalize strips the single synthetic top-level directory that GitHub
// archives wrap their content in. The known git-main wrapper name is
// checked first; otherwise a lone top-level directory is treated as the
// wrapper regardless of name. Trees without a wrapper are left as
// extracted.
func normalize(root string) error {
	wrapper := filepath.Join(root, gitMainWrapper)
	if fi, err := os.Stat(wrapper); err == nil && fi.IsDir() {
		return hoist(root, wrapper)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return err
	}
	if len(entries) == 1 && entries[0].IsDir() {
		return hoist(root, filepath.Join(root, entries[0].Name()))
	}
	return nil
}

// hoist moves every child of wrapper up into root and removes the
// then-empty wrapper.
func hoist(root, wrapper string) error {
	entries, err := os.ReadDir(wrapper)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if err := os.Rename(filepath.Join(wrapper, entry.Name()), filepath.Join(root, entry.Name())); err != nil {
			return fmt.Errorf("hoist %s: %w", entry.Name(), err)
		}
	}
	return os.Remove(wrapper)
}

var _ ports.ArchiveInstaller = (*Installer)(nil)
