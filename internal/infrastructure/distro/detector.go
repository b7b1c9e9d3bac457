// Package distro classifies the host Linux distribution into the family
// that determines which native package manager applies.
package distro

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/noctalia-dev/noctalia-cli/internal/domain"
	"github.com/noctalia-dev/noctalia-cli/internal/ports"
)

// Detector reads /etc/os-release and falls back to distribution marker
// files. Both surfaces are overridable so tests can point at fixtures.
type Detector struct {
	OSReleasePath string
	MarkerRoot    string
}

// New builds a detector over the real filesystem.
func New() *Detector {
	return &Detector{OSReleasePath: "/etc/os-release", MarkerRoot: "/"}
}

// Detect classifies the host. The result is a pure function of the
// os-release content and the marker-file set; no process or network calls.
func (d *Detector) Detect() domain.DistroFamily {
	if data, err := os.ReadFile(d.OSReleasePath); err == nil {
		id, idLike := ParseOSRelease(string(data))
		if family := Classify(id, idLike); family != domain.DistroUnknown {
			return family
		}
	}
	return d.detectByMarkers()
}

// ParseOSRelease extracts the ID and ID_LIKE fields from os-release
// content, stripping surrounding quotes.
func ParseOSRelease(content string) (id, idLike string) {
	for _, line := range strings.Split(content, "\n") {
		switch {
		case strings.HasPrefix(line, "ID="):
			id = unquote(strings.TrimPrefix(line, "ID="))
		case strings.HasPrefix(line, "ID_LIKE="):
			idLike = unquote(strings.TrimPrefix(line, "ID_LIKE="))
		}
	}
	return id, idLike
}

// Classify maps an (ID, ID_LIKE) pair onto a distribution family: exact ID
// match first, including common derivatives, then ID_LIKE substring checks.
func Classify(id, idLike string) domain.DistroFamily {
	switch id {
	case "arch", "archlinux", "archarm", "archcraft", "cachyos", "Nyarch",
		"endeavouros", "manjaro", "manjaro-arm", "arcolinux", "artix", "garuda", "parabola":
		return domain.DistroArch
	case "void":
		return domain.DistroVoid
	case "fedora":
		return domain.DistroFedora
	case "debian", "ubuntu":
		return domain.DistroDebian
	case "gentoo":
		return domain.DistroGentoo
	}

	switch {
	case strings.Contains(idLike, "arch"):
		return domain.DistroArch
	case strings.Contains(idLike, "debian"), strings.Contains(idLike, "ubuntu"):
		return domain.DistroDebian
	case strings.Contains(idLike, "fedora"):
		return domain.DistroFedora
	}

	return domain.DistroUnknown
}

func (d *Detector) detectByMarkers() domain.DistroFamily {
	markers := []struct {
		path   string
		family domain.DistroFamily
	}{
		{"etc/arch-release", domain.DistroArch},
		{"etc/fedora-release", domain.DistroFedora},
		{"etc/redhat-release", domain.DistroFedora},
		{"etc/debian_version", domain.DistroDebian},
		{"etc/gentoo-release", domain.DistroGentoo},
	}
	for _, m := range markers {
		if _, err := os.Stat(filepath.Join(d.MarkerRoot, m.path)); err == nil {
			return m.family
		}
	}
	return domain.DistroUnknown
}

func unquote(value string) string {
	value = strings.TrimSpace(value)
	value = strings.Trim(value, `"`)
	return strings.Trim(value, `'`)
}

var _ ports.DistroDetector = (*Detector)(nil)
