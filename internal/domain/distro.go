package domain

// DistroFamily classifies the host Linux distribution into the bucket
// that determines which native package manager commands apply.
type DistroFamily string

const (
	DistroArch    DistroFamily = "arch"
	DistroFedora  DistroFamily = "fedora"
	DistroDebian  DistroFamily = "debian"
	DistroGentoo  DistroFamily = "gentoo"
	DistroVoid    DistroFamily = "void"
	DistroUnknown DistroFamily = "unknown"
)

// String implements fmt.Stringer.
func (f DistroFamily) String() string {
	return string(f)
}

// DisplayName returns the human-facing name used in terminal messages.
func (f DistroFamily) DisplayName() string {
	switch f {
	case DistroArch:
		return "Arch"
	case DistroFedora:
		return "Fedora"
	case DistroDebian:
		return "Debian/Ubuntu"
	case DistroGentoo:
		return "Gentoo"
	case DistroVoid:
		return "Void"
	}
	return "unknown"
}
