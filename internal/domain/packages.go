package domain

// PackageCandidate maps one generic dependency name onto a distribution's
// native package name. An empty Native name means the dependency is not
// available in the distribution's default repositories.
type PackageCandidate struct {
	Generic string
	Native  string
}

// Available reports whether the dependency can be installed from the
// distribution's default repositories.
func (p PackageCandidate) Available() bool {
	return p.Native != ""
}

// PackageMapping is the resolved dependency list for one distribution
// family, in the fixed dependency order.
type PackageMapping []PackageCandidate
