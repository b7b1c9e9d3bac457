package domain

// ComponentShell is the only component currently managed by the CLI.
const ComponentShell = "shell"

// SourceKind identifies which upstream channel a component tracks.
type SourceKind string

const (
	SourceRelease SourceKind = "release"
	SourceGit     SourceKind = "git"
)

// String implements fmt.Stringer.
func (s SourceKind) String() string {
	return string(s)
}

// Valid reports whether s is a recognized source kind.
func (s SourceKind) Valid() bool {
	return s == SourceRelease || s == SourceGit
}

// ComponentRecord is the persisted install state of one component.
// Version is opaque: a release tag when Source is release, a full commit
// hash when Source is git. It is only comparable against markers fetched
// from the same source kind.
type ComponentRecord struct {
	Source    SourceKind `yaml:"source"`
	Installed bool       `yaml:"installed"`
	Version   string     `yaml:"version,omitempty"`
}

// Config is the full on-disk CLI state: a mapping from component name to
// its record. It is loaded at the start of every command, mutated in
// memory, and written back in full.
type Config struct {
	Components map[string]ComponentRecord `yaml:"components"`
}

func (c *Config) record(name string) ComponentRecord {
	if rec, ok := c.Components[name]; ok {
		return rec
	}
	return ComponentRecord{Source: SourceRelease}
}

func (c *Config) put(name string, rec ComponentRecord) {
	if c.Components == nil {
		c.Components = make(map[string]ComponentRecord)
	}
	c.Components[name] = rec
}

// SourceOf returns the persisted source for a component, if any.
func (c *Config) SourceOf(name string) (SourceKind, bool) {
	rec, ok := c.Components[name]
	if !ok || !rec.Source.Valid() {
		return "", false
	}
	return rec.Source, true
}

// SetSource records the source channel for a component, creating the
// record with defaults on first use.
func (c *Config) SetSource(name string, source SourceKind) {
	rec := c.record(name)
	rec.Source = source
	c.put(name, rec)
}

// Installed reports the persisted installed flag for a component.
func (c *Config) Installed(name string) bool {
	return c.Components[name].Installed
}

// SetInstalled records the installed flag for a component.
func (c *Config) SetInstalled(name string, installed bool) {
	rec := c.record(name)
	rec.Installed = installed
	c.put(name, rec)
}

// Version returns the persisted version marker, empty when unknown.
func (c *Config) Version(name string) string {
	return c.Components[name].Version
}

// SetVersion records the version marker for a component.
func (c *Config) SetVersion(name string, version string) {
	rec := c.record(name)
	rec.Version = version
	c.put(name, rec)
}

// ReconcileInstalled applies the self-healing policy for stale install
// state: when the filesystem shows an installation that the record does
// not, the record is promoted to installed. The policy is one-directional;
// missing filesystem evidence never demotes an installed record. Returns
// true when the config was changed and should be persisted.
func ReconcileInstalled(c *Config, name string, evidence bool) bool {
	if !evidence || c.Installed(name) {
		return false
	}
	c.SetInstalled(name, true)
	return true
}
