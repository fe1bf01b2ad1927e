package domain

// LockSchemaVersion is the current lockfile schema version.
const LockSchemaVersion = 1

// Lockfile pins the packages of a project to canonical distribution URLs.
// It never contains credentials or composed download URLs.
type Lockfile struct {
	Version  int         `json:"version"`
	Project  string      `json:"project"`
	Packages []LockEntry `json:"packages"`
}

// LockEntry records one resolved package. Version holds the resolved label
// ("latest" for wildcard requests). Digest is empty until the first
// successful install computes it.
type LockEntry struct {
	Name    string  `json:"name"`
	Version string  `json:"version"`
	Variant Variant `json:"variant"`
	URL     DistURL `json:"url"`
	Digest  string  `json:"digest,omitempty"`
}

// Entry returns the lock entry for the given package name.
func (l *Lockfile) Entry(name string) (*LockEntry, bool) {
	for i := range l.Packages {
		if l.Packages[i].Name == name {
			return &l.Packages[i], true
		}
	}
	return nil, false
}

// MatchesManifest reports whether the lockfile still pins exactly the
// packages the manifest requests. A package set, version or URL change
// makes the lock stale.
func (l *Lockfile) MatchesManifest(m *Manifest) bool {
	if l == nil || m == nil {
		return false
	}
	if l.Project != m.Project || len(l.Packages) != len(m.Packages) {
		return false
	}

	for _, req := range m.Packages {
		entry, ok := l.Entry(req.Name)
		if !ok {
			return false
		}
		variant := ClassifyVariant(req.Name)
		if entry.Version != req.Version.DistLabel() ||
			entry.Variant != variant ||
			entry.URL != BuildDistURL(req.Version, variant) {
			return false
		}
	}
	return true
}
