// Package domain contains the core types for resolving and installing
// WP Migrate DB Pro distribution packages.
package domain

import (
	"regexp"

	"go.trai.ch/zerr"
)

// Wildcard is the version string requesting the newest published release.
const Wildcard = "*"

// latestLabel is the version segment vendor URLs use for wildcard requests.
const latestLabel = "latest"

// versionPattern matches dotted numeric versions: single-digit major and
// minor, one or two digit patch, and an optional single-digit build.
var versionPattern = regexp.MustCompile(`^\d\.\d\.\d{1,2}(\.\d)?$`)

// Version is a validated package version request. The zero value is invalid;
// use ParseVersion to construct one.
type Version struct {
	raw string
}

// ParseVersion validates raw and returns it as a Version.
// Accepted forms are the wildcard '*' and dotted numeric versions such as
// "2.6.10" or "1.0.5.2". Anything else returns ErrInvalidVersion.
func ParseVersion(raw string) (Version, error) {
	if raw == Wildcard {
		return Version{raw: raw}, nil
	}
	if !versionPattern.MatchString(raw) {
		return Version{}, zerr.With(ErrInvalidVersion, "version", raw)
	}
	return Version{raw: raw}, nil
}

// IsLatest reports whether the version is the wildcard request.
func (v Version) IsLatest() bool {
	return v.raw == Wildcard
}

// String returns the version as requested, including the literal wildcard.
func (v Version) String() string {
	return v.raw
}

// DistLabel returns the version segment used in distribution URLs and the
// lockfile: the literal version, or "latest" for the wildcard.
func (v Version) DistLabel() string {
	if v.IsLatest() {
		return latestLabel
	}
	return v.raw
}
