package domain

import "go.trai.ch/zerr"

var (
	// ErrManifestNotFound is returned when no manifest can be found walking up from the working directory.
	ErrManifestNotFound = zerr.New("could not find " + ManifestFileName)

	// ErrManifestReadFailed is returned when the manifest file cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest")

	// ErrManifestParseFailed is returned when the manifest file cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse manifest")

	// ErrMissingProjectName is returned when a manifest has no project name.
	ErrMissingProjectName = zerr.New("missing project name")

	// ErrInvalidProjectName is returned when a project name is invalid.
	ErrInvalidProjectName = zerr.New("project name must start with a letter or digit and contain only lowercase letters, digits, dots, hyphens and underscores")

	// ErrMissingPackageName is returned when a manifest entry has no package name.
	ErrMissingPackageName = zerr.New("missing package name")

	// ErrDuplicatePackage is returned when a manifest lists the same package twice.
	ErrDuplicatePackage = zerr.New("duplicate package")

	// ErrInvalidVersion is returned when a version string is not '*' or dotted numeric form.
	ErrInvalidVersion = zerr.New("invalid version, expected MAJOR.MINOR.PATCH, MAJOR.MINOR.PATCH.BUILD or *")

	// ErrLockReadFailed is returned when the lockfile cannot be read.
	ErrLockReadFailed = zerr.New("failed to read lockfile")

	// ErrLockParseFailed is returned when the lockfile cannot be unmarshaled.
	ErrLockParseFailed = zerr.New("failed to parse lockfile")

	// ErrLockSchemaUnsupported is returned when the lockfile schema version is not supported.
	ErrLockSchemaUnsupported = zerr.New("unsupported lockfile schema version")

	// ErrLockMarshalFailed is returned when the lockfile cannot be marshaled.
	ErrLockMarshalFailed = zerr.New("failed to marshal lockfile")

	// ErrLockWriteFailed is returned when the lockfile cannot be written.
	ErrLockWriteFailed = zerr.New("failed to write lockfile")

	// ErrMissingLicenceKey is returned at install time when no licence key is configured.
	ErrMissingLicenceKey = zerr.New("licence key not set, define " + EnvLicenceKey + " in the environment or .env")

	// ErrMissingSiteURL is returned at install time when no site URL is configured.
	ErrMissingSiteURL = zerr.New("site URL not set, define " + EnvSiteURL + " in the environment or .env")

	// ErrDotenvParseFailed is returned when the .env file cannot be parsed.
	ErrDotenvParseFailed = zerr.New("failed to parse .env file")

	// ErrInstallFailed is returned when one or more package downloads fail.
	ErrInstallFailed = zerr.New("package installation failed")

	// ErrFetchRequestFailed is returned when a download request cannot be built.
	ErrFetchRequestFailed = zerr.New("failed to build download request")

	// ErrFetchFailed is returned when a download request fails in transit.
	ErrFetchFailed = zerr.New("download failed")

	// ErrUnexpectedStatus is returned when the vendor responds with a non-OK status.
	ErrUnexpectedStatus = zerr.New("unexpected response status")

	// ErrArtifactDirCreateFailed is returned when the artifacts directory cannot be created.
	ErrArtifactDirCreateFailed = zerr.New("failed to create artifacts directory")

	// ErrArtifactWriteFailed is returned when a downloaded archive cannot be written to disk.
	ErrArtifactWriteFailed = zerr.New("failed to write artifact")

	// ErrDigestComputeFailed is returned when an artifact digest cannot be computed.
	ErrDigestComputeFailed = zerr.New("failed to compute artifact digest")

	// ErrDigestMismatch is returned when a downloaded artifact does not match the locked digest.
	ErrDigestMismatch = zerr.New("artifact digest mismatch")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")
)
