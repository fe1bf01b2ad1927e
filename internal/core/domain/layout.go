package domain

import "path/filepath"

const (
	// ManifestFileName is the name of the project manifest file.
	ManifestFileName = "wpmdb.yaml"

	// LockFileName is the name of the lockfile pinning resolved distribution URLs.
	LockFileName = "wpmdb.lock.json"

	// WpmdbDirName is the name of the internal workspace directory.
	WpmdbDirName = ".wpmdb"

	// ArtifactsDirName is the name of the downloaded archive directory.
	ArtifactsDirName = "artifacts"

	// DotenvFileName is the name of the optional credentials file in the project root.
	DotenvFileName = ".env"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// ManifestPath returns the manifest path under the given project root.
func ManifestPath(root string) string {
	return filepath.Join(root, ManifestFileName)
}

// LockPath returns the lockfile path under the given project root.
func LockPath(root string) string {
	return filepath.Join(root, LockFileName)
}

// WpmdbPath returns the internal workspace directory under the given project root.
func WpmdbPath(root string) string {
	return filepath.Join(root, WpmdbDirName)
}

// ArtifactsPath returns the archive directory under the given project root.
// It joins .wpmdb and artifacts.
func ArtifactsPath(root string) string {
	return filepath.Join(root, WpmdbDirName, ArtifactsDirName)
}

// DotenvPath returns the .env path under the given project root.
func DotenvPath(root string) string {
	return filepath.Join(root, DotenvFileName)
}
