package ports

import "go.trai.ch/wpmdb/internal/core/domain"

// ManifestLoader defines the interface for loading the package manifest.
//
//go:generate mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestLoader interface {
	// Load reads the manifest from the given working directory and returns
	// the validated package requests.
	Load(cwd string) (*domain.Manifest, error)

	// DiscoverRoot walks up from cwd to find the project root.
	// Returns the directory containing the manifest file.
	DiscoverRoot(cwd string) (string, error)
}
