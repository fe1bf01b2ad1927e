package manifest

// ManifestFile represents the structure of the wpmdb.yaml manifest file.
type ManifestFile struct {
	Project  string        `yaml:"project"`
	Packages []*PackageDTO `yaml:"packages"`
}

// PackageDTO represents a package request in the manifest.
type PackageDTO struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}
