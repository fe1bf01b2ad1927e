package domain

// Manifest declares the packages a project wants installed.
type Manifest struct {
	Project  string
	Packages []PackageRequest
}

// PackageRequest is a single manifest entry: a package name and the version
// requested for it.
type PackageRequest struct {
	Name    string
	Version Version
}
