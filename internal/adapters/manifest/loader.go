// Package manifest provides the package manifest loader for wpmdb.
package manifest

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"go.trai.ch/wpmdb/internal/core/domain"
	"go.trai.ch/wpmdb/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ManifestLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

var validProjectNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// Load reads the manifest for the given working directory and returns the
// validated package requests.
func (l *Loader) Load(cwd string) (*domain.Manifest, error) {
	manifestPath, err := l.findManifest(cwd)
	if err != nil {
		return nil, err
	}

	var file ManifestFile
	if err := readAndDecodeYAML(manifestPath, &file); err != nil {
		return nil, err
	}

	return l.buildManifest(&file)
}

// DiscoverRoot walks up from cwd to find the project root.
// Returns the directory containing the manifest file.
func (l *Loader) DiscoverRoot(cwd string) (string, error) {
	manifestPath, err := l.findManifest(cwd)
	if err != nil {
		return "", err
	}
	return filepath.Dir(manifestPath), nil
}

func (l *Loader) findManifest(cwd string) (string, error) {
	currentDir := cwd

	for {
		manifestPath := filepath.Join(currentDir, domain.ManifestFileName)
		if _, err := os.Stat(manifestPath); err == nil {
			return manifestPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrManifestNotFound, "cwd", cwd)
}

func (l *Loader) buildManifest(file *ManifestFile) (*domain.Manifest, error) {
	if file.Project == "" {
		return nil, domain.ErrMissingProjectName
	}
	if !validProjectNameRegex.MatchString(file.Project) {
		return nil, zerr.With(domain.ErrInvalidProjectName, "project_name", file.Project)
	}

	if len(file.Packages) == 0 {
		l.Logger.Warn("manifest declares no packages")
	}

	seen := make(map[string]bool, len(file.Packages))
	packages := make([]domain.PackageRequest, 0, len(file.Packages))

	for _, dto := range file.Packages {
		if dto == nil || dto.Name == "" {
			return nil, domain.ErrMissingPackageName
		}
		if seen[dto.Name] {
			return nil, zerr.With(domain.ErrDuplicatePackage, "package", dto.Name)
		}
		seen[dto.Name] = true

		version, err := domain.ParseVersion(dto.Version)
		if err != nil {
			return nil, zerr.With(err, "package", dto.Name)
		}

		packages = append(packages, domain.PackageRequest{
			Name:    dto.Name,
			Version: version,
		})
	}

	return &domain.Manifest{
		Project:  file.Project,
		Packages: packages,
	}, nil
}

// readAndDecodeYAML reads a YAML file and decodes it strictly into the
// target struct. Unknown fields are rejected.
func readAndDecodeYAML[T any](manifestPath string, target *T) error {
	// #nosec G304 -- manifestPath is discovered relative to the working directory
	content, err := os.ReadFile(manifestPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrManifestReadFailed.Error())
	}

	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)

	if err := dec.Decode(target); err != nil {
		// An empty manifest decodes to the zero value
		if errors.Is(err, io.EOF) {
			return nil
		}
		return zerr.Wrap(err, domain.ErrManifestParseFailed.Error())
	}

	return nil
}
