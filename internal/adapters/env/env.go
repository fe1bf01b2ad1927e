// Package env resolves account credentials from the process environment
// and the project's .env file.
package env

import (
	"os"
	"sync"

	"go.trai.ch/wpmdb/internal/core/domain"
	"go.trai.ch/zerr"
)

// Source implements ports.CredentialSource.
// Process environment variables always win; the project's .env file only
// fills in variables the environment leaves unset. The .env file is read
// at most once per project root.
type Source struct {
	mu     sync.Mutex
	loaded map[string]map[string]string
}

// NewSource creates a new credential source.
func NewSource() *Source {
	return &Source{loaded: make(map[string]map[string]string)}
}

// Credentials returns the licence key and site URL for the project rooted
// at root. The site URL is normalized by stripping its scheme.
func (s *Source) Credentials(root string) (domain.Credentials, error) {
	licenceKey, err := s.lookup(root, domain.EnvLicenceKey)
	if err != nil {
		return domain.Credentials{}, err
	}
	if licenceKey == "" {
		return domain.Credentials{}, domain.ErrMissingLicenceKey
	}

	siteURL, err := s.lookup(root, domain.EnvSiteURL)
	if err != nil {
		return domain.Credentials{}, err
	}
	if siteURL == "" {
		return domain.Credentials{}, domain.ErrMissingSiteURL
	}

	return domain.Credentials{
		LicenceKey: licenceKey,
		SiteURL:    domain.StripScheme(siteURL),
	}, nil
}

// lookup resolves a single variable, preferring the process environment.
func (s *Source) lookup(root, key string) (string, error) {
	if v, ok := os.LookupEnv(key); ok {
		return v, nil
	}

	values, err := s.dotenvValues(root)
	if err != nil {
		return "", err
	}
	return values[key], nil
}

// dotenvValues returns the parsed .env values for root, reading the file
// on first use. A missing .env file yields an empty map.
func (s *Source) dotenvValues(root string) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if values, ok := s.loaded[root]; ok {
		return values, nil
	}

	values := make(map[string]string)
	content, err := os.ReadFile(domain.DotenvPath(root))
	switch {
	case err == nil:
		if err := parseDotenv(values, content, domain.DotenvFileName); err != nil {
			return nil, err
		}
	case !os.IsNotExist(err):
		readErr := zerr.Wrap(err, domain.ErrDotenvParseFailed.Error())
		return nil, zerr.With(readErr, "file", domain.DotenvFileName)
	}

	s.loaded[root] = values
	return values, nil
}
