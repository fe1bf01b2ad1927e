// Package lockstore persists the lockfile as JSON on disk.
package lockstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/wpmdb/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.LockStore using a JSON file in the project root.
type Store struct{}

// NewStore creates a new lockfile store.
func NewStore() *Store {
	return &Store{}
}

// Load reads the lockfile from the project root.
// Returns nil, nil if no lockfile exists.
func (s *Store) Load(root string) (*domain.Lockfile, error) {
	content, err := os.ReadFile(domain.LockPath(root))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrLockReadFailed.Error())
	}

	var lock domain.Lockfile
	if err := json.Unmarshal(content, &lock); err != nil {
		return nil, zerr.Wrap(err, domain.ErrLockParseFailed.Error())
	}

	if lock.Version != domain.LockSchemaVersion {
		return nil, zerr.With(domain.ErrLockSchemaUnsupported, "schema_version", lock.Version)
	}

	return &lock, nil
}

// Save writes the lockfile to the project root atomically.
// Entries are sorted by package name for stable output.
func (s *Store) Save(root string, lock *domain.Lockfile) error {
	sorted := *lock
	sorted.Packages = slices.Clone(lock.Packages)
	slices.SortFunc(sorted.Packages, func(a, b domain.LockEntry) int {
		return strings.Compare(a.Name, b.Name)
	})

	data, err := json.MarshalIndent(&sorted, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrLockMarshalFailed.Error())
	}
	data = append(data, '\n')

	if err := atomicWriteFile(domain.LockPath(root), data); err != nil {
		return zerr.Wrap(err, domain.ErrLockWriteFailed.Error())
	}

	return nil
}

// atomicWriteFile writes data to a file atomically by writing to a temp file and renaming it.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, "wpmdb-lock-*.json")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
