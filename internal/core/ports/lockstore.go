package ports

import "go.trai.ch/wpmdb/internal/core/domain"

// LockStore defines the interface for reading and writing the lockfile.
//
//go:generate mockgen -source=lockstore.go -destination=mocks/mock_lockstore.go -package=mocks
type LockStore interface {
	// Load reads the lockfile from the project root.
	// Returns nil, nil if no lockfile exists.
	Load(root string) (*domain.Lockfile, error)

	// Save writes the lockfile to the project root.
	Save(root string, lock *domain.Lockfile) error
}
