package ports

import "go.trai.ch/wpmdb/internal/core/domain"

// CredentialSource defines the interface for resolving account credentials.
//
//go:generate mockgen -source=environment.go -destination=mocks/mock_environment.go -package=mocks
type CredentialSource interface {
	// Credentials returns the licence key and site URL for the project
	// rooted at root. Values come from the process environment, falling
	// back to the project's .env file for variables the environment does
	// not set.
	Credentials(root string) (domain.Credentials, error)
}
