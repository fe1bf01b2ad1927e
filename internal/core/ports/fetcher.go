package ports

import (
	"context"

	"go.trai.ch/wpmdb/internal/core/domain"
)

// Fetcher defines the interface for downloading distribution archives.
//
//go:generate mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks
type Fetcher interface {
	// Fetch downloads the archive behind the distribution URL to dest,
	// authenticating with the given credentials. The credentials are
	// carried as request parameters and must never surface in returned
	// errors or logs.
	Fetch(ctx context.Context, url domain.DistURL, creds domain.Credentials, dest string) error
}
