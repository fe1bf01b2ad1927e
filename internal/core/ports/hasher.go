package ports

// Hasher defines the interface for computing file digests.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeFileDigest computes the digest of the file at path.
	ComputeFileDigest(path string) (string, error)
}
