package domain

// DistBaseURL is the vendor endpoint serving plugin archives.
const DistBaseURL = "https://deliciousbrains.com/dl/"

// DistURL is a canonical, credential-free distribution URL. It is safe to
// persist in the lockfile and to log.
type DistURL string

// String returns the URL as a plain string.
func (u DistURL) String() string {
	return string(u)
}

// archivePrefix returns the file name prefix the vendor uses for a variant.
func (v Variant) archivePrefix() string {
	switch v {
	case VariantCLI:
		return "wp-migrate-db-pro-cli-"
	case VariantMediaFiles:
		return "wp-migrate-db-pro-media-files-"
	default:
		return "wp-migrate-db-pro-"
	}
}

// BuildDistURL assembles the canonical distribution URL for a version and
// variant by plain string concatenation. Wildcard versions render as the
// vendor's "latest" alias.
func BuildDistURL(v Version, variant Variant) DistURL {
	return DistURL(DistBaseURL + variant.archivePrefix() + v.DistLabel() + ".zip")
}
