package domain

import "strings"

const (
	// EnvLicenceKey is the environment variable holding the licence key.
	EnvLicenceKey = "WPMDB_LICENCE_KEY"

	// EnvSiteURL is the environment variable holding the licensed site URL.
	EnvSiteURL = "WPMDB_SITE_URL"
)

// Credentials authorize downloads from the vendor. Both values are secrets
// in the sense that the composed download URL embeds them; they must never
// reach the lockfile, logs, spans or error messages.
type Credentials struct {
	LicenceKey string
	SiteURL    string
}

// StripScheme removes a single leading http:// or https:// from a site URL,
// case-insensitively. The vendor expects the site_url parameter without a
// scheme.
func StripScheme(siteURL string) string {
	for _, scheme := range []string{"https://", "http://"} {
		if len(siteURL) >= len(scheme) && strings.EqualFold(siteURL[:len(scheme)], scheme) {
			return siteURL[len(scheme):]
		}
	}
	return siteURL
}
