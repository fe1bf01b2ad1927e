// Package urlquery manipulates query parameters on distribution URLs with
// plain string operations, leaving the rest of the URL byte-for-byte intact.
package urlquery

import (
	"net/url"
	"regexp"
	"strings"

	"go.trai.ch/wpmdb/internal/core/domain"
)

// Query parameter names the vendor download endpoint expects.
const (
	ParamLicenceKey = "licence_key"
	ParamSiteURL    = "site_url"
)

// RemoveParameter strips every ampersand-prefixed occurrence of the named
// parameter from u. A parameter attached with '?' is left in place, so the
// first parameter of a URL survives removal. The input is returned
// unchanged when nothing matches.
func RemoveParameter(u, name string) string {
	re := regexp.MustCompile(`&` + regexp.QuoteMeta(name) + `=[^&]*`)
	return re.ReplaceAllString(u, "")
}

// AddParameter appends name=value to u, removing any ampersand-prefixed
// occurrence of name first. The separator is '?' when the URL carries no
// '?' yet, '&' otherwise. Only the value is URL-encoded; the name is
// appended verbatim.
func AddParameter(u, name, value string) string {
	u = RemoveParameter(u, name)

	sep := "&"
	if !strings.Contains(u, "?") {
		sep = "?"
	}
	return u + sep + name + "=" + url.QueryEscape(value)
}

// ComposeFetchURL builds the authenticated download URL for a canonical
// distribution URL: licence_key is appended first, site_url second. The
// result embeds credentials and is ephemeral; it must not be persisted,
// logged or attached to spans.
func ComposeFetchURL(dist domain.DistURL, creds domain.Credentials) string {
	u := AddParameter(dist.String(), ParamLicenceKey, creds.LicenceKey)
	return AddParameter(u, ParamSiteURL, creds.SiteURL)
}
