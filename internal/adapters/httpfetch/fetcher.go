// Package httpfetch implements the Fetcher port against the vendor download endpoint.
package httpfetch

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/wpmdb/internal/core/domain"
	"go.trai.ch/wpmdb/internal/core/domain/urlquery"
	"go.trai.ch/wpmdb/internal/core/ports"
	"go.trai.ch/zerr"
)

const httpClientTimeout = 5 * time.Minute

var _ ports.Fetcher = (*Fetcher)(nil)

// Fetcher downloads plugin archives over HTTP.
type Fetcher struct {
	httpClient *http.Client
}

// NewFetcher creates a new Fetcher.
func NewFetcher() *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: httpClientTimeout,
		},
	}
}

// newFetcherWithClient creates a Fetcher with a custom http client (used for testing).
func newFetcherWithClient(client *http.Client) *Fetcher {
	return &Fetcher{httpClient: client}
}

// Fetch downloads the archive behind dist into dest. The request URL carries
// the credentials as query parameters; transport errors embed that URL, so
// they are reduced to their cause before wrapping. Only the canonical
// distribution URL is attached to errors.
func (f *Fetcher) Fetch(ctx context.Context, dist domain.DistURL, creds domain.Credentials, dest string) error {
	fetchURL := urlquery.ComposeFetchURL(dist, creds)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fetchURL, http.NoBody)
	if err != nil {
		reqErr := zerr.Wrap(stripRequestURL(err), domain.ErrFetchRequestFailed.Error())
		return zerr.With(reqErr, "url", dist.String())
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		fetchErr := zerr.Wrap(stripRequestURL(err), domain.ErrFetchFailed.Error())
		return zerr.With(fetchErr, "url", dist.String())
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		statusErr := zerr.With(domain.ErrUnexpectedStatus, "status_code", resp.StatusCode)
		return zerr.With(statusErr, "url", dist.String())
	}

	if err := writeArtifact(resp.Body, dest); err != nil {
		return zerr.With(err, "url", dist.String())
	}

	return nil
}

// stripRequestURL reduces url.Error values to their underlying cause. Their
// string form repeats the full request URL, credentials included.
func stripRequestURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err
	}
	return err
}

// writeArtifact streams body to dest by writing to a temp file in the same
// directory and renaming it into place.
func writeArtifact(body io.Reader, dest string) error {
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrArtifactDirCreateFailed.Error())
	}

	tmpFile, err := os.CreateTemp(dir, "wpmdb-dl-*.zip")
	if err != nil {
		return zerr.Wrap(err, domain.ErrArtifactWriteFailed.Error())
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := io.Copy(tmpFile, body); err != nil {
		_ = tmpFile.Close()
		return zerr.Wrap(err, domain.ErrArtifactWriteFailed.Error())
	}

	if err := tmpFile.Close(); err != nil {
		return zerr.Wrap(err, domain.ErrArtifactWriteFailed.Error())
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrArtifactWriteFailed.Error())
	}

	if err := os.Rename(tmpName, dest); err != nil {
		return zerr.Wrap(err, domain.ErrArtifactWriteFailed.Error())
	}

	return nil
}
