package httpfetch

import "net/http"

// NewFetcherWithClient exports the private constructor for testing purposes.
func NewFetcherWithClient(client *http.Client) *Fetcher {
	return newFetcherWithClient(client)
}
