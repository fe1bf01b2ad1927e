package urlquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/wpmdb/internal/core/domain"
	"go.trai.ch/wpmdb/internal/core/domain/urlquery"
)

func TestRemoveParameter(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		param string
		want  string
	}{
		{
			name:  "trailing parameter",
			url:   "https://example.com/dl/file.zip?a=1&licence_key=secret",
			param: "licence_key",
			want:  "https://example.com/dl/file.zip?a=1",
		},
		{
			name:  "middle parameter",
			url:   "https://example.com/dl/file.zip?a=1&licence_key=secret&b=2",
			param: "licence_key",
			want:  "https://example.com/dl/file.zip?a=1&b=2",
		},
		{
			name:  "first parameter survives",
			url:   "https://example.com/dl/file.zip?licence_key=secret&b=2",
			param: "licence_key",
			want:  "https://example.com/dl/file.zip?licence_key=secret&b=2",
		},
		{
			name:  "repeated occurrences all removed",
			url:   "https://example.com/?a=1&key=x&b=2&key=y",
			param: "key",
			want:  "https://example.com/?a=1&b=2",
		},
		{
			name:  "absent parameter leaves url unchanged",
			url:   "https://example.com/dl/file.zip?a=1",
			param: "licence_key",
			want:  "https://example.com/dl/file.zip?a=1",
		},
		{
			name:  "empty value removed",
			url:   "https://example.com/?a=1&key=",
			param: "key",
			want:  "https://example.com/?a=1",
		},
		{
			name:  "name requiring regex quoting",
			url:   "https://example.com/?a=1&k.y=2",
			param: "k.y",
			want:  "https://example.com/?a=1",
		},
		{
			name:  "dot does not match other names",
			url:   "https://example.com/?a=1&kxy=2",
			param: "k.y",
			want:  "https://example.com/?a=1&kxy=2",
		},
		{
			name:  "no query string",
			url:   "https://example.com/dl/file.zip",
			param: "licence_key",
			want:  "https://example.com/dl/file.zip",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, urlquery.RemoveParameter(tt.url, tt.param))
		})
	}
}

func TestAddParameter(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		param string
		value string
		want  string
	}{
		{
			name:  "first parameter uses question mark",
			url:   "https://example.com/dl/file.zip",
			param: "licence_key",
			value: "abc123",
			want:  "https://example.com/dl/file.zip?licence_key=abc123",
		},
		{
			name:  "subsequent parameter uses ampersand",
			url:   "https://example.com/dl/file.zip?licence_key=abc123",
			param: "site_url",
			value: "example.com",
			want:  "https://example.com/dl/file.zip?licence_key=abc123&site_url=example.com",
		},
		{
			name:  "existing occurrence replaced",
			url:   "https://example.com/?a=1&key=old",
			param: "key",
			value: "new",
			want:  "https://example.com/?a=1&key=new",
		},
		{
			name:  "space encoded as plus",
			url:   "https://example.com/",
			param: "q",
			value: "a b",
			want:  "https://example.com/?q=a+b",
		},
		{
			name:  "reserved characters escaped",
			url:   "https://example.com/",
			param: "q",
			value: "a&b=c/d",
			want:  "https://example.com/?q=a%26b%3Dc%2Fd",
		},
		{
			name:  "empty value",
			url:   "https://example.com/?a=1",
			param: "key",
			value: "",
			want:  "https://example.com/?a=1&key=",
		},
		{
			name:  "name is not escaped",
			url:   "https://example.com/?a=1",
			param: "site_url",
			value: "x",
			want:  "https://example.com/?a=1&site_url=x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, urlquery.AddParameter(tt.url, tt.param, tt.value))
		})
	}
}

func TestComposeFetchURL(t *testing.T) {
	v, err := domain.ParseVersion("2.6.10")
	assert.NoError(t, err)
	dist := domain.BuildDistURL(v, domain.VariantMain)

	creds := domain.Credentials{
		LicenceKey: "abc 123",
		SiteURL:    "example.com/blog",
	}

	got := urlquery.ComposeFetchURL(dist, creds)
	assert.Equal(t,
		"https://deliciousbrains.com/dl/wp-migrate-db-pro-2.6.10.zip?licence_key=abc+123&site_url=example.com%2Fblog",
		got)
}
