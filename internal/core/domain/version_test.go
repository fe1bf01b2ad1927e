package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wpmdb/internal/core/domain"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "wildcard", raw: "*"},
		{name: "three components", raw: "2.6.10"},
		{name: "four components", raw: "1.0.5.2"},
		{name: "single digit patch", raw: "0.0.0"},
		{name: "maximal digits", raw: "9.9.99.9"},
		{name: "empty", raw: "", wantErr: true},
		{name: "two components", raw: "1.2", wantErr: true},
		{name: "two digit major", raw: "10.0.0", wantErr: true},
		{name: "two digit minor", raw: "1.10.0", wantErr: true},
		{name: "three digit patch", raw: "1.2.345", wantErr: true},
		{name: "two digit build", raw: "1.2.3.45", wantErr: true},
		{name: "five components", raw: "1.2.3.4.5", wantErr: true},
		{name: "v prefix", raw: "v1.2.3", wantErr: true},
		{name: "trailing space", raw: "1.2.3 ", wantErr: true},
		{name: "leading space", raw: " 1.2.3", wantErr: true},
		{name: "double wildcard", raw: "**", wantErr: true},
		{name: "partial wildcard", raw: "1.*", wantErr: true},
		{name: "embedded newline", raw: "1.2.3\n4.5.6", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := domain.ParseVersion(tt.raw)
			if tt.wantErr {
				// String check for robustness with zerr wrapping
				require.Error(t, err)
				require.ErrorContains(t, err, domain.ErrInvalidVersion.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.raw, v.String())
		})
	}
}

func TestVersion_IsLatest(t *testing.T) {
	wildcard, err := domain.ParseVersion("*")
	require.NoError(t, err)
	assert.True(t, wildcard.IsLatest())

	pinned, err := domain.ParseVersion("2.6.10")
	require.NoError(t, err)
	assert.False(t, pinned.IsLatest())
}

func TestVersion_DistLabel(t *testing.T) {
	wildcard, err := domain.ParseVersion("*")
	require.NoError(t, err)
	assert.Equal(t, "latest", wildcard.DistLabel())

	pinned, err := domain.ParseVersion("1.0.5.2")
	require.NoError(t, err)
	assert.Equal(t, "1.0.5.2", pinned.DistLabel())
}
