package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/wpmdb/internal/core/domain"
)

func TestClassifyVariant(t *testing.T) {
	tests := []struct {
		name    string
		pkgName string
		want    domain.Variant
	}{
		{name: "core package", pkgName: "wp-migrate-db-pro", want: domain.VariantMain},
		{name: "cli addon", pkgName: "wp-migrate-db-pro-cli", want: domain.VariantCLI},
		{name: "media files addon", pkgName: "wp-migrate-db-pro-media-files", want: domain.VariantMediaFiles},
		{name: "cli marker embedded", pkgName: "my-wp-migrate-db-pro-cli-fork", want: domain.VariantCLI},
		{name: "media files marker embedded", pkgName: "vendor-wp-migrate-db-pro-media-files-v2", want: domain.VariantMediaFiles},
		{name: "both markers prefers media files", pkgName: "wp-migrate-db-pro-media-files-wp-migrate-db-pro-cli", want: domain.VariantMediaFiles},
		{name: "unrelated name", pkgName: "some-other-plugin", want: domain.VariantMain},
		{name: "empty name", pkgName: "", want: domain.VariantMain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ClassifyVariant(tt.pkgName))
		})
	}
}

func TestVariant_Valid(t *testing.T) {
	assert.True(t, domain.VariantMain.Valid())
	assert.True(t, domain.VariantCLI.Valid())
	assert.True(t, domain.VariantMediaFiles.Valid())
	assert.False(t, domain.Variant("beta").Valid())
	assert.False(t, domain.Variant("").Valid())
}
