package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wpmdb/internal/core/domain"
)

func mustVersion(t *testing.T, raw string) domain.Version {
	t.Helper()
	v, err := domain.ParseVersion(raw)
	require.NoError(t, err)
	return v
}

func TestLockfile_Entry(t *testing.T) {
	lock := &domain.Lockfile{
		Version: domain.LockSchemaVersion,
		Project: "my-site",
		Packages: []domain.LockEntry{
			{Name: "wp-migrate-db-pro", Version: "2.6.10", Variant: domain.VariantMain},
			{Name: "wp-migrate-db-pro-cli", Version: "latest", Variant: domain.VariantCLI},
		},
	}

	entry, ok := lock.Entry("wp-migrate-db-pro-cli")
	require.True(t, ok)
	assert.Equal(t, "latest", entry.Version)
	assert.Equal(t, domain.VariantCLI, entry.Variant)

	_, ok = lock.Entry("missing")
	assert.False(t, ok)
}

func TestLockfile_MatchesManifest(t *testing.T) {
	manifest := &domain.Manifest{
		Project: "my-site",
		Packages: []domain.PackageRequest{
			{Name: "wp-migrate-db-pro", Version: mustVersion(t, "2.6.10")},
			{Name: "wp-migrate-db-pro-cli", Version: mustVersion(t, "*")},
		},
	}

	current := &domain.Lockfile{
		Version: domain.LockSchemaVersion,
		Project: "my-site",
		Packages: []domain.LockEntry{
			{
				Name:    "wp-migrate-db-pro",
				Version: "2.6.10",
				Variant: domain.VariantMain,
				URL:     "https://deliciousbrains.com/dl/wp-migrate-db-pro-2.6.10.zip",
			},
			{
				Name:    "wp-migrate-db-pro-cli",
				Version: "latest",
				Variant: domain.VariantCLI,
				URL:     "https://deliciousbrains.com/dl/wp-migrate-db-pro-cli-latest.zip",
			},
		},
	}

	t.Run("matching lockfile", func(t *testing.T) {
		assert.True(t, current.MatchesManifest(manifest))
	})

	t.Run("nil lockfile", func(t *testing.T) {
		var lock *domain.Lockfile
		assert.False(t, lock.MatchesManifest(manifest))
	})

	t.Run("project renamed", func(t *testing.T) {
		stale := *current
		stale.Project = "old-site"
		assert.False(t, stale.MatchesManifest(manifest))
	})

	t.Run("package added to manifest", func(t *testing.T) {
		grown := *manifest
		grown.Packages = append([]domain.PackageRequest{}, manifest.Packages...)
		grown.Packages = append(grown.Packages, domain.PackageRequest{
			Name:    "wp-migrate-db-pro-media-files",
			Version: mustVersion(t, "*"),
		})
		assert.False(t, current.MatchesManifest(&grown))
	})

	t.Run("version changed", func(t *testing.T) {
		changed := *manifest
		changed.Packages = append([]domain.PackageRequest{}, manifest.Packages...)
		changed.Packages[0].Version = mustVersion(t, "2.7.0")
		assert.False(t, current.MatchesManifest(&changed))
	})

	t.Run("entry order ignored", func(t *testing.T) {
		reordered := *current
		reordered.Packages = []domain.LockEntry{current.Packages[1], current.Packages[0]}
		assert.True(t, reordered.MatchesManifest(manifest))
	})

	t.Run("url drifted", func(t *testing.T) {
		drifted := *current
		drifted.Packages = append([]domain.LockEntry{}, current.Packages...)
		drifted.Packages[0].URL = "https://deliciousbrains.com/dl/wp-migrate-db-pro-2.6.9.zip"
		assert.False(t, drifted.MatchesManifest(manifest))
	})
}
