package domain

import "strings"

// Variant identifies which archive of the plugin family a package maps to.
type Variant string

const (
	// VariantMain is the core plugin archive.
	VariantMain Variant = "main"
	// VariantCLI is the WP-CLI addon archive.
	VariantCLI Variant = "cli"
	// VariantMediaFiles is the media files addon archive.
	VariantMediaFiles Variant = "media-files"
)

// Substring markers that classify a package name. The media-files marker
// must be checked before the cli marker; a name carrying both classifies
// as media-files.
const (
	markerMediaFiles = "wp-migrate-db-pro-media-files"
	markerCLI        = "wp-migrate-db-pro-cli"
)

// ClassifyVariant maps a package name to its archive variant.
// Unrecognized names fall back to the core plugin archive.
func ClassifyVariant(pkgName string) Variant {
	switch {
	case strings.Contains(pkgName, markerMediaFiles):
		return VariantMediaFiles
	case strings.Contains(pkgName, markerCLI):
		return VariantCLI
	default:
		return VariantMain
	}
}

// Valid reports whether v is one of the known variants.
func (v Variant) Valid() bool {
	switch v {
	case VariantMain, VariantCLI, VariantMediaFiles:
		return true
	default:
		return false
	}
}
