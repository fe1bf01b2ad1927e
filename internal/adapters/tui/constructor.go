// Package tui provides the interactive terminal interface for installs.
package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/wpmdb/internal/ui/output"
)

// NewModel creates a new TUI model with default settings.
func NewModel(w io.Writer) Model {
	out := output.New(w)
	lipgloss.SetColorProfile(out.Profile)

	return Model{
		Packages:   make([]*PackageNode, 0),
		PackageMap: make(map[string]*PackageNode),
		SpanMap:    make(map[string]*PackageNode),
		AutoScroll: true,
		FollowMode: true,
	}
}
