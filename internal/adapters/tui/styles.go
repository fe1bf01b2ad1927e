package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/wpmdb/internal/ui/style"
)

var (
	// Pane Styles.
	listStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(style.Slate).
			MarginRight(1).
			PaddingRight(1)

	logStyle = lipgloss.NewStyle().
			PaddingLeft(1)

	// Package Status Styles.
	pkgPendingStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	pkgRunningStyle = lipgloss.NewStyle().
			Foreground(style.Plum).
			Bold(true)

	pkgDoneStyle = lipgloss.NewStyle().
			Foreground(style.Green)

	pkgErrorStyle = lipgloss.NewStyle().
			Foreground(style.Red)

	// Selection Style.
	selectedStyle = lipgloss.NewStyle().
			Foreground(style.Plum).
			Bold(true)

	// Header Styles.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Plum).
			Foreground(style.White)
)
