package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the UI.
func (m *Model) View() string {
	if m.ListHeight == 0 {
		return "Initializing..."
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.packageList(),
		m.logPane(),
	)
}

func (m *Model) packageList() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("PACKAGES") + "\n\n")

	start := m.ListOffset
	end := m.ListOffset + m.ListHeight
	if end > len(m.Packages) {
		end = len(m.Packages)
	}
	if start > end {
		start = end
	}

	for i := start; i < end; i++ {
		pkg := m.Packages[i]
		s.WriteString(m.renderPackageRow(i, pkg) + "\n")
	}

	return listStyle.Render(s.String())
}

func (m *Model) renderPackageRow(index int, pkg *PackageNode) string {
	icon := m.getPackageIcon(pkg)
	style := m.getPackageStyle(pkg)

	// Highlight selected package
	var cursor string
	if index == m.SelectedIdx {
		cursor = selectedStyle.Render("> ")
		// If not Done/Error, highlight the text as well
		if pkg.Status != StatusDone && pkg.Status != StatusError {
			style = selectedStyle
		}
	} else {
		cursor = "  "
	}

	content := fmt.Sprintf("%s %s", icon, pkg.Name)
	return cursor + style.Render(content)
}

func (m *Model) getPackageIcon(pkg *PackageNode) string {
	switch pkg.Status {
	case StatusRunning:
		return "●"
	case StatusDone:
		return "✓"
	case StatusError:
		return "✗"
	default: // Pending
		return "○"
	}
}

func (m *Model) getPackageStyle(pkg *PackageNode) lipgloss.Style {
	switch pkg.Status {
	case StatusRunning:
		return pkgRunningStyle
	case StatusDone:
		return pkgDoneStyle
	case StatusError:
		return pkgErrorStyle
	default: // Pending
		return pkgPendingStyle
	}
}

func (m *Model) logPane() string {
	var header string
	var content string

	if m.ActiveName != "" {
		status := ""
		if m.FollowMode {
			status = " (Following)"
		} else {
			status = " (Manual)"
		}
		header = titleStyle.Render("LOGS: " + m.ActiveName + status)

		if node, ok := m.PackageMap[m.ActiveName]; ok {
			content = node.Term.View()
		}
	} else {
		header = titleStyle.Render("LOGS (Waiting...)")
	}

	return logStyle.Render(
		lipgloss.JoinVertical(
			lipgloss.Left,
			header,
			content,
		),
	)
}
