package tui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/wpmdb/internal/adapters/tui"
)

func TestView_Initialization(t *testing.T) {
	m := tui.Model{
		ListHeight: 0,
	}
	assert.Contains(t, m.View(), "Initializing...")
}

func TestView_PackageList(t *testing.T) {
	packages := []*tui.PackageNode{
		{Name: "wp-migrate-db-pro", Status: tui.StatusRunning, Term: tui.NewLogView()},
		{Name: "wp-migrate-db-pro-cli", Status: tui.StatusDone, Term: tui.NewLogView()},
		{Name: "wp-migrate-db-pro-media-files", Status: tui.StatusError, Term: tui.NewLogView()},
		{Name: "wp-migrate-db-pro-theme", Status: tui.StatusPending, Term: tui.NewLogView()},
	}

	m := tui.Model{
		Packages:    packages,
		ListHeight:  20,
		SelectedIdx: 0,
		PackageMap:  make(map[string]*tui.PackageNode),
	}
	for i := range packages {
		m.PackageMap[packages[i].Name] = packages[i]
	}

	output := m.View()

	// Check for package names
	assert.Contains(t, output, "wp-migrate-db-pro")
	assert.Contains(t, output, "wp-migrate-db-pro-cli")
	assert.Contains(t, output, "wp-migrate-db-pro-media-files")
	assert.Contains(t, output, "wp-migrate-db-pro-theme")

	// Check for icons
	assert.Contains(t, output, "●") // Running
	assert.Contains(t, output, "✓") // Done
	assert.Contains(t, output, "✗") // Error
	assert.Contains(t, output, "○") // Pending

	// Check selection indicator
	assert.Contains(t, output, ">")
}

func TestView_LogPane(t *testing.T) {
	pkg := &tui.PackageNode{Name: "wp-migrate-db-pro", Term: tui.NewLogView()}
	pkg.Term.SetHeight(5)
	_, _ = pkg.Term.Write([]byte("downloading archive\n"))

	// Case 1: No active package
	m := tui.Model{
		Packages:   []*tui.PackageNode{pkg},
		ListHeight: 20,
		PackageMap: map[string]*tui.PackageNode{"wp-migrate-db-pro": pkg},
	}
	output := m.View()
	assert.Contains(t, output, "LOGS (Waiting...)")

	// Case 2: Active package while following
	m.ActiveName = "wp-migrate-db-pro"
	m.FollowMode = true
	output = m.View()
	assert.Contains(t, output, "LOGS: wp-migrate-db-pro (Following)")
	assert.Contains(t, output, "downloading archive")

	// Case 3: Manual selection
	m.FollowMode = false
	output = m.View()
	assert.Contains(t, output, "LOGS: wp-migrate-db-pro (Manual)")
}

func TestView_LipglossIntegration(t *testing.T) {
	pkg := &tui.PackageNode{Name: "wp-migrate-db-pro", Term: tui.NewLogView()}
	m := tui.Model{
		Packages:   []*tui.PackageNode{pkg},
		ListHeight: 10,
		PackageMap: map[string]*tui.PackageNode{"wp-migrate-db-pro": pkg},
	}

	output := m.View()
	assert.NotEmpty(t, output)
	assert.Contains(t, output, "\n")
}

func TestView_WindowedList(t *testing.T) {
	packages := make([]*tui.PackageNode, 10)
	m := tui.Model{
		ListHeight: 3,
		ListOffset: 4,
		PackageMap: make(map[string]*tui.PackageNode),
	}
	for i := 0; i < 10; i++ {
		name := "pkg" + string(rune('0'+i))
		packages[i] = &tui.PackageNode{Name: name, Term: tui.NewLogView()}
		m.PackageMap[name] = packages[i]
	}
	m.Packages = packages

	output := m.View()

	// Only the window [4, 7) should be rendered
	assert.NotContains(t, output, "pkg3")
	assert.Contains(t, output, "pkg4")
	assert.Contains(t, output, "pkg5")
	assert.Contains(t, output, "pkg6")
	assert.NotContains(t, output, "pkg7")
}
