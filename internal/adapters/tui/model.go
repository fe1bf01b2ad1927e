package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/wpmdb/internal/adapters/telemetry"
)

const (
	pkgListWidthRatio  = 0.3
	logPaneBorderWidth = 4
)

// PackageStatus represents the current state of a package install.
type PackageStatus string

const (
	// StatusPending indicates the download has not started yet.
	StatusPending PackageStatus = "Pending"
	// StatusRunning indicates the download is in progress.
	StatusRunning PackageStatus = "Running"
	// StatusDone indicates the package was installed successfully.
	StatusDone PackageStatus = "Done"
	// StatusError indicates the install failed.
	StatusError PackageStatus = "Error"
)

// PackageNode represents a single package in the UI list.
type PackageNode struct {
	Name   string
	Status PackageStatus
	Term   *LogView
}

// Model represents the main TUI state.
type Model struct {
	Packages    []*PackageNode
	PackageMap  map[string]*PackageNode
	SpanMap     map[string]*PackageNode
	AutoScroll  bool
	ActiveName  string
	SelectedIdx int
	ListOffset  int
	ListHeight  int
	LogWidth    int
	LogHeight   int
	FollowMode  bool
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) ensureVisible() {
	if m.ListHeight <= 0 {
		return
	}
	if m.SelectedIdx < m.ListOffset {
		m.ListOffset = m.SelectedIdx
	} else if m.SelectedIdx >= m.ListOffset+m.ListHeight {
		m.ListOffset = m.SelectedIdx - m.ListHeight + 1
	}
}

func (m *Model) getSelectedPackage() *PackageNode {
	if m.SelectedIdx >= 0 && m.SelectedIdx < len(m.Packages) {
		return m.Packages[m.SelectedIdx]
	}
	return nil
}

func (m *Model) updateActiveView() {
	if node := m.getSelectedPackage(); node != nil {
		m.ActiveName = node.Name

		if m.FollowMode && m.AutoScroll {
			maxOff := node.Term.UsedHeight() - node.Term.Height
			if maxOff < 0 {
				maxOff = 0
			}
			node.Term.Offset = maxOff
		}
	}
}

// Update handles incoming messages and updates the model state.
//
//nolint:cyclop // message dispatch is one big switch
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "k", "up":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
				m.FollowMode = false
				m.ensureVisible()
				m.updateActiveView()
			}
		case "j", "down":
			if m.SelectedIdx < len(m.Packages)-1 {
				m.SelectedIdx++
				m.FollowMode = false
				m.ensureVisible()
				m.updateActiveView()
			}
		case "esc":
			m.FollowMode = true
			// Jump to the package currently downloading if any.
			for i, p := range m.Packages {
				if p.Status == StatusRunning {
					m.SelectedIdx = i
					break
				}
			}
			m.ensureVisible()
			m.updateActiveView()

		default:
			// Forward keys to the active package's log view for scrolling
			if m.ActiveName != "" {
				if node, ok := m.PackageMap[m.ActiveName]; ok {
					node.Term.Update(msg)
				}
			}
		}

	case tea.WindowSizeMsg:
		// Split screen: 30% for the package list, 70% for logs
		listWidth := int(float64(msg.Width) * pkgListWidthRatio)
		logWidth := msg.Width - listWidth - logPaneBorderWidth // minus margins/borders

		// Calculate header height dynamically
		headerHeight := lipgloss.Height(titleStyle.Render("TEST"))
		logHeight := msg.Height - headerHeight

		// Store calculated dimensions for packages added later
		m.LogWidth = logWidth
		m.LogHeight = logHeight

		// Calculate ListHeight with full header including newlines
		fullHeader := titleStyle.Render("PACKAGES") + "\n\n"
		listInfoHeight := lipgloss.Height(fullHeader)
		m.ListHeight = msg.Height - listInfoHeight
		m.ensureVisible()

		// Update all log views
		for _, node := range m.Packages {
			node.Term.SetWidth(logWidth)
			node.Term.SetHeight(logHeight)
		}

	case telemetry.MsgInitTasks:
		m.Packages = make([]*PackageNode, len(msg.Packages))
		m.PackageMap = make(map[string]*PackageNode, len(msg.Packages))
		m.SpanMap = make(map[string]*PackageNode)
		for i, name := range msg.Packages {
			term := NewLogView()
			// If we know the dimensions, set them immediately
			if m.LogWidth > 0 && m.LogHeight > 0 {
				term.SetWidth(m.LogWidth)
				term.SetHeight(m.LogHeight)
			}

			m.Packages[i] = &PackageNode{
				Name:   name,
				Status: StatusPending,
				Term:   term,
			}
			m.PackageMap[name] = m.Packages[i]
		}

	case telemetry.MsgTaskStart:
		if node, ok := m.PackageMap[msg.Name]; ok {
			node.Status = StatusRunning
			m.SpanMap[msg.SpanID] = node

			// Focus follows activity ONLY if FollowMode is true
			if m.FollowMode {
				m.ActiveName = msg.Name
				for i, p := range m.Packages {
					if p.Name == msg.Name {
						m.SelectedIdx = i
						break
					}
				}
				m.ensureVisible()
				m.updateActiveView()
			}
		}

	case telemetry.MsgTaskLog:
		if node, ok := m.SpanMap[msg.SpanID]; ok {
			_, _ = node.Term.Write(msg.Data)
		}

	case telemetry.MsgTaskComplete:
		if node, ok := m.SpanMap[msg.SpanID]; ok {
			if msg.Err != nil {
				node.Status = StatusError
			} else {
				node.Status = StatusDone
			}
		}
	}

	return m, cmd
}
