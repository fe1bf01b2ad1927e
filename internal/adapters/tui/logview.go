package tui

import (
	"bytes"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// LogView holds the scrollback for one package download. Download output is
// plain text lines, so a line buffer is enough; no terminal emulation needed.
type LogView struct {
	Offset int
	Height int
	Width  int

	lines []string
	buf   bytes.Buffer
	mu    sync.Mutex
}

// NewLogView creates an empty LogView.
func NewLogView() *LogView {
	return &LogView{}
}

// Write implements io.Writer, splitting incoming data into lines.
func (v *LogView) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	// Stick to bottom if we're already there or if height is zero (not yet rendered)
	stickToBottom := v.Offset >= v.maxOffset()

	v.buf.Write(p)
	for {
		line, err := v.buf.ReadBytes('\n')
		if err != nil {
			// Partial line, keep it buffered until the rest arrives.
			// ReadBytes copies, so writing back into the drained buffer is safe.
			v.buf.Write(line)
			break
		}
		v.lines = append(v.lines, strings.TrimRight(string(line), "\r\n"))
	}

	if stickToBottom {
		v.Offset = v.maxOffset()
	}

	return len(p), nil
}

// SetHeight updates the view height and adjusts scrolling.
func (v *LogView) SetHeight(h int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if h < 1 {
		h = 1
	}

	stickToBottom := v.Offset >= v.maxOffset()

	v.Height = h

	if stickToBottom {
		v.Offset = v.maxOffset()
	} else if limit := v.maxOffset(); v.Offset > limit {
		// Clamp offset if the new height makes the current offset invalid
		v.Offset = limit
	}
}

// SetWidth updates the render width. Longer lines are cut at render time.
func (v *LogView) SetWidth(w int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if w < 1 {
		w = 1
	}
	v.Width = w
}

// UsedHeight returns the total number of lines in the scrollback.
func (v *LogView) UsedHeight() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.rowCount()
}

// View renders the visible window of the scrollback.
func (v *LogView) View() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.rowCount() == 0 || v.Height <= 0 {
		return ""
	}

	// Ensure offset is valid before rendering
	if v.Offset < 0 {
		v.Offset = 0
	}
	if limit := v.maxOffset(); v.Offset > limit {
		v.Offset = limit
	}

	var s strings.Builder
	for i := 0; i < v.Height; i++ {
		row := v.Offset + i
		if row >= v.rowCount() {
			break
		}
		if i > 0 {
			s.WriteByte('\n')
		}
		s.WriteString(v.renderRow(row))
	}

	return s.String()
}

// Update handles incoming events, specifically for scrolling.
func (v *LogView) Update(msg tea.Msg) (*LogView, tea.Cmd) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			v.Offset--
		case "down", "j":
			v.Offset++
		case "pgup":
			v.Offset -= v.Height
		case "pgdown":
			v.Offset += v.Height
		case "home":
			v.Offset = 0
		case "end":
			v.Offset = v.maxOffset()
		}
	}

	// Clamp after adjustment
	if v.Offset < 0 {
		v.Offset = 0
	}
	if limit := v.maxOffset(); v.Offset > limit {
		v.Offset = limit
	}

	return v, nil
}

func (v *LogView) renderRow(row int) string {
	var line string
	if row < len(v.lines) {
		line = v.lines[row]
	} else {
		line = v.buf.String()
	}

	if v.Width > 0 {
		if r := []rune(line); len(r) > v.Width {
			line = string(r[:v.Width])
		}
	}

	return line
}

// rowCount must be called with mu held. A pending partial line counts as a row.
func (v *LogView) rowCount() int {
	n := len(v.lines)
	if v.buf.Len() > 0 {
		n++
	}
	return n
}

// maxOffset must be called with mu held.
func (v *LogView) maxOffset() int {
	maxOff := v.rowCount() - v.Height
	if maxOff < 0 {
		return 0
	}
	return maxOff
}
