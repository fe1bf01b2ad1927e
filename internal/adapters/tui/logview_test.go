package tui_test

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wpmdb/internal/adapters/tui"
)

func TestLogView_Write(t *testing.T) {
	t.Parallel()

	t.Run("write at bottom sticks to bottom", func(t *testing.T) {
		t.Parallel()
		lv := tui.NewLogView()
		lv.SetHeight(5)

		_, err := lv.Write([]byte("line1\nline2\nline3\nline4\nline5\nline6"))
		require.NoError(t, err)

		assert.Equal(t, lv.MaxOffset(), lv.Offset)
	})

	t.Run("write while scrolled up stays scrolled", func(t *testing.T) {
		t.Parallel()
		lv := tui.NewLogView()
		lv.SetHeight(5)

		// Pre-fill and scroll up
		_, _ = lv.Write([]byte("1\n2\n3\n4\n5\n6\n"))
		lv.Offset = 0 // Scroll to top

		_, err := lv.Write([]byte("line1\nline2\nline3\nline4\nline5\nline6"))
		require.NoError(t, err)

		assert.Equal(t, 0, lv.Offset)
	})
}

func TestLogView_SetHeight(t *testing.T) {
	t.Parallel()

	lv := tui.NewLogView()
	// Fill with 10 lines
	input := "1\n2\n3\n4\n5\n6\n7\n8\n9\n10"
	_, _ = lv.Write([]byte(input))

	// Case 1: Set height, should stick to bottom if already at bottom
	lv.Offset = lv.MaxOffset()
	lv.SetHeight(5)
	assert.Equal(t, 5, lv.Height)
	assert.Equal(t, lv.MaxOffset(), lv.Offset)

	// Case 2: Set height while scrolled up, should clamp if needed
	lv.Offset = 0
	lv.SetHeight(2)
	assert.Equal(t, 2, lv.Height)
	assert.Equal(t, 0, lv.Offset)

	// Case 3: Set height > used height
	lv.SetHeight(20)
	assert.Equal(t, 20, lv.Height)
	assert.Equal(t, 0, lv.Offset)

	// Case 4: Zero/Negative height
	lv.SetHeight(0)
	assert.Equal(t, 1, lv.Height)
}

func TestLogView_SetWidth(t *testing.T) {
	t.Parallel()

	lv := tui.NewLogView()

	lv.SetWidth(10)
	assert.Equal(t, 10, lv.Width)

	lv.SetWidth(0)
	assert.Equal(t, 1, lv.Width)
}

func TestLogView_Update(t *testing.T) {
	t.Parallel()

	lv := tui.NewLogView()
	lv.SetHeight(2)
	// Fill with 4 rows: 0, 1, 2, 3
	_, _ = lv.Write([]byte("0\n1\n2\n3"))

	// Max offset should be 4 - 2 = 2
	lv.Offset = lv.MaxOffset()
	assert.Equal(t, 2, lv.Offset)

	// Key: up/k
	lv.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	assert.Equal(t, 1, lv.Offset)

	lv.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, lv.Offset)

	// Cap at 0
	lv.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, lv.Offset)

	// Key: down/j
	lv.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	assert.Equal(t, 1, lv.Offset)

	lv.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, lv.Offset)

	// Cap at max
	lv.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, lv.Offset)

	// Key: Home
	lv.Update(tea.KeyMsg{Type: tea.KeyHome})
	assert.Equal(t, 0, lv.Offset)

	// Key: End
	lv.Update(tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, 2, lv.Offset)

	// Key: PgUp (Height=2)
	lv.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	assert.Equal(t, 0, lv.Offset)

	// Key: PgDown
	lv.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, 2, lv.Offset)
}

func TestLogView_View(t *testing.T) {
	t.Parallel()

	lv := tui.NewLogView()
	lv.SetHeight(2)

	// "world" has no trailing newline but still occupies a row
	_, _ = lv.Write([]byte("hello\nworld"))

	output := lv.View()
	assert.Equal(t, "hello\nworld", output)

	lines := strings.Split(output, "\n")
	assert.Len(t, lines, 2)
}

func TestLogView_ViewWindow(t *testing.T) {
	t.Parallel()

	lv := tui.NewLogView()
	lv.SetHeight(2)
	_, _ = lv.Write([]byte("a\nb\nc\nd\n"))

	// Sticks to bottom: window shows the last two lines
	assert.Equal(t, "c\nd", lv.View())

	lv.Offset = 0
	assert.Equal(t, "a\nb", lv.View())
}

func TestLogView_ViewTruncatesWidth(t *testing.T) {
	t.Parallel()

	lv := tui.NewLogView()
	lv.SetHeight(1)
	lv.SetWidth(5)

	_, _ = lv.Write([]byte("downloading wp-migrate-db-pro\n"))

	assert.Equal(t, "downl", lv.View())
}

func TestLogView_UsedHeight(t *testing.T) {
	t.Parallel()

	lv := tui.NewLogView()
	assert.Equal(t, 0, lv.UsedHeight())

	_, _ = lv.Write([]byte("one\ntwo\n"))
	assert.Equal(t, 2, lv.UsedHeight())

	// A pending partial line counts as a row
	_, _ = lv.Write([]byte("thr"))
	assert.Equal(t, 3, lv.UsedHeight())

	_, _ = lv.Write([]byte("ee\n"))
	assert.Equal(t, 3, lv.UsedHeight())

	lv.SetHeight(3)
	assert.Equal(t, "three", strings.Split(lv.View(), "\n")[2])
}
