package itemlist

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/truncate"

	"tableflip.dev/roulette/pkg/tui/theme"
)

// labelWidth matches the original editor's 80-rune label cutoff.
const labelWidth = 80

// Model renders the current page's items with a movable cursor. It is a
// plain render component; the app owns the key handling.
type Model struct {
	items  []string
	cursor int
	width  int
	height int
	th     theme.Theme
}

func NewModel(th theme.Theme) *Model {
	return &Model{th: th}
}

// SetItems replaces the rendered items, clamping the cursor.
func (m *Model) SetItems(items []string) {
	m.items = items
	if m.cursor >= len(items) {
		m.cursor = len(items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Cursor returns the 0-based index under the cursor, or -1 when empty.
func (m *Model) Cursor() int {
	if len(m.items) == 0 {
		return -1
	}
	return m.cursor
}

func (m *Model) CursorUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

func (m *Model) CursorDown() {
	if m.cursor < len(m.items)-1 {
		m.cursor++
	}
}

// View renders the numbered item list.
func (m *Model) View() string {
	if len(m.items) == 0 {
		return m.th.Wheel.Faint.Render(" none")
	}

	width := m.width
	if width <= 0 || width > labelWidth {
		width = labelWidth
	}

	var b strings.Builder
	for i, item := range m.items {
		label := truncate.StringWithTail(item, uint(width), "...")
		line := fmt.Sprintf("%2d  %s", i, label)
		if i == m.cursor {
			b.WriteString(m.th.Nav.Selected.Render("> " + line))
		} else {
			b.WriteString(m.th.Nav.Normal.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
