package wheelview

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/roulette/pkg/tui/theme"
	"tableflip.dev/roulette/pkg/wheel"
)

const labelWidth = 32

// Model renders a wheel of equal slices as rows, with a pointer marking the
// slice under the accumulated rotation. Each slice keeps a stable hue so the
// wheel reads as a wheel even in a terminal.
type Model struct {
	items    []string
	rotation float64
	spinning bool
	winner   int
	th       theme.Theme
}

func NewModel(th theme.Theme) *Model {
	return &Model{th: th, winner: -1}
}

// SetItems replaces the slices and resets any winner mark.
func (m *Model) SetItems(items []string) {
	m.items = items
	m.winner = -1
}

// SetRotation updates the displayed rotation in degrees.
func (m *Model) SetRotation(deg float64) {
	m.rotation = deg
}

// SetSpinning toggles the in-flight indicator.
func (m *Model) SetSpinning(v bool) {
	m.spinning = v
	if v {
		m.winner = -1
	}
}

// SetWinner marks the revealed slice.
func (m *Model) SetWinner(index int) {
	m.winner = index
}

// View renders the wheel pane.
func (m *Model) View() string {
	if len(m.items) == 0 {
		return m.th.Wheel.Faint.Render(" nothing to spin")
	}

	pointer := wheel.PointerIndex(m.rotation, len(m.items))

	var b strings.Builder
	for i, item := range m.items {
		label := truncate.StringWithTail(item, labelWidth, "...")
		swatch := lipgloss.NewStyle().Foreground(sliceColor(i, len(m.items)))

		marker := "  "
		if i == pointer {
			marker = m.th.Wheel.Pointer.Render("▶ ")
		}

		switch {
		case i == m.winner:
			b.WriteString(marker + m.th.Wheel.Winner.Render(label))
		default:
			b.WriteString(marker + swatch.Render("◼ ") + m.th.Nav.Normal.Render(label))
		}
		b.WriteString("\n")
	}

	if m.spinning {
		b.WriteString(m.th.Wheel.Faint.Render(fmt.Sprintf("spinning... %.0f°", m.rotation)))
	} else if m.winner >= 0 {
		b.WriteString(m.th.Wheel.Faint.Render("winner: ") + m.th.Wheel.Winner.Render(m.items[m.winner]))
	} else {
		b.WriteString(m.th.Wheel.Faint.Render(fmt.Sprintf("%d slices · press s to spin", len(m.items))))
	}

	return strings.TrimRight(b.String(), "\n")
}

// sliceColor assigns slice i of n a stable hue around the wheel.
func sliceColor(i, n int) color.Color {
	c := colorful.Hsv(360*float64(i)/float64(n), 0.62, 0.92)
	return lipgloss.Color(c.Hex())
}
