package pageform

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/roulette/pkg/page"
	"tableflip.dev/roulette/pkg/tui/theme"
)

// Field indexes the editable inputs, in display order.
type Field int

const (
	FieldTitle Field = iota
	FieldSubtitle
	FieldMediaURL
	FieldMin
	FieldMax

	fieldCount
)

var labels = [fieldCount]string{
	"Title",
	"Subtitle",
	"Media URL",
	"Min",
	"Max",
}

// Model is the page field editor: title, subtitle, media URL, and the
// randomizer bounds.
type Model struct {
	inputs [fieldCount]textinput.Model
	focus  Field
	th     theme.Theme
}

func NewModel(th theme.Theme) *Model {
	m := &Model{th: th}
	for i := range m.inputs {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 0
		m.inputs[i] = in
	}
	return m
}

// SetPage loads the page's current values into the inputs.
func (m *Model) SetPage(p *page.Page) {
	if p == nil {
		for i := range m.inputs {
			m.inputs[i].SetValue("")
		}
		return
	}
	m.inputs[FieldTitle].SetValue(p.Title)
	m.inputs[FieldSubtitle].SetValue(p.Subtitle)
	m.inputs[FieldMediaURL].SetValue(p.MediaSrc)
	m.inputs[FieldMin].SetValue(fmt.Sprintf("%d", p.RandMin))
	m.inputs[FieldMax].SetValue(fmt.Sprintf("%d", p.RandMax))
}

// Focus activates the editor on its first field.
func (m *Model) Focus() tea.Cmd {
	m.focus = FieldTitle
	return m.inputs[m.focus].Focus()
}

// Blur deactivates every input.
func (m *Model) Blur() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

// Value returns the current text of a field.
func (m *Model) Value(f Field) string {
	return m.inputs[f].Value()
}

// Update cycles focus with tab/shift+tab and forwards everything else to
// the focused input.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "tab", "down":
			return m.setFocus((m.focus + 1) % fieldCount)
		case "shift+tab", "up":
			return m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return cmd
}

func (m *Model) setFocus(f Field) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = f
	return m.inputs[m.focus].Focus()
}

// View renders the labeled inputs.
func (m *Model) View() string {
	var b strings.Builder
	for i := range m.inputs {
		label := m.th.Form.Label.Render(fmt.Sprintf("%-10s", labels[i]))
		b.WriteString(label + m.inputs[i].View())
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
