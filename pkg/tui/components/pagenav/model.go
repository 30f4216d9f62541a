package pagenav

import (
	"github.com/charmbracelet/bubbles/v2/list"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/roulette/pkg/page"
)

// Model wraps a bubbles list for page navigation.
type Model struct {
	list list.Model
}

// NewModel constructs the nav list from the provided pages.
func NewModel(pages []*page.Page) *Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	l := list.New(itemsFromPages(pages), delegate, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	return &Model{list: l}
}

// SetItems replaces the rendered pages.
func (m *Model) SetItems(pages []*page.Page) {
	m.list.SetItems(itemsFromPages(pages))
}

// SetSize updates the list dimensions.
func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Select moves the cursor to the page with the given id.
func (m *Model) Select(id string) {
	for i, it := range m.list.Items() {
		if pi, ok := it.(pageItem); ok && pi.p.ID == id {
			m.list.Select(i)
			return
		}
	}
}

// Focused returns the page under the cursor, or nil.
func (m *Model) Focused() *page.Page {
	if it, ok := m.list.SelectedItem().(pageItem); ok {
		return it.p
	}
	return nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update forwards Bubble Tea messages to the list.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the list.
func (m *Model) View() string {
	return m.list.View()
}

func itemsFromPages(pages []*page.Page) []list.Item {
	items := make([]list.Item, 0, len(pages))
	for _, p := range pages {
		items = append(items, pageItem{p: p})
	}
	return items
}

type pageItem struct {
	p *page.Page
}

func (i pageItem) Title() string       { return i.p.DisplayTitle() }
func (i pageItem) Description() string { return i.p.Subtitle }
func (i pageItem) FilterValue() string { return i.p.Title }
