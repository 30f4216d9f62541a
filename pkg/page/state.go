package page

import "fmt"

// State is the full persisted document: every page plus the current
// selection. SelectedID may reference a page that no longer matches
// anything; callers degrade to a no-selection view rather than fail.
type State struct {
	Pages      []*Page `json:"pages"`
	SelectedID string  `json:"selectedId,omitempty"`
}

// DefaultState returns the first-run document: one seeded page, selected.
func DefaultState() *State {
	p := New("Page 1")
	return &State{Pages: []*Page{p}, SelectedID: p.ID}
}

// EmptyState is what a corrupt slot degrades to.
func EmptyState() *State {
	return &State{Pages: []*Page{}}
}

// Current returns the selected page, or nil when nothing matches.
func (s *State) Current() *Page {
	for _, p := range s.Pages {
		if p.ID == s.SelectedID {
			return p
		}
	}
	return nil
}

// ByID returns the page with the given id, or nil.
func (s *State) ByID(id string) *Page {
	for _, p := range s.Pages {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Add appends a new page titled "Page N" and selects it. Pages are only
// ever appended; there is no removal.
func (s *State) Add() *Page {
	p := New(fmt.Sprintf("Page %d", len(s.Pages)+1))
	s.Pages = append(s.Pages, p)
	s.SelectedID = p.ID
	return p
}
