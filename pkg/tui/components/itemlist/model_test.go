package itemlist

import (
	"strings"
	"testing"

	"tableflip.dev/roulette/pkg/tui/theme"
)

func TestCursorClampsOnShrink(t *testing.T) {
	m := NewModel(theme.Default())
	m.SetItems([]string{"a", "b", "c"})
	m.CursorDown()
	m.CursorDown()
	if m.Cursor() != 2 {
		t.Fatalf("expected cursor 2, got %d", m.Cursor())
	}

	m.SetItems([]string{"a"})
	if m.Cursor() != 0 {
		t.Fatalf("expected cursor clamped to 0, got %d", m.Cursor())
	}

	m.SetItems(nil)
	if m.Cursor() != -1 {
		t.Fatalf("expected -1 when empty, got %d", m.Cursor())
	}
}

func TestCursorStaysInBounds(t *testing.T) {
	m := NewModel(theme.Default())
	m.SetItems([]string{"a", "b"})

	m.CursorUp()
	if m.Cursor() != 0 {
		t.Fatalf("cursor moved above the first item: %d", m.Cursor())
	}
	m.CursorDown()
	m.CursorDown()
	m.CursorDown()
	if m.Cursor() != 1 {
		t.Fatalf("cursor moved past the last item: %d", m.Cursor())
	}
}

func TestViewTruncatesLongItems(t *testing.T) {
	m := NewModel(theme.Default())
	m.SetItems([]string{strings.Repeat("x", 200)})
	m.SetSize(40, 10)

	view := m.View()
	if !strings.Contains(view, "...") {
		t.Fatal("long item was not truncated")
	}
	if strings.Contains(view, strings.Repeat("x", 41)) {
		t.Fatal("truncated label still exceeds the pane width")
	}
}

func TestViewEmpty(t *testing.T) {
	m := NewModel(theme.Default())
	view := m.View()
	if !strings.Contains(view, "none") {
		t.Fatalf("expected empty placeholder, got %q", view)
	}
}
