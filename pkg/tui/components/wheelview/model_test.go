package wheelview

import (
	"strings"
	"testing"

	"tableflip.dev/roulette/pkg/tui/theme"
)

func TestViewMarksPointerSlice(t *testing.T) {
	m := NewModel(theme.Default())
	m.SetItems([]string{"A", "B", "C", "D"})

	// 4 slices of 90°; 135° sits inside the second slice.
	m.SetRotation(135)

	lines := strings.Split(m.View(), "\n")
	if !strings.Contains(lines[1], "▶") {
		t.Fatalf("expected pointer on second slice, got %q", lines[1])
	}
	for i, line := range lines[:4] {
		if i != 1 && strings.Contains(line, "▶") {
			t.Fatalf("pointer also on slice %d: %q", i, line)
		}
	}
}

func TestViewShowsWinner(t *testing.T) {
	m := NewModel(theme.Default())
	m.SetItems([]string{"Tacos", "Ramen"})
	m.SetWinner(1)

	view := m.View()
	if !strings.Contains(view, "winner:") {
		t.Fatalf("expected winner line, got %q", view)
	}
	if !strings.Contains(view, "Ramen") {
		t.Fatalf("expected winning item in view, got %q", view)
	}
}

func TestSpinClearsWinner(t *testing.T) {
	m := NewModel(theme.Default())
	m.SetItems([]string{"A", "B"})
	m.SetWinner(0)
	m.SetSpinning(true)

	view := m.View()
	if strings.Contains(view, "winner:") {
		t.Fatal("winner line survived a new spin")
	}
	if !strings.Contains(view, "spinning") {
		t.Fatalf("expected spinning status, got %q", view)
	}
}

func TestViewEmpty(t *testing.T) {
	m := NewModel(theme.Default())
	if !strings.Contains(m.View(), "nothing to spin") {
		t.Fatal("expected empty placeholder")
	}
}
