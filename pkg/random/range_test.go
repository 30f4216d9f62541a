package random

import (
	"errors"
	"testing"
)

func TestDrawStaysInBounds(t *testing.T) {
	src := Seeded(1)
	r, err := NewRange(1, 6)
	if err != nil {
		t.Fatalf("new range: %v", err)
	}

	seen := make(map[int]int)
	for i := 0; i < 10000; i++ {
		v := r.Draw(src)
		if v < 1 || v > 6 {
			t.Fatalf("draw %d out of [1,6]", v)
		}
		seen[v]++
	}

	// Every face of a d6 should show up over 10k draws.
	for face := 1; face <= 6; face++ {
		if seen[face] == 0 {
			t.Fatalf("face %d never drawn", face)
		}
	}
}

func TestDrawEqualBounds(t *testing.T) {
	src := Seeded(7)
	r, err := NewRange(5, 5)
	if err != nil {
		t.Fatalf("new range: %v", err)
	}
	for i := 0; i < 100; i++ {
		if v := r.Draw(src); v != 5 {
			t.Fatalf("expected 5, got %d", v)
		}
	}
}

func TestInvertedRangeRejected(t *testing.T) {
	if _, err := NewRange(5, 1); !errors.Is(err, ErrInvertedRange) {
		t.Fatalf("expected ErrInvertedRange, got %v", err)
	}
}

func TestParseRange(t *testing.T) {
	r, err := ParseRange(" 1 ", "10")
	if err != nil {
		t.Fatalf("parse range: %v", err)
	}
	if r.Min != 1 || r.Max != 10 {
		t.Fatalf("unexpected range %+v", r)
	}

	if _, err := ParseRange("abc", "10"); err == nil {
		t.Fatal("expected error for non-numeric min")
	}
	if _, err := ParseRange("1", ""); err == nil {
		t.Fatal("expected error for empty max")
	}
	if _, err := ParseRange("9", "3"); !errors.Is(err, ErrInvertedRange) {
		t.Fatalf("expected ErrInvertedRange, got %v", err)
	}
}

func TestDrawNegativeBounds(t *testing.T) {
	src := Seeded(42)
	r, err := NewRange(-3, 2)
	if err != nil {
		t.Fatalf("new range: %v", err)
	}
	for i := 0; i < 1000; i++ {
		if v := r.Draw(src); v < -3 || v > 2 {
			t.Fatalf("draw %d out of [-3,2]", v)
		}
	}
}
