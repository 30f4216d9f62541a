package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"tableflip.dev/roulette/pkg/page"
	"tableflip.dev/roulette/pkg/random"
	"tableflip.dev/roulette/pkg/store"
)

type memoryStore struct {
	data []byte
}

func newMemoryStore(t *testing.T) *memoryStore {
	t.Helper()
	m := &memoryStore{}
	if err := m.Save(page.DefaultState()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return m
}

func (m *memoryStore) Load(_ context.Context) *page.State {
	st := &page.State{}
	if err := json.Unmarshal(m.data, st); err != nil {
		return page.EmptyState()
	}
	return st
}

func (m *memoryStore) Save(st *page.State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return err
	}
	m.data = data
	return nil
}

func (m *memoryStore) Watch(_ context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	close(ch)
	return ch, nil
}

func TestServiceListPages(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemoryStore(t))

	pages, err := svc.ListPages(ctx)
	if err != nil {
		t.Fatalf("ListPages failed: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(pages))
	}
	if !pages[0].Selected {
		t.Fatalf("expected seeded page to be selected")
	}
	if pages[0].ItemCount != len(page.DefaultItems) {
		t.Fatalf("expected %d items, got %d", len(page.DefaultItems), pages[0].ItemCount)
	}
}

func TestServiceAddPage(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemoryStore(t))

	dto, err := svc.AddPage(ctx, "Dinner")
	if err != nil {
		t.Fatalf("AddPage failed: %v", err)
	}
	if dto.Title != "Dinner" {
		t.Fatalf("expected title Dinner, got %s", dto.Title)
	}
	if !dto.Selected {
		t.Fatalf("expected new page to be selected")
	}

	pages, err := svc.ListPages(ctx)
	if err != nil {
		t.Fatalf("ListPages failed: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(pages))
	}
}

func TestServiceSelectPageByPosition(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemoryStore(t))

	if _, err := svc.AddPage(ctx, ""); err != nil {
		t.Fatalf("AddPage failed: %v", err)
	}

	dto, err := svc.SelectPage(ctx, "1")
	if err != nil {
		t.Fatalf("SelectPage failed: %v", err)
	}
	if dto.Title != "Page 1" {
		t.Fatalf("expected Page 1, got %s", dto.Title)
	}

	if _, err := svc.SelectPage(ctx, "9"); err != ErrPageNotFound {
		t.Fatalf("expected ErrPageNotFound, got %v", err)
	}
	if _, err := svc.SelectPage(ctx, "bogus-id"); err != ErrPageNotFound {
		t.Fatalf("expected ErrPageNotFound, got %v", err)
	}
}

func TestServiceItemRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemoryStore(t))

	dto, err := svc.AddItem(ctx, "Pizza")
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if dto.Items[len(dto.Items)-1] != "Pizza" {
		t.Fatalf("expected Pizza appended, got %v", dto.Items)
	}

	dto, err = svc.RemoveItem(ctx, 0)
	if err != nil {
		t.Fatalf("RemoveItem failed: %v", err)
	}
	if len(dto.Items) != len(page.DefaultItems) {
		t.Fatalf("expected %d items, got %d", len(page.DefaultItems), len(dto.Items))
	}
}

func TestServiceSpin(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemoryStore(t))
	svc.Source = random.Seeded(1)

	out, err := svc.Spin(ctx)
	if err != nil {
		t.Fatalf("Spin failed: %v", err)
	}
	if out.Item != page.DefaultItems[out.Index] {
		t.Fatalf("item %q does not match index %d", out.Item, out.Index)
	}
	if out.Page != "Page 1" {
		t.Fatalf("expected Page 1, got %s", out.Page)
	}

	// The immediate scheduler leaves the engine idle, so back-to-back spins
	// are fine.
	if _, err := svc.Spin(ctx); err != nil {
		t.Fatalf("second Spin failed: %v", err)
	}
}

func TestServiceRandomRange(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemoryStore(t))
	svc.Source = random.Seeded(1)

	for i := 0; i < 100; i++ {
		n, err := svc.RandomRange(ctx, "3", "5")
		if err != nil {
			t.Fatalf("RandomRange failed: %v", err)
		}
		if n < 3 || n > 5 {
			t.Fatalf("draw %d out of range", n)
		}
	}

	// Empty bounds fall back to the current page's stored range.
	n, err := svc.RandomRange(ctx, "", "")
	if err != nil {
		t.Fatalf("RandomRange failed: %v", err)
	}
	if n < page.DefaultRandMin || n > page.DefaultRandMax {
		t.Fatalf("default draw %d out of range", n)
	}

	if _, err := svc.RandomRange(ctx, "9", "3"); err != random.ErrInvertedRange {
		t.Fatalf("expected ErrInvertedRange, got %v", err)
	}
}
