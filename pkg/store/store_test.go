package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"tableflip.dev/roulette/pkg/page"
)

type testConfig struct {
	path string
}

func (c *testConfig) BasePath() string {
	return c.path
}

func testPersistence(t *testing.T) Persistence {
	t.Helper()
	p, err := Load(&testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	return p
}

func TestFirstLoadSeedsDefault(t *testing.T) {
	p := testPersistence(t)
	ctx := context.Background()

	st := p.Load(ctx)
	if len(st.Pages) != 1 {
		t.Fatalf("expected one seeded page, got %d", len(st.Pages))
	}
	if st.Current() == nil {
		t.Fatal("seeded page is not selected")
	}
	if st.Pages[0].Title != "Page 1" {
		t.Fatalf("unexpected seed title %q", st.Pages[0].Title)
	}

	// The seed must be durable, not just in-memory.
	again := p.Load(ctx)
	if len(again.Pages) != 1 || again.Pages[0].ID != st.Pages[0].ID {
		t.Fatal("seeded state did not persist")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	p := testPersistence(t)
	ctx := context.Background()

	st := p.Load(ctx)
	pg := st.Current()
	pg.Title = "Dinner"
	pg.Subtitle = "Where to eat"
	pg.SetMedia(page.KindVideo, "clip.mp4")
	pg.Items = []string{"Tacos", "Ramen"}
	pg.RandMin, pg.RandMax = 3, 9
	st.Add()

	if err := p.Save(st); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := p.Load(ctx)
	if len(got.Pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(got.Pages))
	}
	if got.SelectedID != st.SelectedID {
		t.Fatalf("selection lost: %q vs %q", got.SelectedID, st.SelectedID)
	}
	first := got.Pages[0]
	if first.Title != "Dinner" || first.Subtitle != "Where to eat" {
		t.Fatalf("titles lost: %q / %q", first.Title, first.Subtitle)
	}
	if first.MediaType != page.KindVideo || first.MediaSrc != "clip.mp4" {
		t.Fatalf("media lost: %q / %q", first.MediaType, first.MediaSrc)
	}
	if len(first.Items) != 2 || first.Items[1] != "Ramen" {
		t.Fatalf("items lost: %v", first.Items)
	}
	if first.RandMin != 3 || first.RandMax != 9 {
		t.Fatalf("range lost: %d..%d", first.RandMin, first.RandMax)
	}
}

func TestCorruptSlotStartsFresh(t *testing.T) {
	dir := t.TempDir()
	p, err := Load(&testConfig{path: dir})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, stateKey), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write garbage: %v", err)
	}

	st := p.Load(context.Background())
	if len(st.Pages) != 0 {
		t.Fatalf("expected empty pages, got %d", len(st.Pages))
	}
	if st.SelectedID != "" {
		t.Fatalf("expected no selection, got %q", st.SelectedID)
	}
}
