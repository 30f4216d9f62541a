package page

import (
	"encoding/json"
	"testing"
)

func TestDefaultState(t *testing.T) {
	st := DefaultState()
	if len(st.Pages) != 1 {
		t.Fatalf("expected one seeded page, got %d", len(st.Pages))
	}
	if st.Current() != st.Pages[0] {
		t.Fatal("seeded page is not selected")
	}
	if st.Pages[0].Title != "Page 1" {
		t.Fatalf("unexpected seed title %q", st.Pages[0].Title)
	}
}

func TestAddNumbersAndSelects(t *testing.T) {
	st := DefaultState()
	p2 := st.Add()
	p3 := st.Add()

	if p2.Title != "Page 2" || p3.Title != "Page 3" {
		t.Fatalf("unexpected titles %q %q", p2.Title, p3.Title)
	}
	if st.Current() != p3 {
		t.Fatal("latest page is not selected")
	}
	if len(st.Pages) != 3 {
		t.Fatalf("expected 3 pages, got %d", len(st.Pages))
	}
}

func TestCurrentDegradesOnBogusSelection(t *testing.T) {
	st := DefaultState()
	st.SelectedID = "not-a-page"
	if st.Current() != nil {
		t.Fatal("expected nil current for bogus selection")
	}
}

func TestStateJSONShape(t *testing.T) {
	st := DefaultState()
	st.Pages[0].SetMedia(KindVideo, "clip.mp4")

	data, err := json.Marshal(st)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := doc["pages"]; !ok {
		t.Fatal("expected pages key")
	}
	if _, ok := doc["selectedId"]; !ok {
		t.Fatal("expected selectedId key")
	}

	pages := doc["pages"].([]any)
	first := pages[0].(map[string]any)
	if first["mediaType"] != "video" || first["mediaSrc"] != "clip.mp4" {
		t.Fatalf("unexpected media fields: %v", first)
	}

	round := &State{}
	if err := json.Unmarshal(data, round); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if round.SelectedID != st.SelectedID || len(round.Pages) != 1 {
		t.Fatal("round trip lost selection or pages")
	}
}
