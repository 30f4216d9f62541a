package page

import (
	"strings"
	"testing"
)

func TestClassifyURL(t *testing.T) {
	tests := []struct {
		url  string
		kind MediaKind
		src  string
	}{
		{"clip.mp4", KindVideo, "clip.mp4"},
		{"https://example.com/CLIP.MOV", KindVideo, "https://example.com/CLIP.MOV"},
		{"intro.webm", KindVideo, "intro.webm"},
		{"photo.png", KindImage, "photo.png"},
		{"https://example.com/banner", KindImage, "https://example.com/banner"},
		{"", KindNone, ""},
		{"   ", KindNone, ""},
		{"  clip.mp4  ", KindVideo, "clip.mp4"},
	}

	for _, tc := range tests {
		kind, src := ClassifyURL(tc.url)
		if kind != tc.kind || src != tc.src {
			t.Fatalf("ClassifyURL(%q) = %q/%q, want %q/%q", tc.url, kind, src, tc.kind, tc.src)
		}
	}
}

func TestSetMediaInvariant(t *testing.T) {
	p := New("test")
	if p.MediaType != KindNone || p.MediaSrc != "" {
		t.Fatalf("new page should have no media: %q %q", p.MediaType, p.MediaSrc)
	}

	p.SetMedia(KindVideo, "clip.mp4")
	if p.MediaType != KindVideo || p.MediaSrc != "clip.mp4" {
		t.Fatalf("media not bound: %q %q", p.MediaType, p.MediaSrc)
	}

	// An empty source always clears the kind with it.
	p.SetMedia(KindVideo, "")
	if p.MediaType != KindNone || p.MediaSrc != "" {
		t.Fatalf("media not cleared: %q %q", p.MediaType, p.MediaSrc)
	}
}

func TestDataURIDeclaredMime(t *testing.T) {
	uri, kind := DataURI([]byte("hello"), "video/mp4")
	if kind != KindVideo {
		t.Fatalf("expected video, got %q", kind)
	}
	if !strings.HasPrefix(uri, "data:video/mp4;base64,") {
		t.Fatalf("unexpected uri prefix: %s", uri)
	}
}

func TestDataURISniffsWhenUndeclared(t *testing.T) {
	pngMagic := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	uri, kind := DataURI(pngMagic, "")
	if kind != KindImage {
		t.Fatalf("expected image, got %q", kind)
	}
	if !strings.HasPrefix(uri, "data:image/png") {
		t.Fatalf("expected sniffed png mime, got %s", uri)
	}
}

func TestNewPageSeedsItems(t *testing.T) {
	p := New("Page 1")
	if len(p.Items) != len(DefaultItems) {
		t.Fatalf("expected %d starter items, got %d", len(DefaultItems), len(p.Items))
	}
	if p.RandMin != DefaultRandMin || p.RandMax != DefaultRandMax {
		t.Fatalf("unexpected rand bounds %d..%d", p.RandMin, p.RandMax)
	}
	if p.ID == "" {
		t.Fatal("page id not assigned")
	}

	// The starter slice must be owned by the page, not shared.
	p.Items[0] = "mutated"
	if DefaultItems[0] == "mutated" {
		t.Fatal("page items alias DefaultItems")
	}
}

func TestDisplayTitle(t *testing.T) {
	p := New("")
	if p.DisplayTitle() != "Untitled" {
		t.Fatalf("expected placeholder, got %q", p.DisplayTitle())
	}
	p.Title = "  "
	if p.DisplayTitle() != "Untitled" {
		t.Fatalf("expected placeholder for blank title, got %q", p.DisplayTitle())
	}
	p.Title = "Prizes"
	if p.DisplayTitle() != "Prizes" {
		t.Fatalf("expected title, got %q", p.DisplayTitle())
	}
}
