package page

import (
	"strings"

	"github.com/google/uuid"
)

// MediaKind classifies a page's media attachment.
type MediaKind string

const (
	KindNone  MediaKind = ""
	KindImage MediaKind = "image"
	KindVideo MediaKind = "video"
)

// DefaultItems seed every new page so the wheel has something to land on.
var DefaultItems = []string{"Red", "Blue", "Green", "Orange"}

const (
	DefaultRandMin = 1
	DefaultRandMax = 10
)

// New creates a page with a fresh id and the starter item set.
func New(title string) *Page {
	return &Page{
		ID:      uuid.NewString(),
		Title:   title,
		Items:   append([]string{}, DefaultItems...),
		RandMin: DefaultRandMin,
		RandMax: DefaultRandMax,
	}
}

type Page struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle"`
	MediaType MediaKind `json:"mediaType,omitempty"`
	MediaSrc  string    `json:"mediaSrc,omitempty"`
	Items     []string  `json:"items"`
	RandMin   int       `json:"randMin,omitempty"`
	RandMax   int       `json:"randMax,omitempty"`
}

// DisplayTitle returns the title, or a placeholder when it is blank.
func (p *Page) DisplayTitle() string {
	if strings.TrimSpace(p.Title) == "" {
		return "Untitled"
	}
	return p.Title
}

// SetMedia binds a media source. An empty src clears the attachment so the
// kind/source invariant holds either way.
func (p *Page) SetMedia(kind MediaKind, src string) {
	if src == "" {
		p.ClearMedia()
		return
	}
	p.MediaType = kind
	p.MediaSrc = src
}

func (p *Page) ClearMedia() {
	p.MediaType = KindNone
	p.MediaSrc = ""
}

// ClassifyURL maps a user-supplied media URL to its kind. An empty or
// whitespace-only URL means no media at all.
func ClassifyURL(url string) (MediaKind, string) {
	url = strings.TrimSpace(url)
	if url == "" {
		return KindNone, ""
	}
	lower := strings.ToLower(url)
	for _, ext := range []string{".mp4", ".webm", ".mov"} {
		if strings.HasSuffix(lower, ext) {
			return KindVideo, url
		}
	}
	return KindImage, url
}
