package mcp

import (
	"context"
	"errors"
	"strconv"
	"time"

	"tableflip.dev/roulette/pkg/app"
	"tableflip.dev/roulette/pkg/page"
	"tableflip.dev/roulette/pkg/random"
	"tableflip.dev/roulette/pkg/store"
	"tableflip.dev/roulette/pkg/wheel"
)

// Service coordinates persistence-backed operations shared by the MCP server.
type Service struct {
	App    *app.Service
	Source random.Source
}

// ErrPageNotFound is returned when a page cannot be located.
var ErrPageNotFound = errors.New("page not found")

// PageSummary describes a page and basic aggregate metadata.
type PageSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle,omitempty"`
	ItemCount int    `json:"itemCount"`
	MediaType string `json:"mediaType,omitempty"`
	Selected  bool   `json:"selected"`
}

// PageDTO is a transport-friendly projection of a full page.
type PageDTO struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Subtitle  string   `json:"subtitle,omitempty"`
	MediaType string   `json:"mediaType,omitempty"`
	MediaSrc  string   `json:"mediaSrc,omitempty"`
	Items     []string `json:"items"`
	RandMin   int      `json:"randMin"`
	RandMax   int      `json:"randMax"`
	Selected  bool     `json:"selected"`
}

// SpinOutcome reports a wheel draw. The reveal delay is a presentation
// concern, so MCP reports the outcome immediately.
type SpinOutcome struct {
	Page     string  `json:"page"`
	Index    int     `json:"index"`
	Item     string  `json:"item"`
	Rotation float64 `json:"rotation"`
}

// NewService builds a service wrapper using the provided persistence layer.
func NewService(p store.Persistence) *Service {
	return &Service{App: &app.Service{Persistence: p}, Source: random.Default()}
}

// ListPages returns summaries for every page in the document.
func (s *Service) ListPages(ctx context.Context) ([]PageSummary, error) {
	st, err := s.App.State(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]PageSummary, 0, len(st.Pages))
	for _, p := range st.Pages {
		out = append(out, PageSummary{
			ID:        p.ID,
			Title:     p.DisplayTitle(),
			Subtitle:  p.Subtitle,
			ItemCount: len(p.Items),
			MediaType: string(p.MediaType),
			Selected:  p.ID == st.SelectedID,
		})
	}
	return out, nil
}

// PageByID fetches a single page projection.
func (s *Service) PageByID(ctx context.Context, id string) (PageDTO, error) {
	st, err := s.App.State(ctx)
	if err != nil {
		return PageDTO{}, err
	}
	p := st.ByID(id)
	if p == nil {
		return PageDTO{}, ErrPageNotFound
	}
	return toDTO(p, p.ID == st.SelectedID), nil
}

// AddPage appends and selects a new page, optionally retitling it.
func (s *Service) AddPage(ctx context.Context, title string) (PageDTO, error) {
	p, err := s.App.AddPage(ctx)
	if err != nil {
		return PageDTO{}, err
	}
	if title != "" {
		if err := s.App.SetTitle(ctx, title); err != nil {
			return PageDTO{}, err
		}
		p.Title = title
	}
	return toDTO(p, true), nil
}

// SelectPage switches the selection by page id or 1-based position.
func (s *Service) SelectPage(ctx context.Context, ref string) (PageDTO, error) {
	st, err := s.App.State(ctx)
	if err != nil {
		return PageDTO{}, err
	}
	id := ref
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(st.Pages) {
			return PageDTO{}, ErrPageNotFound
		}
		id = st.Pages[n-1].ID
	}
	p := st.ByID(id)
	if p == nil {
		return PageDTO{}, ErrPageNotFound
	}
	if err := s.App.SelectPage(ctx, id); err != nil {
		return PageDTO{}, err
	}
	return toDTO(p, true), nil
}

// AddItem appends item text to the current page.
func (s *Service) AddItem(ctx context.Context, text string) (PageDTO, error) {
	if err := s.App.AddItem(ctx, text); err != nil {
		return PageDTO{}, err
	}
	return s.currentDTO(ctx)
}

// RemoveItem removes the 0-based index from the current page.
func (s *Service) RemoveItem(ctx context.Context, index int) (PageDTO, error) {
	if err := s.App.RemoveItem(ctx, index); err != nil {
		return PageDTO{}, err
	}
	return s.currentDTO(ctx)
}

// BindMediaURL binds (or, for empty input, clears) the current page's media.
func (s *Service) BindMediaURL(ctx context.Context, url string) (PageDTO, error) {
	if _, err := s.App.BindURL(ctx, url); err != nil {
		return PageDTO{}, err
	}
	return s.currentDTO(ctx)
}

// Spin draws one item from the current page.
func (s *Service) Spin(ctx context.Context) (SpinOutcome, error) {
	p, err := s.App.CurrentPage(ctx)
	if err != nil {
		return SpinOutcome{}, err
	}
	if p == nil {
		return SpinOutcome{}, errors.New("no page selected")
	}

	w := wheel.New(s.src(), immediateScheduler{})
	res, err := w.Spin(p.Items, nil)
	if err != nil {
		return SpinOutcome{}, err
	}
	return SpinOutcome{
		Page:     p.DisplayTitle(),
		Index:    res.Index,
		Item:     res.Item,
		Rotation: res.Rotation,
	}, nil
}

// RandomRange draws a uniform integer from [min, max] inclusive.
func (s *Service) RandomRange(ctx context.Context, minText, maxText string) (int, error) {
	var rng random.Range
	var err error
	if minText == "" && maxText == "" {
		rng, err = s.App.Range(ctx)
	} else {
		rng, err = random.ParseRange(minText, maxText)
	}
	if err != nil {
		return 0, err
	}
	return rng.Draw(s.src()), nil
}

func (s *Service) currentDTO(ctx context.Context) (PageDTO, error) {
	st, err := s.App.State(ctx)
	if err != nil {
		return PageDTO{}, err
	}
	p := st.Current()
	if p == nil {
		return PageDTO{}, errors.New("no page selected")
	}
	return toDTO(p, true), nil
}

func (s *Service) src() random.Source {
	if s.Source == nil {
		s.Source = random.Default()
	}
	return s.Source
}

func toDTO(p *page.Page, selected bool) PageDTO {
	items := make([]string, len(p.Items))
	copy(items, p.Items)
	return PageDTO{
		ID:        p.ID,
		Title:     p.DisplayTitle(),
		Subtitle:  p.Subtitle,
		MediaType: string(p.MediaType),
		MediaSrc:  p.MediaSrc,
		Items:     items,
		RandMin:   p.RandMin,
		RandMax:   p.RandMax,
		Selected:  selected,
	}
}

// immediateScheduler fires the reveal synchronously; MCP callers have no
// animation to wait on.
type immediateScheduler struct{}

func (immediateScheduler) Schedule(_ time.Duration, fn func()) func() {
	fn()
	return func() {}
}
