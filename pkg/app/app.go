package app

import (
	"context"
	"errors"
	"strings"

	"tableflip.dev/roulette/pkg/page"
	"tableflip.dev/roulette/pkg/random"
	"tableflip.dev/roulette/pkg/store"
)

// Service provides high-level operations over the page document.
// It wraps persistence so the CLI, TUI, and MCP server share logic.
// Every mutation saves the full document before returning.
type Service struct {
	Persistence store.Persistence
}

var (
	ErrNoPersistence   = errors.New("app: no persistence configured")
	ErrBlankItem       = errors.New("app: item text is blank")
	ErrIndexOutOfRange = errors.New("app: item index out of range")
)

// State loads the full document.
func (s *Service) State(ctx context.Context) (*page.State, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.Load(ctx), nil
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.Watch(ctx)
}

// AddPage appends a sequence-numbered page and selects it.
func (s *Service) AddPage(ctx context.Context) (*page.Page, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	st := s.Persistence.Load(ctx)
	p := st.Add()
	if err := s.Persistence.Save(st); err != nil {
		return nil, err
	}
	return p, nil
}

// SelectPage records the selection unconditionally. An id matching no page
// just degrades the current view to a no-selection state.
func (s *Service) SelectPage(ctx context.Context, id string) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	st := s.Persistence.Load(ctx)
	st.SelectedID = id
	return s.Persistence.Save(st)
}

// CurrentPage returns the selected page, or nil when nothing matches.
func (s *Service) CurrentPage(ctx context.Context) (*page.Page, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.Load(ctx).Current(), nil
}

// SetTitle updates the current page title. No selection is a silent no-op.
func (s *Service) SetTitle(ctx context.Context, title string) error {
	return s.mutateCurrent(ctx, func(p *page.Page) error {
		p.Title = title
		return nil
	})
}

// SetSubtitle updates the current page subtitle.
func (s *Service) SetSubtitle(ctx context.Context, subtitle string) error {
	return s.mutateCurrent(ctx, func(p *page.Page) error {
		p.Subtitle = subtitle
		return nil
	})
}

// AddItem appends trimmed text to the current page. Blank text is refused
// with no mutation and nothing persisted.
func (s *Service) AddItem(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrBlankItem
	}
	return s.mutateCurrent(ctx, func(p *page.Page) error {
		p.Items = append(p.Items, text)
		return nil
	})
}

// RemoveItem deletes the 0-based index from the current page. Out-of-range
// indices leave the sequence untouched.
func (s *Service) RemoveItem(ctx context.Context, index int) error {
	return s.mutateCurrent(ctx, func(p *page.Page) error {
		if index < 0 || index >= len(p.Items) {
			return ErrIndexOutOfRange
		}
		p.Items = append(p.Items[:index], p.Items[index+1:]...)
		return nil
	})
}

// BindURL classifies and binds a media URL on the current page. An empty
// URL clears the attachment.
func (s *Service) BindURL(ctx context.Context, url string) (page.MediaKind, error) {
	kind, src := page.ClassifyURL(url)
	err := s.mutateCurrent(ctx, func(p *page.Page) error {
		p.SetMedia(kind, src)
		return nil
	})
	return kind, err
}

// AttachFile converts file bytes to a data URI and binds it to the current
// page.
func (s *Service) AttachFile(ctx context.Context, data []byte, declaredMime string) (page.MediaKind, error) {
	uri, kind := page.DataURI(data, declaredMime)
	err := s.mutateCurrent(ctx, func(p *page.Page) error {
		p.SetMedia(kind, uri)
		return nil
	})
	return kind, err
}

// AttachFileTo applies an attachment that was started while pageID was the
// selection. If the user has moved on since, the completion is discarded
// rather than landing on whatever page is current now. Returns whether the
// result was applied.
func (s *Service) AttachFileTo(ctx context.Context, pageID string, data []byte, declaredMime string) (page.MediaKind, bool, error) {
	if s.Persistence == nil {
		return page.KindNone, false, ErrNoPersistence
	}
	st := s.Persistence.Load(ctx)
	cur := st.Current()
	if cur == nil || cur.ID != pageID {
		return page.KindNone, false, nil
	}
	uri, kind := page.DataURI(data, declaredMime)
	cur.SetMedia(kind, uri)
	if err := s.Persistence.Save(st); err != nil {
		return page.KindNone, false, err
	}
	return kind, true, nil
}

// ClearMedia detaches any media from the current page.
func (s *Service) ClearMedia(ctx context.Context) error {
	return s.mutateCurrent(ctx, func(p *page.Page) error {
		p.ClearMedia()
		return nil
	})
}

// SetRange persists the randomizer bounds on the current page.
func (s *Service) SetRange(ctx context.Context, r random.Range) error {
	return s.mutateCurrent(ctx, func(p *page.Page) error {
		p.RandMin = r.Min
		p.RandMax = r.Max
		return nil
	})
}

// Range returns the current page's randomizer bounds, or the defaults when
// nothing is selected.
func (s *Service) Range(ctx context.Context) (random.Range, error) {
	p, err := s.CurrentPage(ctx)
	if err != nil {
		return random.Range{}, err
	}
	if p == nil {
		return random.NewRange(page.DefaultRandMin, page.DefaultRandMax)
	}
	return random.NewRange(p.RandMin, p.RandMax)
}

// mutateCurrent loads, applies fn to the selected page, and saves. When no
// page is selected the mutation silently does not happen.
func (s *Service) mutateCurrent(ctx context.Context, fn func(*page.Page) error) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	st := s.Persistence.Load(ctx)
	cur := st.Current()
	if cur == nil {
		return nil
	}
	if err := fn(cur); err != nil {
		return err
	}
	return s.Persistence.Save(st)
}
