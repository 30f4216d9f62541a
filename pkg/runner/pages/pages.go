package pages

import (
	"context"
	"fmt"
	"strconv"

	"tableflip.dev/roulette/pkg/app"
	"tableflip.dev/roulette/pkg/printers"
	"tableflip.dev/roulette/pkg/store"
)

// Add appends a new page and selects it.
type Add struct {
	Title string

	Persistence store.Persistence
}

func (a *Add) Do(ctx context.Context) error {
	svc := &app.Service{Persistence: a.Persistence}

	p, err := svc.AddPage(ctx)
	if err != nil {
		return err
	}
	if a.Title != "" {
		if err := svc.SetTitle(ctx, a.Title); err != nil {
			return err
		}
		p.Title = a.Title
	}

	pp := printers.PrettyPrint{}
	pp.Title("Pages")
	st, err := svc.State(ctx)
	if err != nil {
		return err
	}
	pp.Pages(st.SelectedID, st.Pages...)
	return nil
}

// List prints every page, marking the selection.
type List struct {
	ShowID bool

	Persistence store.Persistence
}

func (l *List) Do(ctx context.Context) error {
	svc := &app.Service{Persistence: l.Persistence}
	st, err := svc.State(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: l.ShowID}
	pp.Title("Pages")
	pp.Pages(st.SelectedID, st.Pages...)
	return nil
}

// Select switches the current page by id or 1-based position.
type Select struct {
	Ref string

	Persistence store.Persistence
}

func (s *Select) Do(ctx context.Context) error {
	svc := &app.Service{Persistence: s.Persistence}
	st, err := svc.State(ctx)
	if err != nil {
		return err
	}

	id := s.Ref
	if n, err := strconv.Atoi(s.Ref); err == nil {
		if n < 1 || n > len(st.Pages) {
			return fmt.Errorf("pages: no page %d", n)
		}
		id = st.Pages[n-1].ID
	}

	if err := svc.SelectPage(ctx, id); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	if p := st.ByID(id); p != nil {
		pp.Page(p)
	}
	return nil
}

// Set updates title and subtitle fields on the current page.
type Set struct {
	Title       string
	Subtitle    string
	HasTitle    bool
	HasSubtitle bool

	Persistence store.Persistence
}

func (s *Set) Do(ctx context.Context) error {
	svc := &app.Service{Persistence: s.Persistence}

	if s.HasTitle {
		if err := svc.SetTitle(ctx, s.Title); err != nil {
			return err
		}
	}
	if s.HasSubtitle {
		if err := svc.SetSubtitle(ctx, s.Subtitle); err != nil {
			return err
		}
	}

	p, err := svc.CurrentPage(ctx)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	if p == nil {
		pp.Title("No page selected")
		return nil
	}
	pp.Page(p)
	return nil
}
