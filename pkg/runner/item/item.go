package item

import (
	"context"
	"errors"

	"tableflip.dev/roulette/pkg/app"
	"tableflip.dev/roulette/pkg/printers"
	"tableflip.dev/roulette/pkg/store"
)

// Add appends item text to the current page.
type Add struct {
	Text string

	Persistence store.Persistence
}

func (a *Add) Do(ctx context.Context) error {
	svc := &app.Service{Persistence: a.Persistence}

	if err := svc.AddItem(ctx, a.Text); err != nil {
		if errors.Is(err, app.ErrBlankItem) {
			return errors.New("item text is blank")
		}
		return err
	}
	return show(ctx, svc)
}

// Remove deletes the item at a 0-based index from the current page.
type Remove struct {
	Index int

	Persistence store.Persistence
}

func (r *Remove) Do(ctx context.Context) error {
	svc := &app.Service{Persistence: r.Persistence}

	if err := svc.RemoveItem(ctx, r.Index); err != nil {
		if errors.Is(err, app.ErrIndexOutOfRange) {
			return errors.New("no item at that index")
		}
		return err
	}
	return show(ctx, svc)
}

// List prints the current page's items.
type List struct {
	Persistence store.Persistence
}

func (l *List) Do(ctx context.Context) error {
	return show(ctx, &app.Service{Persistence: l.Persistence})
}

func show(ctx context.Context, svc *app.Service) error {
	p, err := svc.CurrentPage(ctx)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	if p == nil {
		pp.Title("No page selected")
		return nil
	}
	pp.Title(p.DisplayTitle())
	pp.Items(p.Items...)
	return nil
}
