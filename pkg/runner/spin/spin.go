package spin

import (
	"context"
	"errors"

	"tableflip.dev/roulette/pkg/app"
	"tableflip.dev/roulette/pkg/printers"
	"tableflip.dev/roulette/pkg/random"
	"tableflip.dev/roulette/pkg/store"
	"tableflip.dev/roulette/pkg/wheel"
)

// Spin draws one item from the current page's wheel and prints the outcome
// after the reveal delay.
type Spin struct {
	Source    random.Source
	Scheduler wheel.Scheduler

	Persistence store.Persistence
}

func (s *Spin) Do(ctx context.Context) error {
	svc := &app.Service{Persistence: s.Persistence}
	p, err := svc.CurrentPage(ctx)
	if err != nil {
		return err
	}
	if p == nil {
		return errors.New("spin: no page selected")
	}
	if len(p.Items) == 0 {
		return errors.New("spin: the current page has no items")
	}

	src := s.Source
	if src == nil {
		src = random.Default()
	}
	w := wheel.New(src, s.Scheduler)

	done := make(chan wheel.Result, 1)
	if _, err := w.Spin(p.Items, func(r wheel.Result) { done <- r }); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title(p.DisplayTitle())

	select {
	case <-ctx.Done():
		w.Cancel()
		return ctx.Err()
	case r := <-done:
		pp.Outcome(r.Item)
	}
	return nil
}
