package roll

import (
	"context"
	"fmt"

	"tableflip.dev/roulette/pkg/app"
	"tableflip.dev/roulette/pkg/printers"
	"tableflip.dev/roulette/pkg/random"
	"tableflip.dev/roulette/pkg/store"
)

// Roll draws a uniform integer from a closed range. Without explicit bounds
// it uses the current page's stored range, and explicit bounds are persisted
// back to the page for next time.
type Roll struct {
	MinText string
	MaxText string
	Source  random.Source

	Persistence store.Persistence
}

func (r *Roll) Do(ctx context.Context) error {
	svc := &app.Service{Persistence: r.Persistence}

	var rng random.Range
	var err error
	if r.MinText == "" && r.MaxText == "" {
		rng, err = svc.Range(ctx)
		if err != nil {
			return err
		}
	} else {
		rng, err = random.ParseRange(r.MinText, r.MaxText)
		if err != nil {
			return err
		}
		// Remember the bounds on the current page; a missing selection is a
		// silent no-op.
		if err := svc.SetRange(ctx, rng); err != nil {
			return err
		}
	}

	src := r.Source
	if src == nil {
		src = random.Default()
	}

	pp := printers.PrettyPrint{}
	pp.Title(fmt.Sprintf("Random %d..%d", rng.Min, rng.Max))
	pp.Outcome(fmt.Sprintf("%d", rng.Draw(src)))
	return nil
}
