package ui

import (
	"context"

	"tableflip.dev/roulette/pkg/app"
	"tableflip.dev/roulette/pkg/store"
	tuiapp "tableflip.dev/roulette/pkg/tui/app"
)

// UI launches the Bubble Tea interface over the configured persistence.
type UI struct {
	Persistence store.Persistence
}

func (u *UI) Do(ctx context.Context) error {
	svc := &app.Service{Persistence: u.Persistence}
	return tuiapp.Run(svc)
}
