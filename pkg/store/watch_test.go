package store

import (
	"context"
	"testing"
	"time"
)

func TestWatchReportsSaves(t *testing.T) {
	p := testPersistence(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st := p.Load(ctx)

	events, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	st.Add()
	if err := p.Save(st); err != nil {
		t.Fatalf("save: %v", err)
	}

	select {
	case ev, ok := <-events:
		if !ok {
			t.Fatal("event channel closed before delivering")
		}
		if ev.Type != EventStateChanged {
			t.Fatalf("unexpected event type %v", ev.Type)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event after save")
	}
}

func TestWatchClosesOnCancel(t *testing.T) {
	p := testPersistence(t)
	ctx, cancel := context.WithCancel(context.Background())

	events, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	cancel()

	select {
	case _, ok := <-events:
		if ok {
			// A buffered event may still be in flight; the close comes next.
			select {
			case _, ok := <-events:
				if ok {
					t.Fatal("channel still open after cancel")
				}
			case <-time.After(2 * time.Second):
				t.Fatal("channel not closed after cancel")
			}
		}
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}
