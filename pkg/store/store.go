package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/roulette/pkg/page"
)

// stateKey is the single durable slot holding the whole page document.
const stateKey = "state"

// Persistence defines the persistence contract for the page document.
// Load never fails: an absent slot seeds the default document, a corrupt
// slot degrades to an empty one.
type Persistence interface {
	Load(ctx context.Context) *page.State
	Save(st *page.State) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Load(_ context.Context) *page.State {
	if !p.d.Has(stateKey) {
		// First run: seed one page and make the default durable right away.
		st := page.DefaultState()
		if err := p.Save(st); err != nil {
			fmt.Fprintf(os.Stderr, "store: seed default state: %v\n", err)
		}
		return st
	}

	val, err := p.d.Read(stateKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: read state slot: %v\n", err)
		return page.EmptyState()
	}

	st := &page.State{}
	if err := json.Unmarshal(val, st); err != nil {
		// Corruption is swallowed, not surfaced: start fresh.
		fmt.Fprintf(os.Stderr, "store: state slot is not parseable, starting fresh: %v\n", err)
		return page.EmptyState()
	}
	if st.Pages == nil {
		st.Pages = []*page.Page{}
	}
	return st
}

// Save overwrites the slot with the full document. No merge, no versioning.
func (p *persistence) Save(st *page.State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return err
	}
	if err := p.d.Write(stateKey, data); err != nil {
		return err
	}
	return nil
}
