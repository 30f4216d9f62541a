package media

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"tableflip.dev/roulette/pkg/app"
	"tableflip.dev/roulette/pkg/page"
	"tableflip.dev/roulette/pkg/printers"
	"tableflip.dev/roulette/pkg/store"
)

// Attach reads a local file and binds it to the current page as a data URI.
type Attach struct {
	Path string
	Mime string

	Persistence store.Persistence
}

func (a *Attach) Do(ctx context.Context) error {
	svc := &app.Service{Persistence: a.Persistence}

	// The page is pinned before the read starts; if the selection moves
	// while the file loads, the completion is discarded instead of landing
	// on whichever page happens to be current.
	p, err := svc.CurrentPage(ctx)
	if err != nil {
		return err
	}
	if p == nil {
		return errors.New("media: no page selected")
	}

	data, err := os.ReadFile(a.Path)
	if err != nil {
		return fmt.Errorf("media: read %s: %w", a.Path, err)
	}

	declared := a.Mime
	if declared == "" {
		// Extension first, content sniffing is the fallback inside DataURI.
		declared = mime.TypeByExtension(filepath.Ext(a.Path))
	}

	kind, applied, err := svc.AttachFileTo(ctx, p.ID, data, declared)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	if !applied {
		pp.Title("Selection changed during read; attachment discarded")
		return nil
	}
	pp.Title(fmt.Sprintf("Attached %s as %s", filepath.Base(a.Path), kind))
	return nil
}

// URL binds a remote media URL to the current page. An empty URL clears the
// attachment.
type URL struct {
	URL string

	Persistence store.Persistence
}

func (u *URL) Do(ctx context.Context) error {
	svc := &app.Service{Persistence: u.Persistence}
	kind, err := svc.BindURL(ctx, u.URL)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	if kind == page.KindNone {
		pp.Title("Media cleared")
		return nil
	}
	pp.Title(fmt.Sprintf("Bound %s media", kind))
	return nil
}

// Clear detaches media from the current page.
type Clear struct {
	Persistence store.Persistence
}

func (c *Clear) Do(ctx context.Context) error {
	svc := &app.Service{Persistence: c.Persistence}
	if err := svc.ClearMedia(ctx); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Title("Media cleared")
	return nil
}

// Open hands the current page's media source to the platform opener.
type Open struct {
	Persistence store.Persistence
}

func (o *Open) Do(ctx context.Context) error {
	svc := &app.Service{Persistence: o.Persistence}
	p, err := svc.CurrentPage(ctx)
	if err != nil {
		return err
	}
	if p == nil || p.MediaSrc == "" {
		return errors.New("media: nothing attached")
	}
	if strings.HasPrefix(p.MediaSrc, "data:") {
		return errors.New("media: inline data attachments cannot be opened externally")
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", p.MediaSrc)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", p.MediaSrc)
	default:
		cmd = exec.Command("xdg-open", p.MediaSrc)
	}
	return cmd.Start()
}
