package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/roulette/pkg/page"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("00000000-0000-0000-0000-000000000000  "))
)

// itemWidth matches the original editor's 80-rune label cutoff.
const itemWidth = 80

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

// Pages renders the page list, marking the current selection.
func (pp *PrettyPrint) Pages(selectedID string, pages ...*page.Page) {
	if len(pages) == 0 {
		pp.none()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "

	for i, p := range pages {
		marker := " "
		if p.ID == selectedID {
			marker = "*"
		}
		label := fmt.Sprintf("%d", i+1)
		row := []interface{}{marker, label, p.DisplayTitle(), fmt.Sprintf("%d items", len(p.Items))}
		if pp.ShowID {
			row = append([]interface{}{p.ID}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Page renders one page's fields and items.
func (pp *PrettyPrint) Page(p *page.Page) {
	pp.Title(p.DisplayTitle())

	f := color.New(color.Faint)
	if p.Subtitle != "" {
		_, _ = f.Println(p.Subtitle)
	}
	if p.MediaType != page.KindNone {
		src := truncate.StringWithTail(p.MediaSrc, itemWidth, "...")
		_, _ = f.Printf("%s: %s\n", p.MediaType, src)
	}
	pp.Items(p.Items...)
}

// Items renders a numbered item list.
func (pp *PrettyPrint) Items(items ...string) {
	if len(items) == 0 {
		pp.none()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "

	n := color.New(color.Faint)
	for i, item := range items {
		tbl.AddRow(n.Sprintf("%d", i), truncate.StringWithTail(item, itemWidth, "..."))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Outcome highlights a draw result.
func (pp *PrettyPrint) Outcome(text string) {
	o := color.New(color.Bold, color.FgHiYellow)
	_, _ = o.Printf("%s\n", text)
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Print(spacing)
	}
	_, _ = f.Print(" none\n\n")
}
