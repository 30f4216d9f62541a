// Package tuiapp hosts the Bubble Tea program for the roulette TUI.
package tuiapp

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/roulette/pkg/app"
	"tableflip.dev/roulette/pkg/page"
	"tableflip.dev/roulette/pkg/random"
	"tableflip.dev/roulette/pkg/store"
	"tableflip.dev/roulette/pkg/tui/components/itemlist"
	"tableflip.dev/roulette/pkg/tui/components/pageform"
	"tableflip.dev/roulette/pkg/tui/components/pagenav"
	"tableflip.dev/roulette/pkg/tui/components/wheelview"
	"tableflip.dev/roulette/pkg/tui/theme"
	"tableflip.dev/roulette/pkg/wheel"
)

// Model states
type mode int

const (
	modeNormal mode = iota
	modeInsert
	modeForm
)

type focusPane int

const (
	focusPages focusPane = iota
	focusItems
)

const frameInterval = 80 * time.Millisecond

type refreshMsg struct{}
type storeEventMsg struct{}
type frameMsg time.Time
type revealMsg struct{ result wheel.Result }

// Model contains UI state.
type Model struct {
	svc    *app.Service
	ctx    context.Context
	th     theme.Theme
	events <-chan store.Event

	st *page.State

	nav       *pagenav.Model
	items     *itemlist.Model
	wheelView *wheelview.Model
	form      *pageform.Model
	input     textinput.Model

	w          *wheel.Wheel
	spinFrom   float64
	spinTo     float64
	spinStart  time.Time
	spinning   bool
	displayRot float64
	reveal     chan wheel.Result

	mode   mode
	focus  focusPane
	status string
	errMsg string

	termWidth  int
	termHeight int
}

// New creates a new UI model backed by the Service.
func New(ctx context.Context, svc *app.Service, events <-chan store.Event) *Model {
	th := theme.Default()

	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = "item text"

	return &Model{
		svc:       svc,
		ctx:       ctx,
		th:        th,
		events:    events,
		nav:       pagenav.NewModel(nil),
		items:     itemlist.NewModel(th),
		wheelView: wheelview.NewModel(th),
		form:      pageform.NewModel(th),
		input:     in,
		w:         wheel.New(random.Default(), nil),
		reveal:    make(chan wheel.Result, 1),
	}
}

// Run launches the Bubble Tea UI over the given persistence.
func Run(svc *app.Service) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := svc.Watch(ctx)
	if err != nil {
		return err
	}

	m := New(ctx, svc, events)
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.refreshCmd(), m.waitEventCmd())
}

func (m *Model) refreshCmd() tea.Cmd {
	return func() tea.Msg { return refreshMsg{} }
}

func (m *Model) waitEventCmd() tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-m.events; !ok {
			return nil
		}
		return storeEventMsg{}
	}
}

func (m *Model) waitRevealCmd() tea.Cmd {
	return func() tea.Msg {
		return revealMsg{result: <-m.reveal}
	}
}

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.layout()
		return m, nil

	case refreshMsg:
		m.reload()
		return m, nil

	case storeEventMsg:
		m.reload()
		return m, m.waitEventCmd()

	case frameMsg:
		if !m.spinning {
			return m, nil
		}
		m.displayRot = m.easedRotation(time.Time(msg))
		m.wheelView.SetRotation(m.displayRot)
		return m, frameCmd()

	case revealMsg:
		m.spinning = false
		m.displayRot = m.spinTo
		m.wheelView.SetRotation(m.displayRot)
		m.wheelView.SetSpinning(false)
		m.wheelView.SetWinner(msg.result.Index)
		m.status = fmt.Sprintf("winner: %s", msg.result.Item)
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(key tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeInsert:
		return m.handleInsertKey(key)
	case modeForm:
		return m.handleFormKey(key)
	}
	return m.handleNormalKey(key)
}

func (m *Model) handleNormalKey(key tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.errMsg = ""

	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "tab":
		if m.focus == focusPages {
			m.focus = focusItems
		} else {
			m.focus = focusPages
		}
		return m, nil

	case "n":
		if _, err := m.svc.AddPage(m.ctx); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.reload()
		return m, nil

	case "enter":
		if m.focus == focusPages {
			if p := m.nav.Focused(); p != nil {
				if err := m.svc.SelectPage(m.ctx, p.ID); err != nil {
					m.errMsg = err.Error()
					return m, nil
				}
				m.reload()
			}
		}
		return m, nil

	case "i":
		m.mode = modeInsert
		m.input.SetValue("")
		return m, m.input.Focus()

	case "e":
		m.mode = modeForm
		m.form.SetPage(m.currentPage())
		return m, m.form.Focus()

	case "d":
		if m.focus == focusItems {
			if idx := m.items.Cursor(); idx >= 0 {
				if err := m.svc.RemoveItem(m.ctx, idx); err != nil {
					m.errMsg = err.Error()
					return m, nil
				}
				m.reload()
			}
		}
		return m, nil

	case "j", "down":
		if m.focus == focusItems {
			m.items.CursorDown()
			return m, nil
		}
		return m.forwardToNav(key)

	case "k", "up":
		if m.focus == focusItems {
			m.items.CursorUp()
			return m, nil
		}
		return m.forwardToNav(key)

	case "s":
		return m, m.startSpin()

	case "r":
		rng, err := m.svc.Range(m.ctx)
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.status = fmt.Sprintf("random %d..%d: %d", rng.Min, rng.Max, rng.Draw(random.Default()))
		return m, nil
	}

	if m.focus == focusPages {
		return m.forwardToNav(key)
	}
	return m, nil
}

func (m *Model) handleInsertKey(key tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.mode = modeNormal
		m.input.Blur()
		return m, nil
	case "enter":
		text := m.input.Value()
		m.mode = modeNormal
		m.input.Blur()
		if err := m.svc.AddItem(m.ctx, text); err != nil {
			m.errMsg = "item text is blank"
			return m, nil
		}
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return m, cmd
}

func (m *Model) handleFormKey(key tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.mode = modeNormal
		m.form.Blur()
		return m, nil
	case "enter":
		if err := m.commitForm(); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.mode = modeNormal
		m.form.Blur()
		m.reload()
		return m, nil
	}

	return m, m.form.Update(key)
}

// commitForm validates the whole form before applying anything, so a bad
// range leaves the page untouched.
func (m *Model) commitForm() error {
	rng, err := random.ParseRange(m.form.Value(pageform.FieldMin), m.form.Value(pageform.FieldMax))
	if err != nil {
		return err
	}

	if err := m.svc.SetTitle(m.ctx, m.form.Value(pageform.FieldTitle)); err != nil {
		return err
	}
	if err := m.svc.SetSubtitle(m.ctx, m.form.Value(pageform.FieldSubtitle)); err != nil {
		return err
	}
	// Inline data attachments are not editable as URLs; leave them alone.
	if url := m.form.Value(pageform.FieldMediaURL); !strings.HasPrefix(url, "data:") {
		if _, err := m.svc.BindURL(m.ctx, url); err != nil {
			return err
		}
	}
	return m.svc.SetRange(m.ctx, rng)
}

func (m *Model) startSpin() tea.Cmd {
	p := m.currentPage()
	if p == nil || len(p.Items) == 0 {
		m.errMsg = "nothing to spin"
		return nil
	}

	res, err := m.w.Spin(p.Items, func(r wheel.Result) { m.reveal <- r })
	if err != nil {
		// A spin while already spinning is refused; keep the animation.
		return nil
	}

	m.spinFrom = m.displayRot
	m.spinTo = res.Rotation
	m.spinStart = time.Now()
	m.spinning = true
	m.status = ""
	m.wheelView.SetSpinning(true)

	return tea.Batch(frameCmd(), m.waitRevealCmd())
}

// easedRotation interpolates the displayed rotation with a cubic ease-out
// so the wheel slows into the winning slice.
func (m *Model) easedRotation(now time.Time) float64 {
	x := float64(now.Sub(m.spinStart)) / float64(wheel.RevealDelay)
	if x > 1 {
		x = 1
	}
	eased := 1 - math.Pow(1-x, 3)
	return m.spinFrom + (m.spinTo-m.spinFrom)*eased
}

func (m *Model) forwardToNav(key tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	_, cmd := m.nav.Update(key)
	return m, cmd
}

func (m *Model) currentPage() *page.Page {
	if m.st == nil {
		return nil
	}
	return m.st.Current()
}

func (m *Model) reload() {
	st, err := m.svc.State(m.ctx)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.st = st
	m.nav.SetItems(st.Pages)
	if cur := st.Current(); cur != nil {
		m.nav.Select(cur.ID)
		m.items.SetItems(cur.Items)
		m.wheelView.SetItems(cur.Items)
	} else {
		m.items.SetItems(nil)
		m.wheelView.SetItems(nil)
	}
	m.wheelView.SetRotation(m.displayRot)
	m.layout()
}

func (m *Model) layout() {
	if m.termWidth == 0 {
		return
	}
	navWidth := m.termWidth / 4
	if navWidth < 20 {
		navWidth = 20
	}
	m.nav.SetSize(navWidth, m.termHeight-4)
	m.items.SetSize(m.termWidth-navWidth-6, (m.termHeight-4)/2)
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.st == nil {
		return "loading..."
	}

	nav := m.th.Nav.Frame.Render(
		m.th.Nav.Title.Render("Pages") + "\n" + m.nav.View())

	var right string
	cur := m.currentPage()
	switch {
	case cur == nil:
		right = m.th.Wheel.Frame.Render(m.th.Wheel.Faint.Render("no page selected"))
	case m.mode == modeForm:
		right = m.th.Wheel.Frame.Render(
			m.th.Wheel.Title.Render("Edit "+cur.DisplayTitle()) + "\n" + m.form.View())
	default:
		header := m.th.Wheel.Title.Render(cur.DisplayTitle())
		if cur.Subtitle != "" {
			header += "\n" + m.th.Wheel.Faint.Render(cur.Subtitle)
		}
		if cur.MediaType != page.KindNone {
			header += "\n" + m.th.Wheel.Faint.Render(string(cur.MediaType)+" attached")
		}
		right = m.th.Wheel.Frame.Render(
			header + "\n\n" +
				m.wheelView.View() + "\n\n" +
				m.th.Wheel.Title.Render("Items") + "\n" + m.items.View())
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, nav, right)

	footer := m.footerView()
	return body + "\n" + footer
}

func (m *Model) footerView() string {
	if m.mode == modeInsert {
		return m.input.View()
	}
	if m.errMsg != "" {
		return m.th.Footer.Error.Render(m.errMsg)
	}
	help := "tab focus · n new page · enter select · i add item · d delete item · e edit · s spin · r rand · q quit"
	if m.status != "" {
		return m.th.Footer.Status.Render(m.status) + "  " + m.th.Footer.Help.Render(help)
	}
	return m.th.Footer.Help.Render(help)
}
