package display

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/resepi/internal/conversation"
	"github.com/hammamikhairi/resepi/internal/detail"
	"github.com/hammamikhairi/resepi/internal/domain"
	"github.com/hammamikhairi/resepi/internal/engine"
	"github.com/hammamikhairi/resepi/internal/logger"
	"github.com/hammamikhairi/resepi/internal/reveal"
)

const (
	promptText    = "resepi> "
	defaultWidth  = 80
	defaultHeight = 24
)

// Messages.
type (
	// revealMsg reports that card index of session gen settled.
	revealMsg struct {
		gen   uint64
		index int
	}
	reloadMsg struct{ version uint64 }
	heardMsg  struct {
		text string
		err  error
	}
)

type model struct {
	ctx        context.Context
	ctrl       *engine.Controller
	parser     domain.EventParser
	sched      *reveal.Scheduler
	visibility *reveal.Viewport
	speech     domain.SpeechInput
	chime      func()
	log        *logger.Logger
	readyCh    chan struct{}

	input     textinput.Model
	detailVP  viewport.Model
	detailKey string

	view   engine.View
	batch  string
	gen    uint64
	scroll int

	width     int
	height    int
	status    string
	statusErr bool
	showHelp  bool
	listening bool
}

func newModel(ctx context.Context, ctrl *engine.Controller, parser domain.EventParser, sched *reveal.Scheduler, visibility *reveal.Viewport, log *logger.Logger) model {
	ti := textinput.New()
	// A plain-text prompt keeps the textinput width math correct.
	ti.Prompt = promptText
	ti.PromptStyle = promptStyle
	ti.TextStyle = userInputStyle
	ti.Placeholder = "cari resep atau ketik help"
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8"))
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = defaultWidth - len(promptText)

	return model{
		ctx:        ctx,
		ctrl:       ctrl,
		parser:     parser,
		sched:      sched,
		visibility: visibility,
		log:        log,
		input:      ti,
		detailVP:   viewport.New(defaultWidth, defaultHeight),
		width:      defaultWidth,
		height:     defaultHeight,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		signalReady(m.readyCh),
		tea.SetWindowTitle("Resepi"),
	)
}

func signalReady(ch chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		close(ch)
		return nil
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if msg.Width > len(promptText) {
			m.input.Width = msg.Width - len(promptText) - 1
		}
		m.detailKey = ""
		m.sync()
		return m, nil

	case revealMsg:
		if msg.gen == m.gen && m.chime != nil {
			m.chime()
		}
		return m, nil

	case reloadMsg:
		m.setStatus(fmt.Sprintf("Koleksi resep dimuat ulang (versi %d)", msg.version), false)
		m.sync()
		return m, nil

	case heardMsg:
		m.listening = false
		if msg.err != nil {
			m.setStatus("Suara: "+msg.err.Error(), true)
			return m, nil
		}
		if msg.text == "" {
			m.setStatus("Tidak ada suara yang dikenali", true)
			return m, nil
		}
		var cmd tea.Cmd
		m, cmd = m.submit(msg.text)
		if !m.statusErr && m.status == "" {
			m.setStatus("[suara] "+msg.text, false)
		}
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	detailOpen := m.view.Selected != nil

	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEnter:
		v := m.input.Value()
		m.input.Reset()
		if strings.TrimSpace(v) == "" {
			return m, nil
		}
		return m.submit(v)

	case tea.KeyEsc:
		switch {
		case detailOpen:
			m.ctrl.CloseDetail()
		case m.showHelp:
			m.showHelp = false
		case m.input.Value() != "":
			m.input.Reset()
		case m.view.ShowFavourites:
			m.ctrl.ToggleFavourites()
		}
		m.sync()
		return m, nil

	case tea.KeyCtrlF:
		return m.apply(&domain.Event{Type: domain.EventToggleFilterPanel})
	case tea.KeyCtrlL:
		return m.apply(&domain.Event{Type: domain.EventClearFilters})
	case tea.KeyCtrlO:
		return m.apply(&domain.Event{Type: domain.EventShowFavourites})
	case tea.KeyCtrlS:
		return m.apply(&domain.Event{Type: domain.EventSaveRecipe})
	case tea.KeyCtrlR:
		return m.listen()

	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
		if detailOpen {
			var cmd tea.Cmd
			m.detailVP, cmd = m.detailVP.Update(msg)
			return m, cmd
		}
		step := cardHeight
		if msg.Type == tea.KeyPgUp || msg.Type == tea.KeyPgDown {
			step = max(cardHeight, m.gridHeight())
		}
		if msg.Type == tea.KeyUp || msg.Type == tea.KeyPgUp {
			step = -step
		}
		m.scrollBy(step)
		return m, nil

	case tea.KeyLeft, tea.KeyRight:
		if m.input.Value() == "" && !detailOpen && !m.view.ShowFavourites {
			if msg.Type == tea.KeyLeft {
				return m.apply(&domain.Event{Type: domain.EventPrevious})
			}
			return m.apply(&domain.Event{Type: domain.EventNext})
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit parses one command line. Lines that are not commands search by
// name.
func (m model) submit(line string) (model, tea.Cmd) {
	ev, err := m.parser.Parse(m.ctx, line)
	if err != nil {
		m.setStatus(err.Error(), true)
		return m, nil
	}
	return m.apply(conversation.AsSearch(ev))
}

// apply routes an event to the controller and redraws.
func (m model) apply(ev *domain.Event) (model, tea.Cmd) {
	switch ev.Type {
	case domain.EventQuit:
		return m, tea.Quit
	case domain.EventHelp:
		m.showHelp = !m.showHelp
		return m, nil
	case domain.EventUnknown:
		return m, nil
	}

	err := m.ctrl.Dispatch(m.ctx, *ev)
	if err != nil {
		m.log.Debug("%s: %v", ev.Type, err)
	}
	m.setStatus(conversation.Outcome(ev.Type, err))
	m.sync()
	return m, nil
}

// listen records one utterance in the background.
func (m model) listen() (model, tea.Cmd) {
	if m.speech == nil {
		m.setStatus("Input suara tidak aktif", true)
		return m, nil
	}
	if m.listening {
		return m, nil
	}
	m.listening = true
	m.status = ""
	speech, ctx := m.speech, m.ctx
	return m, func() tea.Msg {
		text, err := speech.Listen(ctx)
		return heardMsg{text: text, err: err}
	}
}

func (m *model) setStatus(s string, isErr bool) {
	m.status, m.statusErr = s, isErr
}

// sync takes a fresh snapshot, reports the card layout to the viewport
// and starts a reveal session whenever the cards on screen change.
func (m *model) sync() {
	v, err := m.ctrl.Snapshot(m.ctx)
	if err != nil {
		m.log.Error("snapshot: %v", err)
		m.setStatus(err.Error(), true)
		return
	}
	m.view = v

	cards := v.Cards()
	key := v.BatchKey()
	fresh := key != m.batch
	if fresh {
		m.batch = key
		m.scroll = 0
	}

	m.syncDetail()
	m.clampScroll()
	m.visibility.Layout(cardSpans(len(cards), columns(m.width)))
	m.visibility.Scroll(m.scroll, m.gridHeight())

	if fresh {
		m.gen = m.sched.Begin(len(cards))
		m.log.Debug("reveal session %d: %d cards, %d waiting", m.gen, len(cards), m.sched.Pending())
	}
}

func (m *model) syncDetail() {
	sel := m.view.Selected
	if sel == nil {
		m.detailKey = ""
		return
	}
	m.detailVP.Width = m.width
	m.detailVP.Height = m.bodyHeight()

	key := fmt.Sprintf("%s/%d/%d", sel.ID, m.view.Version, m.width)
	if key == m.detailKey {
		return
	}
	m.detailKey = key

	out, err := detail.Render(detail.New(sel), m.width-2)
	if err != nil {
		m.log.Warn("detail: %v", err)
	}
	m.detailVP.SetContent(out)
	m.detailVP.GotoTop()
}

func (m *model) scrollBy(delta int) {
	m.scroll += delta
	m.clampScroll()
	m.visibility.Scroll(m.scroll, m.gridHeight())
}

func (m *model) clampScroll() {
	rows := (len(m.view.Cards()) + columns(m.width) - 1) / columns(m.width)
	maxScroll := max(0, rows*cardHeight-m.gridHeight())
	m.scroll = max(0, min(m.scroll, maxScroll))
}

// bodyHeight is what is left between header and footer.
func (m model) bodyHeight() int {
	h := m.height
	if h <= 0 {
		h = defaultHeight
	}
	return max(0, h-lipgloss.Height(m.header())-lipgloss.Height(m.footer()))
}

// gridHeight is the visible part of the card grid. It is zero while the
// grid is covered, so no cards reveal behind the detail or help.
func (m model) gridHeight() int {
	if m.view.Selected != nil || m.showHelp {
		return 0
	}
	return m.bodyHeight()
}

func (m model) View() string {
	h := m.bodyHeight()

	var body string
	switch {
	case m.showHelp:
		body = fit(secondaryStyle.Render(conversation.Help), 0, h)
	case m.view.Selected != nil:
		body = fit(m.detailVP.View(), 0, h)
	case len(m.view.Cards()) == 0:
		body = fit(m.emptyState(), 0, h)
	default:
		grid := renderGrid(m.view.Cards(), columns(m.width), m.settled)
		body = fit(grid, m.scroll, h)
	}

	return m.header() + "\n" + body + "\n" + m.footer()
}

// settled reports whether card i of the current session has revealed.
func (m model) settled(i int) bool {
	return m.sched.Generation() == m.gen && m.sched.IsVisible(i)
}

func (m model) header() string {
	all, fav := activeTabStyle, tabStyle
	if m.view.ShowFavourites {
		all, fav = tabStyle, activeTabStyle
	}
	lines := []string{
		titleStyle.Render("Resepi") + "  " + all.Render("Semua Resep") + sepStyle.Render(" │ ") + fav.Render("Resep Favorit"),
	}

	switch {
	case m.view.ShowFavourites:
		lines = append(lines, labelStyle.Render(fmt.Sprintf("%d resep tersimpan", len(m.view.Favourites))))
	default:
		lines = append(lines, labelStyle.Render(m.view.Summary()))
		if m.view.ShowFilterPanel {
			lines = append(lines, renderChips(m.view))
		}
	}
	return strings.Join(lines, "\n")
}

func (m model) footer() string {
	var lines []string

	switch {
	case m.view.Selected != nil:
		save := "ctrl+s Simpan Resep"
		if m.view.SelectedSaved {
			save = "★ tersimpan · hapus favorit"
		}
		lines = append(lines, pageStyle.Render("esc Kembali")+sepStyle.Render("  │  ")+okStyle.Render(save))
	case m.view.ShowFavourites || m.view.Empty():
	case m.view.ShowControls():
		lines = append(lines, renderPager(m.view)+"  "+secondaryStyle.Render(m.view.RangeLine()))
	default:
		lines = append(lines, secondaryStyle.Render(m.view.RangeLine()))
	}

	switch {
	case m.listening:
		lines = append(lines, promptStyle.Render("Mendengarkan…"))
	case m.status != "" && m.statusErr:
		lines = append(lines, urgentStyle.Render(m.status))
	case m.status != "":
		lines = append(lines, okStyle.Render(m.status))
	}

	w := m.width
	if w <= 0 {
		w = defaultWidth
	}
	hints := " ←/→ halaman · ↑/↓ gulir · ctrl+f bahan · ctrl+o favorit · ctrl+r suara · help"
	lines = append(lines, barBg.Width(w).MaxHeight(1).Render(hints), m.input.View())
	return strings.Join(lines, "\n")
}

func (m model) emptyState() string {
	if m.view.ShowFavourites {
		return primaryStyle.Render("Belum ada resep favorit") + "\n" +
			secondaryStyle.Render("Buka resep lalu tekan ctrl+s untuk menyimpannya")
	}
	return primaryStyle.Render(engine.EmptyTitle) + "\n" + secondaryStyle.Render(m.view.EmptyHint())
}

// fit returns exactly h lines of s starting at line top, padding with
// blank lines.
func fit(s string, top, h int) string {
	if h <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if top > len(lines) {
		top = len(lines)
	}
	lines = lines[top:]
	if len(lines) > h {
		lines = lines[:h]
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
