package display

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-cmp/cmp"

	"github.com/hammamikhairi/resepi/internal/conversation"
	"github.com/hammamikhairi/resepi/internal/domain"
	"github.com/hammamikhairi/resepi/internal/engine"
	"github.com/hammamikhairi/resepi/internal/logger"
	"github.com/hammamikhairi/resepi/internal/recipe"
	"github.com/hammamikhairi/resepi/internal/reveal"
	"github.com/hammamikhairi/resepi/internal/storage"
)

type manualTimers struct {
	mu    sync.Mutex
	fns   []func()
	delay []time.Duration
}

func (c *manualTimers) AfterFunc(d time.Duration, f func()) func() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fns = append(c.fns, f)
	c.delay = append(c.delay, d)
	return func() bool { return true }
}

func (c *manualTimers) fireAll() {
	c.mu.Lock()
	fns := append([]func(){}, c.fns...)
	c.mu.Unlock()
	for _, f := range fns {
		f()
	}
}

type stubSpeech struct {
	text string
	err  error
}

func (s stubSpeech) Listen(context.Context) (string, error) { return s.text, s.err }

func browserRecipes() []domain.Recipe {
	return []domain.Recipe{
		{ID: "nasi-goreng", Name: "Nasi Goreng", Ingredients: []string{"2 cups rice", "1 egg"}, Steps: []string{"Goreng."}},
		{ID: "es-teh", Name: "Es Teh", Type: domain.TypeBeverage, Ingredients: []string{"1 liter water", "sugar"}},
		{ID: "nasi-uduk", Name: "Nasi Uduk", Ingredients: []string{"2 cups rice", "200 ml santan"}},
		{ID: "es-cendol", Name: "Es Cendol", Type: domain.TypeBeverage, Ingredients: []string{"200 ml santan", "3 eggs"}},
		{ID: "rendang", Name: "Rendang", Ingredients: []string{"1 kg daging", "1 liter santan"}},
	}
}

func setupModel(t *testing.T) (model, *manualTimers) {
	t.Helper()
	return setupModelSized(t, 100, 40)
}

func setupModelSized(t *testing.T, width, height int) (model, *manualTimers) {
	t.Helper()
	log := logger.New(logger.LevelOff, nil)
	ctrl := engine.New(
		recipe.NewMemorySource(log, recipe.WithRecipes(browserRecipes())),
		storage.NewMemoryStore(log),
		log,
	)
	timers := &manualTimers{}
	visibility := reveal.NewViewport()
	sched := reveal.New(log,
		reveal.WithAfterFunc(timers.AfterFunc),
		reveal.WithNotifier(visibility),
	)
	t.Cleanup(sched.Stop)

	m := newModel(context.Background(), ctrl, conversation.NewKeywordParser(log), sched, visibility, log)
	m = update(t, m, tea.WindowSizeMsg{Width: width, Height: height})
	return m, timers
}

func update(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(model)
}

func typeLine(t *testing.T, m model, line string) model {
	t.Helper()
	m.input.SetValue(line)
	return update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

func TestFirstFrameStartsReveal(t *testing.T) {
	m, timers := setupModel(t)

	if m.gen != 1 {
		t.Fatalf("generation = %d, want 1", m.gen)
	}
	want := []time.Duration{0, reveal.DefaultStagger, 2 * reveal.DefaultStagger}
	if diff := cmp.Diff(want, timers.delay); diff != "" {
		t.Fatalf("reveal delays (-want +got):\n%s", diff)
	}

	out := m.View()
	for _, s := range []string{"Ditemukan 5 resep", "Menampilkan 1-3 dari 5 resep", "Sebelumnya", "Selanjutnya"} {
		if !strings.Contains(out, s) {
			t.Errorf("view missing %q", s)
		}
	}
	if m.settled(0) {
		t.Fatal("card settled before its timer fired")
	}

	timers.fireAll()
	for i := 0; i < 3; i++ {
		if !m.settled(i) {
			t.Fatalf("card %d not settled", i)
		}
	}
}

func TestSearchStartsNewSession(t *testing.T) {
	m, _ := setupModel(t)

	m = typeLine(t, m, "nasi")
	if m.gen != 2 {
		t.Fatalf("generation = %d, want 2", m.gen)
	}
	out := m.View()
	if !strings.Contains(out, `Ditemukan 2 resep untuk "nasi"`) {
		t.Fatalf("summary missing:\n%s", out)
	}
	if strings.Contains(out, "Selanjutnya") {
		t.Fatal("pagination shown for a single page")
	}

	m = typeLine(t, m, "xyz")
	out = m.View()
	if !strings.Contains(out, engine.EmptyTitle) || !strings.Contains(out, `pencarian "xyz"`) {
		t.Fatalf("empty state missing:\n%s", out)
	}
}

func TestArrowKeysPage(t *testing.T) {
	m, _ := setupModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.view.CurrentPage != 2 {
		t.Fatalf("page = %d, want 2", m.view.CurrentPage)
	}
	if !strings.Contains(m.View(), "Menampilkan 4-5 dari 5 resep") {
		t.Fatal("range line not updated")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.view.CurrentPage != 2 {
		t.Fatalf("next on last page moved to %d", m.view.CurrentPage)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.view.CurrentPage != 1 {
		t.Fatalf("page = %d, want 1", m.view.CurrentPage)
	}
}

func TestPageOutOfRangeShowsStatus(t *testing.T) {
	m, _ := setupModel(t)

	m = typeLine(t, m, "page 9")
	if m.view.CurrentPage != 1 {
		t.Fatalf("page = %d, want 1", m.view.CurrentPage)
	}
	if !m.statusErr || m.status != "Halaman tidak tersedia" {
		t.Fatalf("status = %q (err=%v)", m.status, m.statusErr)
	}
}

func TestDetailSaveAndFavourites(t *testing.T) {
	m, _ := setupModel(t)

	m = typeLine(t, m, "1")
	if m.view.Selected == nil || m.view.Selected.ID != "nasi-goreng" {
		t.Fatalf("selected = %+v", m.view.Selected)
	}
	if m.gridHeight() != 0 {
		t.Fatal("grid still visible behind the detail")
	}
	out := m.View()
	if !strings.Contains(out, "Nasi Goreng") || !strings.Contains(out, "Simpan Resep") {
		t.Fatalf("detail view:\n%s", out)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.status != "Resep disimpan ke favorit" {
		t.Fatalf("status = %q", m.status)
	}
	if !strings.Contains(m.View(), "★ tersimpan") {
		t.Fatal("saved marker missing")
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.status != "Resep sudah ada di favorit" {
		t.Fatalf("status = %q", m.status)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view.Selected != nil {
		t.Fatal("esc did not close the detail")
	}

	gen := m.gen
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlO})
	if !m.view.ShowFavourites || m.gen == gen {
		t.Fatal("favourites did not open a new batch")
	}
	if !strings.Contains(m.View(), "1 resep tersimpan") {
		t.Fatal("favourites count missing")
	}

	m = typeLine(t, m, "hapus favorit 1")
	if m.status != "Resep dihapus dari favorit" || !strings.Contains(m.View(), "0 resep tersimpan") {
		t.Fatalf("status = %q after remove", m.status)
	}
}

func TestSaveWithoutSelection(t *testing.T) {
	m, _ := setupModel(t)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if !m.statusErr || m.status != "Buka resep terlebih dahulu" {
		t.Fatalf("status = %q", m.status)
	}
}

func TestFilterPanelChips(t *testing.T) {
	m, _ := setupModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlF})
	if !m.view.ShowFilterPanel {
		t.Fatal("panel hidden")
	}
	if !strings.Contains(m.header(), "santan") {
		t.Fatalf("chips missing:\n%s", m.header())
	}

	m = typeLine(t, m, "chip santan")
	if m.view.IngredientFilter != "santan" || len(m.view.Filtered) != 3 {
		t.Fatalf("filter %q matched %d", m.view.IngredientFilter, len(m.view.Filtered))
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	if m.view.IngredientFilter != "" || m.view.ShowFilterPanel {
		t.Fatal("clear left filters behind")
	}
}

func TestHelpAndQuit(t *testing.T) {
	m, _ := setupModel(t)

	m = typeLine(t, m, "help")
	if !m.showHelp || !strings.Contains(m.View(), "Perintah:") {
		t.Fatal("help not shown")
	}

	m.input.SetValue("quit")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("quit did not produce tea.QuitMsg")
	}
}

func TestDictation(t *testing.T) {
	m, _ := setupModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if !m.statusErr || m.status != "Input suara tidak aktif" {
		t.Fatalf("status = %q", m.status)
	}

	m.speech = stubSpeech{text: "rendang"}
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	m = next.(model)
	if !m.listening || cmd == nil {
		t.Fatal("dictation did not start")
	}
	m = update(t, m, cmd())
	if m.listening {
		t.Fatal("still listening")
	}
	if m.view.SearchQuery != "rendang" || len(m.view.Filtered) != 1 {
		t.Fatalf("spoken search: %q matched %d", m.view.SearchQuery, len(m.view.Filtered))
	}
	if m.status != "[suara] rendang" {
		t.Fatalf("status = %q", m.status)
	}
}

func TestRevealChime(t *testing.T) {
	m, _ := setupModel(t)
	rang := 0
	m.chime = func() { rang++ }

	m = update(t, m, revealMsg{gen: m.gen, index: 0})
	m = update(t, m, revealMsg{gen: m.gen - 1, index: 1})
	if rang != 1 {
		t.Fatalf("chime rang %d times, want 1", rang)
	}
}

func TestScrollRevealsLowerRows(t *testing.T) {
	// One column and room for exactly one card.
	m, timers := setupModelSized(t, 40, 12)
	if columns(m.width) != 1 || m.gridHeight() != cardHeight {
		t.Fatalf("columns = %d, grid height = %d", columns(m.width), m.gridHeight())
	}
	before := len(timers.delay)
	if before != 1 {
		t.Fatalf("%d cards scheduled before scrolling, want 1", before)
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.scroll == 0 {
		t.Fatal("did not scroll")
	}
	if len(timers.delay) <= before {
		t.Fatal("scrolling revealed no new card")
	}
}

func TestCardSpans(t *testing.T) {
	got := cardSpans(5, 2)
	want := []reveal.Span{
		{Top: 0, Height: cardHeight},
		{Top: 0, Height: cardHeight},
		{Top: cardHeight, Height: cardHeight},
		{Top: cardHeight, Height: cardHeight},
		{Top: 2 * cardHeight, Height: cardHeight},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("spans (-want +got):\n%s", diff)
	}
}

func TestRenderCardHeight(t *testing.T) {
	r := browserRecipes()[0]
	for _, settled := range []bool{true, false} {
		out := renderCard(r, 1, settled)
		if h := lipgloss.Height(out); h != cardHeight {
			t.Fatalf("settled=%v height = %d, want %d", settled, h, cardHeight)
		}
		if w := lipgloss.Width(out); w != cardWidth {
			t.Fatalf("settled=%v width = %d, want %d", settled, w, cardWidth)
		}
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		s         string
		top, h    int
		wantLines []string
	}{
		{"a\nb\nc", 0, 2, []string{"a", "b"}},
		{"a\nb\nc", 1, 4, []string{"b", "c", "", ""}},
		{"a", 5, 1, []string{""}},
	}
	for _, tt := range tests {
		got := strings.Split(fit(tt.s, tt.top, tt.h), "\n")
		if diff := cmp.Diff(tt.wantLines, got); diff != "" {
			t.Errorf("fit(%q, %d, %d) (-want +got):\n%s", tt.s, tt.top, tt.h, diff)
		}
	}
	if fit("a", 0, 0) != "" {
		t.Fatal("zero height should be empty")
	}
}

func TestCenterBanner(t *testing.T) {
	out := centerBanner(200)
	if !strings.HasPrefix(out, strings.Repeat(" ", 50)) {
		t.Fatalf("banner not centred:\n%s", out)
	}
	if strings.Count(out, "\n") != 3 {
		t.Fatalf("banner lines = %d", strings.Count(out, "\n"))
	}
}
