package reveal

import (
	"sync"

	"github.com/hammamikhairi/resepi/internal/domain"
)

// Compile-time interface checks.
var (
	_ domain.VisibilityNotifier = (*Viewport)(nil)
	_ domain.VisibilityNotifier = Immediate{}
)

// Immediate reports every observed card as fully visible right away.
// Used where there is no scrolling surface, which turns the reveal into a
// plain time-based cascade.
type Immediate struct{}

// Observe reports each index at ratio 1.
func (Immediate) Observe(count int, fn func(index int, ratio float64)) func() {
	for i := 0; i < count; i++ {
		fn(i, 1)
	}
	return func() {}
}

// Span is the vertical extent of one card in rendered lines.
type Span struct {
	Top    int
	Height int
}

// Viewport computes card visibility from line spans and a scroll window.
// The terminal UI feeds it the layout of each frame.
type Viewport struct {
	mu       sync.Mutex
	spans    []Span
	top      int
	height   int
	count    int
	fn       func(index int, ratio float64)
	reported map[int]float64
	epoch    uint64
}

// NewViewport returns a viewport with an empty window.
func NewViewport() *Viewport {
	return &Viewport{reported: make(map[int]float64)}
}

// Observe subscribes fn to cards 0..count-1. Only one subscription is
// active at a time; a new one replaces the old.
func (v *Viewport) Observe(count int, fn func(index int, ratio float64)) func() {
	v.mu.Lock()
	v.epoch++
	epoch := v.epoch
	v.count = count
	v.fn = fn
	v.reported = make(map[int]float64)
	calls := v.changesLocked()
	v.mu.Unlock()

	dispatch(fn, calls)

	return func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		if v.epoch == epoch {
			v.fn = nil
			v.count = 0
		}
	}
}

// Layout records where each card sits in the rendered frame.
func (v *Viewport) Layout(spans []Span) {
	v.mu.Lock()
	v.spans = append(v.spans[:0], spans...)
	fn, calls := v.fn, v.changesLocked()
	v.mu.Unlock()

	dispatch(fn, calls)
}

// Scroll moves the visible window to lines [top, top+height).
func (v *Viewport) Scroll(top, height int) {
	v.mu.Lock()
	v.top, v.height = top, height
	fn, calls := v.fn, v.changesLocked()
	v.mu.Unlock()

	dispatch(fn, calls)
}

// Ratio returns the visible fraction of card index in the current window.
func (v *Viewport) Ratio(index int) float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.ratioLocked(index)
}

type visibility struct {
	index int
	ratio float64
}

// changesLocked lists cards whose non-zero visible fraction changed since
// the last report.
func (v *Viewport) changesLocked() []visibility {
	if v.fn == nil {
		return nil
	}
	var out []visibility
	for i := 0; i < v.count && i < len(v.spans); i++ {
		r := v.ratioLocked(i)
		if r <= 0 || r == v.reported[i] {
			continue
		}
		v.reported[i] = r
		out = append(out, visibility{index: i, ratio: r})
	}
	return out
}

func (v *Viewport) ratioLocked(index int) float64 {
	if index < 0 || index >= len(v.spans) || v.height <= 0 {
		return 0
	}
	sp := v.spans[index]
	if sp.Height <= 0 {
		return 0
	}
	lo := max(sp.Top, v.top)
	hi := min(sp.Top+sp.Height, v.top+v.height)
	if hi <= lo {
		return 0
	}
	return float64(hi-lo) / float64(sp.Height)
}

func dispatch(fn func(int, float64), calls []visibility) {
	if fn == nil {
		return
	}
	for _, c := range calls {
		fn(c.index, c.ratio)
	}
}
