// Package reveal staggers the "settle" transition of recipe cards as they
// scroll into view. Each rendered batch of cards is one session; starting a
// new session bumps a generation counter so timers left over from the old
// batch fire into nothing.
package reveal

import (
	"sort"
	"sync"
	"time"

	"github.com/hammamikhairi/resepi/internal/domain"
	"github.com/hammamikhairi/resepi/internal/logger"
)

// Cards reveal at 10% visibility, 200ms apart.
const (
	DefaultThreshold = 0.1
	DefaultStagger   = 200 * time.Millisecond
)

// AfterFunc schedules f after d and returns a function that cancels it.
type AfterFunc func(d time.Duration, f func()) (stop func() bool)

// Option configures the scheduler.
type Option func(*Scheduler)

// WithThreshold sets the minimum visible fraction that counts as "in view".
func WithThreshold(ratio float64) Option {
	return func(s *Scheduler) {
		s.threshold = ratio
	}
}

// WithStagger sets the per-index delay. Card i settles after i*d.
func WithStagger(d time.Duration) Option {
	return func(s *Scheduler) {
		s.stagger = d
	}
}

// WithAfterFunc replaces time.AfterFunc. Tests use it to fire timers by hand.
func WithAfterFunc(fn AfterFunc) Option {
	return func(s *Scheduler) {
		s.afterFunc = fn
	}
}

// WithOnReveal registers a callback run (outside the lock) each time a card
// settles. gen identifies the session the card belongs to.
func WithOnReveal(fn func(gen uint64, index int)) Option {
	return func(s *Scheduler) {
		s.onReveal = fn
	}
}

// WithNotifier subscribes every new session to the given visibility source.
func WithNotifier(n domain.VisibilityNotifier) Option {
	return func(s *Scheduler) {
		s.notifier = n
	}
}

// Scheduler tracks which card positions of the current batch have settled.
// Visibility is monotonic within a session. Safe for concurrent use.
type Scheduler struct {
	log       *logger.Logger
	threshold float64
	stagger   time.Duration
	afterFunc AfterFunc
	onReveal  func(gen uint64, index int)
	notifier  domain.VisibilityNotifier

	mu      sync.Mutex
	gen     uint64
	count   int
	visible map[int]struct{}
	pending map[int]func() bool
	release func()
}

// New creates a scheduler with no active session.
func New(log *logger.Logger, opts ...Option) *Scheduler {
	s := &Scheduler{
		log:       log,
		threshold: DefaultThreshold,
		stagger:   DefaultStagger,
		afterFunc: func(d time.Duration, f func()) func() bool {
			return time.AfterFunc(d, f).Stop
		},
		visible: make(map[int]struct{}),
		pending: make(map[int]func() bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Begin starts a session for count freshly rendered cards and returns its
// generation. The previous session's observers are released and its
// pending timers are stopped; any that already fired are ignored because
// their generation no longer matches.
func (s *Scheduler) Begin(count int) uint64 {
	s.mu.Lock()
	s.teardownLocked()
	s.gen++
	gen := s.gen
	s.count = count
	notifier := s.notifier
	s.mu.Unlock()

	s.log.Debug("reveal: session %d started with %d cards", gen, count)

	if notifier == nil || count == 0 {
		return gen
	}

	release := notifier.Observe(count, func(index int, ratio float64) {
		s.Intersect(gen, index, ratio)
	})

	s.mu.Lock()
	if s.gen == gen {
		s.release = release
		release = nil
	}
	s.mu.Unlock()

	// Superseded while subscribing.
	if release != nil {
		release()
	}
	return gen
}

// Intersect reports that card index of session gen is visible at ratio.
// Stale sessions, out-of-range indices, ratios under the threshold and
// cards already settled or scheduled are ignored.
func (s *Scheduler) Intersect(gen uint64, index int, ratio float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen || index < 0 || index >= s.count {
		return
	}
	if ratio <= 0 || ratio < s.threshold {
		return
	}
	if _, ok := s.visible[index]; ok {
		return
	}
	if _, ok := s.pending[index]; ok {
		return
	}

	delay := time.Duration(index) * s.stagger
	s.pending[index] = s.afterFunc(delay, func() { s.settle(gen, index) })
	s.log.Debug("reveal: card %d of session %d scheduled in %s", index, gen, delay)
}

// settle is the timer body. It only applies to the session it was
// scheduled in.
func (s *Scheduler) settle(gen uint64, index int) {
	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		s.log.Debug("reveal: dropped stale card %d from session %d", index, gen)
		return
	}
	delete(s.pending, index)
	s.visible[index] = struct{}{}
	onReveal := s.onReveal
	s.mu.Unlock()

	if onReveal != nil {
		onReveal(gen, index)
	}
}

// Generation returns the current session id. Zero means no session yet.
func (s *Scheduler) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

// IsVisible reports whether card index of the current session has settled.
func (s *Scheduler) IsVisible(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.visible[index]
	return ok
}

// Visible returns the settled indices of the current session in order.
func (s *Scheduler) Visible() []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]int, 0, len(s.visible))
	for i := range s.visible {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Pending returns how many cards of the current session are waiting on a timer.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Stop ends the current session without starting a new one.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teardownLocked()
	s.gen++
	s.count = 0
}

// teardownLocked releases observers, stops timers and clears visibility.
func (s *Scheduler) teardownLocked() {
	if s.release != nil {
		s.release()
		s.release = nil
	}
	for i, stop := range s.pending {
		stop()
		delete(s.pending, i)
	}
	s.visible = make(map[int]struct{})
}
