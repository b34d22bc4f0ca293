// Package display provides the terminal recipe browser using Bubble Tea.
//
// The [UI] type owns the Bubble Tea program. Recipe state lives in the
// page controller; the UI turns keys and typed commands into events,
// draws the resulting view and drives the card reveal from the rendered
// layout. Background goroutines talk to it only through [UI.Reload].
package display

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hammamikhairi/resepi/internal/domain"
	"github.com/hammamikhairi/resepi/internal/engine"
	"github.com/hammamikhairi/resepi/internal/logger"
	"github.com/hammamikhairi/resepi/internal/reveal"
)

// Option configures the UI.
type Option func(*UI)

// WithSpeech enables push-to-talk dictation (ctrl+r).
func WithSpeech(s domain.SpeechInput) Option {
	return func(u *UI) { u.speech = s }
}

// WithChime plays fn each time a card settles.
func WithChime(fn func()) Option {
	return func(u *UI) { u.chime = fn }
}

// WithReveal sets the reveal threshold and stagger.
func WithReveal(threshold float64, stagger time.Duration) Option {
	return func(u *UI) {
		u.threshold = threshold
		u.stagger = stagger
	}
}

// UI runs the browser. Call [NewUI] then [UI.Run] (blocking).
type UI struct {
	ctrl      *engine.Controller
	parser    domain.EventParser
	speech    domain.SpeechInput
	chime     func()
	log       *logger.Logger
	threshold float64
	stagger   time.Duration

	program atomic.Pointer[tea.Program]
	readyCh chan struct{}
	quitCh  chan struct{}
	done    atomic.Bool
}

// NewUI creates the browser. Call Run() to start.
func NewUI(ctrl *engine.Controller, parser domain.EventParser, log *logger.Logger, opts ...Option) *UI {
	u := &UI{
		ctrl:      ctrl,
		parser:    parser,
		log:       log,
		threshold: reveal.DefaultThreshold,
		stagger:   reveal.DefaultStagger,
		readyCh:   make(chan struct{}),
		quitCh:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Run starts the Bubble Tea event loop. Blocks until the user quits or
// ctx is cancelled.
func (u *UI) Run(ctx context.Context) error {
	visibility := reveal.NewViewport()
	sched := reveal.New(u.log,
		reveal.WithThreshold(u.threshold),
		reveal.WithStagger(u.stagger),
		reveal.WithNotifier(visibility),
		reveal.WithOnReveal(func(gen uint64, index int) {
			u.send(revealMsg{gen: gen, index: index})
		}),
	)
	defer sched.Stop()

	m := newModel(ctx, u.ctrl, u.parser, sched, visibility, u.log)
	m.speech = u.speech
	m.chime = u.chime
	m.readyCh = u.readyCh

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	u.program.Store(p)
	_, err := p.Run()
	u.done.Store(true)
	close(u.quitCh)
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// WaitReady blocks until the event loop is running.
func (u *UI) WaitReady() { <-u.readyCh }

// QuitChan is closed when Run returns.
func (u *UI) QuitChan() <-chan struct{} { return u.quitCh }

// Quit tells Bubble Tea to exit.
func (u *UI) Quit() {
	if p := u.program.Load(); p != nil {
		p.Quit()
	}
}

// Reload asks the UI to redraw after the recipe collection changed.
// Safe to call from any goroutine.
func (u *UI) Reload(version uint64) {
	u.send(reloadMsg{version: version})
}

func (u *UI) send(msg tea.Msg) {
	if p := u.program.Load(); p != nil && !u.done.Load() {
		p.Send(msg)
	}
}
