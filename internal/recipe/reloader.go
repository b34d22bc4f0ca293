package recipe

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/hammamikhairi/resepi/internal/logger"
)

// DefaultDebounce batches the burst of events editors emit on save.
const DefaultDebounce = 300 * time.Millisecond

// ReloaderOption configures a Reloader.
type ReloaderOption func(*Reloader)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) ReloaderOption {
	return func(r *Reloader) {
		r.debounce = d
	}
}

// WithOnReload registers a callback run after each successful reload with
// the new collection version.
func WithOnReload(fn func(version uint64)) ReloaderOption {
	return func(r *Reloader) {
		r.onReload = fn
	}
}

// Reloader watches a recipe file and swaps it into a MemorySource when it
// changes. Every swap bumps the source version, which is what invalidates
// the ingredient index.
type Reloader struct {
	mu       sync.Mutex
	path     string
	src      *MemorySource
	log      *logger.Logger
	watcher  *fsnotify.Watcher
	debounce time.Duration
	onReload func(version uint64)
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
}

// NewReloader creates a reloader for path. Call Start to begin watching.
func NewReloader(path string, src *MemorySource, log *logger.Logger, opts ...ReloaderOption) *Reloader {
	r := &Reloader{
		path:     filepath.Clean(path),
		src:      src,
		log:      log,
		debounce: DefaultDebounce,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start watches the file's directory (so atomic renames are seen) and
// returns immediately. Calling Start twice is a no-op.
func (r *Reloader) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return nil
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(r.path)); err != nil {
		w.Close()
		return err
	}

	r.watcher = w
	r.stopCh = make(chan struct{})
	r.doneCh = make(chan struct{})
	r.running = true
	go r.run(ctx)

	r.log.Info("reloader: watching %s", r.path)
	return nil
}

// Stop ends watching and waits for the event loop to exit.
func (r *Reloader) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	stopCh, doneCh, w := r.stopCh, r.doneCh, r.watcher
	r.mu.Unlock()

	close(stopCh)
	<-doneCh
	if err := w.Close(); err != nil {
		r.log.Error("reloader: closing watcher: %v", err)
	}
	r.log.Debug("reloader: stopped")
}

// Run starts the reloader and blocks until ctx is done.
func (r *Reloader) Run(ctx context.Context) error {
	if err := r.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	r.Stop()
	return nil
}

func (r *Reloader) run(ctx context.Context) {
	defer close(r.doneCh)

	var (
		timer  *time.Timer
		fire   <-chan time.Time
		events = r.watcher.Events
		errs   = r.watcher.Errors
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.stopCh:
			return

		case ev, ok := <-events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != r.path {
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) {
				continue
			}
			r.log.Debug("reloader: %s %s", ev.Op, ev.Name)
			if timer == nil {
				timer = time.NewTimer(r.debounce)
			} else {
				timer.Reset(r.debounce)
			}
			fire = timer.C

		case err, ok := <-errs:
			if !ok {
				return
			}
			r.log.Error("reloader: watch error: %v", err)

		case <-fire:
			fire = nil
			r.reload()
		}
	}
}

// reload keeps the old collection when the file does not parse.
func (r *Reloader) reload() {
	recipes, err := LoadFile(r.path)
	if err != nil {
		r.log.Warn("reloader: keeping previous recipes: %v", err)
		return
	}
	if err := r.src.Replace(recipes); err != nil {
		r.log.Warn("reloader: %v", err)
	}
	if r.onReload != nil {
		r.onReload(r.src.Version())
	}
}
