package catalog

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/Iron-Ham/searchbox/internal/errors"
	"github.com/Iron-Ham/searchbox/internal/logging"
	"github.com/benbjohnson/clock"
	"github.com/fsnotify/fsnotify"
)

// DefaultReloadDelay coalesces bursts of write events from editors.
const DefaultReloadDelay = 200 * time.Millisecond

// WatchOptions configures a Watcher.
type WatchOptions struct {
	Catalog Options

	// Delay is the quiet period after the last change before reloading.
	Delay time.Duration
	Clock clock.Clock

	// OnReload receives each successfully reloaded catalog.
	OnReload func(*Catalog)
	// OnError receives load and watch errors. The previous catalog stays in
	// effect.
	OnError func(error)
}

// Watcher reloads a catalog file when it changes.
//
// The parent directory is watched rather than the file itself so that
// editors that save by renaming a temporary file are still observed.
type Watcher struct {
	path   string
	opts   WatchOptions
	logger *logging.Logger
	fsw    *fsnotify.Watcher

	mu    sync.Mutex
	timer *clock.Timer
	gen   uint64
}

// NewWatcher starts watching path. Call Run to process events.
func NewWatcher(path string, opts WatchOptions) (*Watcher, error) {
	if path == "" {
		return nil, errors.NewCatalogError(path, "the built-in catalog cannot be watched", nil)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "resolving %s", path)
	}
	if opts.Delay <= 0 {
		opts.Delay = DefaultReloadDelay
	}
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}
	logger := opts.Catalog.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "creating file watcher")
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, errors.Wrapf(err, "watching %s", filepath.Dir(abs))
	}

	return &Watcher{
		path:   abs,
		opts:   opts,
		logger: logger.WithComponent("catalog-watcher").With("path", abs),
		fsw:    fsw,
	}, nil
}

// Run processes file events until ctx is done. It always closes the
// underlying watcher before returning.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.handle(event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "error", err.Error())
			w.report(err)
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.gen++
	gen := w.gen
	w.timer = w.opts.Clock.AfterFunc(w.opts.Delay, func() { w.reload(gen) })
}

func (w *Watcher) reload(gen uint64) {
	w.mu.Lock()
	if gen != w.gen {
		w.mu.Unlock()
		return
	}
	w.timer = nil
	w.mu.Unlock()

	cat, err := Load(w.path, w.opts.Catalog)
	if err != nil {
		w.logger.Warn("reload failed", "error", err.Error())
		w.report(err)
		return
	}

	w.logger.Info("catalog reloaded", "items", cat.Len())
	if w.opts.OnReload != nil {
		w.opts.OnReload(cat)
	}
}

func (w *Watcher) report(err error) {
	if w.opts.OnError != nil {
		w.opts.OnError(err)
	}
}

func (w *Watcher) stop() {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.gen++
	w.mu.Unlock()

	_ = w.fsw.Close()
}
