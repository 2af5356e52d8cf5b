// Package watch regenerates masks when template files change on disk.
package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/goliatone/go-blitmask/pkg/source"
)

// DefaultDebounce is how long a file must stay quiet before it is reported.
const DefaultDebounce = 300 * time.Millisecond

// ErrNoHandler is returned by New when no change handler is supplied.
var ErrNoHandler = errors.New("watch: change handler is required")

// Handler receives the template files that changed since the last call.
type Handler func(ctx context.Context, changed []string) error

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger used for watch events.
func WithLogger(logger *zap.Logger) Option {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// Stats counts watcher activity.
type Stats struct {
	Events   int
	Batches  int
	Errors   int
	LastPath string
}

// Watcher reports batches of changed *.tmpl.go files in a directory.
type Watcher struct {
	mu       sync.Mutex
	dir      string
	handler  Handler
	logger   *zap.Logger
	debounce time.Duration
	tick     time.Duration

	watcher *fsnotify.Watcher
	pending map[string]time.Time
	stats   Stats
	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
}

// New creates a watcher for dir. Nothing is watched until Start.
func New(dir string, handler Handler, options ...Option) (*Watcher, error) {
	if handler == nil {
		return nil, ErrNoHandler
	}
	w := &Watcher{
		dir:      dir,
		handler:  handler,
		logger:   zap.NewNop(),
		debounce: DefaultDebounce,
		pending:  make(map[string]time.Time),
	}
	for _, opt := range options {
		if opt != nil {
			opt(w)
		}
	}
	w.tick = w.debounce / 3
	if w.tick <= 0 {
		w.tick = time.Millisecond
	}
	return w, nil
}

// Start begins watching in a background goroutine. Calling Start on a
// running watcher is a no-op.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	info, err := os.Stat(w.dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &os.PathError{Op: "watch", Path: w.dir, Err: errors.New("not a directory")}
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fw.Add(w.dir); err != nil {
		fw.Close()
		return err
	}

	w.watcher = fw
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})
	w.running = true
	w.logger.Info("watching templates", zap.String("dir", w.dir), zap.Duration("debounce", w.debounce))

	go w.run(ctx)
	return nil
}

// Stop ends the watch loop and waits for it to exit.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = false
	stopCh, doneCh, fw := w.stopCh, w.doneCh, w.watcher
	w.mu.Unlock()

	close(stopCh)
	<-doneCh
	err := fw.Close()
	w.logger.Info("watcher stopped", zap.String("dir", w.dir))
	return err
}

// Done is closed when the watch loop exits, either via Stop or because the
// context passed to Start ended.
func (w *Watcher) Done() <-chan struct{} {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.doneCh
}

// Stats returns a snapshot of the watcher counters.
func (w *Watcher) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.record(event, time.Now())
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()
			w.logger.Warn("watch error", zap.Error(err))
		case now := <-ticker.C:
			changed := w.flush(now)
			if len(changed) == 0 {
				continue
			}
			w.logger.Info("templates changed", zap.Strings("files", changed))
			if err := w.handler(ctx, changed); err != nil {
				w.mu.Lock()
				w.stats.Errors++
				w.mu.Unlock()
				w.logger.Error("regenerate failed", zap.Error(err))
			}
		}
	}
}

func (w *Watcher) record(event fsnotify.Event, now time.Time) {
	if !source.IsTemplateFile(filepath.Base(event.Name)) {
		return
	}
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) &&
		!event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.pending[event.Name] = now
	w.stats.Events++
	w.stats.LastPath = event.Name
	w.logger.Debug("template event", zap.String("path", event.Name), zap.Stringer("op", event.Op))
}

// flush returns, sorted, the pending paths that have been quiet for at
// least the debounce interval at now.
func (w *Watcher) flush(now time.Time) []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	var ready []string
	for path, seen := range w.pending {
		if now.Sub(seen) >= w.debounce {
			ready = append(ready, path)
			delete(w.pending, path)
		}
	}
	if len(ready) == 0 {
		return nil
	}
	sort.Strings(ready)
	w.stats.Batches++
	return ready
}
