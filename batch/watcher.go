package batch

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/tsawler/reportkit/pipeline"
)

// Watcher processes documents as they appear in a folder. Events for a file
// are coalesced until it has been quiet for the debounce interval, so a
// document being copied in is only opened once it is complete.
type Watcher struct {
	mu       sync.Mutex
	runner   *Runner
	dir      string
	opts     pipeline.Options
	watcher  *fsnotify.Watcher
	pending  map[string]time.Time
	debounce time.Duration
	onResult func(Result)
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
}

// WatchOption configures a Watcher.
type WatchOption func(*Watcher)

// WithDebounce overrides the configured debounce interval.
func WithDebounce(d time.Duration) WatchOption {
	return func(w *Watcher) { w.debounce = d }
}

// OnResult registers fn to be called with every processed document. It is
// called from the watcher's goroutine.
func OnResult(fn func(Result)) WatchOption {
	return func(w *Watcher) { w.onResult = fn }
}

// NewWatcher creates a watcher for dir.
func NewWatcher(r *Runner, dir string, opts pipeline.Options, wopts ...WatchOption) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	w := &Watcher{
		runner:   r,
		dir:      dir,
		opts:     opts,
		watcher:  fw,
		pending:  make(map[string]time.Time),
		debounce: time.Duration(r.cfg.Watch.DebounceMs) * time.Millisecond,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	for _, o := range wopts {
		o(w)
	}
	return w, nil
}

// Start begins watching. It does not block; call Stop to end the watch.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	if err := w.watcher.Add(w.dir); err != nil {
		w.mu.Unlock()
		return fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}
	w.running = true
	w.mu.Unlock()

	w.runner.logger.Info("watching folder", zap.String("dir", w.dir), zap.Duration("debounce", w.debounce))
	go w.run(ctx)
	return nil
}

// Stop ends the watch and waits for the event loop to exit. A document
// being processed is finished first.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return w.watcher.Close()
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
	return w.watcher.Close()
}

// Done is closed when the event loop has exited.
func (w *Watcher) Done() <-chan struct{} {
	return w.doneCh
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)
	log := w.runner.logger

	ticker := time.NewTicker(w.tick())
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
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Error("watch error", zap.Error(err))
		case <-ticker.C:
			w.processSettled(ctx)
		}
	}
}

// tick is how often settled events are checked.
func (w *Watcher) tick() time.Duration {
	if t := w.debounce / 5; t > 10*time.Millisecond {
		return t
	}
	return 10 * time.Millisecond
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}
	if !w.runner.accepts(event.Name) {
		return
	}
	w.mu.Lock()
	w.pending[event.Name] = time.Now()
	w.mu.Unlock()
}

func (w *Watcher) processSettled(ctx context.Context) {
	w.mu.Lock()
	now := time.Now()
	var settled []string
	for path, at := range w.pending {
		if now.Sub(at) >= w.debounce {
			settled = append(settled, path)
			delete(w.pending, path)
		}
	}
	w.mu.Unlock()

	for _, path := range settled {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		res := w.runner.ProcessFile(ctx, path, w.opts)
		if w.onResult != nil {
			w.onResult(res)
		}
	}
}
