package fs

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/aretw0/lifecycle/pkg/core/worker"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/neuronex/notekeep/pkg/core"
)

// Watch observes the store file for out-of-process rewrites and emits one
// event per notebook whose persisted state changed, diffed against the last
// known snapshot. pattern is a glob matched against notebook ids; "" or "*"
// matches all. The returned channel closes when ctx is cancelled.
func (a *Adapter) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	if pattern == "" {
		pattern = "*"
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid watch pattern: %q", pattern)
	}

	buffer := a.config.EventBuffer
	if buffer <= 0 {
		buffer = 16
	}
	events := make(chan core.Event, buffer)
	w := newWatchWorker(a, pattern, events)
	if err := w.Start(ctx); err != nil {
		return nil, err
	}
	return events, nil
}

type watchWorker struct {
	*worker.BaseWorker
	adapter  *Adapter
	pattern  string
	events   chan core.Event
	watcher  *fsnotify.Watcher
	debounce *debouncer
	cancel   context.CancelFunc
}

func newWatchWorker(adapter *Adapter, pattern string, events chan core.Event) *watchWorker {
	return &watchWorker{
		BaseWorker: worker.NewBaseWorker("fs-watcher"),
		adapter:    adapter,
		pattern:    pattern,
		events:     events,
	}
}

func (w *watchWorker) Start(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	status := w.State().Status
	if status != worker.StatusCreated && status != worker.StatusPending {
		return fmt.Errorf("watcher already started (status: %s)", status)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	// Watch the parent directory: atomic saves replace the store file by
	// rename, which would silently detach a watch on the file itself.
	if err := watcher.Add(filepath.Dir(w.adapter.Path)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch store directory: %w", err)
	}

	w.watcher = watcher
	w.debounce = newDebouncer(50 * time.Millisecond)
	w.adapter.setWatcherActive(true)

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.SetStatus(worker.StatusRunning)
	return w.StartFunc(runCtx, w.run)
}

func (w *watchWorker) Stop(ctx context.Context) error {
	if w.cancel != nil {
		w.StopRequested = true
		w.cancel()
	}
	return w.BaseWorker.Stop(ctx)
}

func (w *watchWorker) State() worker.State {
	return w.ExportState(func(s *worker.State) {
		s.Metadata = map[string]string{
			worker.MetadataType: string(worker.TypeGoroutine),
		}
	})
}

// run is the main event loop for the watcher worker.
func (w *watchWorker) run(ctx context.Context) (err error) {
	logger := w.adapter.config.Logger
	defer func() {
		if recovered := recover(); recovered != nil {
			panicErr := fmt.Errorf("watcher panic: %v", recovered)
			if logger.Enabled(ctx, slog.LevelDebug) {
				logger.Error("watcher panic", "error", panicErr, "stack", string(debug.Stack()))
			} else {
				logger.Error("watcher panic", "error", panicErr)
			}
		}
	}()
	defer w.adapter.setWatcherActive(false)
	defer w.watcher.Close()

	err = w.loop(ctx)

	// Stop accepting new events and wait for in-flight timers before the
	// channel is closed, so no callback writes to a closed channel.
	w.debounce.stopAndWait(5 * time.Second)
	close(w.events)
	return err
}

func (w *watchWorker) loop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			if w.relevant(event) {
				w.debounce.trigger(func() { w.reconcileAndEmit(ctx) })
			}

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.adapter.config.Logger.Error("fsnotify error", "error", wErr)
			if w.adapter.config.ErrorHandler != nil {
				w.adapter.config.ErrorHandler(wErr)
			}
		}
	}
}

// relevant filters directory noise down to changes of the store file itself.
func (w *watchWorker) relevant(event fsnotify.Event) bool {
	if strings.HasPrefix(filepath.Base(event.Name), TempFilePrefix) {
		return false
	}
	if filepath.Clean(event.Name) != filepath.Clean(w.adapter.Path) {
		return false
	}
	return event.Has(fsnotify.Create) || event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove)
}

// reconcileAndEmit diffs the rewritten store file against the last known
// snapshot and forwards matching per-notebook events.
func (w *watchWorker) reconcileAndEmit(ctx context.Context) {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		events, err := w.adapter.reconcile(ctx)
		if err != nil {
			w.adapter.config.Logger.Error("reconcile failed", "error", err)
			if w.adapter.config.ErrorHandler != nil {
				w.adapter.config.ErrorHandler(err)
			}
			return err
		}

		for _, e := range events {
			if ok, _ := doublestar.Match(w.pattern, e.ID); !ok {
				continue
			}
			w.send(ctx, e)
		}
		return nil
	}, lifecycle.WithErrorHandler(func(err error) {
		if w.adapter.config.ErrorHandler != nil {
			w.adapter.config.ErrorHandler(fmt.Errorf("reconcile panic: %w", err))
		} else {
			w.adapter.config.Logger.Error("reconcile panic", "error", err)
		}
	}))
}

// send forwards an event, protecting against channel closure during shutdown.
func (w *watchWorker) send(ctx context.Context, e core.Event) {
	defer func() {
		// Recover from panic if channel was closed (worker stopping)
		_ = recover()
	}()
	select {
	case w.events <- e:
	case <-ctx.Done():
	}
}
