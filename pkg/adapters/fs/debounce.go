package fs

import (
	"sync"
	"time"
)

// debouncer coalesces bursts of filesystem events into a single callback
// after a quiet interval. Atomic saves produce several fsnotify events for
// one logical write; only the last one matters.
type debouncer struct {
	mu       sync.Mutex
	interval time.Duration
	timer    *time.Timer
	wg       sync.WaitGroup
	stopped  bool
}

func newDebouncer(interval time.Duration) *debouncer {
	return &debouncer{interval: interval}
}

// trigger schedules fire after the quiet interval, replacing any pending run.
func (d *debouncer) trigger(fire func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if d.timer != nil && d.timer.Stop() {
		d.wg.Done()
	}

	d.wg.Add(1)
	d.timer = time.AfterFunc(d.interval, func() {
		defer d.wg.Done()
		fire()
	})
}

// stopAndWait rejects new triggers and waits for any in-flight callback,
// bounded by timeout so shutdown can never hang.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	if d.timer != nil && d.timer.Stop() {
		d.wg.Done()
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
	}
}
