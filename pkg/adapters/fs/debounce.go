package fs

import (
	"sync"
	"time"

	"github.com/SharanyaR1/Code-Canvas/pkg/core"
)

// debouncer coalesces bursts of filesystem events into a single delivery.
// Atomic writes produce several fsnotify events (create temp, write, rename);
// only the last one within the quiet interval is forwarded.
type debouncer struct {
	interval time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
	wg      sync.WaitGroup
}

func newDebouncer(interval time.Duration) *debouncer {
	return &debouncer{interval: interval}
}

// add schedules e for delivery after the quiet interval, replacing any
// previously pending event.
func (d *debouncer) add(e core.Event, send func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if d.timer != nil {
		if d.timer.Stop() {
			// Pending fire was cancelled before running.
			d.wg.Done()
		}
	}

	d.wg.Add(1)
	d.timer = time.AfterFunc(d.interval, func() {
		defer d.wg.Done()
		send(e)
	})
}

// stopAndWait refuses further events and waits for in-flight timers to
// complete, up to the given timeout.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
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
