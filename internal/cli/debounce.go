package cli

import (
	"sync"
	"time"
)

// Debouncer delays running a function until input has been idle for a fixed
// interval. A newer trigger supersedes a pending one, so at most one search
// is current at a time. The engine itself is pure; this is purely a caller
// scheduling policy.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

// NewDebouncer creates a debouncer with the given idle interval.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger schedules fn after the idle interval, canceling any pending call.
// A zero delay runs fn synchronously.
func (d *Debouncer) Trigger(fn func()) {
	if d.delay <= 0 {
		fn()
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending call.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Flush cancels any pending call and runs fn immediately.
func (d *Debouncer) Flush(fn func()) {
	d.Stop()
	fn()
}
