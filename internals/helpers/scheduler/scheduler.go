// Package scheduler holds the small time-driven utilities shared by the
// payment-settings cache and the admin stats cache: a leak-free interval
// task and a trailing-edge debouncer.
package scheduler

import (
	"sync"
	"time"
)

// Interval runs fn every d until the returned stop function is called.
// The ticker is released on stop, so callers can hook it into a lifecycle
// (boot/shutdown) without leaking timers.
func Interval(d time.Duration, fn func()) (stop func()) {
	ticker := time.NewTicker(d)
	done := make(chan struct{})
	var once sync.Once

	go func() {
		for {
			select {
			case <-ticker.C:
				fn()
			case <-done:
				return
			}
		}
	}()

	return func() {
		once.Do(func() {
			ticker.Stop()
			close(done)
		})
	}
}

// Debouncer collapses bursts of Trigger calls into a single fn execution
// after a quiet period. Only the last trigger of a burst fires.
type Debouncer struct {
	mu    sync.Mutex
	quiet time.Duration
	timer *time.Timer
}

func NewDebouncer(quiet time.Duration) *Debouncer {
	return &Debouncer{quiet: quiet}
}

// Trigger schedules fn after the quiet period, resetting any pending run.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.quiet, fn)
}

// Stop cancels any pending run.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
