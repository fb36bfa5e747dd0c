package scheduler

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncerCollapsesBursts(t *testing.T) {
	var calls atomic.Int32
	var last atomic.Value

	d := NewDebouncer(50 * time.Millisecond)
	defer d.Stop()

	// Rapid triggers, each carrying a different query value; only the last
	// one should execute.
	for _, q := range []string{"t", "ta", "tam", "tamil"} {
		q := q
		d.Trigger(func() {
			calls.Add(1)
			last.Store(q)
		})
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(150 * time.Millisecond)

	if got := calls.Load(); got != 1 {
		t.Fatalf("expected exactly 1 execution, got %d", got)
	}
	if got, _ := last.Load().(string); got != "tamil" {
		t.Fatalf("expected final value %q to win, got %q", "tamil", got)
	}
}

func TestDebouncerFiresAfterQuietPeriod(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(20 * time.Millisecond)
	defer d.Stop()

	d.Trigger(func() { calls.Add(1) })
	time.Sleep(80 * time.Millisecond)
	d.Trigger(func() { calls.Add(1) })
	time.Sleep(80 * time.Millisecond)

	if got := calls.Load(); got != 2 {
		t.Fatalf("separated triggers should each fire, got %d", got)
	}
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(30 * time.Millisecond)
	d.Trigger(func() { calls.Add(1) })
	d.Stop()
	time.Sleep(100 * time.Millisecond)
	if got := calls.Load(); got != 0 {
		t.Fatalf("stopped debouncer must not fire, got %d", got)
	}
}

func TestIntervalStops(t *testing.T) {
	var calls atomic.Int32
	stop := Interval(10*time.Millisecond, func() { calls.Add(1) })
	time.Sleep(55 * time.Millisecond)
	stop()
	settled := calls.Load()
	if settled == 0 {
		t.Fatal("interval never fired")
	}
	time.Sleep(50 * time.Millisecond)
	if calls.Load() != settled {
		t.Fatal("interval kept firing after stop")
	}
	// stop is idempotent
	stop()
}
