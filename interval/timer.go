// Package interval measures alternating mutator/collection spans in
// nanoseconds using the monotonic clock.
package interval

import "time"

// Timer accumulates elapsed nanoseconds across open/close spans. A
// single open/close pair measures one span; closing while open
// accumulates the elapsed time and transitions to closed; opening
// while closed restarts the span without touching the accumulator.
// Timer is not safe for concurrent use — the sizing policy only ever
// touches its timers from within stop-the-world collection callbacks.
type Timer struct {
	openedAt time.Time
	open     bool
	nanos    int64
}

// NewTimer returns a Timer that is open, starting from now.
func NewTimer() *Timer {
	t := &Timer{}
	t.Open()
	return t
}

// Open starts (or restarts) the timer's current span.
func (t *Timer) Open() {
	t.openedAt = time.Now()
	t.open = true
}

// Close accumulates the elapsed time since Open and transitions to
// closed. Close on an already-closed timer is a no-op.
func (t *Timer) Close() {
	if !t.open {
		return
	}
	t.nanos += time.Since(t.openedAt).Nanoseconds()
	t.open = false
}

// MeasuredNanos returns the accumulated nanoseconds across all closed
// spans since the last Reset.
func (t *Timer) MeasuredNanos() int64 {
	return t.nanos
}

// Reset zeroes the accumulator. It does not change the open/closed
// state.
func (t *Timer) Reset() {
	t.nanos = 0
}

// PeekNanos reads the elapsed nanoseconds "as of now" without losing
// state: if open, it closes, reads, and reopens, so the timer keeps
// running across the read (used to sample "time since major GC"
// mid-collection without disturbing the running measurement).
func (t *Timer) PeekNanos() int64 {
	if !t.open {
		return t.nanos
	}
	t.Close()
	n := t.nanos
	t.Open()
	return n
}
