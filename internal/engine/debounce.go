package engine

import "time"

// DefaultResizeDelay is how long resizes must stop before the grid is
// reallocated.
const DefaultResizeDelay = 200 * time.Millisecond

// Debouncer coalesces bursts of resize events into one. A newer event
// replaces the pending one and restarts its deadline.
type Debouncer struct {
	delay    time.Duration
	pending  ResizeIntent
	deadline time.Time
	armed    bool
}

// NewDebouncer returns a debouncer firing delay after the last Push.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay < 0 {
		delay = 0
	}
	return &Debouncer{delay: delay}
}

// Push records r as the pending resize.
func (d *Debouncer) Push(r ResizeIntent, now time.Time) {
	d.pending = r
	d.deadline = now.Add(d.delay)
	d.armed = true
}

// Pending reports whether a resize is waiting.
func (d *Debouncer) Pending() bool {
	return d.armed
}

// Poll returns the pending resize once its deadline has passed.
func (d *Debouncer) Poll(now time.Time) (ResizeIntent, bool) {
	if !d.armed || now.Before(d.deadline) {
		return ResizeIntent{}, false
	}
	d.armed = false
	return d.pending, true
}
