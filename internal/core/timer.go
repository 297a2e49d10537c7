package core

import "time"

// FixedStep paces generation advances at a fixed interval. The GUI
// frontend relies on ebiten's own tick rate; the terminal frontend polls
// ShouldStep from its refresh loop.
type FixedStep struct {
	interval    time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a pacer that fires once per interval.
func NewFixedStep(interval time.Duration) *FixedStep {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	return &FixedStep{interval: interval, accumulator: interval}
}

// SetInterval changes the pace. Safe to call between ticks.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		return
	}
	f.interval = interval
}

// Interval returns the current pace.
func (f *FixedStep) Interval() time.Duration { return f.interval }

// ShouldStep reports whether enough time has passed for one more tick.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.interval {
		f.accumulator -= f.interval
		return true
	}
	return false
}
