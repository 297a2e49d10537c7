package core

import (
	"testing"
	"time"
)

func TestNewFixedStepGuardsNonPositiveInterval(t *testing.T) {
	for _, d := range []time.Duration{0, -time.Second} {
		f := NewFixedStep(d)
		if f.Interval() <= 0 {
			t.Fatalf("NewFixedStep(%v) kept a non-positive interval %v", d, f.Interval())
		}
	}
}

func TestSetInterval(t *testing.T) {
	f := NewFixedStep(100 * time.Millisecond)
	f.SetInterval(50 * time.Millisecond)
	if f.Interval() != 50*time.Millisecond {
		t.Fatalf("interval = %v, want 50ms", f.Interval())
	}
	f.SetInterval(0)
	if f.Interval() != 50*time.Millisecond {
		t.Fatalf("non-positive SetInterval should be ignored, got %v", f.Interval())
	}
}

func TestShouldStepFiresImmediatelyThenWaits(t *testing.T) {
	f := NewFixedStep(time.Hour)
	if !f.ShouldStep() {
		t.Fatalf("first tick should fire immediately")
	}
	if f.ShouldStep() {
		t.Fatalf("second tick fired without waiting out the interval")
	}
}
