package core

import (
	"errors"
	"testing"
)

func mustGrid(t *testing.T, w, h int, edge EdgePolicy) *Grid {
	t.Helper()
	g, err := NewGrid(w, h, edge)
	if err != nil {
		t.Fatalf("new grid: %v", err)
	}
	return g
}

func TestNewGridRejectsBadDimensions(t *testing.T) {
	for _, c := range [][2]int{{0, 5}, {5, 0}, {0, 0}, {-1, 3}} {
		if _, err := NewGrid(c[0], c[1], EdgeClamp); err == nil {
			t.Fatalf("NewGrid(%d, %d) unexpectedly succeeded", c[0], c[1])
		}
	}
}

func TestBoundsChecks(t *testing.T) {
	g := mustGrid(t, 3, 3, EdgeClamp)
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		if _, err := g.Get(c[0], c[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Get(%d,%d): want ErrOutOfBounds, got %v", c[0], c[1], err)
		}
		if err := g.Set(c[0], c[1], true); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Set(%d,%d): want ErrOutOfBounds, got %v", c[0], c[1], err)
		}
		if err := g.Toggle(c[0], c[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Toggle(%d,%d): want ErrOutOfBounds, got %v", c[0], c[1], err)
		}
	}
}

func TestToggleFlipsCell(t *testing.T) {
	g := mustGrid(t, 4, 4, EdgeWrap)
	if err := g.Toggle(2, 1); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if alive, _ := g.Get(2, 1); !alive {
		t.Fatalf("cell not alive after toggle")
	}
	if err := g.Toggle(2, 1); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if alive, _ := g.Get(2, 1); alive {
		t.Fatalf("cell still alive after second toggle")
	}
}

func TestLiveNeighborsWrapCorner(t *testing.T) {
	g := mustGrid(t, 5, 4, EdgeWrap)
	// Diagonal neighbor of (0,0) across both seams.
	if err := g.Set(4, 3, true); err != nil {
		t.Fatalf("set: %v", err)
	}
	if n := g.LiveNeighbors(0, 0); n != 1 {
		t.Fatalf("wrap corner count = %d, want 1", n)
	}
}

func TestLiveNeighborsClampCorner(t *testing.T) {
	g := mustGrid(t, 5, 4, EdgeClamp)
	if err := g.Set(4, 3, true); err != nil {
		t.Fatalf("set: %v", err)
	}
	if n := g.LiveNeighbors(0, 0); n != 0 {
		t.Fatalf("clamp corner count = %d, want 0", n)
	}
	if err := g.Set(1, 1, true); err != nil {
		t.Fatalf("set: %v", err)
	}
	if n := g.LiveNeighbors(0, 0); n != 1 {
		t.Fatalf("clamp in-bounds count = %d, want 1", n)
	}
}

func TestLiveNeighborsFullRing(t *testing.T) {
	g := mustGrid(t, 3, 3, EdgeClamp)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x == 1 && y == 1 {
				continue
			}
			if err := g.Set(x, y, true); err != nil {
				t.Fatalf("set: %v", err)
			}
		}
	}
	if n := g.LiveNeighbors(1, 1); n != 8 {
		t.Fatalf("center count = %d, want 8", n)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := mustGrid(t, 3, 3, EdgeWrap)
	if err := g.Set(1, 1, true); err != nil {
		t.Fatalf("set: %v", err)
	}
	c := g.Clone()
	if !c.Equal(g) {
		t.Fatalf("clone differs from original")
	}
	if err := c.Toggle(0, 0); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if c.Equal(g) {
		t.Fatalf("mutating clone changed original")
	}
}

func TestParseEdgePolicy(t *testing.T) {
	if p, err := ParseEdgePolicy("wrap"); err != nil || p != EdgeWrap {
		t.Fatalf("ParseEdgePolicy(wrap) = %v, %v", p, err)
	}
	if p, err := ParseEdgePolicy("clamp"); err != nil || p != EdgeClamp {
		t.Fatalf("ParseEdgePolicy(clamp) = %v, %v", p, err)
	}
	if _, err := ParseEdgePolicy("torus"); err == nil {
		t.Fatalf("ParseEdgePolicy(torus) unexpectedly succeeded")
	}
}
