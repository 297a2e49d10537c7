package core

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrOutOfBounds reports a cell access outside the grid dimensions.
var ErrOutOfBounds = errors.New("grid: coordinates out of bounds")

// EdgePolicy decides how neighbor lookups treat coordinates that fall
// outside the grid. The policy is fixed when the grid is constructed.
type EdgePolicy uint8

const (
	// EdgeClamp treats out-of-grid neighbors as dead.
	EdgeClamp EdgePolicy = iota
	// EdgeWrap wraps coordinates toroidally modulo width/height.
	EdgeWrap
)

// String returns the policy name used on the CLI and in save files.
func (p EdgePolicy) String() string {
	if p == EdgeWrap {
		return "wrap"
	}
	return "clamp"
}

// ParseEdgePolicy reads an edge policy name ("clamp" or "wrap").
func ParseEdgePolicy(s string) (EdgePolicy, error) {
	switch s {
	case "clamp":
		return EdgeClamp, nil
	case "wrap":
		return EdgeWrap, nil
	}
	return EdgeClamp, fmt.Errorf("unknown edge policy %q, want clamp or wrap", s)
}

// Grid stores a bounded 2D field of live/dead cells in row-major order.
type Grid struct {
	w, h  int
	edge  EdgePolicy
	cells []uint8
}

// NewGrid allocates an all-dead grid. Dimensions below 1 are an error.
func NewGrid(w, h int, edge EdgePolicy) (*Grid, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("grid: dimensions %dx%d, want at least 1x1", w, h)
	}
	return &Grid{w: w, h: h, edge: edge, cells: make([]uint8, w*h)}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Edge returns the neighbor edge policy fixed at construction.
func (g *Grid) Edge() EdgePolicy { return g.edge }

// Cells exposes the backing 0/1 slice, row-major. Render and codec paths
// read it directly; interactive edits should go through Set/Toggle.
func (g *Grid) Cells() []uint8 { return g.cells }

func (g *Grid) index(x, y int) int { return y*g.w + x }

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Get reports whether the cell at (x, y) is alive.
func (g *Grid) Get(x, y int) (bool, error) {
	if !g.inBounds(x, y) {
		return false, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, g.w, g.h)
	}
	return g.cells[g.index(x, y)] != 0, nil
}

// Set assigns the cell at (x, y).
func (g *Grid) Set(x, y int, alive bool) error {
	if !g.inBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, g.w, g.h)
	}
	if alive {
		g.cells[g.index(x, y)] = 1
	} else {
		g.cells[g.index(x, y)] = 0
	}
	return nil
}

// Toggle flips the cell at (x, y).
func (g *Grid) Toggle(x, y int) error {
	if !g.inBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, g.w, g.h)
	}
	g.cells[g.index(x, y)] ^= 1
	return nil
}

// LiveNeighbors counts live cells among the 8 neighbors of (x, y),
// applying the grid's edge policy. The caller must pass in-bounds
// coordinates; the step loop iterates the grid itself so this holds.
func (g *Grid) LiveNeighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if g.edge == EdgeWrap {
				nx = (nx + g.w) % g.w
				ny = (ny + g.h) % g.h
			} else if !g.inBounds(nx, ny) {
				continue
			}
			n += int(g.cells[g.index(nx, ny)])
		}
	}
	return n
}

// LiveCount returns the number of live cells in the grid.
func (g *Grid) LiveCount() int {
	n := 0
	for _, c := range g.cells {
		n += int(c)
	}
	return n
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = 0
	}
}

// Randomize fills the grid with 0/1 values from the provided source.
func (g *Grid) Randomize(rng *rand.Rand) {
	for i := range g.cells {
		g.cells[i] = uint8(rng.IntN(2))
	}
}

// CopyFrom replaces this grid's cells with those of src. Dimensions must
// match; the edge policy stays as constructed.
func (g *Grid) CopyFrom(src *Grid) error {
	if src.w != g.w || src.h != g.h {
		return fmt.Errorf("grid: copy %dx%d into %dx%d", src.w, src.h, g.w, g.h)
	}
	copy(g.cells, src.cells)
	return nil
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{w: g.w, h: g.h, edge: g.edge, cells: make([]uint8, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether two grids have identical dimensions, edge policy
// and cell values.
func (g *Grid) Equal(o *Grid) bool {
	if g.w != o.w || g.h != o.h || g.edge != o.edge {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}
