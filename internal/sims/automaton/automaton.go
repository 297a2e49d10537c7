// Package automaton implements the generalized B/S cellular automaton at
// the heart of celleste. A rule parsed from B/S notation drives the
// birth/survival transition over a bounded grid with a configurable edge
// policy.
package automaton

import (
	"fmt"

	"celleste/internal/codec"
	"celleste/internal/core"
	"celleste/internal/rule"
	pkgcore "celleste/pkg/core"
)

// Automaton owns a rule and a double-buffered grid and advances one
// generation per Step. It satisfies core.Sim plus the Editor, Pauser and
// Snapshotter capabilities used by the frontends.
type Automaton struct {
	cfg        Config
	rule       rule.Rule
	cur        *core.Grid
	nxt        *core.Grid
	running    bool
	generation int
}

// New constructs an automaton from the provided configuration. The
// simulation starts paused; the driving loop resumes it.
func New(cfg Config) (*Automaton, error) {
	r, err := rule.Parse(cfg.Notation)
	if err != nil {
		return nil, err
	}
	cur, err := core.NewGrid(cfg.Width, cfg.Height, cfg.Edge)
	if err != nil {
		return nil, err
	}
	return &Automaton{cfg: cfg, rule: r, cur: cur, nxt: cur.Clone()}, nil
}

// Name returns the simulation identifier.
func (a *Automaton) Name() string { return "automaton" }

// Rule returns the automaton's rule.
func (a *Automaton) Rule() rule.Rule { return a.rule }

// Size returns the grid dimensions.
func (a *Automaton) Size() core.Size {
	return core.Size{W: a.cur.Width(), H: a.cur.Height()}
}

// Cells exposes the current generation's values.
func (a *Automaton) Cells() []uint8 { return a.cur.Cells() }

// Grid returns the current generation.
func (a *Automaton) Grid() *core.Grid { return a.cur }

// Generation returns the number of steps taken since the last reset.
func (a *Automaton) Generation() int { return a.generation }

// Reset repopulates the grid according to the configured fill and resets
// the generation counter.
func (a *Automaton) Reset(seed int64) {
	a.cur.Clear()
	switch a.cfg.Fill {
	case FillEmpty:
	case FillGlider:
		a.seedGlider()
	default:
		a.cur.Randomize(pkgcore.NewRNG(seed).Source())
	}
	a.generation = 0
}

// seedGlider drops a single glider near the top-left corner, the default
// starting pattern for small hand-edited boards.
func (a *Automaton) seedGlider() {
	ox, oy := 1, 1
	for _, p := range [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}} {
		// Ignore placements that fall off a tiny grid.
		_ = a.cur.Set(ox+p[0], oy+p[1], true)
	}
}

// Step computes the next generation from the current one. Every cell is
// decided against the previous generation only, then the buffers swap, so
// the replacement is atomic. Identical grid and rule always produce an
// identical next generation.
func (a *Automaton) Step() {
	w, h := a.cur.Width(), a.cur.Height()
	src := a.cur.Cells()
	dst := a.nxt.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := a.cur.LiveNeighbors(x, y)
			idx := y*w + x
			dst[idx] = 0
			if src[idx] != 0 {
				if a.rule.IsSurvive(n) {
					dst[idx] = 1
				}
			} else if a.rule.IsBirth(n) {
				dst[idx] = 1
			}
		}
	}
	a.cur, a.nxt = a.nxt, a.cur
	a.generation++
}

// ToggleCell flips a single cell for interactive editing. It works in
// both the running and paused states.
func (a *Automaton) ToggleCell(x, y int) error {
	return a.cur.Toggle(x, y)
}

// Clear kills every cell and resets the generation counter.
func (a *Automaton) Clear() {
	a.cur.Clear()
	a.generation = 0
}

// Running reports whether ticks should advance the simulation.
func (a *Automaton) Running() bool { return a.running }

// Pause suppresses ticks until Resume.
func (a *Automaton) Pause() { a.running = false }

// Resume allows ticks to advance the simulation again.
func (a *Automaton) Resume() { a.running = true }

// Snapshot writes the current grid to path.
func (a *Automaton) Snapshot(path string) error {
	return codec.SaveFile(path, a.cur)
}

// Restore replaces the grid with one loaded from path. On any failure the
// current grid is left untouched. The loaded grid may have different
// dimensions or edge policy than the current one.
func (a *Automaton) Restore(path string) error {
	g, err := codec.LoadFile(path)
	if err != nil {
		return err
	}
	a.cur = g
	a.nxt = g.Clone()
	a.generation = 0
	return nil
}

func init() {
	core.Register("automaton", func(cfg map[string]string) (core.Sim, error) {
		a, err := New(FromMap(cfg))
		if err != nil {
			return nil, fmt.Errorf("automaton: %w", err)
		}
		return a, nil
	})
}
