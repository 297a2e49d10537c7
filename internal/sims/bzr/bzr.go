// Package bzr implements a three-chemical Belousov-Zhabotinsky style
// reaction-diffusion automaton. Chemical A feeds the system, B consumes A
// and C consumes B; each diffuses at its own rate through a 3x3 weighted
// Laplacian. The border row and column stay fixed.
package bzr

import (
	"celleste/internal/core"
)

type field struct {
	a, b, c []float32
}

func newField(n int) field {
	return field{a: make([]float32, n), b: make([]float32, n), c: make([]float32, n)}
}

// Reaction is the simulation state.
type Reaction struct {
	cfg     Config
	w, h    int
	cur     field
	nxt     field
	display []uint8
	running bool
}

// New creates a reaction with the provided configuration.
func New(cfg Config) *Reaction {
	n := cfg.Width * cfg.Height
	r := &Reaction{
		cfg:     cfg,
		w:       cfg.Width,
		h:       cfg.Height,
		cur:     newField(n),
		nxt:     newField(n),
		display: make([]uint8, n),
	}
	return r
}

// Name identifies the simulation.
func (r *Reaction) Name() string { return "bzr" }

// Size returns the grid dimensions.
func (r *Reaction) Size() core.Size { return core.Size{W: r.w, H: r.h} }

// Reset fills the field with pure chemical A and seeds a reaction square
// in the center. The seed argument is unused; the reaction is fully
// determined by its parameters.
func (r *Reaction) Reset(seed int64) {
	for i := range r.cur.a {
		r.cur.a[i] = 1
		r.cur.b[i] = 0
		r.cur.c[i] = 0
	}
	r.seedAt(r.w/2, r.h/2, 5)
	r.refreshDisplay()
}

// Seed starts a reaction in a square around (x, y); the frontends call it
// on mouse clicks in place of cell toggling.
func (r *Reaction) Seed(x, y int) {
	r.seedAt(x, y, 3)
	r.refreshDisplay()
}

// ToggleCell seeds a reaction at the clicked cell. Out-of-range clicks
// are ignored.
func (r *Reaction) ToggleCell(x, y int) error {
	if x >= 0 && x < r.w && y >= 0 && y < r.h {
		r.Seed(x, y)
	}
	return nil
}

// Clear resets the field to pure chemical A with no seed.
func (r *Reaction) Clear() {
	for i := range r.cur.a {
		r.cur.a[i] = 1
		r.cur.b[i] = 0
		r.cur.c[i] = 0
	}
	r.refreshDisplay()
}

func (r *Reaction) seedAt(cx, cy, radius int) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			x, y := cx+dx, cy+dy
			if x < 0 || x >= r.w || y < 0 || y >= r.h {
				continue
			}
			idx := y*r.w + x
			r.cur.a[idx] = 0.5
			r.cur.b[idx] = 0.25
			r.cur.c[idx] = 0
		}
	}
}

// Running reports whether ticks should advance the reaction.
func (r *Reaction) Running() bool { return r.running }

// Pause suppresses ticks until Resume.
func (r *Reaction) Pause() { r.running = false }

// Resume allows ticks to advance the reaction again.
func (r *Reaction) Resume() { r.running = true }

// Step advances the reaction-diffusion system by one tick.
func (r *Reaction) Step() {
	w, h := r.w, r.h
	cfg := r.cfg
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			idx := y*w + x
			a := r.cur.a[idx]
			b := r.cur.b[idx]
			c := r.cur.c[idx]

			reactionAB := a * b * b
			reactionBC := b * c * c

			na := a + cfg.DiffA*r.laplace(r.cur.a, x, y) - reactionAB + cfg.Feed*(1-a)
			nb := b + cfg.DiffB*r.laplace(r.cur.b, x, y) + reactionAB - reactionBC - (cfg.Kill+cfg.Feed)*b
			nc := c + cfg.DiffC*r.laplace(r.cur.c, x, y) + reactionBC - cfg.Kill*c

			r.nxt.a[idx] = clamp01(na)
			r.nxt.b[idx] = clamp01(nb)
			r.nxt.c[idx] = clamp01(nc)
		}
	}
	r.copyBorder()
	r.cur, r.nxt = r.nxt, r.cur
	r.refreshDisplay()
}

// copyBorder carries the fixed border cells into the next buffer so the
// swap does not resurrect stale values.
func (r *Reaction) copyBorder() {
	w, h := r.w, r.h
	src, dst := r.cur, r.nxt
	copy(dst.a[:w], src.a[:w])
	copy(dst.b[:w], src.b[:w])
	copy(dst.c[:w], src.c[:w])
	last := (h - 1) * w
	copy(dst.a[last:], src.a[last:])
	copy(dst.b[last:], src.b[last:])
	copy(dst.c[last:], src.c[last:])
	for y := 1; y < h-1; y++ {
		left := y * w
		right := left + w - 1
		dst.a[left], dst.a[right] = src.a[left], src.a[right]
		dst.b[left], dst.b[right] = src.b[left], src.b[right]
		dst.c[left], dst.c[right] = src.c[left], src.c[right]
	}
}

func (r *Reaction) laplace(f []float32, x, y int) float32 {
	w := r.w
	idx := y*w + x
	var sum float32
	sum += f[idx] * -1.0
	sum += f[idx-w] * 0.2
	sum += f[idx+w] * 0.2
	sum += f[idx-1] * 0.2
	sum += f[idx+1] * 0.2
	sum += f[idx-w-1] * 0.05
	sum += f[idx-w+1] * 0.05
	sum += f[idx+w-1] * 0.05
	sum += f[idx+w+1] * 0.05
	return sum
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Cells exposes quantized concentrations as palette indices: three bits
// of A, three bits of B, two bits of C per cell.
func (r *Reaction) Cells() []uint8 { return r.display }

func (r *Reaction) refreshDisplay() {
	for i := range r.display {
		a := uint8(r.cur.a[i] * 7)
		b := uint8(r.cur.b[i] * 7)
		c := uint8(r.cur.c[i] * 3)
		r.display[i] = a<<5 | b<<2 | c
	}
}

func init() {
	core.Register("bzr", func(cfg map[string]string) (core.Sim, error) {
		return New(FromMap(cfg)), nil
	})
}
