//go:build ebiten

package app

import (
	"errors"
	"image/color"
	"log"
	"time"

	"celleste/internal/core"
	"celleste/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type paletteProvider interface {
	Palette() []color.RGBA
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter

	editor  core.Editor
	pauser  core.Pauser
	snapper core.Snapshotter
	palette []color.RGBA

	onColor  color.Color
	offColor color.Color

	scale    int
	tickOnce bool
	seed     int64
	savePath string
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int, seed int64, savePath string) *Game {
	g := &Game{
		sim:      sim,
		painter:  render.NewGridPainter(sim.Size().W, sim.Size().H),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		seed:     seed,
		savePath: savePath,
	}
	if editor, ok := sim.(core.Editor); ok {
		g.editor = editor
	}
	if pauser, ok := sim.(core.Pauser); ok {
		g.pauser = pauser
	}
	if snapper, ok := sim.(core.Snapshotter); ok {
		g.snapper = snapper
	}
	if provider, ok := sim.(paletteProvider); ok {
		g.palette = provider.Palette()
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) && g.pauser != nil {
		if g.pauser.Running() {
			g.pauser.Pause()
		} else {
			g.pauser.Resume()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) && g.editor != nil {
		g.editor.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) && g.snapper != nil {
		if err := g.snapper.Snapshot(g.savePath); err != nil {
			log.Printf("save failed: %v", err)
		} else {
			log.Printf("state saved to %s", g.savePath)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) && g.snapper != nil {
		if err := g.snapper.Restore(g.savePath); err != nil {
			log.Printf("load failed: %v", err)
		} else {
			log.Printf("state loaded from %s", g.savePath)
		}
	}

	if g.editor != nil && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		x, y := mx/g.scale, my/g.scale
		size := g.sim.Size()
		if x >= 0 && x < size.W && y >= 0 && y < size.H {
			if err := g.editor.ToggleCell(x, y); err != nil {
				log.Printf("toggle (%d,%d): %v", x, y, err)
			}
		}
	}

	running := g.pauser == nil || g.pauser.Running()
	if running || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	size := g.sim.Size()
	if w, h := g.painter.Size(); w != size.W || h != size.H {
		// A restored save may carry different dimensions.
		g.painter = render.NewGridPainter(size.W, size.H)
	}
	if g.palette != nil {
		g.painter.BlitPalette(screen, g.sim.Cells(), g.palette, g.scale)
		return
	}
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}

// Run opens the window and drives the game loop until the user quits.
func Run(sim core.Sim, cfg *Config) error {
	game := New(sim, cfg.Scale, cfg.Seed, cfg.SaveFile)
	size := sim.Size()

	ebiten.SetWindowTitle("celleste — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
