// Package view implements the gocui terminal frontend. It renders the
// field as block characters, shows a status sidebar and binds the same
// editing and persistence actions as the GUI.
package view

import (
	"bytes"
	"fmt"
	"time"

	"celleste/internal/core"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

type generationCounter interface {
	Generation() int
}

// The tick loop polls the pacer at a fixed granularity, so the step
// interval must stay within the range the loop can honor.
const (
	minInterval     = 10 * time.Millisecond
	maxInterval     = 5 * time.Second
	tickGranularity = 5 * time.Millisecond
)

func clampInterval(d time.Duration) time.Duration {
	if d < minInterval {
		return minInterval
	}
	if d > maxInterval {
		return maxInterval
	}
	return d
}

// Console drives a simulation from a gocui terminal session.
type Console struct {
	sim      core.Sim
	editor   core.Editor
	pauser   core.Pauser
	snapper  core.Snapshotter
	gen      generationCounter
	savePath string
	interval time.Duration

	g        *gocui.Gui
	bindings []keyBinding
	pacer    *core.FixedStep
	done     chan struct{}
	lastErr  string

	liveFiller string
	deadFiller string
}

// NewConsole constructs the terminal frontend for the provided sim.
func NewConsole(sim core.Sim, interval time.Duration, savePath string) (*Console, error) {
	interval = clampInterval(interval)
	c := &Console{
		sim:        sim,
		savePath:   savePath,
		interval:   interval,
		pacer:      core.NewFixedStep(interval),
		done:       make(chan struct{}),
		liveFiller: aurora.Green("█").String(),
		deadFiller: "░",
	}
	if editor, ok := sim.(core.Editor); ok {
		c.editor = editor
	}
	if pauser, ok := sim.(core.Pauser); ok {
		c.pauser = pauser
	}
	if snapper, ok := sim.(core.Snapshotter); ok {
		c.snapper = snapper
	}
	if gen, ok := sim.(generationCounter); ok {
		c.gen = gen
	}

	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("view: init terminal: %w", err)
	}
	c.g = g
	g.Mouse = true
	g.SetManagerFunc(c.layout)

	c.bindings = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", c.cmdQuit, ""},
		{gocui.KeySpace, "SPACE", "Pause/Resume", c.cmdPauseResume, ""},
		{'n', "N", "Single step", c.cmdStep, ""},
		{'c', "C", "Clear", c.cmdClear, ""},
		{'w', "W", "Reseed random", c.cmdReseed, ""},
		{'s', "S", "Save", c.cmdSave, ""},
		{'l', "L", "Load", c.cmdLoad, ""},
		{'+', "+", "Faster", c.cmdFaster, ""},
		{'-', "-", "Slower", c.cmdSlower, ""},
		{gocui.MouseLeft, "MOUSE", "Toggle cell", c.cmdMouseClick, "field"},
	}
	for _, kb := range c.bindings {
		h := kb.handler
		if err := g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error {
			return h(v)
		}); err != nil {
			g.Close()
			return nil, fmt.Errorf("view: bind %v: %w", kb.name, err)
		}
	}
	return c, nil
}

// Run drives the session until the user exits.
func (c *Console) Run() error {
	go c.tickLoop()
	defer close(c.done)
	defer c.g.Close()
	if err := c.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return err
	}
	return nil
}

// tickLoop advances the simulation at the configured interval while it is
// running. All sim access happens inside gocui.Update, which executes on
// the main loop, so the engine stays single-threaded.
func (c *Console) tickLoop() {
	ticker := time.NewTicker(tickGranularity)
	defer ticker.Stop()
	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			if !c.pacer.ShouldStep() {
				continue
			}
			c.g.Update(func(*gocui.Gui) error {
				if c.pauser == nil || c.pauser.Running() {
					c.sim.Step()
					c.render()
				}
				return nil
			})
		}
	}
}

func (c *Console) render() {
	c.renderField()
	c.renderStatus()
}

func (c *Console) renderField() {
	v, err := c.g.View("field")
	if err != nil {
		return
	}
	v.Clear()

	size := c.sim.Size()
	cells := c.sim.Cells()
	maxW, maxH := v.Size()

	var b bytes.Buffer
	for y := 0; y < size.H && y < maxH; y++ {
		if y != 0 {
			b.WriteByte('\n')
		}
		if (size.W > maxW || size.H > maxH) && y == maxH-1 {
			b.WriteString(aurora.Red("field is larger than the viewing area").String())
			break
		}
		for x := 0; x < size.W && x < maxW; x++ {
			if cells[y*size.W+x] != 0 {
				b.WriteString(c.liveFiller)
			} else {
				b.WriteString(c.deadFiller)
			}
		}
	}
	fmt.Fprint(v, b.String())
}

func (c *Console) renderStatus() {
	v, err := c.g.View("status")
	if err != nil {
		return
	}
	v.Clear()

	size := c.sim.Size()
	live := 0
	for _, cell := range c.sim.Cells() {
		if cell != 0 {
			live++
		}
	}
	fmt.Fprintln(v, c.prop("Sim", "%s", c.sim.Name()))
	fmt.Fprintln(v, c.prop("Dimension", "%d x %d", size.W, size.H))
	fmt.Fprintln(v, c.prop("Interval", "%v", c.interval))
	if c.gen != nil {
		fmt.Fprintln(v, c.prop("Generation", "%d", c.gen.Generation()))
	}
	fmt.Fprintln(v, c.prop("Live cells", "%d", live))
	fmt.Fprintln(v, c.prop("Mode", "%s", c.modeDescr()))
	if c.lastErr != "" {
		fmt.Fprintln(v, " "+aurora.Red(c.lastErr).String())
	}
}

func (c *Console) modeDescr() string {
	if c.pauser == nil || c.pauser.Running() {
		return aurora.Cyan("running").String()
	}
	return aurora.Blue("paused").String()
}

func (c *Console) prop(name, valueFormat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Green(name).String()+": "+valueFormat, values...)
}

func (c *Console) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	leftColumnWidth := 26
	if maxY < 8 || maxX < leftColumnWidth+6 {
		return nil
	}

	if v, err := g.SetView("status", 0, 0, leftColumnWidth, maxY-4); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
		v.Frame = true
	}

	if v, err := g.SetView("field", leftColumnWidth+1, 0, maxX-1, maxY-4); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "celleste — " + c.sim.Name()
		v.Frame = true
	}

	if v, err := g.SetView("help", -1, maxY-3, maxX, maxY-1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		var b bytes.Buffer
		b.WriteString("KEYBINDINGS: ")
		for i, k := range c.bindings {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		fmt.Fprintln(v, b.String())
	}

	c.render()
	return nil
}

func (c *Console) cmdQuit(*gocui.View) error {
	return gocui.ErrQuit
}

func (c *Console) cmdPauseResume(*gocui.View) error {
	if c.pauser != nil {
		if c.pauser.Running() {
			c.pauser.Pause()
		} else {
			c.pauser.Resume()
		}
	}
	c.renderStatus()
	return nil
}

func (c *Console) cmdStep(*gocui.View) error {
	c.sim.Step()
	c.render()
	return nil
}

func (c *Console) cmdClear(*gocui.View) error {
	if c.editor != nil {
		c.editor.Clear()
	}
	c.render()
	return nil
}

func (c *Console) cmdReseed(*gocui.View) error {
	c.sim.Reset(time.Now().UnixNano())
	c.render()
	return nil
}

func (c *Console) cmdSave(*gocui.View) error {
	if c.snapper == nil {
		return nil
	}
	if err := c.snapper.Snapshot(c.savePath); err != nil {
		c.lastErr = err.Error()
	} else {
		c.lastErr = ""
	}
	c.renderStatus()
	return nil
}

func (c *Console) cmdLoad(*gocui.View) error {
	if c.snapper == nil {
		return nil
	}
	if err := c.snapper.Restore(c.savePath); err != nil {
		c.lastErr = err.Error()
	} else {
		c.lastErr = ""
	}
	c.render()
	return nil
}

func (c *Console) cmdFaster(*gocui.View) error {
	c.setInterval(c.interval / 2)
	return nil
}

func (c *Console) cmdSlower(*gocui.View) error {
	c.setInterval(c.interval * 2)
	return nil
}

func (c *Console) setInterval(d time.Duration) {
	c.interval = clampInterval(d)
	c.pacer.SetInterval(c.interval)
	c.renderStatus()
}

func (c *Console) cmdMouseClick(v *gocui.View) error {
	if c.editor == nil {
		return nil
	}
	cx, cy := v.Cursor()
	size := c.sim.Size()
	if cx < 0 || cx >= size.W || cy < 0 || cy >= size.H {
		return nil
	}
	if err := c.editor.ToggleCell(cx, cy); err != nil {
		c.lastErr = err.Error()
	}
	c.render()
	return nil
}
