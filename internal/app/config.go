package app

import (
	"strconv"
	"time"

	"github.com/integrii/flaggy"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string
	Rules    string
	Width    int
	Height   int
	Edge     string
	Fill     string
	Scale    int
	TPS      int
	Seed     int64
	Interval time.Duration
	SaveFile string
	LoadFile string
	Terminal bool
	Paused   bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:      "automaton",
		Rules:    "B3/S23",
		Width:    256,
		Height:   256,
		Edge:     "wrap",
		Fill:     "random",
		Scale:    3,
		TPS:      60,
		Seed:     42,
		Interval: 100 * time.Millisecond,
		SaveFile: "celleste_save.clst",
	}
}

// Bind attaches the configuration to the global flaggy parser.
func (c *Config) Bind() {
	flaggy.String(&c.Sim, "m", "sim", "simulation to run")
	flaggy.String(&c.Rules, "r", "rules", "automaton rules in B<digits>/S<digits> notation")
	flaggy.Int(&c.Width, "x", "width", "grid width in cells")
	flaggy.Int(&c.Height, "y", "height", "grid height in cells")
	flaggy.String(&c.Edge, "e", "edge", "edge policy [clamp|wrap]")
	flaggy.String(&c.Fill, "f", "fill", "initial population [random|empty|glider]")
	flaggy.Int(&c.Scale, "c", "scale", "pixel scale multiplier")
	flaggy.Int(&c.TPS, "t", "tps", "ticks per second (GUI)")
	flaggy.Int64(&c.Seed, "d", "seed", "seed for the initial random fill")
	flaggy.Duration(&c.Interval, "i", "interval", "step interval in terminal mode, for example 150ms")
	flaggy.String(&c.SaveFile, "s", "save-file", "path to save the automaton state")
	flaggy.String(&c.LoadFile, "l", "load-file", "path to load a previously saved state on startup")
	flaggy.Bool(&c.Terminal, "n", "terminal", "run the gocui terminal frontend instead of the GUI")
	flaggy.Bool(&c.Paused, "p", "paused", "start with the simulation paused")
}

// SimOptions renders the config as the flag-style key/value map consumed
// by the simulation factories.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"w":    strconv.Itoa(c.Width),
		"h":    strconv.Itoa(c.Height),
		"rule": c.Rules,
		"edge": c.Edge,
		"fill": c.Fill,
	}
}
