package main

import (
	"log"

	"celleste/internal/app"
	"celleste/internal/core"
	_ "celleste/internal/sims/automaton"
	_ "celleste/internal/sims/bzr"
	"celleste/internal/view"

	"github.com/integrii/flaggy"
)

func main() {
	cfg := app.NewConfig()
	flaggy.SetName("celleste")
	flaggy.SetDescription("a 2D cellular automaton with customizable B<digits>/S<digits> rules")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	cfg.Bind()
	flaggy.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		flaggy.ShowHelpAndExit("unknown sim " + cfg.Sim)
	}

	sim, err := factory(cfg.SimOptions())
	if err != nil {
		log.Fatal(err)
	}
	sim.Reset(cfg.Seed)

	if cfg.LoadFile != "" {
		snapper, ok := sim.(core.Snapshotter)
		if !ok {
			log.Fatalf("sim %q does not support loading saved state", cfg.Sim)
		}
		if err := snapper.Restore(cfg.LoadFile); err != nil {
			log.Fatal(err)
		}
	}
	if pauser, ok := sim.(core.Pauser); ok && !cfg.Paused {
		pauser.Resume()
	}

	if cfg.Terminal {
		console, err := view.NewConsole(sim, cfg.Interval, cfg.SaveFile)
		if err != nil {
			log.Fatal(err)
		}
		if err := console.Run(); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := app.Run(sim, cfg); err != nil {
		log.Fatal(err)
	}
}
