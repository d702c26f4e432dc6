package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"glimmer/internal/app"
	"glimmer/internal/core"
	"glimmer/internal/render"
	_ "glimmer/internal/sims/field"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	cellW := flag.Int("cell-w", render.DefaultCellW, "pixel width of one terminal cell")
	cellH := flag.Int("cell-h", render.DefaultCellH, "pixel height of one terminal cell")
	flag.Parse()

	overrides, errs := cfg.Overrides.Map()
	for _, err := range errs {
		log.Printf("skipping %v", err)
	}
	sim, err := app.NewSim(cfg.Sim, overrides)
	if err != nil {
		log.Fatal(err)
	}
	if err := run(sim, cfg, *cellW, *cellH); err != nil {
		log.Fatal(err)
	}
}

func run(sim core.Sim, cfg *app.Config, cellW, cellH int) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	term := render.NewTerminal(screen, cellW, cellH)
	sim.Attach(term)
	sim.Reset(cfg.Seed)

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	clock := core.NewFixedStep(cfg.TPS)
	ticker := time.NewTicker(clock.Interval())
	defer ticker.Stop()

	h := &termHost{sim: sim, term: term, seed: cfg.Seed}
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if h.handle(ev) {
				return nil
			}
		case <-ticker.C:
			steps := clock.Due()
			if h.paused {
				steps = 0
			}
			if h.tickOnce {
				steps = 1
				h.tickOnce = false
			}
			for i := 0; i < steps; i++ {
				sim.Step()
			}
			term.Flush()
		}
	}
}

// termHost holds the interactive state of the terminal loop. Only the loop
// goroutine touches it.
type termHost struct {
	sim  core.Sim
	term *render.Terminal
	seed int64

	paused   bool
	tickOnce bool
}

// handle applies one event and reports whether the loop should exit.
func (h *termHost) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		if h.term.Sync() {
			h.sim.Resize()
		}
	case *tcell.EventMouse:
		col, row := ev.Position()
		h.sim.SetPointer(h.term.CellToPixel(col, row))
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyEnter:
			h.paused = false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case ' ':
				h.paused = !h.paused
			case 'n':
				h.tickOnce = true
			case 'r':
				h.sim.Reset(h.seed)
			case 's':
				h.seed = time.Now().UnixNano()
				h.sim.Reset(h.seed)
			}
		}
	}
	return false
}
