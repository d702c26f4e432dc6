//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"glimmer/internal/app"
	_ "glimmer/internal/sims/field"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	cfg.BindWindow(flag.CommandLine)
	flag.Parse()

	overrides, errs := cfg.Overrides.Map()
	for _, err := range errs {
		log.Printf("skipping %v", err)
	}
	sim, err := app.NewSim(cfg.Sim, overrides)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, cfg)

	ebiten.SetWindowTitle("glimmer: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
