package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"

	"glimmer/internal/app"
	"glimmer/internal/core"
	"glimmer/internal/render"
	_ "glimmer/internal/sims/field"
)

type options struct {
	sim    string
	width  int
	height int
	seed   int64
	frames int
	warmup int
	every  int
	period float64
	out    string
}

func main() {
	var opts options
	flag.StringVar(&opts.sim, "sim", "newyear", "preset to render")
	flag.IntVar(&opts.width, "width", 640, "frame width in pixels")
	flag.IntVar(&opts.height, "height", 360, "frame height in pixels")
	flag.Int64Var(&opts.seed, "seed", 0, "seed for the field (0 keeps the preset seed)")
	flag.IntVar(&opts.frames, "frames", 240, "number of frames to write")
	flag.IntVar(&opts.warmup, "warmup", 60, "frames to simulate before the first write")
	flag.IntVar(&opts.every, "every", 1, "write every Nth simulated frame")
	flag.Float64Var(&opts.period, "period", 240, "frames per pointer orbit (0 parks the pointer at the center)")
	flag.StringVar(&opts.out, "out", "frames", "output directory")
	var overrides app.KVList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	m, errs := overrides.Map()
	for _, err := range errs {
		log.Printf("skipping %v", err)
	}
	sim, err := app.NewSim(opts.sim, m)
	if err != nil {
		log.Fatal(err)
	}
	if err := renderFrames(sim, opts); err != nil {
		log.Fatal(err)
	}
}

func renderFrames(sim core.Sim, opts options) error {
	if opts.every < 1 {
		opts.every = 1
	}
	if err := os.MkdirAll(opts.out, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	raster := render.NewRaster(opts.width, opts.height)
	sim.Attach(raster)
	sim.Reset(opts.seed)

	size := raster.Size()
	tick := 0
	advance := func() {
		sim.SetPointer(orbit(size, tick, opts.period))
		sim.Step()
		tick++
	}

	for i := 0; i < opts.warmup; i++ {
		advance()
	}
	for frame := 0; frame < opts.frames; frame++ {
		for i := 0; i < opts.every; i++ {
			advance()
		}
		path := filepath.Join(opts.out, frameName(frame))
		if err := raster.SavePNG(path); err != nil {
			return err
		}
		if (frame+1)%60 == 0 || frame+1 == opts.frames {
			log.Printf("wrote %d/%d frames", frame+1, opts.frames)
		}
	}
	return nil
}

func frameName(i int) string {
	return fmt.Sprintf("frame-%05d.png", i)
}

// orbit traces a figure-eight around the surface center so the pointer
// sweeps through the field and drags particles with it.
func orbit(size core.Size, tick int, period float64) (float64, float64) {
	cx, cy := float64(size.W)/2, float64(size.H)/2
	if period <= 0 {
		return cx, cy
	}
	phase := 2 * math.Pi * float64(tick) / period
	return cx + 0.3*float64(size.W)*math.Cos(phase),
		cy + 0.25*float64(size.H)*math.Sin(2*phase)
}
