package main

import (
	"fmt"
	"time"

	"glimmer/internal/core"
	"glimmer/internal/render"
	"glimmer/internal/sims/field"
)

var sweepSizes = []core.Size{
	{W: 480, H: 320},
	{W: 1280, H: 720},
	{W: 1920, H: 1080},
}

var sweepChances = []float64{0, 0.1, 0.25, 0.5}

type scenario struct {
	w, h        int
	spawnChance float64
}

func (s scenario) less(o scenario) bool {
	if s.w*s.h != o.w*o.h {
		return s.w*s.h < o.w*o.h
	}
	return s.spawnChance < o.spawnChance
}

type scenarioResult struct {
	scenario
	stats     field.Stats
	capacity  int
	meanPop   float64
	peakPop   int
	frameCost time.Duration
}

// saturated reports whether the pointer spawner had to evict particles.
func (r scenarioResult) saturated() bool { return r.stats.Evicted > 0 }

func (r scenarioResult) String() string {
	ms := float64(r.frameCost) / float64(time.Millisecond)
	return fmt.Sprintf("%-10s %6.2f %8.1f %6d %9d %8d %8d %8d %8d %9.3f",
		fmt.Sprintf("%dx%d", r.w, r.h), r.spawnChance, r.meanPop, r.peakPop,
		r.stats.Expired, r.stats.OutOfBounds, r.stats.Spawned, r.stats.Evicted, r.capacity, ms)
}

// countingSurface satisfies core.Surface without drawing so sweeps measure
// the simulation alone.
type countingSurface struct {
	size  core.Size
	draws int
}

func (s *countingSurface) Size() core.Size                                    { return s.size }
func (s *countingSurface) Fade(core.RGB, float64)                             {}
func (s *countingSurface) FillCircle(_, _, _ float64, _ core.RGB, _ float64)  { s.draws++ }
func (s *countingSurface) GlowDisc(_, _, _ float64, _ core.RGB, _ float64)    { s.draws++ }
func (s *countingSurface) StrokeCross(_, _, _ float64, _ core.RGB, _ float64) { s.draws++ }

func runScenario(base field.Config, sc scenario, steps int, raster bool) scenarioResult {
	cfg := base
	cfg.Params.SpawnChance = sc.spawnChance

	var surface core.Surface = &countingSurface{size: core.Size{W: sc.w, H: sc.h}}
	if raster {
		surface = render.NewRaster(sc.w, sc.h)
	}

	f := field.New(cfg)
	f.Attach(surface)
	f.Reset(0)
	f.SetPointer(float64(sc.w)/2, float64(sc.h)/2)

	res := scenarioResult{scenario: sc, capacity: f.Capacity()}
	total := 0
	start := time.Now()
	for i := 0; i < steps; i++ {
		f.Step()
		n := f.Len()
		total += n
		if n > res.peakPop {
			res.peakPop = n
		}
	}
	if steps > 0 {
		res.meanPop = float64(total) / float64(steps)
		res.frameCost = time.Since(start) / time.Duration(steps)
	}
	res.stats = f.Stats()
	return res
}
