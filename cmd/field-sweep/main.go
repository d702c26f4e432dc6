package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"glimmer/internal/app"
	"glimmer/internal/sims/field"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	rowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

func main() {
	steps := flag.Int("steps", 600, "frames to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	preset := flag.String("sim", field.PresetNewYear, "preset to sweep")
	raster := flag.Bool("raster", false, "draw onto a real raster surface instead of a counting stub")
	var overrides app.KVList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	m, errs := overrides.Map()
	for _, err := range errs {
		log.Printf("skipping %v", err)
	}
	base := field.ApplyMap(field.PresetConfig(*preset), m)

	var scenarios []scenario
	for _, size := range sweepSizes {
		for _, chance := range sweepChances {
			scenarios = append(scenarios, scenario{w: size.W, h: size.H, spawnChance: chance})
		}
	}

	fmt.Println(dimStyle.Render(fmt.Sprintf("Sweeping %d scenarios of %q (%d workers, %d steps)",
		len(scenarios), *preset, *workers, *steps)))

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- runScenario(base, sc, *steps, *raster)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range scenarios {
			jobs <- sc
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].scenario.less(all[j].scenario) })

	fmt.Println(headerStyle.Render(fmt.Sprintf("%-10s %6s %8s %6s %9s %8s %8s %8s %8s %9s",
		"size", "spawn", "mean", "peak", "expired", "escaped", "spawned", "evicted", "cap", "ms/frame")))
	for _, res := range all {
		style := rowStyle
		if res.saturated() {
			style = warnStyle
		}
		fmt.Println(style.Render(res.String()))
	}
	fmt.Println(dimStyle.Render(fmt.Sprintf("elapsed %s", time.Since(start).Round(time.Millisecond))))
}
