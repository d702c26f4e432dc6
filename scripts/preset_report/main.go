package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"

	"glimmer/internal/core"
	"glimmer/internal/render"
	"glimmer/internal/sims/field"
)

func main() {
	frames := flag.Int("frames", 600, "frames to simulate per preset")
	width := flag.Int("width", 1280, "surface width")
	height := flag.Int("height", 720, "surface height")
	pngDir := flag.String("png", "", "directory for each preset's final frame (empty skips)")
	flag.Parse()

	names := core.Names()
	fmt.Printf("reporting %d presets at %dx%d for %d frames\n", len(names), *width, *height, *frames)
	for _, name := range names {
		raster := render.NewRaster(*width, *height)
		sim := core.Sims()[name](nil)
		f, ok := sim.(*field.Field)
		if !ok {
			continue
		}
		report(name, f, raster, *frames)
		if *pngDir != "" {
			if err := savePreset(*pngDir, name, raster); err != nil {
				log.Printf("preset %s: %v", name, err)
			}
		}
	}
}

// savePreset writes the raster to dir/name.png, creating dir as needed.
func savePreset(dir, name string, raster *render.Raster) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return raster.SavePNG(filepath.Join(dir, name+".png"))
}

func report(name string, f *field.Field, raster *render.Raster, frames int) {
	f.Attach(raster)
	f.Reset(0)
	size := raster.Size()
	f.SetPointer(float64(size.W)/2, float64(size.H)/2)

	p := f.Config().Params
	fmt.Printf("\n%s: palette=%s capacity=%d initial=%d lifetime=[%d,%d) spawn=%.2f\n",
		name, p.Palette, f.Capacity(), f.Len(), p.LifetimeMin, p.LifetimeMax, p.SpawnChance)

	for i := 0; i < frames; i++ {
		f.Step()
		if i == 0 || i == 49 || i == frames-1 {
			s := f.Stats()
			fmt.Printf("  after %d frames: population %d, expired %d, escaped %d, spawned %d, evicted %d\n",
				i+1, f.Len(), s.Expired, s.OutOfBounds, s.Spawned, s.Evicted)
		}
	}
	fmt.Printf("  mean luminance %.4f\n", meanLuminance(raster.Image()))
}

// meanLuminance averages Rec. 709 luma over the frame in [0,1].
func meanLuminance(img *image.RGBA) float64 {
	pix := img.Pix
	n := len(pix) / 4
	if n == 0 {
		return 0
	}
	var sum float64
	for i := 0; i+3 < len(pix); i += 4 {
		sum += 0.2126*float64(pix[i]) + 0.7152*float64(pix[i+1]) + 0.0722*float64(pix[i+2])
	}
	return sum / float64(n) / 255
}
