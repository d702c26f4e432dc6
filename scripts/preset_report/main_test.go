package main

import (
	"os"
	"path/filepath"
	"testing"

	"glimmer/internal/render"
)

func TestSavePresetCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "png")
	raster := render.NewRaster(16, 8)
	if err := savePreset(dir, "newyear", raster); err != nil {
		t.Fatalf("savePreset: %v", err)
	}
	info, err := os.Stat(filepath.Join(dir, "newyear.png"))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("png is empty")
	}
}
