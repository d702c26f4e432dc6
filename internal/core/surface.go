package core

import (
	"image/color"
	"math"
)

// RGB is an opaque colour; alpha is supplied per draw call.
type RGB struct {
	R, G, B uint8
}

// NRGBA combines the colour with an alpha in [0,1].
func (c RGB) NRGBA(alpha float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alphaByte(alpha)}
}

// Floats returns the channels scaled to [0,1].
func (c RGB) Floats() (r, g, b float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}

func alphaByte(alpha float64) uint8 {
	if alpha <= 0 || math.IsNaN(alpha) {
		return 0
	}
	if alpha >= 1 {
		return 255
	}
	return uint8(math.Round(alpha * 255))
}

// Surface is the drawing target a simulation renders onto. Coordinates are
// in surface pixels; alpha values are in [0,1].
type Surface interface {
	// Size reports the current pixel dimensions.
	Size() Size
	// Fade composites c at the given alpha over the whole surface.
	Fade(c RGB, alpha float64)
	// FillCircle draws a filled disc of radius r.
	FillCircle(x, y, r float64, c RGB, alpha float64)
	// GlowDisc draws a radial gradient disc of outer radius r, opaque at
	// the center and transparent at the rim.
	GlowDisc(x, y, r float64, c RGB, alpha float64)
	// StrokeCross draws a 1px plus sign whose arms extend half pixels
	// from the center.
	StrokeCross(x, y, half float64, c RGB, alpha float64)
}
