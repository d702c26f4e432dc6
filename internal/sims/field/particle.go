package field

import (
	"math"

	"glimmer/internal/core"

	"github.com/tanema/gween/ease"
)

// Kind selects how a particle is rendered.
type Kind uint8

const (
	// KindPoint renders a twinkling filled disc.
	KindPoint Kind = iota
	// KindGlow renders a soft radial gradient disc.
	KindGlow
	// KindSparkle renders a pulsing plus sign.
	KindSparkle

	kindCount
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindGlow:
		return "glow"
	case KindSparkle:
		return "sparkle"
	default:
		return "unknown"
	}
}

// Particle is a single ambient particle. Size, Opacity, Color, MaxLife and
// Kind are fixed at creation.
type Particle struct {
	X, Y   float64
	VX, VY float64

	Size    float64
	Opacity float64
	Color   core.RGB
	Kind    Kind

	Age     int
	MaxLife int
}

// LifeRatio returns Age/MaxLife.
func (p *Particle) LifeRatio() float64 {
	if p.MaxLife <= 0 {
		return 1
	}
	return float64(p.Age) / float64(p.MaxLife)
}

// Alpha returns the effective opacity: base opacity scaled by the fade-in and
// fade-out envelopes. The result is always within [0, Opacity].
func (p *Particle) Alpha(params *Params) float64 {
	return p.Opacity * fadeIn(p.Age, params.FadeInFrames) * fadeOut(p.LifeRatio(), params.FadeOutStart)
}

// fadeIn ramps linearly from 0 to 1 over the first frames of a lifetime.
func fadeIn(age, frames int) float64 {
	if frames <= 0 || age >= frames {
		return 1
	}
	if age <= 0 {
		return 0
	}
	return clamp01(float64(ease.Linear(float32(age), 0, 1, float32(frames))))
}

// fadeOut ramps linearly from 1 to 0 once the life ratio passes start.
func fadeOut(ratio, start float64) float64 {
	if ratio <= start {
		return 1
	}
	span := 1 - start
	if span <= 0 || ratio >= 1 {
		return 0
	}
	return clamp01(float64(ease.Linear(float32(ratio-start), 1, -1, float32(span))))
}

// Palette names.
const (
	PaletteNewYear = "newyear"
	PaletteAurora  = "aurora"
	PaletteEmbers  = "embers"
)

var palettes = map[string][]core.RGB{
	PaletteNewYear: {
		{R: 255, G: 215, B: 0},   // gold
		{R: 0, G: 245, B: 255},   // cyan
		{R: 255, G: 107, B: 157}, // rose
		{R: 255, G: 255, B: 255}, // white
		{R: 138, G: 43, B: 226},  // purple
	},
	PaletteAurora: {
		{R: 64, G: 224, B: 208},
		{R: 120, G: 255, B: 140},
		{R: 150, G: 110, B: 255},
		{R: 200, G: 240, B: 255},
	},
	PaletteEmbers: {
		{R: 255, G: 140, B: 30},
		{R: 255, G: 69, B: 0},
		{R: 255, G: 200, B: 60},
		{R: 200, G: 40, B: 20},
	},
}

// PaletteColors returns a copy of the named palette, falling back to the
// default palette for unknown names.
func PaletteColors(name string) []core.RGB {
	colors, ok := palettes[name]
	if !ok {
		colors = palettes[PaletteNewYear]
	}
	return append([]core.RGB(nil), colors...)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
