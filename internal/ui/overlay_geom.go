package ui

import (
	"image/color"
	"math"

	"glimmer/internal/core"
)

type pointerProvider interface {
	Pointer() (float64, float64)
	AttractionRadius() float64
}

type motionProvider interface {
	Motions(dst []core.Motion) []core.Motion
}

type populationProvider interface {
	Len() int
	Capacity() int
}

// arrow is a velocity glyph in screen space: a body from tail to the base of
// the head, plus two head strokes meeting at the tip.
type arrow struct {
	tailX, tailY   float64
	baseX, baseY   float64
	tipX, tipY     float64
	leftX, leftY   float64
	rightX, rightY float64
	thickness      float64
	col            color.RGBA
}

const (
	calmSpeed        = 0.02
	maxSpeedEstimate = 1.5
	arrowSpan        = 18.0
	arrowHeadAngle   = math.Pi / 6
)

// velocityArrow builds the arrow for one particle. Nearly stationary
// particles get no arrow.
func velocityArrow(m core.Motion) (arrow, bool) {
	speed := math.Hypot(m.VX, m.VY)
	if speed < calmSpeed || math.IsNaN(speed) || math.IsInf(speed, 0) {
		return arrow{}, false
	}
	nx, ny := m.VX/speed, m.VY/speed
	normalized := clamp01(speed / maxSpeedEstimate)
	length := arrowSpan * (0.35 + 0.65*math.Sqrt(normalized))
	head := math.Min(length*0.3, 5)
	tail := length * 0.4

	a := arrow{
		tailX:     m.X - nx*tail,
		tailY:     m.Y - ny*tail,
		tipX:      m.X + nx*(length-tail),
		tipY:      m.Y + ny*(length-tail),
		thickness: 0.8 + 0.6*normalized,
		col:       speedColor(normalized),
	}
	a.baseX = a.tipX - nx*head
	a.baseY = a.tipY - ny*head
	angle := math.Atan2(ny, nx)
	a.leftX = a.tipX - math.Cos(angle+arrowHeadAngle)*head
	a.leftY = a.tipY - math.Sin(angle+arrowHeadAngle)*head
	a.rightX = a.tipX - math.Cos(angle-arrowHeadAngle)*head
	a.rightY = a.tipY - math.Sin(angle-arrowHeadAngle)*head
	return a, true
}

// speedColor shades from cool blue at rest to pale cyan at full speed.
func speedColor(t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: uint8(math.Round(80 + 70*t)),
		G: uint8(math.Round(170 + 70*t)),
		B: uint8(math.Round(230 + 20*t)),
		A: uint8(math.Round(150 + 90*t)),
	}
}

// fillRatio is the population as a fraction of capacity.
func fillRatio(p populationProvider) float64 {
	c := p.Capacity()
	if c <= 0 {
		return 0
	}
	return clamp01(float64(p.Len()) / float64(c))
}

// meterColor goes green while there is headroom and red near capacity.
func meterColor(ratio float64) color.RGBA {
	ratio = clamp01(ratio)
	switch {
	case ratio >= 0.95:
		return color.RGBA{R: 230, G: 80, B: 70, A: 220}
	case ratio >= 0.75:
		return color.RGBA{R: 230, G: 190, B: 70, A: 220}
	default:
		return color.RGBA{R: 90, G: 200, B: 120, A: 220}
	}
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
