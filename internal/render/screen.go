//go:build ebiten

package render

import (
	"glimmer/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const glowSpriteSize = 64

// Screen is a drawing surface backed by a persistent ebiten image. The
// canvas is never cleared between frames so the fade pass leaves trails.
type Screen struct {
	canvas *ebiten.Image
	glow   *ebiten.Image
	w, h   int
}

// NewScreen allocates a canvas of w×h pixels cleared to black.
func NewScreen(w, h int) *Screen {
	s := &Screen{glow: ebiten.NewImageFromImage(GlowSprite(glowSpriteSize))}
	s.Resize(w, h)
	return s
}

// Resize reallocates the canvas when the dimensions change and reports
// whether it did.
func (s *Screen) Resize(w, h int) bool {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if s.canvas != nil && w == s.w && h == s.h {
		return false
	}
	if s.canvas != nil {
		s.canvas.Deallocate()
	}
	s.w, s.h = w, h
	s.canvas = ebiten.NewImage(w, h)
	s.canvas.Fill(core.RGB{}.NRGBA(1))
	return true
}

// Size reports the canvas dimensions.
func (s *Screen) Size() core.Size { return core.Size{W: s.w, H: s.h} }

// Canvas exposes the image the surface draws into.
func (s *Screen) Canvas() *ebiten.Image { return s.canvas }

// Fade covers the canvas with a translucent rectangle.
func (s *Screen) Fade(c core.RGB, alpha float64) {
	if alpha <= 0 {
		return
	}
	vector.DrawFilledRect(s.canvas, 0, 0, float32(s.w), float32(s.h), c.NRGBA(alpha), false)
}

// FillCircle draws an antialiased disc.
func (s *Screen) FillCircle(x, y, r float64, c core.RGB, alpha float64) {
	if r <= 0 || alpha <= 0 {
		return
	}
	vector.DrawFilledCircle(s.canvas, float32(x), float32(y), float32(r), c.NRGBA(alpha), true)
}

// GlowDisc tints and scales the glow sprite over the disc bounds.
func (s *Screen) GlowDisc(x, y, r float64, c core.RGB, alpha float64) {
	if r <= 0 || alpha <= 0 {
		return
	}
	scale := 2 * r / glowSpriteSize
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x-r, y-r)
	rf, gf, bf := c.Floats()
	a := float32(alpha)
	// Sprite is premultiplied white, so scale colour channels by alpha too.
	op.ColorScale.Scale(float32(rf)*a, float32(gf)*a, float32(bf)*a, a)
	op.Filter = ebiten.FilterLinear
	s.canvas.DrawImage(s.glow, op)
}

// StrokeCross draws a 1px plus sign.
func (s *Screen) StrokeCross(x, y, half float64, c core.RGB, alpha float64) {
	if half <= 0 || alpha <= 0 {
		return
	}
	clr := c.NRGBA(alpha)
	fx, fy, fh := float32(x), float32(y), float32(half)
	vector.StrokeLine(s.canvas, fx-fh, fy, fx+fh, fy, 1, clr, true)
	vector.StrokeLine(s.canvas, fx, fy-fh, fx, fy+fh, 1, clr, true)
}

// Blit draws the canvas onto dst.
func (s *Screen) Blit(dst *ebiten.Image) {
	dst.DrawImage(s.canvas, nil)
}
