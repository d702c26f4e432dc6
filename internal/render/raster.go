package render

import (
	"fmt"
	"image"
	"io"

	"glimmer/internal/core"

	"github.com/fogleman/gg"
)

// Raster is a software drawing surface backed by a gg context.
type Raster struct {
	img *image.RGBA
	dc  *gg.Context
}

// NewRaster allocates a raster surface cleared to opaque black.
func NewRaster(w, h int) *Raster {
	r := &Raster{}
	r.Resize(w, h)
	return r
}

// Resize reallocates the backing image. Contents are cleared.
func (r *Raster) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	r.img = image.NewRGBA(image.Rect(0, 0, w, h))
	r.dc = gg.NewContextForRGBA(r.img)
	fillRGBA(r.img.Pix, core.RGB{})
}

// Size reports the pixel dimensions.
func (r *Raster) Size() core.Size {
	b := r.img.Bounds()
	return core.Size{W: b.Dx(), H: b.Dy()}
}

// Clear fills the surface with an opaque colour.
func (r *Raster) Clear(c core.RGB) {
	fillRGBA(r.img.Pix, c)
}

// Fade blends c over every pixel. It works on the pixel buffer directly
// instead of going through a gg path.
func (r *Raster) Fade(c core.RGB, alpha float64) {
	fadeRGBA(r.img.Pix, c, alpha)
}

// FillCircle draws a filled disc.
func (r *Raster) FillCircle(x, y, radius float64, c core.RGB, alpha float64) {
	if radius <= 0 || alpha <= 0 {
		return
	}
	r.dc.SetColor(c.NRGBA(alpha))
	r.dc.DrawCircle(x, y, radius)
	r.dc.Fill()
}

// GlowDisc draws a radial gradient disc fading to transparent at radius.
func (r *Raster) GlowDisc(x, y, radius float64, c core.RGB, alpha float64) {
	if radius <= 0 || alpha <= 0 {
		return
	}
	r.dc.SetFillStyle(glowGradient(x, y, radius, c, alpha))
	r.dc.DrawCircle(x, y, radius)
	r.dc.Fill()
}

// StrokeCross draws a 1px plus sign.
func (r *Raster) StrokeCross(x, y, half float64, c core.RGB, alpha float64) {
	if half <= 0 || alpha <= 0 {
		return
	}
	r.dc.SetColor(c.NRGBA(alpha))
	r.dc.SetLineWidth(1)
	r.dc.DrawLine(x-half, y, x+half, y)
	r.dc.DrawLine(x, y-half, x, y+half)
	r.dc.Stroke()
}

// Image exposes the backing image.
func (r *Raster) Image() *image.RGBA { return r.img }

// SavePNG writes the current frame to path.
func (r *Raster) SavePNG(path string) error {
	if err := r.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save frame %s: %w", path, err)
	}
	return nil
}

// EncodePNG writes the current frame as PNG to w.
func (r *Raster) EncodePNG(w io.Writer) error {
	return r.dc.EncodePNG(w)
}

// glowGradient builds the three-stop gradient used by glow particles:
// full alpha at the center, 30% half way out, transparent at the rim.
func glowGradient(x, y, radius float64, c core.RGB, alpha float64) gg.Gradient {
	g := gg.NewRadialGradient(x, y, 0, x, y, radius)
	g.AddColorStop(0, c.NRGBA(alpha))
	g.AddColorStop(0.5, c.NRGBA(alpha*0.3))
	g.AddColorStop(1, c.NRGBA(0))
	return g
}

// GlowSprite renders a white glow gradient into a size×size image. Surfaces
// that cannot draw gradients natively tint and scale this sprite instead.
func GlowSprite(size int) *image.RGBA {
	if size < 2 {
		size = 2
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	dc := gg.NewContextForRGBA(img)
	half := float64(size) / 2
	dc.SetFillStyle(glowGradient(half, half, half, core.RGB{R: 255, G: 255, B: 255}, 1))
	dc.DrawCircle(half, half, half)
	dc.Fill()
	return img
}
