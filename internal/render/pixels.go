package render

import (
	"math"

	"glimmer/internal/core"
)

// fadeRGBA composites an opaque colour at the given alpha over a
// premultiplied RGBA pixel buffer (source-over).
func fadeRGBA(buf []byte, c core.RGB, alpha float64) {
	if alpha <= 0 || math.IsNaN(alpha) {
		return
	}
	if alpha > 1 {
		alpha = 1
	}
	inv := 1 - alpha
	sr := float64(c.R) * alpha
	sg := float64(c.G) * alpha
	sb := float64(c.B) * alpha
	sa := 255 * alpha
	for i := 0; i+3 < len(buf); i += 4 {
		buf[i+0] = blendComponent(sr, buf[i+0], c.R, inv)
		buf[i+1] = blendComponent(sg, buf[i+1], c.G, inv)
		buf[i+2] = blendComponent(sb, buf[i+2], c.B, inv)
		buf[i+3] = blendComponent(sa, buf[i+3], 255, inv)
	}
}

// fillRGBA sets every pixel of a premultiplied RGBA buffer to an opaque colour.
func fillRGBA(buf []byte, c core.RGB) {
	for i := 0; i+3 < len(buf); i += 4 {
		buf[i+0] = c.R
		buf[i+1] = c.G
		buf[i+2] = c.B
		buf[i+3] = 255
	}
}

// blendComponent rounds toward target so repeated fades settle on it
// instead of stalling one rounding step away.
func blendComponent(src float64, dst, target byte, inv float64) byte {
	v := src + float64(dst)*inv
	switch {
	case dst > target:
		v = math.Floor(v + 1e-9)
	case dst < target:
		v = math.Ceil(v - 1e-9)
	default:
		return dst
	}
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}
