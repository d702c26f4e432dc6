//go:build ebiten

package ui

import (
	"image/color"

	"glimmer/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay draws optional debugging layers on top of the field. Keys 1-3
// toggle the pointer ring, velocity arrows and population meter.
type Overlay struct {
	sim core.Sim

	showPointer  bool
	showVelocity bool
	showMeter    bool

	motions []core.Motion
}

// NewOverlay constructs an overlay with every layer hidden.
func NewOverlay(sim core.Sim) *Overlay {
	return &Overlay{sim: sim}
}

// Update handles the layer toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showPointer = !o.showPointer
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showVelocity = !o.showVelocity
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showMeter = !o.showMeter
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.sim.Size().Empty() {
		return
	}
	if o.showVelocity {
		if provider, ok := o.sim.(motionProvider); ok {
			o.drawVelocities(screen, provider)
		}
	}
	if o.showPointer {
		if provider, ok := o.sim.(pointerProvider); ok {
			o.drawPointer(screen, provider)
		}
	}
	if o.showMeter {
		if provider, ok := o.sim.(populationProvider); ok {
			o.drawMeter(screen, provider)
		}
	}
}

func (o *Overlay) drawVelocities(screen *ebiten.Image, provider motionProvider) {
	o.motions = provider.Motions(o.motions[:0])
	for _, m := range o.motions {
		a, ok := velocityArrow(m)
		if !ok {
			continue
		}
		w := float32(a.thickness)
		vector.StrokeLine(screen, float32(a.tailX), float32(a.tailY), float32(a.baseX), float32(a.baseY), w, a.col, true)
		vector.StrokeLine(screen, float32(a.tipX), float32(a.tipY), float32(a.leftX), float32(a.leftY), w*0.85, a.col, true)
		vector.StrokeLine(screen, float32(a.tipX), float32(a.tipY), float32(a.rightX), float32(a.rightY), w*0.85, a.col, true)
	}
}

func (o *Overlay) drawPointer(screen *ebiten.Image, provider pointerProvider) {
	x, y := provider.Pointer()
	r := provider.AttractionRadius()
	ring := color.RGBA{R: 255, G: 215, B: 0, A: 120}
	if r > 0 {
		vector.StrokeCircle(screen, float32(x), float32(y), float32(r), 1, ring, true)
	}
	vector.StrokeLine(screen, float32(x-6), float32(y), float32(x+6), float32(y), 1, ring, true)
	vector.StrokeLine(screen, float32(x), float32(y-6), float32(x), float32(y+6), 1, ring, true)
}

func (o *Overlay) drawMeter(screen *ebiten.Image, provider populationProvider) {
	const (
		meterW   = 160
		meterH   = 8
		meterPad = 12
	)
	size := screen.Bounds().Size()
	x := float32(meterPad)
	y := float32(size.Y - meterPad - meterH)
	ratio := fillRatio(provider)
	vector.DrawFilledRect(screen, x, y, meterW, meterH, color.RGBA{R: 30, G: 30, B: 40, A: 200}, false)
	vector.DrawFilledRect(screen, x, y, float32(meterW*ratio), meterH, meterColor(ratio), false)
	vector.StrokeRect(screen, x, y, meterW, meterH, 1, color.RGBA{R: 200, G: 200, B: 210, A: 160}, false)
}
