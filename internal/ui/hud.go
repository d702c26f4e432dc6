//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strings"

	"glimmer/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

type statusProvider interface {
	StatusLines() []string
}

// HUD is a translucent control panel that slides in over the right edge of
// the window. H toggles it.
type HUD struct {
	sim   core.Sim
	panel *ebiten.Image
	title string

	controls *controlPanel
	slide    *panelSlide
	status   []string
}

// NewHUD constructs a HUD for sim. shown selects the initial state.
func NewHUD(sim core.Sim, width int, shown bool) *HUD {
	if width <= 0 {
		return nil
	}
	return &HUD{
		sim:      sim,
		title:    buildTitle(sim),
		controls: newControlPanel(sim, width),
		slide:    newPanelSlide(width, shown),
	}
}

// Update advances the slide, refreshes values and handles clicks. It
// reports whether the click landed on the panel so the host can skip
// pointer handling for it.
func (h *HUD) Update(screenW int) bool {
	if h == nil {
		return false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.slide.Toggle()
	}
	h.slide.Update(1 / float32(ebiten.TPS()))
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		h.controls.refresh(provider.Parameters())
	}
	if provider, ok := h.sim.(statusProvider); ok {
		h.status = provider.StatusLines()
	}
	if !h.slide.Visible() {
		return false
	}
	mx, my := ebiten.CursorPosition()
	left := h.left(screenW)
	if mx < left || my >= h.controls.height() {
		return false
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		h.controls.click(mx-left, my)
	}
	return true
}

// Draw paints the panel at its current slide offset.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.slide.Visible() {
		return
	}
	width, height := h.controls.width, h.controls.height()
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 210})
	h.drawContents()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(h.left(screen.Bounds().Dx())), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) left(screenW int) int {
	return screenW - h.controls.width + int(h.slide.offset)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:]
}

var (
	textColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor   = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	titleColor = color.RGBA{R: 255, G: 215, B: 120, A: 255}
)

func (h *HUD) drawContents() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, titleColor)
	for _, line := range h.status {
		y += statsSpacing
		text.Draw(h.panel, line, face, panelPadding, y, dimColor)
	}
	if len(h.controls.controls) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, controlsTop+labelBaseline, dimColor)
		return
	}
	for i := range h.controls.controls {
		state := &h.controls.controls[i]
		baseline := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, baseline, textColor)
		valueColor := textColor
		if !state.hasValue {
			valueColor = dimColor
		}
		valueW := text.BoundString(face, state.value).Dx()
		text.Draw(h.panel, state.value, face, state.minusRect.Min.X-buttonGap-valueW, baseline, valueColor)
		h.drawButton(state.minusRect, "-", h.controls.canAdjust(state, -1))
		h.drawButton(state.plusRect, "+", h.controls.canAdjust(state, 1))
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	vector.DrawFilledRect(h.panel, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
