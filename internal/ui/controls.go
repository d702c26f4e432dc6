package ui

import (
	"image"
	"math"
	"strconv"

	"glimmer/internal/core"
)

// controlState tracks one HUD row: the control description, the last value
// read from the sim and the hit rectangles of its -/+ buttons.
type controlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// controlPanel is the input half of the HUD. It holds no ebiten state so it
// can be driven from tests.
type controlPanel struct {
	width    int
	controls []controlState

	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
}

func newControlPanel(sim core.Sim, width int) *controlPanel {
	p := &controlPanel{width: width}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			p.controls = append(p.controls, controlState{control: ctrl, value: "--"})
		}
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		p.intSetter = setter
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		p.floatSetter = setter
	}
	p.layout(controlsTop)
	return p
}

func (p *controlPanel) layout(top int) {
	for i := range p.controls {
		rowTop := top + i*lineHeight
		buttonY := rowTop + (lineHeight-buttonSize)/2
		plus := image.Rect(p.width-panelPadding-buttonSize, buttonY, p.width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		p.controls[i].top = rowTop
		p.controls[i].minusRect = minus
		p.controls[i].plusRect = plus
	}
}

// refresh copies current values out of a parameter snapshot.
func (p *controlPanel) refresh(snap core.ParameterSnapshot) {
	for i := range p.controls {
		state := &p.controls[i]
		state.hasValue = false
		state.value = "--"
		param, ok := snap.Lookup(state.control.Key)
		if !ok {
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			v, err := strconv.Atoi(param.Value)
			if err != nil {
				continue
			}
			state.intValue = v
			state.floatValue = float64(v)
			state.value = strconv.Itoa(v)
			state.hasValue = true
		case core.ParamTypeFloat:
			v, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				continue
			}
			state.floatValue = v
			state.value = formatFloat(state.control, v)
			state.hasValue = true
		}
	}
}

// click handles a press at panel-local coordinates and reports whether a
// parameter changed.
func (p *controlPanel) click(x, y int) bool {
	for i := range p.controls {
		state := &p.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(x, y, state.minusRect) {
			return p.apply(state, -1)
		}
		if pointInRect(x, y, state.plusRect) {
			return p.apply(state, 1)
		}
	}
	return false
}

// target computes the value one step in direction, bounded by the control.
// ok is false when the control cannot move that way.
func (p *controlPanel) target(state *controlState, direction int) (float64, bool) {
	if state == nil || direction == 0 || !state.hasValue {
		return 0, false
	}
	ctrl := state.control
	switch ctrl.Type {
	case core.ParamTypeInt:
		if p.intSetter == nil {
			return 0, false
		}
		step := math.Round(ctrl.Step)
		if step <= 0 {
			step = 1
		}
		current := float64(state.intValue)
		next := math.Round(ctrl.Clamp(current + float64(direction)*step))
		return next, next != current
	case core.ParamTypeFloat:
		if p.floatSetter == nil {
			return 0, false
		}
		step := ctrl.Step
		if step <= 0 {
			step = 0.05
		}
		next := ctrl.Clamp(state.floatValue + float64(direction)*step)
		return next, math.Abs(next-state.floatValue) >= 1e-9
	}
	return 0, false
}

func (p *controlPanel) apply(state *controlState, direction int) bool {
	next, ok := p.target(state, direction)
	if !ok {
		return false
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		v := int(next)
		if !p.intSetter.SetIntParameter(state.control.Key, v) {
			return false
		}
		state.intValue = v
		state.floatValue = next
		state.value = strconv.Itoa(v)
	case core.ParamTypeFloat:
		if !p.floatSetter.SetFloatParameter(state.control.Key, next) {
			return false
		}
		state.floatValue = next
		state.value = formatFloat(state.control, next)
	}
	return true
}

func (p *controlPanel) canAdjust(state *controlState, direction int) bool {
	_, ok := p.target(state, direction)
	return ok
}

// height is the panel height needed to show every control.
func (p *controlPanel) height() int {
	return controlsTop + len(p.controls)*lineHeight + panelPadding
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	statsLines     = 3
	statsSpacing   = 16
	controlsTop    = panelPadding + headerBaseline + statsLines*statsSpacing + 14
)
