package field

import (
	"fmt"

	"glimmer/internal/core"
)

// Parameters reports the live tunables grouped for display.
func (f *Field) Parameters() core.ParameterSnapshot {
	p := f.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "Field",
			Params: []core.Parameter{
				core.IntParam("w", "Width", f.size.W),
				core.IntParam("h", "Height", f.size.H),
				core.Int64Param("seed", "Seed", f.cfg.Seed),
				core.IntParam("population", "Population", f.Len()),
				core.StringParam("palette", "Palette", p.Palette),
			},
		},
		{
			Name: "Population",
			Params: []core.Parameter{
				core.IntParam("max_initial", "Max initial", p.MaxInitial),
				core.IntParam("area_per_particle", "Area per particle", p.AreaPerParticle),
				core.IntParam("capacity", "Capacity", p.Capacity),
				core.FloatParam("margin", "Bounds margin", p.Margin),
				core.IntParam("lifetime_min", "Lifetime min", p.LifetimeMin),
				core.IntParam("lifetime_max", "Lifetime max", p.LifetimeMax),
			},
		},
		{
			Name: "Motion",
			Params: []core.Parameter{
				core.FloatParam("time_step", "Time step", p.TimeStep),
				core.FloatParam("upward_bias", "Upward bias", p.UpwardBias),
				core.FloatParam("noise_gain", "Noise gain", p.NoiseGain),
				core.FloatParam("oscillation_gain", "Oscillation gain", p.OscillationGain),
				core.FloatParam("damping", "Damping", p.Damping),
			},
		},
		{
			Name: "Pointer",
			Params: []core.Parameter{
				core.FloatParam("attraction_radius", "Attraction radius", p.AttractionRadius),
				core.FloatParam("attraction_strength", "Attraction strength", p.AttractionStrength),
				core.FloatParam("spawn_chance", "Spawn chance", p.SpawnChance),
				core.FloatParam("spawn_jitter", "Spawn jitter", p.SpawnJitter),
			},
		},
		{
			Name: "Appearance",
			Params: []core.Parameter{
				core.IntParam("fade_in_frames", "Fade-in frames", p.FadeInFrames),
				core.FloatParam("fade_out_start", "Fade-out start", p.FadeOutStart),
				core.FloatParam("glow_radius", "Glow radius", p.GlowRadius),
				core.FloatParam("trail_alpha", "Trail alpha", p.TrailAlpha),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable parameters.
func (f *Field) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "capacity", Label: "Capacity", Type: core.ParamTypeInt, Step: 10, Min: 1, Max: CapacityLimit, HasMin: true, HasMax: true},
		{Key: "max_initial", Label: "Max initial", Type: core.ParamTypeInt, Step: 10, Min: 0, Max: InitialLimit, HasMin: true, HasMax: true},
		{Key: "spawn_chance", Label: "Spawn chance", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "attraction_radius", Label: "Attract radius", Type: core.ParamTypeFloat, Step: 25, Min: 0, Max: 1000, HasMin: true, HasMax: true},
		{Key: "damping", Label: "Damping", Type: core.ParamTypeFloat, Step: 0.005, Min: 0.8, Max: 1, HasMin: true, HasMax: true},
		{Key: "upward_bias", Label: "Upward bias", Type: core.ParamTypeFloat, Step: 0.05, Min: -1, Max: 1, HasMin: true, HasMax: true},
		{Key: "time_step", Label: "Time step", Type: core.ParamTypeFloat, Step: 0.005, Min: 0, Max: 0.1, HasMin: true, HasMax: true},
		{Key: "trail_alpha", Label: "Trail alpha", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

func (f *Field) control(key string) (core.ParameterControl, bool) {
	for _, ctrl := range f.ParameterControls() {
		if ctrl.Key == key {
			return ctrl, true
		}
	}
	return core.ParameterControl{}, false
}

// SetIntParameter updates an integer control, clamping to its bounds.
// Population parameters reseed the field immediately.
func (f *Field) SetIntParameter(key string, value int) bool {
	ctrl, ok := f.control(key)
	if !ok || ctrl.Type != core.ParamTypeInt {
		return false
	}
	v := int(ctrl.Clamp(float64(value)))
	switch key {
	case "capacity":
		f.cfg.Params.Capacity = v
		f.particles.Resize(v)
	case "max_initial":
		f.cfg.Params.MaxInitial = v
		f.Resize()
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a float control, clamping to its bounds.
func (f *Field) SetFloatParameter(key string, value float64) bool {
	ctrl, ok := f.control(key)
	if !ok || ctrl.Type != core.ParamTypeFloat || !finite(value) {
		return false
	}
	v := ctrl.Clamp(value)
	p := &f.cfg.Params
	switch key {
	case "spawn_chance":
		p.SpawnChance = v
	case "attraction_radius":
		p.AttractionRadius = v
	case "damping":
		p.Damping = v
	case "upward_bias":
		p.UpwardBias = v
	case "time_step":
		p.TimeStep = v
	case "trail_alpha":
		p.TrailAlpha = v
	default:
		return false
	}
	return true
}

// StatusLines summarises population and recycling counters for the HUD.
func (f *Field) StatusLines() []string {
	s := f.stats
	return []string{
		fmt.Sprintf("particles %d/%d", f.Len(), f.Capacity()),
		fmt.Sprintf("frame %d  recycled %d", s.Frames, s.Recycled()),
		fmt.Sprintf("spawned %d  evicted %d", s.Spawned, s.Evicted),
	}
}

// AttractionRadius reports the pointer's current reach.
func (f *Field) AttractionRadius() float64 { return f.cfg.Params.AttractionRadius }

// Motions appends the position and velocity of every live particle to dst.
func (f *Field) Motions(dst []core.Motion) []core.Motion {
	for i := 0; i < f.particles.Len(); i++ {
		p := f.particles.At(i)
		dst = append(dst, core.Motion{X: p.X, Y: p.Y, VX: p.VX, VY: p.VY})
	}
	return dst
}
