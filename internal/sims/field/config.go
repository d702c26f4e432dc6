package field

import (
	"strconv"
	"strings"

	"glimmer/internal/core"
)

// Params holds every tunable constant of the particle field.
type Params struct {
	// Population.
	MaxInitial      int
	AreaPerParticle int
	Capacity        int
	Margin          float64

	// Creation ranges.
	VelocityJitter float64
	UpwardBias     float64
	PointSizeMin   float64
	PointSizeMax   float64
	LargeSizeMin   float64
	LargeSizeMax   float64
	OpacityMin     float64
	OpacityMax     float64
	LifetimeMin    int
	LifetimeMax    int
	Palette        string

	// Kinematics.
	TimeStep           float64
	NoiseScale         float64
	NoiseGain          float64
	OscillationRate    float64
	OscillationGain    float64
	AttractionRadius   float64
	AttractionStrength float64
	AttractionScale    float64
	Damping            float64

	// Appearance.
	FadeInFrames int
	FadeOutStart float64
	TwinkleRate  float64
	TwinkleDepth float64
	PulseRate    float64
	PulseDepth   float64
	GlowRadius   float64
	TrailColor   core.RGB
	TrailAlpha   float64

	// Pointer spawning.
	SpawnChance float64
	SpawnJitter float64
}

// Config controls a particle field instance.
type Config struct {
	Seed   int64
	Params Params
}

// DefaultParams returns the tuning of the original greeting-page field.
func DefaultParams() Params {
	return Params{
		MaxInitial:      150,
		AreaPerParticle: 8000,
		Capacity:        200,
		Margin:          50,

		VelocityJitter: 0.25,
		UpwardBias:     0.2,
		PointSizeMin:   1,
		PointSizeMax:   3,
		LargeSizeMin:   2,
		LargeSizeMax:   6,
		OpacityMin:     0.3,
		OpacityMax:     0.8,
		LifetimeMin:    200,
		LifetimeMax:    500,
		Palette:        PaletteNewYear,

		TimeStep:           0.01,
		NoiseScale:         0.01,
		NoiseGain:          0.02,
		OscillationRate:    0.5,
		OscillationGain:    0.01,
		AttractionRadius:   200,
		AttractionStrength: 0.02,
		AttractionScale:    0.01,
		Damping:            0.99,

		FadeInFrames: 30,
		FadeOutStart: 0.7,
		TwinkleRate:  3,
		TwinkleDepth: 0.3,
		PulseRate:    5,
		PulseDepth:   0.2,
		GlowRadius:   3,
		TrailColor:   core.RGB{R: 10, G: 10, B: 15},
		TrailAlpha:   0.1,

		SpawnChance: 0.1,
		SpawnJitter: 50,
	}
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Seed: 2025, Params: DefaultParams()}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	return ApplyMap(DefaultConfig(), cfg)
}

// Population limits. Overrides above them are clamped.
const (
	CapacityLimit = 200
	InitialLimit  = 150
)

// ApplyMap overlays string overrides onto base.
func ApplyMap(base Config, cfg map[string]string) Config {
	c := base
	if cfg == nil {
		return c
	}
	p := &c.Params
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}

	ints := []struct {
		key string
		dst *int
		min int
	}{
		{"max_initial", &p.MaxInitial, 0},
		{"area_per_particle", &p.AreaPerParticle, 1},
		{"capacity", &p.Capacity, 1},
		{"lifetime_min", &p.LifetimeMin, 1},
		{"lifetime_max", &p.LifetimeMax, 1},
		{"fade_in_frames", &p.FadeInFrames, 0},
	}
	for _, entry := range ints {
		v, ok := cfg[entry.key]
		if !ok {
			continue
		}
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= entry.min {
			*entry.dst = parsed
		}
	}

	floats := []struct {
		key      string
		dst      *float64
		min, max float64
	}{
		{"margin", &p.Margin, 0, 1e6},
		{"velocity_jitter", &p.VelocityJitter, 0, 100},
		{"upward_bias", &p.UpwardBias, -100, 100},
		{"point_size_min", &p.PointSizeMin, 0.1, 1000},
		{"point_size_max", &p.PointSizeMax, 0.1, 1000},
		{"large_size_min", &p.LargeSizeMin, 0.1, 1000},
		{"large_size_max", &p.LargeSizeMax, 0.1, 1000},
		{"opacity_min", &p.OpacityMin, 0, 1},
		{"opacity_max", &p.OpacityMax, 0, 1},
		{"time_step", &p.TimeStep, 0, 10},
		{"noise_scale", &p.NoiseScale, 0, 10},
		{"noise_gain", &p.NoiseGain, 0, 10},
		{"oscillation_rate", &p.OscillationRate, 0, 100},
		{"oscillation_gain", &p.OscillationGain, 0, 10},
		{"attraction_radius", &p.AttractionRadius, 0, 1e5},
		{"attraction_strength", &p.AttractionStrength, -10, 10},
		{"attraction_scale", &p.AttractionScale, -10, 10},
		{"damping", &p.Damping, 0, 1},
		{"fade_out_start", &p.FadeOutStart, 0, 1},
		{"twinkle_rate", &p.TwinkleRate, 0, 100},
		{"twinkle_depth", &p.TwinkleDepth, 0, 1},
		{"pulse_rate", &p.PulseRate, 0, 100},
		{"pulse_depth", &p.PulseDepth, 0, 1},
		{"glow_radius", &p.GlowRadius, 0, 100},
		{"trail_alpha", &p.TrailAlpha, 0, 1},
		{"spawn_chance", &p.SpawnChance, 0, 1},
		{"spawn_jitter", &p.SpawnJitter, 0, 1e5},
	}
	for _, entry := range floats {
		v, ok := cfg[entry.key]
		if !ok {
			continue
		}
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= entry.min && parsed <= entry.max {
			*entry.dst = parsed
		}
	}

	if v, ok := cfg["palette"]; ok {
		name := strings.ToLower(strings.TrimSpace(v))
		if _, known := palettes[name]; known {
			p.Palette = name
		}
	}

	p.normalize()
	return c
}

// normalize repairs inverted ranges and holds the population sizes within
// CapacityLimit and InitialLimit.
func (p *Params) normalize() {
	if p.PointSizeMax < p.PointSizeMin {
		p.PointSizeMax = p.PointSizeMin
	}
	if p.LargeSizeMax < p.LargeSizeMin {
		p.LargeSizeMax = p.LargeSizeMin
	}
	if p.OpacityMax < p.OpacityMin {
		p.OpacityMax = p.OpacityMin
	}
	if p.LifetimeMax < p.LifetimeMin {
		p.LifetimeMax = p.LifetimeMin
	}
	p.Capacity = clampInt(p.Capacity, 1, CapacityLimit)
	p.MaxInitial = clampInt(p.MaxInitial, 0, InitialLimit)
	if p.AreaPerParticle < 1 {
		p.AreaPerParticle = 1
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
