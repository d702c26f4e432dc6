package field

import "glimmer/internal/core"

// Preset names registered with core.
const (
	PresetNewYear = "newyear"
	PresetAurora  = "aurora"
	PresetEmbers  = "embers"
)

// PresetConfig returns the base configuration for a preset. Unknown names
// return the default configuration.
func PresetConfig(name string) Config {
	cfg := DefaultConfig()
	switch name {
	case PresetAurora:
		cfg.Params.Palette = PaletteAurora
		cfg.Params.UpwardBias = 0.05
		cfg.Params.TimeStep = 0.006
		cfg.Params.NoiseGain = 0.03
		cfg.Params.LifetimeMin = 320
		cfg.Params.LifetimeMax = 720
		cfg.Params.TrailAlpha = 0.06
	case PresetEmbers:
		cfg.Params.Palette = PaletteEmbers
		cfg.Params.UpwardBias = 0.6
		cfg.Params.SpawnChance = 0.35
		cfg.Params.LifetimeMin = 120
		cfg.Params.LifetimeMax = 300
		cfg.Params.TrailAlpha = 0.15
	}
	return cfg
}

func init() {
	for _, name := range []string{PresetNewYear, PresetAurora, PresetEmbers} {
		name := name
		core.Register(name, func(cfg map[string]string) core.Sim {
			return NewNamed(name, ApplyMap(PresetConfig(name), cfg))
		})
	}
}
