package field

import (
	"math"
	"testing"

	"glimmer/internal/core"
)

func TestFromMapOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{
		"seed":         "99",
		"capacity":     "320",
		"spawn_chance": "0.25",
		"damping":      "0.95",
		"palette":      " Aurora ",
		"lifetime_min": "400",
		"lifetime_max": "100",
	})
	if cfg.Seed != 99 {
		t.Errorf("seed = %d, want 99", cfg.Seed)
	}
	if cfg.Params.Capacity != CapacityLimit {
		t.Errorf("capacity = %d, want clamp to %d", cfg.Params.Capacity, CapacityLimit)
	}
	if cfg.Params.SpawnChance != 0.25 {
		t.Errorf("spawn chance = %f, want 0.25", cfg.Params.SpawnChance)
	}
	if cfg.Params.Damping != 0.95 {
		t.Errorf("damping = %f, want 0.95", cfg.Params.Damping)
	}
	if cfg.Params.Palette != PaletteAurora {
		t.Errorf("palette = %q, want %q", cfg.Params.Palette, PaletteAurora)
	}
	if cfg.Params.LifetimeMax != 400 {
		t.Errorf("inverted lifetime range not repaired: max = %d", cfg.Params.LifetimeMax)
	}
}

func TestPopulationLimits(t *testing.T) {
	cfg := FromMap(map[string]string{
		"capacity":     "500",
		"max_initial":  "400",
		"spawn_chance": "1",
	})
	if cfg.Params.Capacity != CapacityLimit || cfg.Params.MaxInitial != InitialLimit {
		t.Fatalf("capacity/max_initial = %d/%d, want %d/%d",
			cfg.Params.Capacity, cfg.Params.MaxInitial, CapacityLimit, InitialLimit)
	}

	raw := DefaultConfig()
	raw.Params.Capacity = 1000
	raw.Params.MaxInitial = 1000
	f := New(raw)
	f.Attach(newRecordingSurface(4000, 4000))
	if f.Len() != InitialLimit {
		t.Fatalf("initial population = %d, want %d", f.Len(), InitialLimit)
	}
	f.SetPointer(2000, 2000)
	for i := 0; i < 400; i++ {
		f.SpawnAt(2000, 2000)
		f.Step()
	}
	if f.Len() > CapacityLimit || f.Capacity() != CapacityLimit {
		t.Fatalf("len/cap = %d/%d, want at most %d", f.Len(), f.Capacity(), CapacityLimit)
	}
}

func TestFromMapRejectsInvalid(t *testing.T) {
	def := DefaultConfig()
	cfg := FromMap(map[string]string{
		"capacity":     "0",
		"spawn_chance": "1.5",
		"damping":      "abc",
		"palette":      "neon",
		"margin":       "-3",
	})
	if cfg.Params.Capacity != def.Params.Capacity {
		t.Errorf("capacity = %d, want default %d", cfg.Params.Capacity, def.Params.Capacity)
	}
	if cfg.Params.SpawnChance != def.Params.SpawnChance {
		t.Errorf("spawn chance = %f, want default", cfg.Params.SpawnChance)
	}
	if cfg.Params.Damping != def.Params.Damping {
		t.Errorf("damping = %f, want default", cfg.Params.Damping)
	}
	if cfg.Params.Palette != PaletteNewYear {
		t.Errorf("palette = %q, want default", cfg.Params.Palette)
	}
	if cfg.Params.Margin != 50 {
		t.Errorf("margin = %f, want 50", cfg.Params.Margin)
	}
	if FromMap(nil) != def {
		t.Error("nil map should return defaults")
	}
}

func TestAlphaEnvelope(t *testing.T) {
	params := DefaultParams()
	p := Particle{Opacity: 0.6, MaxLife: 300}

	cases := []struct {
		age  int
		want float64
	}{
		{0, 0},
		{15, 0.3},
		{30, 0.6},
		{150, 0.6},
		{210, 0.6},
		{255, 0.3},
		{300, 0},
		{320, 0},
	}
	for _, tc := range cases {
		p.Age = tc.age
		got := p.Alpha(&params)
		if math.Abs(got-tc.want) > 1e-5 {
			t.Errorf("age %d alpha = %f, want %f", tc.age, got, tc.want)
		}
	}

	for age := 0; age <= 400; age++ {
		p.Age = age
		got := p.Alpha(&params)
		if got < 0 || got > p.Opacity {
			t.Fatalf("age %d alpha %f outside [0,%f]", age, got, p.Opacity)
		}
	}
}

func TestFadeDegenerateSettings(t *testing.T) {
	if got := fadeIn(0, 0); got != 1 {
		t.Errorf("fadeIn with zero frames = %f, want 1", got)
	}
	if got := fadeOut(0.5, 1); got != 1 {
		t.Errorf("fadeOut before start = %f, want 1", got)
	}
	if got := fadeOut(1.2, 1); got != 0 {
		t.Errorf("fadeOut past end with start=1 = %f, want 0", got)
	}
	p := Particle{Opacity: 0.5}
	params := DefaultParams()
	if got := p.Alpha(&params); got != 0 {
		t.Errorf("zero max life alpha = %f, want 0", got)
	}
}

func TestParameterSetters(t *testing.T) {
	f, _ := newAttachedField(t, 1920, 1080)

	if !f.SetFloatParameter("spawn_chance", 2) {
		t.Fatal("spawn_chance should be adjustable")
	}
	if got := f.Config().Params.SpawnChance; got != 1 {
		t.Fatalf("spawn chance = %f, want clamp to 1", got)
	}
	if f.SetFloatParameter("unknown", 1) {
		t.Fatal("unknown key should be rejected")
	}
	if f.SetFloatParameter("damping", math.NaN()) {
		t.Fatal("NaN should be rejected")
	}
	if f.SetIntParameter("spawn_chance", 1) {
		t.Fatal("type mismatch should be rejected")
	}

	if !f.SetIntParameter("capacity", 100) {
		t.Fatal("capacity should be adjustable")
	}
	if f.Capacity() != 100 || f.Len() != 100 {
		t.Fatalf("capacity/len = %d/%d, want 100/100", f.Capacity(), f.Len())
	}

	if !f.SetIntParameter("capacity", 2000) {
		t.Fatal("capacity should be adjustable")
	}
	if f.Capacity() != CapacityLimit {
		t.Fatalf("capacity = %d, want clamp to %d", f.Capacity(), CapacityLimit)
	}
	for i := 0; i < 300; i++ {
		f.SpawnAt(400, 300)
	}
	if f.Len() != CapacityLimit {
		t.Fatalf("len after spawns = %d, want %d", f.Len(), CapacityLimit)
	}

	if !f.SetIntParameter("max_initial", 40) {
		t.Fatal("max_initial should be adjustable")
	}
	if f.Len() != 40 {
		t.Fatalf("population after max_initial change = %d, want 40", f.Len())
	}
}

func TestParametersSnapshot(t *testing.T) {
	f, _ := newAttachedField(t, 800, 600)
	snap := f.Parameters()
	pop, ok := snap.Lookup("population")
	if !ok || pop.Value != "60" {
		t.Fatalf("population param = %+v, ok=%v", pop, ok)
	}
	for _, ctrl := range f.ParameterControls() {
		if _, ok := snap.Lookup(ctrl.Key); !ok {
			t.Errorf("control %q missing from snapshot", ctrl.Key)
		}
	}
}

func TestPresetsRegistered(t *testing.T) {
	for _, name := range []string{PresetNewYear, PresetAurora, PresetEmbers} {
		factory, ok := core.Sims()[name]
		if !ok {
			t.Fatalf("preset %q not registered", name)
		}
		sim := factory(map[string]string{"spawn_chance": "0"})
		if sim.Name() != name {
			t.Errorf("sim name = %q, want %q", sim.Name(), name)
		}
		f, ok := sim.(*Field)
		if !ok {
			t.Fatalf("preset %q is %T, want *Field", name, sim)
		}
		if f.Config().Params.SpawnChance != 0 {
			t.Errorf("preset %q ignored overrides", name)
		}
	}
	if got := PresetConfig(PresetEmbers).Params.Palette; got != PaletteEmbers {
		t.Errorf("embers palette = %q", got)
	}
}

func TestDisplayProviders(t *testing.T) {
	f, _ := newAttachedField(t, 800, 600)
	lines := f.StatusLines()
	if len(lines) != 3 || lines[0] != "particles 60/200" {
		t.Fatalf("status lines = %q", lines)
	}
	motions := f.Motions(nil)
	if len(motions) != f.Len() {
		t.Fatalf("motions = %d, want %d", len(motions), f.Len())
	}
	first := f.Particles()[0]
	if motions[0].X != first.X || motions[0].VY != first.VY {
		t.Fatalf("motion %+v does not match particle %+v", motions[0], first)
	}
	f.SetFloatParameter("attraction_radius", 125)
	if f.AttractionRadius() != 125 {
		t.Fatalf("attraction radius = %f", f.AttractionRadius())
	}
}
