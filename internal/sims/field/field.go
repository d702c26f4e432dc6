package field

import (
	"math"

	"glimmer/internal/core"
	prng "glimmer/pkg/core"
)

// Stats counts lifecycle events since the last reseed.
type Stats struct {
	Frames      int
	Expired     int
	OutOfBounds int
	Spawned     int
	Evicted     int
}

// Recycled returns the number of in-place replacements.
func (s Stats) Recycled() int { return s.Expired + s.OutOfBounds }

// Field is an ambient particle field rendered onto a host surface. All state
// that the host drives (time, pointer, surface) lives on the Field so several
// instances can run side by side.
type Field struct {
	name string
	cfg  Config

	palette   []core.RGB
	particles *arena
	rng       *prng.RNG

	surface core.Surface
	size    core.Size

	time     float64
	pointerX float64
	pointerY float64

	stats Stats
}

// New returns a field using the provided configuration. The field stays
// empty until a surface is attached.
func New(cfg Config) *Field {
	cfg.Params.normalize()
	return &Field{
		name:      PresetNewYear,
		cfg:       cfg,
		palette:   PaletteColors(cfg.Params.Palette),
		particles: newArena(cfg.Params.Capacity),
		rng:       prng.NewRNG(cfg.Seed),
	}
}

// NewNamed returns a field registered under a preset name.
func NewNamed(name string, cfg Config) *Field {
	f := New(cfg)
	if name != "" {
		f.name = name
	}
	return f
}

// Name returns the simulation identifier.
func (f *Field) Name() string { return f.name }

// Size reports the surface dimensions seen by the last Resize.
func (f *Field) Size() core.Size { return f.size }

// Config returns the active configuration.
func (f *Field) Config() Config { return f.cfg }

// Len returns the current population.
func (f *Field) Len() int { return f.particles.Len() }

// Capacity returns the hard population cap.
func (f *Field) Capacity() int { return f.particles.Cap() }

// Time returns the elapsed pseudo-time.
func (f *Field) Time() float64 { return f.time }

// Stats returns the lifecycle counters.
func (f *Field) Stats() Stats { return f.stats }

// Pointer returns the last pointer position written by the host.
func (f *Field) Pointer() (float64, float64) { return f.pointerX, f.pointerY }

// Particles returns a copy of the live particles in insertion order.
func (f *Field) Particles() []Particle {
	return f.particles.AppendTo(make([]Particle, 0, f.particles.Len()))
}

// Attach sets the drawing surface and seeds the field from its size.
func (f *Field) Attach(s core.Surface) {
	f.surface = s
	f.Resize()
}

// Detach releases the surface. Step becomes a no-op until a new surface is
// attached.
func (f *Field) Detach() {
	f.surface = nil
}

// SetPointer records the latest pointer position in surface pixels.
// Non-finite coordinates are ignored.
func (f *Field) SetPointer(x, y float64) {
	if !finite(x) || !finite(y) {
		return
	}
	f.pointerX, f.pointerY = x, y
}

// Reset reseeds the random source, rewinds time and counters, and reseeds
// the field. A zero seed reuses the configured seed.
func (f *Field) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = f.cfg.Seed
	}
	f.rng = prng.NewRNG(effective)
	f.time = 0
	f.stats = Stats{}
	f.Resize()
}

// Resize discards the current particles and refills the field for the
// attached surface's dimensions. It is a no-op without a surface.
func (f *Field) Resize() {
	if f.surface == nil {
		return
	}
	f.size = f.surface.Size()
	f.particles.Reset()
	n := f.InitialPopulation(f.size)
	for i := 0; i < n; i++ {
		f.particles.Push(f.create(math.NaN(), math.NaN()))
	}
}

// InitialPopulation returns min(MaxInitial, floor(area/AreaPerParticle)),
// bounded by the capacity.
func (f *Field) InitialPopulation(size core.Size) int {
	p := &f.cfg.Params
	n := size.Area() / p.AreaPerParticle
	if n > p.MaxInitial {
		n = p.MaxInitial
	}
	if n > f.particles.Cap() {
		n = f.particles.Cap()
	}
	if n < 0 {
		n = 0
	}
	return n
}

// Step runs one frame: fade the surface, advance and draw every particle,
// recycle expired or escaped ones in place, then maybe spawn one near the
// pointer.
func (f *Field) Step() {
	if f.surface == nil || f.size.Empty() {
		return
	}
	p := &f.cfg.Params
	f.time += p.TimeStep
	f.stats.Frames++

	f.surface.Fade(p.TrailColor, p.TrailAlpha)

	for i := 0; i < f.particles.Len(); i++ {
		pt := f.particles.At(i)
		f.advance(pt)
		f.draw(pt)
		switch {
		case pt.Age > pt.MaxLife:
			f.stats.Expired++
			f.particles.Replace(i, f.create(math.NaN(), math.NaN()))
		case f.escaped(pt):
			f.stats.OutOfBounds++
			f.particles.Replace(i, f.create(math.NaN(), math.NaN()))
		}
	}

	if f.rng.Chance(p.SpawnChance) {
		f.SpawnAt(
			f.pointerX+f.rng.Jitter(p.SpawnJitter),
			f.pointerY+f.rng.Jitter(p.SpawnJitter),
		)
	}
}

// SpawnAt appends a new particle at (x, y). When the field is at capacity the
// oldest inserted particle is evicted first.
func (f *Field) SpawnAt(x, y float64) {
	if f.surface == nil || f.size.Empty() || !finite(x) || !finite(y) {
		return
	}
	f.stats.Spawned++
	if f.particles.Push(f.create(x, y)) {
		f.stats.Evicted++
	}
}

// create builds a particle at (x, y), or at a random position when either
// coordinate is NaN.
func (f *Field) create(x, y float64) Particle {
	p := &f.cfg.Params
	if math.IsNaN(x) || math.IsNaN(y) {
		x = f.rng.Float64() * float64(f.size.W)
		y = f.rng.Float64() * float64(f.size.H)
	}
	kind := Kind(f.rng.IntN(int(kindCount)))
	var size float64
	if kind == KindPoint {
		size = f.rng.Range(p.PointSizeMin, p.PointSizeMax)
	} else {
		size = f.rng.Range(p.LargeSizeMin, p.LargeSizeMax)
	}
	return Particle{
		X:       x,
		Y:       y,
		VX:      f.rng.Jitter(p.VelocityJitter),
		VY:      f.rng.Jitter(p.VelocityJitter) - p.UpwardBias,
		Size:    size,
		Opacity: f.rng.Range(p.OpacityMin, p.OpacityMax),
		Color:   f.palette[f.rng.IntN(len(f.palette))],
		Kind:    kind,
		Age:     0,
		MaxLife: f.rng.IntRange(p.LifetimeMin, p.LifetimeMax),
	}
}

// advance ages the particle and integrates one frame of motion.
func (f *Field) advance(pt *Particle) {
	p := &f.cfg.Params
	t := f.time
	pt.Age++

	noise := math.Sin(t+pt.X*p.NoiseScale) * math.Cos(t+pt.Y*p.NoiseScale)
	pt.VX += noise * p.NoiseGain
	pt.VY += math.Sin(t*p.OscillationRate) * p.OscillationGain

	ax, ay := attraction(pt.X, pt.Y, f.pointerX, f.pointerY, p)
	pt.VX += ax
	pt.VY += ay

	pt.X += pt.VX
	pt.Y += pt.VY
	pt.VX *= p.Damping
	pt.VY *= p.Damping
}

// attraction returns the velocity change pulling a particle at (x, y) toward
// the pointer at (mx, my). Particles outside the radius, or exactly on the
// pointer, are unaffected.
func attraction(x, y, mx, my float64, p *Params) (float64, float64) {
	dx := mx - x
	dy := my - y
	dist := math.Hypot(dx, dy)
	if dist == 0 || dist >= p.AttractionRadius || !finite(dist) {
		return 0, 0
	}
	force := (p.AttractionRadius - dist) / p.AttractionRadius * p.AttractionStrength
	return dx * force * p.AttractionScale, dy * force * p.AttractionScale
}

// escaped reports whether the particle left the surface by more than the
// margin, or its position stopped being finite.
func (f *Field) escaped(pt *Particle) bool {
	if !finite(pt.X) || !finite(pt.Y) {
		return true
	}
	m := f.cfg.Params.Margin
	return pt.X < -m || pt.X > float64(f.size.W)+m ||
		pt.Y < -m || pt.Y > float64(f.size.H)+m
}

func (f *Field) draw(pt *Particle) {
	p := &f.cfg.Params
	alpha := pt.Alpha(p)
	if alpha <= 0 {
		return
	}
	t := f.time
	switch pt.Kind {
	case KindPoint:
		twinkle := math.Sin(t*p.TwinkleRate+pt.X)*p.TwinkleDepth + (1 - p.TwinkleDepth)
		f.surface.FillCircle(pt.X, pt.Y, pt.Size, pt.Color, alpha*twinkle)
	case KindGlow:
		f.surface.GlowDisc(pt.X, pt.Y, pt.Size*p.GlowRadius, pt.Color, alpha)
	case KindSparkle:
		half := pt.Size * ((1 - p.PulseDepth) + math.Sin(t*p.PulseRate+pt.Y)*p.PulseDepth)
		f.surface.StrokeCross(pt.X, pt.Y, half, pt.Color, alpha)
	}
}
