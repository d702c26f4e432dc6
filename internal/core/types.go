package core

import "sort"

// Size describes the pixel dimensions of a drawing surface.
type Size struct {
	W int
	H int
}

// Empty reports whether the size covers no pixels.
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }

// Area returns W*H, or zero for empty sizes.
func (s Size) Area() int {
	if s.Empty() {
		return 0
	}
	return s.W * s.H
}

// Sim defines the contract a host-driven ambient simulation must implement.
// Hosts call every method from a single goroutine.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Attach(s Surface)
	Detach()
	Resize()
	SetPointer(x, y float64)
	Step()
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names returns the registered simulation names in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Motion is a sampled position and velocity, used by debug overlays.
type Motion struct {
	X, Y   float64
	VX, VY float64
}
