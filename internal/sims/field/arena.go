package field

// arena is a fixed-capacity ring of particles kept in insertion order.
// Logical index 0 is the oldest inserted slot. Replace overwrites a slot
// without changing its position in that order; Push appends at the tail and
// evicts the head when full.
type arena struct {
	slots []Particle
	head  int
	n     int
}

func newArena(capacity int) *arena {
	if capacity < 1 {
		capacity = 1
	}
	return &arena{slots: make([]Particle, capacity)}
}

// Len returns the number of live particles.
func (a *arena) Len() int { return a.n }

// Cap returns the hard upper bound.
func (a *arena) Cap() int { return len(a.slots) }

func (a *arena) slot(i int) int {
	return (a.head + i) % len(a.slots)
}

// At returns the particle at logical index i. i must be in [0, Len()).
func (a *arena) At(i int) *Particle {
	return &a.slots[a.slot(i)]
}

// Replace overwrites the particle at logical index i in place.
func (a *arena) Replace(i int, p Particle) {
	if i < 0 || i >= a.n {
		return
	}
	a.slots[a.slot(i)] = p
}

// Push appends p, evicting the oldest particle first when the arena is full.
// It reports whether an eviction happened.
func (a *arena) Push(p Particle) bool {
	if a.n == len(a.slots) {
		a.slots[a.head] = p
		a.head = (a.head + 1) % len(a.slots)
		return true
	}
	a.slots[a.slot(a.n)] = p
	a.n++
	return false
}

// Reset drops every particle.
func (a *arena) Reset() {
	a.head = 0
	a.n = 0
}

// Resize changes the capacity, keeping the newest particles when shrinking.
func (a *arena) Resize(capacity int) {
	if capacity < 1 {
		capacity = 1
	}
	if capacity == len(a.slots) {
		return
	}
	keep := a.n
	if keep > capacity {
		keep = capacity
	}
	next := make([]Particle, capacity)
	for i := 0; i < keep; i++ {
		next[i] = *a.At(a.n - keep + i)
	}
	a.slots = next
	a.head = 0
	a.n = keep
}

// AppendTo appends the live particles to dst in insertion order.
func (a *arena) AppendTo(dst []Particle) []Particle {
	for i := 0; i < a.n; i++ {
		dst = append(dst, *a.At(i))
	}
	return dst
}
