package core

// Grid stores a 2D grid of cell values in row-major order.
type Grid[T any] struct {
	W, H int
	data []T
}

// NewGrid allocates a grid with the given dimensions. Non-positive
// dimensions produce an empty grid.
func NewGrid[T any](w, h int) *Grid[T] {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Grid[T]{W: w, H: h, data: make([]T, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid[T]) Index(x, y int) int { return y*g.W + x }

// In reports whether (x, y) lies inside the grid.
func (g *Grid[T]) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// At returns a pointer to the cell at (x, y), or nil when out of range.
func (g *Grid[T]) At(x, y int) *T {
	if !g.In(x, y) {
		return nil
	}
	return &g.data[g.Index(x, y)]
}

// Resize reallocates the grid when the dimensions change. Contents are
// cleared either way.
func (g *Grid[T]) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if w != g.W || h != g.H {
		g.W, g.H = w, h
		g.data = make([]T, w*h)
		return
	}
	g.Clear()
}

// Clear resets every cell to the zero value.
func (g *Grid[T]) Clear() {
	var zero T
	for i := range g.data {
		g.data[i] = zero
	}
}
