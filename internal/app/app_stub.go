//go:build !ebiten

package app

import (
	"errors"

	"glimmer/internal/core"
)

// ErrNoGUI is returned by every frame callback of the headless Game.
var ErrNoGUI = errors.New("app: windowed host needs the 'ebiten' build tag")

// Game keeps the windowed host's API in headless builds. It never draws.
type Game struct {
	sim core.Sim
}

// New wraps sim without attaching it to anything.
func New(sim core.Sim, _ *Config) *Game { return &Game{sim: sim} }

// Reset forwards to the sim so callers can still reseed it.
func (g *Game) Reset(seed int64) { g.sim.Reset(seed) }

// Update reports ErrNoGUI.
func (g *Game) Update() error { return ErrNoGUI }

// Draw does nothing.
func (g *Game) Draw(any) {}

// Layout reports an empty screen.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
