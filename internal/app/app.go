//go:build ebiten

package app

import (
	"time"

	"glimmer/internal/core"
	"glimmer/internal/render"
	"glimmer/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 260

// Game adapts a core simulation to the ebiten.Game interface. The window is
// resizable and the field always covers it at 1:1 scale.
type Game struct {
	sim     core.Sim
	screen  *render.Screen
	hud     *ui.HUD
	overlay *ui.Overlay

	paused   bool
	tickOnce bool
	seed     int64
}

// New attaches sim to a fresh canvas and seeds it.
func New(sim core.Sim, cfg *Config) *Game {
	screen := render.NewScreen(cfg.Width, cfg.Height)
	g := &Game{
		sim:     sim,
		screen:  screen,
		hud:     ui.NewHUD(sim, hudWidth, cfg.HUD),
		overlay: ui.NewOverlay(sim),
		seed:    cfg.Seed,
	}
	sim.Attach(screen)
	sim.Reset(cfg.Seed)
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()
	overPanel := g.hud.Update(g.screen.Size().W)
	if !overPanel {
		x, y := ebiten.CursorPosition()
		g.sim.SetPointer(float64(x), float64(y))
	}

	if !g.paused || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw blits the persistent canvas, then the overlay and HUD on top.
func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.Blit(screen)
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

// Layout tracks the window size. A change reallocates the canvas and
// reseeds the field for the new dimensions.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.screen.Resize(outsideWidth, outsideHeight) {
		g.sim.Resize()
	}
	s := g.screen.Size()
	return s.W, s.H
}
