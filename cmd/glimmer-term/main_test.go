package main

import (
	"testing"

	"glimmer/internal/core"
	"glimmer/internal/render"

	"github.com/gdamore/tcell/v2"
)

type recordingSim struct {
	resets   []int64
	resizes  int
	px, py   float64
	attached core.Surface
}

func (s *recordingSim) Name() string             { return "recording" }
func (s *recordingSim) Size() core.Size          { return core.Size{} }
func (s *recordingSim) Reset(seed int64)         { s.resets = append(s.resets, seed) }
func (s *recordingSim) Attach(surf core.Surface) { s.attached = surf }
func (s *recordingSim) Detach()                  { s.attached = nil }
func (s *recordingSim) Resize()                  { s.resizes++ }
func (s *recordingSim) SetPointer(x, y float64)  { s.px, s.py = x, y }
func (s *recordingSim) Step()                    {}

func newTestHost(t *testing.T) (*termHost, *recordingSim, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(20, 10)
	sim := &recordingSim{}
	return &termHost{sim: sim, term: render.NewTerminal(screen, 0, 0), seed: 5}, sim, screen
}

func TestTermHostMouseSetsPointer(t *testing.T) {
	h, sim, _ := newTestHost(t)
	h.handle(tcell.NewEventMouse(3, 2, tcell.ButtonNone, tcell.ModNone))
	if sim.px != 28 || sim.py != 40 {
		t.Fatalf("pointer = (%f,%f), want cell center (28,40)", sim.px, sim.py)
	}
}

func TestTermHostResize(t *testing.T) {
	h, sim, screen := newTestHost(t)
	screen.SetSize(30, 10)
	h.handle(tcell.NewEventResize(30, 10))
	if sim.resizes != 1 {
		t.Fatalf("resizes = %d, want 1", sim.resizes)
	}
	h.handle(tcell.NewEventResize(30, 10))
	if sim.resizes != 1 {
		t.Fatal("unchanged size should not reseed")
	}
}

func TestTermHostKeys(t *testing.T) {
	h, sim, _ := newTestHost(t)
	h.handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	if !h.paused {
		t.Fatal("space should pause")
	}
	h.handle(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone))
	if !h.tickOnce {
		t.Fatal("n should request a single step")
	}
	h.handle(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	if len(sim.resets) != 1 || sim.resets[0] != 5 {
		t.Fatalf("resets = %v, want [5]", sim.resets)
	}
	h.handle(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if h.paused {
		t.Fatal("enter should resume")
	}
	if !h.handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Fatal("q should quit")
	}
	if !h.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("escape should quit")
	}
}
