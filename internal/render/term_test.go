package render

import (
	"testing"

	"glimmer/internal/core"

	"github.com/gdamore/tcell/v2"
)

func newSimTerminal(t *testing.T, cols, rows int) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(cols, rows)
	return NewTerminal(screen, 0, 0), screen
}

func TestTerminalSize(t *testing.T) {
	term, screen := newSimTerminal(t, 10, 5)
	if got := term.Size(); got != (core.Size{W: 80, H: 80}) {
		t.Fatalf("size = %+v, want 80x80", got)
	}
	screen.SetSize(12, 5)
	if !term.Sync() {
		t.Fatal("sync should report a change")
	}
	if term.Sync() {
		t.Fatal("second sync should be a no-op")
	}
	if got := term.Size().W; got != 96 {
		t.Fatalf("width = %d, want 96", got)
	}
}

func TestTerminalFillCircleLightsCell(t *testing.T) {
	term, _ := newSimTerminal(t, 10, 5)
	term.FillCircle(12, 20, 2, white, 1)
	glyph, fg := term.Glyph(1, 1)
	if glyph != '✦' {
		t.Fatalf("glyph = %q, want bright star", glyph)
	}
	if fg == tcell.ColorDefault {
		t.Fatal("lit cell should carry a colour")
	}
	if g, _ := term.Glyph(0, 0); g != ' ' {
		t.Fatalf("unlit glyph = %q", g)
	}
	if g, _ := term.Glyph(-1, 40); g != ' ' {
		t.Fatalf("out of range glyph = %q", g)
	}
}

func TestTerminalFadeDecays(t *testing.T) {
	term, _ := newSimTerminal(t, 4, 4)
	term.FillCircle(4, 8, 1, white, 1)
	for i := 0; i < 60; i++ {
		term.Fade(core.RGB{R: 10, G: 10, B: 15}, 0.1)
	}
	if g, _ := term.Glyph(0, 0); g != ' ' {
		t.Fatalf("glyph after decay = %q, want blank", g)
	}
}

func TestTerminalGlowSpreads(t *testing.T) {
	term, _ := newSimTerminal(t, 10, 5)
	x, y := term.CellToPixel(5, 2)
	term.GlowDisc(x, y, 20, white, 1)
	if g, _ := term.Glyph(5, 2); g != '✦' {
		t.Fatalf("center glyph = %q", g)
	}
	if g, _ := term.Glyph(6, 2); g == ' ' {
		t.Fatal("neighbour cell should receive glow")
	}
	if g, _ := term.Glyph(9, 2); g != ' ' {
		t.Fatalf("distant cell glyph = %q, want blank", g)
	}
}

func TestTerminalFlush(t *testing.T) {
	term, screen := newSimTerminal(t, 3, 2)
	term.Fade(core.RGB{R: 10, G: 10, B: 15}, 0.1)
	term.FillCircle(12, 8, 1, white, 1)
	term.Flush()
	cells, w, h := screen.GetContents()
	if w != 3 || h != 2 {
		t.Fatalf("contents = %dx%d", w, h)
	}
	if len(cells[1].Runes) == 0 || cells[1].Runes[0] != '✦' {
		t.Fatalf("cell (1,0) = %+v", cells[1])
	}
}
