package ui

import "testing"

func TestPanelSlideToggle(t *testing.T) {
	s := newPanelSlide(200, true)
	if !s.Visible() || s.Update(0.1) != 0 {
		t.Fatal("shown panel should sit at offset 0")
	}
	s.Toggle()
	if s.Shown() {
		t.Fatal("toggle should hide")
	}
	mid := s.Update(slideSeconds / 2)
	if mid <= 0 || mid >= 200 {
		t.Fatalf("mid-slide offset = %f", mid)
	}
	if got := s.Update(slideSeconds); got != 200 {
		t.Fatalf("final offset = %f, want 200", got)
	}
	if s.Visible() {
		t.Fatal("fully hidden panel should not be visible")
	}
}

func TestPanelSlideReverseMidway(t *testing.T) {
	s := newPanelSlide(100, false)
	if s.Visible() {
		t.Fatal("hidden panel should start off screen")
	}
	s.Toggle()
	mid := s.Update(slideSeconds / 2)
	s.Toggle()
	if s.offset != mid {
		t.Fatalf("reversal jumped from %f to %f", mid, s.offset)
	}
	if got := s.Update(slideSeconds / 10); got <= mid {
		t.Fatalf("reversed slide should head back out, offset %f", got)
	}
	if got := s.Update(slideSeconds * 2); got != 100 {
		t.Fatalf("offset = %f, want 100", got)
	}
}
