package ui

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// slideSeconds is how long the HUD takes to slide in or out.
const slideSeconds = 0.25

// panelSlide animates a panel between hidden (offset = width) and shown
// (offset = 0), measured from the right edge of the window.
type panelSlide struct {
	width  float32
	offset float32
	shown  bool
	tween  *gween.Tween
}

func newPanelSlide(width int, shown bool) *panelSlide {
	s := &panelSlide{width: float32(width), shown: shown}
	if !shown {
		s.offset = s.width
	}
	return s
}

// Toggle reverses the slide direction from wherever the panel currently is.
func (s *panelSlide) Toggle() {
	s.shown = !s.shown
	to := s.width
	fn := ease.InCubic
	if s.shown {
		to = 0
		fn = ease.OutCubic
	}
	s.tween = gween.New(s.offset, to, slideSeconds, fn)
}

// Update advances the tween by dt seconds and returns the current offset.
func (s *panelSlide) Update(dt float32) float32 {
	if s.tween == nil {
		return s.offset
	}
	v, done := s.tween.Update(dt)
	s.offset = v
	if done {
		s.tween = nil
	}
	return s.offset
}

// Visible reports whether any part of the panel is on screen.
func (s *panelSlide) Visible() bool { return s.offset < s.width }

// Shown reports the target state.
func (s *panelSlide) Shown() bool { return s.shown }
