package gesture

import (
	"math"
)

// Slider accumulates vertical translation into a clamped scroll offset.
//
// The thumb offset lives in [0, MaxOffset]; the derived content offset is
// the thumb offset divided by the view ratio. A new session starts from the
// offset where the previous one ended.
type Slider struct {
	session Session
	offset  float64
	old     float64
	max     float64
	ratio   float64
	thumb   float64
}

// NewSlider creates a slider without scroll range.
func NewSlider() *Slider {
	return &Slider{ratio: 1}
}

// Resize updates the slider for a viewport showing content of the given
// length. The offset is reset to zero.
func (s *Slider) Resize(viewport, content float64) {
	if viewport <= 0 || content <= 0 {
		return
	}

	s.ratio = math.Min(viewport/content, 1)
	s.thumb = viewport * s.ratio
	s.max = viewport - s.thumb
	s.offset = 0
	s.old = 0
}

// SetRange sets the maximum offset and view ratio directly.
func (s *Slider) SetRange(maxOffset, viewRatio float64) {
	if viewRatio <= 0 || viewRatio > 1 {
		viewRatio = 1
	}
	s.max = math.Max(maxOffset, 0)
	s.ratio = viewRatio
	s.offset = s.clamp(s.offset)
}

// Handle implements Handler.
func (s *Slider) Handle(e Event) {
	if e.Kind == Started && s.session.Active() {
		// a new gesture supersedes the one in progress
		s.session.Apply(Event{Kind: Completed, Cumulative: s.session.Delta()})
	}
	if !s.session.Apply(e) {
		return
	}

	switch e.Kind {
	case Started:
		s.old = s.offset
		s.offset = s.clamp(s.offset + e.Cumulative.TranslationY)
	case Updated, Completed:
		s.offset = s.clamp(s.old + e.Cumulative.TranslationY)
	}
}

func (s *Slider) clamp(v float64) float64 {
	if v > s.max {
		return s.max
	} else if v < 0 {
		return 0
	}
	return v
}

// Offset returns the thumb offset.
func (s *Slider) Offset() float64 {
	return s.offset
}

// ContentOffset returns the scroll offset of the content.
func (s *Slider) ContentOffset() float64 {
	return s.offset / s.ratio
}

// MaxOffset returns the largest thumb offset.
func (s *Slider) MaxOffset() float64 {
	return s.max
}

// ViewRatio returns viewport length divided by content length (at most 1).
func (s *Slider) ViewRatio() float64 {
	return s.ratio
}

// Thumb returns the thumb length.
func (s *Slider) Thumb() float64 {
	return s.thumb
}

// Active reports whether a slider gesture is in progress.
func (s *Slider) Active() bool {
	return s.session.Active()
}
