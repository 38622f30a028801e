// Package gesture turns pointer input into manipulation sessions.
//
// A Recognizer consumes raw pointer samples and emits Started, Updated and
// Completed events that carry cumulative values relative to the start of
// the session. Consumers such as a Slider or a manipulable image handle
// those events; every event is computed from the absolute cumulative
// values, never from the previous event.
package gesture

import (
	"fmt"
)

// Kind is the type of a manipulation event.
type Kind int

const (
	Started Kind = iota
	Updated
	Completed
)

func (k Kind) String() string {
	switch k {
	case Started:
		return "started"
	case Updated:
		return "updated"
	case Completed:
		return "completed"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Delta holds the cumulative values of a manipulation.
// Rotation is given in degrees.
type Delta struct {
	TranslationX float64
	TranslationY float64
	Scale        float64
	Rotation     float64
}

// Neutral is the delta of a manipulation that did not change anything.
var Neutral = Delta{Scale: 1}

// Event is emitted by a Recognizer.
type Event struct {
	Kind       Kind
	Cumulative Delta
}

// Handler receives manipulation events.
type Handler interface {
	Handle(e Event)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(e Event)

// Handle calls f(e).
func (f HandlerFunc) Handle(e Event) {
	f(e)
}

// State of a Session.
type State int

const (
	Idle State = iota
	Active
)

// Session tracks the lifecycle of one manipulation:
// Idle → Started → Updated* → Completed → Idle.
type Session struct {
	state   State
	current Delta
	updates int
}

// Apply advances the session with the given event.
// It returns false and leaves the session unchanged if the event is not a
// valid transition from the current state.
func (s *Session) Apply(e Event) bool {
	switch e.Kind {
	case Started:
		if s.state != Idle {
			return false
		}
		s.state = Active
		s.updates = 0
	case Updated:
		if s.state != Active {
			return false
		}
		s.updates++
	case Completed:
		if s.state != Active {
			return false
		}
		s.state = Idle
	default:
		return false
	}

	// The cumulative values replace the previous ones.
	s.current = e.Cumulative
	return true
}

// Active reports whether a manipulation is in progress.
func (s *Session) Active() bool {
	return s.state == Active
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Delta returns the most recent cumulative values.
// After completion this is the final value of the finished session.
func (s *Session) Delta() Delta {
	return s.current
}

// Updates returns the number of updates since the session was started.
func (s *Session) Updates() int {
	return s.updates
}
