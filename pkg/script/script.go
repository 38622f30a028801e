// Package script reads input event scripts and replays them on a board.
//
// A script is a JSON document with a list of events:
//
//  {"events": [
//      {"surface": "canvas", "kind": "down", "id": 1, "device": "pen", "x": 10, "y": 10},
//      {"surface": "canvas", "kind": "move", "id": 1, "device": "pen", "x": 20, "y": 12,
//       "intermediate": [[20, 12], [15, 11]]},
//      {"surface": "canvas", "kind": "up", "id": 1, "device": "pen", "x": 20, "y": 12},
//      {"command": "color", "value": "#ff0000"}
//  ]}
//
// Intermediate samples are listed newest first. "contact" defaults to true
// for down and move events and to false for up events.
package script

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/akeil/picnotes"
	"github.com/akeil/picnotes/internal/errors"
	"github.com/akeil/picnotes/internal/logging"
	"github.com/akeil/picnotes/pkg/scene"
)

// Entry is a single event in a script.
type Entry struct {
	Surface      string       `json:"surface,omitempty"`
	Kind         string       `json:"kind,omitempty"`
	ID           uint32       `json:"id,omitempty"`
	Device       string       `json:"device,omitempty"`
	X            float64      `json:"x"`
	Y            float64      `json:"y"`
	Contact      *bool        `json:"contact,omitempty"`
	Intermediate [][2]float64 `json:"intermediate,omitempty"`
	Command      string       `json:"command,omitempty"`
	Value        string       `json:"value,omitempty"`
}

// Script is a sequence of events.
type Script struct {
	Events []Entry `json:"events"`
}

// Read decodes and validates a script.
func Read(r io.Reader) (*Script, error) {
	var s Script
	err := json.NewDecoder(r).Decode(&s)
	if err != nil {
		return nil, errors.Wrap(err, "decode script")
	}

	err = s.Validate()
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ReadFile reads the script at path.
func ReadFile(path string) (*Script, error) {
	logging.Debug("Read script from %q", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}

// Write encodes the script as JSON.
func (s *Script) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// Validate checks that all entries can be converted to events.
func (s *Script) Validate() error {
	for i, e := range s.Events {
		_, err := e.Event()
		if err != nil {
			return errors.NewValidationError("event %d: %v", i, err)
		}
	}
	return nil
}

// Event converts the entry to a board event.
func (e Entry) Event() (picnotes.Event, error) {
	if e.Command != "" {
		if e.Kind != "" {
			return picnotes.Event{}, errors.NewValidationError("entry has both command and kind")
		}
		return picnotes.Event{Command: &picnotes.Command{Name: e.Command, Value: e.Value}}, nil
	}

	surface, err := picnotes.ParseSurface(e.Surface)
	if err != nil {
		return picnotes.Event{}, errors.NewValidationError("%v", err)
	}
	kind, err := picnotes.ParsePointerKind(e.Kind)
	if err != nil {
		return picnotes.Event{}, errors.NewValidationError("%v", err)
	}
	device := picnotes.Mouse
	if e.Device != "" {
		device, err = picnotes.ParseDevice(e.Device)
		if err != nil {
			return picnotes.Event{}, errors.NewValidationError("%v", err)
		}
	}

	contact := kind != picnotes.Up
	if e.Contact != nil {
		contact = *e.Contact
	}

	var intermediate []scene.Point
	for _, p := range e.Intermediate {
		intermediate = append(intermediate, scene.Point{X: p[0], Y: p[1]})
	}

	return picnotes.Event{
		Surface: surface,
		Pointer: picnotes.PointerEvent{
			Kind:         kind,
			ID:           e.ID,
			Device:       device,
			Position:     scene.Point{X: e.X, Y: e.Y},
			Intermediate: intermediate,
			InContact:    contact,
		},
	}, nil
}

// FromEvent converts a board event to a script entry.
func FromEvent(ev picnotes.Event) Entry {
	if ev.Command != nil {
		return Entry{Command: ev.Command.Name, Value: ev.Command.Value}
	}
	p := ev.Pointer
	contact := p.InContact
	e := Entry{
		Surface: ev.Surface.String(),
		Kind:    p.Kind.String(),
		ID:      p.ID,
		Device:  p.Device.String(),
		X:       p.Position.X,
		Y:       p.Position.Y,
		Contact: &contact,
	}
	for _, pt := range p.Intermediate {
		e.Intermediate = append(e.Intermediate, [2]float64{pt.X, pt.Y})
	}
	return e
}

// Result summarizes a replay.
type Result struct {
	Handled int
	Ignored int
}

func (r Result) String() string {
	return fmt.Sprintf("%d handled, %d ignored", r.Handled, r.Ignored)
}

// Replay dispatches all events of the script to the board.
// Replay stops at the first error.
func Replay(b *picnotes.Board, s *Script) (Result, error) {
	var res Result
	for i, e := range s.Events {
		ev, err := e.Event()
		if err != nil {
			return res, errors.NewValidationError("event %d: %v", i, err)
		}
		ok, err := b.Dispatch(ev)
		if err != nil {
			return res, errors.Wrap(err, "event %d", i)
		}
		if ok {
			res.Handled++
		} else {
			logging.Debug("script: event %d ignored", i)
			res.Ignored++
		}
	}
	return res, nil
}
