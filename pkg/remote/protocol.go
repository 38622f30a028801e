// Package remote feeds board events over websocket connections.
//
// Clients send
//
//  {"type": "event", "event": {"surface": "canvas", "kind": "down", ...}}
//
// and the server answers each message with the board state
//
//  {"type": "state", "strokes": 1, "images": 0, "pictures": 12}
//
// or an error
//
//  {"type": "error", "message": "..."}
//
// Events use the entry format of package script.
package remote

import (
	"github.com/akeil/picnotes/pkg/script"
)

// Message types.
const (
	TypeEvent = "event"
	TypeState = "state"
	TypeError = "error"
)

// Message is the envelope for all websocket messages.
type Message struct {
	Type     string        `json:"type"`
	Event    *script.Entry `json:"event,omitempty"`
	Handled  bool          `json:"handled,omitempty"`
	Strokes  int           `json:"strokes"`
	Images   int           `json:"images"`
	Pictures int           `json:"pictures"`
	Message  string        `json:"message,omitempty"`
}

// EventMessage wraps a script entry.
func EventMessage(e script.Entry) Message {
	return Message{Type: TypeEvent, Event: &e}
}

func errorMessage(err error) Message {
	return Message{Type: TypeError, Message: err.Error()}
}
