package remote

import (
	"context"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/akeil/picnotes"
	"github.com/akeil/picnotes/internal/errors"
	"github.com/akeil/picnotes/internal/logging"
)

type request struct {
	msg   Message
	reply chan Message
}

// Server applies events from websocket clients to a board.
//
// Any number of connections can be open; their messages are queued and
// applied one by one by Run, so the board is only touched by a single
// goroutine.
type Server struct {
	// OnChange is called from the Run goroutine after an event was
	// applied.
	OnChange func(b *picnotes.Board)

	board    *picnotes.Board
	upgrader websocket.Upgrader
	queue    chan request
	done     chan struct{}
	once     sync.Once
}

// NewServer creates a server for the given board.
func NewServer(b *picnotes.Board) *Server {
	return &Server{
		board: b,
		queue: make(chan request),
		done:  make(chan struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// Run processes queued events until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	defer s.once.Do(func() { close(s.done) })
	logging.Info("Event loop for board %v started", s.board.ID)

	for {
		select {
		case <-ctx.Done():
			logging.Info("Event loop stopped")
			return ctx.Err()
		case req := <-s.queue:
			req.reply <- s.apply(req.msg)
		}
	}
}

func (s *Server) apply(msg Message) Message {
	if msg.Type != TypeEvent || msg.Event == nil {
		return errorMessage(errors.NewValidationError("unexpected message type %q", msg.Type))
	}

	ev, err := msg.Event.Event()
	if err != nil {
		return errorMessage(err)
	}
	handled, err := s.board.Dispatch(ev)
	if err != nil {
		return errorMessage(err)
	}
	if s.OnChange != nil {
		s.OnChange(s.board)
	}

	state := s.state()
	state.Handled = handled
	return state
}

func (s *Server) state() Message {
	return Message{
		Type:     TypeState,
		Strokes:  len(s.board.Canvas().Strokes()),
		Images:   len(s.board.Canvas().Images()),
		Pictures: s.board.Picker().Len(),
	}
}

// ServeHTTP upgrades the request to a websocket connection and handles
// incoming messages until the connection is closed.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Error("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()
	logging.Info("Client connected from %v", r.RemoteAddr)

	for {
		var msg Message
		err := conn.ReadJSON(&msg)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logging.Error("read: %v", err)
			}
			logging.Info("Client %v disconnected", r.RemoteAddr)
			return
		}

		req := request{msg: msg, reply: make(chan Message, 1)}
		select {
		case s.queue <- req:
		case <-s.done:
			conn.WriteJSON(errorMessage(errors.New("server stopped")))
			return
		}

		var reply Message
		select {
		case reply = <-req.reply:
		case <-s.done:
			return
		}

		err = conn.WriteJSON(reply)
		if err != nil {
			logging.Error("write: %v", err)
			return
		}
	}
}
