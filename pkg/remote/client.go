package remote

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/akeil/picnotes/internal/errors"
	"github.com/akeil/picnotes/internal/logging"
	"github.com/akeil/picnotes/pkg/script"
)

// Client sends events to a Server.
type Client struct {
	url  string
	conn *websocket.Conn
	mx   sync.Mutex
}

// NewClient creates a client for the websocket at url.
func NewClient(url string) *Client {
	return &Client{url: url}
}

// Connect opens the websocket connection.
func (c *Client) Connect() error {
	c.mx.Lock()
	defer c.mx.Unlock()
	if c.conn != nil {
		return errors.New("already connected")
	}

	logging.Info("Connecting to %q", c.url)
	conn, res, err := websocket.DefaultDialer.Dial(c.url, nil)
	if err != nil {
		if res != nil {
			return errors.Wrap(err, "websocket connection failed with status %v", res.StatusCode)
		}
		return errors.Wrap(err, "websocket connection failed")
	}
	c.conn = conn
	return nil
}

// Send sends a single event and waits for the reply.
// Error replies from the server are returned as errors.
func (c *Client) Send(e script.Entry) (Message, error) {
	c.mx.Lock()
	defer c.mx.Unlock()
	if c.conn == nil {
		return Message{}, errors.New("not connected")
	}

	err := c.conn.WriteJSON(EventMessage(e))
	if err != nil {
		return Message{}, errors.Wrap(err, "send event")
	}

	var reply Message
	err = c.conn.ReadJSON(&reply)
	if err != nil {
		return Message{}, errors.Wrap(err, "read reply")
	}
	if reply.Type == TypeError {
		return reply, errors.NewValidationError("server: %v", reply.Message)
	}
	return reply, nil
}

// SendAll sends all events of a script and returns the last state.
func (c *Client) SendAll(s *script.Script) (Message, error) {
	var last Message
	for i, e := range s.Events {
		reply, err := c.Send(e)
		if err != nil {
			return reply, errors.Wrap(err, "event %d", i)
		}
		last = reply
	}
	return last, nil
}

// Close closes the connection by sending a close message.
func (c *Client) Close() error {
	c.mx.Lock()
	defer c.mx.Unlock()
	if c.conn == nil {
		return nil
	}
	defer func() {
		c.conn.Close()
		c.conn = nil
	}()

	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	deadline := time.Now().Add(time.Second)
	return c.conn.WriteControl(websocket.CloseMessage, msg, deadline)
}
