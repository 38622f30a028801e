package remote

import (
	"context"
	"net"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akeil/picnotes"
	"github.com/akeil/picnotes/internal/errors"
	"github.com/akeil/picnotes/pkg/script"
)

func startServer(t *testing.T, onChange func(*picnotes.Board)) *Client {
	t.Helper()
	b, err := picnotes.NewBoard(picnotes.DefaultConfig(), "bear.png")
	require.NoError(t, err)

	srv := NewServer(b)
	srv.OnChange = onChange
	ctx, cancel := context.WithCancel(context.Background())
	go srv.Run(ctx)

	ts := httptest.NewServer(srv)
	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	c := NewClient(url)
	require.NoError(t, c.Connect())

	t.Cleanup(func() {
		c.Close()
		cancel()
		ts.Close()
	})
	return c
}

func TestRoundTrip(t *testing.T) {
	var changes int32
	c := startServer(t, func(b *picnotes.Board) {
		atomic.AddInt32(&changes, 1)
	})

	events := []script.Entry{
		{Surface: "canvas", Kind: "down", ID: 1, Device: "pen", X: 10, Y: 10},
		{Surface: "canvas", Kind: "move", ID: 1, Device: "pen", X: 20, Y: 15},
		{Surface: "canvas", Kind: "up", ID: 1, Device: "pen", X: 30, Y: 30},
	}
	last, err := c.SendAll(&script.Script{Events: events})
	require.NoError(t, err)

	assert.Equal(t, TypeState, last.Type)
	assert.True(t, last.Handled)
	assert.Equal(t, 1, last.Strokes)
	assert.Equal(t, 0, last.Images)
	assert.Equal(t, 1, last.Pictures)

	reply, err := c.Send(script.Entry{Command: "add-picture", Value: "cat.png"})
	require.NoError(t, err)
	assert.Equal(t, 2, reply.Pictures)

	reply, err = c.Send(script.Entry{Command: "clear"})
	require.NoError(t, err)
	assert.Equal(t, 0, reply.Strokes)
	assert.Equal(t, int32(5), atomic.LoadInt32(&changes))
}

func TestErrorReply(t *testing.T) {
	c := startServer(t, nil)

	reply, err := c.Send(script.Entry{Surface: "canvas", Kind: "wiggle"})
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.Equal(t, TypeError, reply.Type)
	assert.NotEmpty(t, reply.Message)

	// the connection stays usable
	reply, err = c.Send(script.Entry{Surface: "canvas", Kind: "up", ID: 9, Device: "pen"})
	require.NoError(t, err)
	assert.False(t, reply.Handled)
}

func TestService(t *testing.T) {
	ip := net.IPv4(127, 0, 0, 1)
	svc, err := NewService("board", "picnotes.local.", 8080, []net.IP{ip})
	require.NoError(t, err)
	assert.Equal(t, 8080, svc.Port)
	assert.Equal(t, "board", svc.Instance)
	assert.Equal(t, ServiceType, svc.Service)
}
