package api

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialStream(t *testing.T, srv *httptest.Server, fixtureID string) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/stream/" + fixtureID
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	return conn
}

func TestStreamEmitsTicks(t *testing.T) {
	s := newTestServer(t)
	srv := httptest.NewServer(s.Routes())
	defer srv.Close()

	conn := dialStream(t, srv, "1002")
	defer conn.Close()

	var first TickMessage
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	require.NoError(t, conn.ReadJSON(&first))

	assert.Equal(t, "1002", first.FixtureID)
	assert.Equal(t, "tick", first.Event)
	assert.Equal(t, s.cfg.Stream.StartMinute, first.Minute)

	var second TickMessage
	require.NoError(t, conn.ReadJSON(&second))
	assert.Equal(t, first.Minute+1, second.Minute)
}

func TestStreamUnknownFixture(t *testing.T) {
	s := newTestServer(t)
	srv := httptest.NewServer(s.Routes())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/stream/9999"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.Nil(t, conn)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, 404, resp.StatusCode)
}

func TestStreamClientClose(t *testing.T) {
	s := newTestServer(t)
	srv := httptest.NewServer(s.Routes())
	defer srv.Close()

	conn := dialStream(t, srv, "1001")

	var first TickMessage
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	require.NoError(t, conn.ReadJSON(&first))

	// Closing from the client side must terminate the push loop server-side
	require.NoError(t, conn.Close())
}
