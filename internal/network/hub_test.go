package network

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-pacman/internal/hud"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return conn
}

func TestBroadcastReachesSpectator(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(hub)
	defer srv.Close()
	defer hub.Close()

	conn := dial(t, srv)
	defer conn.Close()
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	hub.Broadcast(hud.Snapshot{Players: []hud.PlayerLabels{
		{Title: "Player 1", Score: "Score: 40", Lives: "You died.", Dead: true},
	}})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg ScoreMessage
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "score", msg.Type)
	require.Len(t, msg.Players, 1)
	assert.Equal(t, "Score: 40", msg.Players[0].Score)
	assert.True(t, msg.Players[0].Dead)
}

func TestSpectatorDisconnect(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(hub)
	defer srv.Close()
	defer hub.Close()

	conn := dial(t, srv)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return hub.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)

	assert.NotPanics(t, func() { hub.Broadcast(hud.Snapshot{}) })
}

func TestCloseDropsSpectators(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(hub)
	defer srv.Close()

	conn := dial(t, srv)
	defer conn.Close()
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	hub.Close()
	assert.Equal(t, 0, hub.ClientCount())

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
}

func TestBroadcastWithoutSpectators(t *testing.T) {
	hub := NewHub()
	assert.NotPanics(t, func() { hub.Broadcast(hud.Snapshot{}) })
	assert.Zero(t, hub.ClientCount())
}

func TestIdleSpectatorKeptByPings(t *testing.T) {
	hub := NewHub()
	hub.pongTimeout = 300 * time.Millisecond
	srv := httptest.NewServer(hub)
	defer srv.Close()
	defer hub.Close()

	conn := dial(t, srv)
	defer conn.Close()
	pings := make(chan struct{}, 16)
	conn.SetPingHandler(func(data string) error {
		select {
		case pings <- struct{}{}:
		default:
		}
		return conn.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(time.Second))
	})
	// клиент только читает, как зритель
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	time.Sleep(3 * hub.pongTimeout)
	assert.Equal(t, 1, hub.ClientCount())
	assert.NotEmpty(t, pings)
}
