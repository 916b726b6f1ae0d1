// internal/network/hub.go
package network

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"go-pacman/internal/hud"
	"go-pacman/internal/logger"
)

const (
	sendQueueSize = 16
	writeTimeout  = 5 * time.Second

	// сколько ждать ответа на ping; ping уходит через 9/10 этого срока
	defaultPongTimeout = 60 * time.Second
)

// ScoreMessage — сообщение зрителю со снимком панели счёта
type ScoreMessage struct {
	Type    string             `json:"type"`
	Players []hud.PlayerLabels `json:"players"`
}

// Hub раздаёт снимки панели счёта зрителям по WebSocket.
// Только читает снимки и никогда не трогает состояние игроков.
type Hub struct {
	mu       sync.RWMutex
	clients  map[*client]struct{}
	closed   bool
	upgrader websocket.Upgrader

	pongTimeout time.Duration
}

// client — отправляющая сторона одного соединения
type client struct {
	ws          *websocket.Conn
	send        chan []byte
	once        sync.Once
	pongTimeout time.Duration
}

func NewHub() *Hub {
	return &Hub{
		clients:     make(map[*client]struct{}),
		pongTimeout: defaultPongTimeout,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// зрители только читают, источник не важен
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// ServeHTTP подключает зрителя
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Warnf("websocket upgrade: %v", err)
		return
	}
	c := &client{ws: ws, send: make(chan []byte, sendQueueSize), pongTimeout: h.pongTimeout}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		_ = ws.Close()
		return
	}
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	logger.Log.Infof("spectator connected: %s", r.RemoteAddr)

	go c.writePump()
	go h.readPump(c)
}

// Broadcast ставит снимок в очередь каждому зрителю; при полной очереди кадр теряется
func (h *Hub) Broadcast(snapshot hud.Snapshot) {
	payload, err := json.Marshal(ScoreMessage{Type: "score", Players: snapshot.Players})
	if err != nil {
		logger.Log.Errorf("marshal score snapshot: %v", err)
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		select {
		case c.send <- payload:
		default:
		}
	}
}

// ClientCount — число подключённых зрителей
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close отключает всех зрителей; новые подключения отклоняются
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	clients := h.clients
	h.clients = make(map[*client]struct{})
	h.mu.Unlock()
	for c := range clients {
		c.close()
	}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()
	if ok {
		c.close()
		logger.Log.Infof("spectator disconnected: %s", c.ws.RemoteAddr())
	}
}

// readPump читает только управляющие кадры, чтобы заметить закрытие соединения
func (h *Hub) readPump(c *client) {
	defer h.remove(c)
	c.ws.SetReadLimit(512)
	_ = c.ws.SetReadDeadline(time.Now().Add(c.pongTimeout))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(c.pongTimeout))
	})
	for {
		if _, _, err := c.ws.ReadMessage(); err != nil {
			return
		}
	}
}

// writePump отправляет кадры из очереди и пингует зрителя:
// зритель ничего не пишет, поэтому дедлайн чтения продлевают только pong
func (c *client) writePump() {
	ticker := time.NewTicker(c.pongTimeout * 9 / 10)
	defer func() {
		ticker.Stop()
		_ = c.ws.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				return
			}
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout)); err != nil {
				return
			}
		}
	}
}

func (c *client) close() {
	c.once.Do(func() { close(c.send) })
}
