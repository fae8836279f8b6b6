// Package notify pushes "state changed, re-render" notices to connected
// renderers over websockets.
//
// The Hub subscribes to the catalog. Each websocket client gets its own
// buffered send channel drained by a write pump; a client whose buffer is
// full is dropped instead of blocking the catalog.
package notify

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Elizabethomito/eventboard/internal/catalog"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 16
)

// Message is the JSON frame sent to clients.
type Message struct {
	Type      string          `json:"type"`
	Change    *catalog.Change `json:"change,omitempty"`
	ClientID  string          `json:"client_id,omitempty"`
	Timestamp int64           `json:"timestamp"`
}

// Message types.
const (
	TypeWelcome = "WELCOME"
	TypeChanged = "CHANGED"
)

type client struct {
	id   string
	conn *websocket.Conn
	send chan Message
}

// Hub fans catalog changes out to websocket clients.
type Hub struct {
	log      *slog.Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[string]*client
	closed  bool
}

// NewHub returns a hub. allowOrigin decides which browser origins may
// connect; nil allows all.
func NewHub(log *slog.Logger, allowOrigin func(origin string) bool) *Hub {
	h := &Hub{
		log:     log,
		clients: make(map[string]*client),
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if allowOrigin == nil {
				return true
			}
			return allowOrigin(r.Header.Get("Origin"))
		},
	}
	return h
}

// Attach subscribes the hub to c. The returned function detaches it.
func (h *Hub) Attach(c *catalog.Catalog) (detach func()) {
	return c.Subscribe(h.Broadcast)
}

// Broadcast queues a change notice for every client.
func (h *Hub) Broadcast(ch catalog.Change) {
	msg := Message{Type: TypeChanged, Change: &ch, Timestamp: time.Now().Unix()}

	h.mu.Lock()
	defer h.mu.Unlock()
	for id, cl := range h.clients {
		select {
		case cl.send <- msg:
		default:
			h.log.Warn("dropping slow websocket client", "client_id", id)
			delete(h.clients, id)
			close(cl.send)
		}
	}
}

// Close disconnects every client and refuses new ones. http.Server's
// Shutdown does not track hijacked connections, so the server calls this
// before shutting down.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for id, cl := range h.clients {
		delete(h.clients, id)
		close(cl.send)
	}
}

// Count returns the number of connected clients.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// ServeHTTP upgrades the request and registers the client.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", "err", err)
		return
	}

	cl := &client{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan Message, sendBuffer),
	}
	cl.send <- Message{Type: TypeWelcome, ClientID: cl.id, Timestamp: time.Now().Unix()}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
		conn.Close()
		return
	}
	h.clients[cl.id] = cl
	h.mu.Unlock()
	h.log.Debug("websocket client connected", "client_id", cl.id)

	go h.writePump(cl)
	go h.readPump(cl)
}

func (h *Hub) remove(cl *client) {
	h.mu.Lock()
	if _, ok := h.clients[cl.id]; ok {
		delete(h.clients, cl.id)
		close(cl.send)
	}
	h.mu.Unlock()
}

// readPump only exists to process pongs and notice disconnects; clients
// never send commands over the socket.
func (h *Hub) readPump(cl *client) {
	defer func() {
		h.remove(cl)
		cl.conn.Close()
		h.log.Debug("websocket client disconnected", "client_id", cl.id)
	}()

	cl.conn.SetReadLimit(512)
	cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	cl.conn.SetPongHandler(func(string) error {
		return cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := cl.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Warn("websocket read failed", "client_id", cl.id, "err", err)
			}
			return
		}
	}
}

func (h *Hub) writePump(cl *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		cl.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-cl.send:
			cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				cl.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := cl.conn.WriteJSON(msg); err != nil {
				return
			}
		case <-ticker.C:
			cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := cl.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
