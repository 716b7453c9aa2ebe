package ws

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/rubyconworld/rbq-platform/internal/store"
)

const sendBufferSize = 256

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans store events out to connected WebSocket clients. A client
// whose send buffer fills up is dropped rather than blocking the rest.
type Hub struct {
	store      *store.Store
	clients    map[*client]bool
	broadcast  chan []byte
	register   chan *client
	unregister chan *client
	subID      int
}

func NewHub(st *store.Store) *Hub {
	return &Hub{
		store:      st,
		clients:    make(map[*client]bool),
		broadcast:  make(chan []byte, sendBufferSize),
		register:   make(chan *client),
		unregister: make(chan *client),
	}
}

// Run subscribes to the store and pumps events until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	h.subID = h.store.Subscribe(func(evt store.Event) {
		message, err := json.Marshal(evt)
		if err != nil {
			zap.L().Error("failed to marshal event", zap.String("event", evt.Type), zap.Error(err))
			return
		}
		select {
		case h.broadcast <- message:
		default:
			zap.L().Warn("event broadcast buffer full, dropping event", zap.String("event", evt.Type))
		}
	})
	defer h.store.Unsubscribe(h.subID)

	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				close(c.send)
				delete(h.clients, c)
			}
			return
		case c := <-h.register:
			h.clients[c] = true
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
		case message := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- message:
				default:
					delete(h.clients, c)
					close(c.send)
				}
			}
		}
	}
}

// ServeHTTP upgrades the connection and attaches it to the hub.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.L().Info("websocket upgrade failed", zap.Error(err))
		return
	}

	c := &client{conn: conn, send: make(chan []byte, sendBufferSize)}
	h.register <- c

	go c.writePump()
	go c.readPump(h)
}

func (c *client) writePump() {
	defer c.conn.Close()
	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// readPump drains inbound frames so pings and close frames are
// processed; the stream is one-way otherwise.
func (c *client) readPump(h *Hub) {
	defer func() {
		h.unregister <- c
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
