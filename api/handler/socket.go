package handler

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	// wsKeepAliveInterval is how often the server pings connected clients.
	wsKeepAliveInterval = 10 * time.Second
	// wsReadDeadline is the maximum time to wait for a pong before considering the connection dead.
	wsReadDeadline = 90 * time.Second
	// wsWriteTimeout bounds a single notification write so one stuck client
	// doesn't block the pushing request handler.
	wsWriteTimeout = 5 * time.Second
)

var upgrader = websocket.Upgrader{
	HandshakeTimeout: 10 * time.Second,
	ReadBufferSize:   1024,
	WriteBufferSize:  1024,
	// Allow all origins — the socket route already enforces auth via the
	// session token in the query string.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsConn pairs a connection with a write lock: notification pushes and the
// keepalive loop write from different goroutines.
type wsConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (w *wsConn) writeJSON(v any) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	_ = w.conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	return w.conn.WriteJSON(v)
}

// WSHub tracks active WebSocket connections per user so new notifications
// can be pushed in real time, and closes them all during graceful shutdown.
// Create one in main and pass it to the handler layer.
type WSHub struct {
	mu    sync.Mutex
	conns map[uuid.UUID]map[*wsConn]struct{}
	done  chan struct{} // closed on shutdown
}

func NewWSHub() *WSHub {
	return &WSHub{
		conns: make(map[uuid.UUID]map[*wsConn]struct{}),
		done:  make(chan struct{}),
	}
}

func (h *WSHub) add(userID uuid.UUID, c *wsConn) {
	h.mu.Lock()
	if h.conns[userID] == nil {
		h.conns[userID] = make(map[*wsConn]struct{})
	}
	h.conns[userID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *WSHub) remove(userID uuid.UUID, c *wsConn) {
	h.mu.Lock()
	delete(h.conns[userID], c)
	if len(h.conns[userID]) == 0 {
		delete(h.conns, userID)
	}
	h.mu.Unlock()
}

// Push delivers a payload to every open connection of the given user.
// Best-effort: write errors only close the failing connection; the
// notification row in the database remains the source of truth.
func (h *WSHub) Push(userID uuid.UUID, payload any) {
	h.mu.Lock()
	targets := make([]*wsConn, 0, len(h.conns[userID]))
	for c := range h.conns[userID] {
		targets = append(targets, c)
	}
	h.mu.Unlock()

	for _, c := range targets {
		if err := c.writeJSON(payload); err != nil {
			slog.Debug("ws: push write error", "error", err)
			_ = c.conn.Close()
		}
	}
}

// Shutdown closes all active WebSocket connections and signals handlers to exit.
func (h *WSHub) Shutdown() {
	close(h.done)
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, conns := range h.conns {
		for c := range conns {
			_ = c.conn.WriteControl(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
				time.Now().Add(time.Second),
			)
			_ = c.conn.Close()
		}
	}
	h.conns = make(map[uuid.UUID]map[*wsConn]struct{})
}

// WebSocketHandler returns a gin handler that upgrades the connection and
// keeps it registered in the hub for the authenticated user. The Auth
// middleware must run first; WebSocket clients pass their session token as
// the token query parameter.
func WebSocketHandler(hub *WSHub) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := userFromCtx(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		wc := &wsConn{conn: conn}
		hub.add(user.ID, wc)
		defer func() {
			hub.remove(user.ID, wc)
			_ = conn.Close()
		}()

		ticker := time.NewTicker(wsKeepAliveInterval)
		defer ticker.Stop()

		_ = conn.SetReadDeadline(time.Now().Add(wsReadDeadline))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(wsReadDeadline))
			return nil
		})

		readErr := make(chan error, 1)
		go func() {
			for {
				_, _, err := conn.ReadMessage()
				if err != nil {
					readErr <- err
					return
				}
			}
		}()

		for {
			select {
			case <-hub.done:
				return
			case <-ticker.C:
				wc.mu.Lock()
				err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteTimeout))
				wc.mu.Unlock()
				if err != nil {
					slog.Debug("ws: keepalive write error", "error", err)
					return
				}
			case err := <-readErr:
				if websocket.IsUnexpectedCloseError(err,
					websocket.CloseGoingAway,
					websocket.CloseNormalClosure,
					websocket.CloseNoStatusReceived,
				) {
					slog.Debug("ws: unexpected close", "error", err)
				}
				return
			}
		}
	}
}
