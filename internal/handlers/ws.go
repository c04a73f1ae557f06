package handlers

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/taskflow-dev/taskflow/internal/utils"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// client wraps a websocket connection with a write lock. Gorilla allows at
// most one concurrent writer per connection, and both broadcasts and the
// ping loop write, so every write goes through the lock. done is closed
// when the client leaves the hub.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
	done chan struct{}
}

func newClient(conn *websocket.Conn) *client {
	return &client{conn: conn, done: make(chan struct{})}
}

func (c *client) writeJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.conn.WriteJSON(v)
}

func (c *client) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.conn.WriteMessage(websocket.PingMessage, nil)
}

// Hub tracks websocket clients per board so mutations can push a refresh
// event to everyone watching that board.
type Hub struct {
	mu             sync.RWMutex
	boardClients   map[uint]map[*client]bool
	allowedOrigins []string
}

func NewHub(allowedOrigins []string) *Hub {
	return &Hub{
		boardClients:   make(map[uint]map[*client]bool),
		allowedOrigins: allowedOrigins,
	}
}

func (hub *Hub) add(boardID uint, c *client) {
	hub.mu.Lock()
	defer hub.mu.Unlock()

	if hub.boardClients[boardID] == nil {
		hub.boardClients[boardID] = make(map[*client]bool)
	}
	hub.boardClients[boardID][c] = true
}

// remove drops the client from the board's room and closes its done channel
// exactly once; removing an already-removed client is a no-op.
func (hub *Hub) remove(boardID uint, c *client) {
	hub.mu.Lock()
	defer hub.mu.Unlock()

	clients, exists := hub.boardClients[boardID]

	if !exists {
		return
	}

	if _, ok := clients[c]; !ok {
		return
	}

	delete(clients, c)
	close(c.done)

	if len(clients) == 0 {
		delete(hub.boardClients, boardID)
	}
}

// BroadcastRefresh tells every client watching the board to reload it. Dead
// connections are pruned on write failure.
func (hub *Hub) BroadcastRefresh(boardID uint) {
	hub.mu.RLock()
	clients := make([]*client, 0, len(hub.boardClients[boardID]))
	for c := range hub.boardClients[boardID] {
		clients = append(clients, c)
	}
	hub.mu.RUnlock()

	for _, c := range clients {
		err := c.writeJSON(map[string]interface{}{
			"type":     "refresh",
			"message":  "Board data updated",
			"board_id": boardID,
		})

		if err != nil {
			log.Printf("Failed to broadcast refresh to client: %v", err)
			hub.remove(boardID, c)
			c.conn.Close()
		}
	}
}

func (hub *Hub) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	for _, allowed := range hub.allowedOrigins {
		if origin == allowed {
			return true
		}
	}
	return false
}

// BoardSocket upgrades the request and keeps the connection subscribed to
// the board's refresh events until the client goes away.
func (h *Handler) BoardSocket(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	boardID, err := utils.GetIDParam(ctx, "board_id")

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "Board not found"})
		return
	}

	if err := h.store.HasBoard(userID, boardID); err != nil {
		respondStoreError(ctx, err, "Board not found")
		return
	}

	upgrader := websocket.Upgrader{CheckOrigin: h.hub.checkOrigin}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)

	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	conn.SetReadLimit(maxMessageSize)

	if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		log.Printf("Failed to set initial read deadline: %v", err)
		conn.Close()
		return
	}

	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	c := newClient(conn)
	h.hub.add(boardID, c)

	defer func() {
		h.hub.remove(boardID, c)
		conn.Close()
	}()

	err = c.writeJSON(map[string]interface{}{
		"type":     "connected",
		"message":  "WebSocket connection established",
		"board_id": boardID,
	})

	if err != nil {
		log.Printf("Failed to send welcome message: %v", err)
		return
	}

	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := c.ping(); err != nil {
					return
				}
			case <-c.done:
				return
			}
		}
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error for board %d: %v", boardID, err)
			}
			break
		}
	}
}
