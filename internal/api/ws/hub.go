package ws

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// Hub fans session events out to the clients subscribed to each session
// code. Clients only listen: every intent goes through the HTTP API, so the
// hub stays a pure consumer of the state and move-effect stream.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*websocket.Conn]struct{}
	log   zerolog.Logger
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		rooms: make(map[string]map[*websocket.Conn]struct{}),
		log:   log,
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

func (h *Hub) HandleWS(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing code"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	h.log.Debug().Str("code", code).Msg("websocket client subscribed")

	h.mu.Lock()
	if _, ok := h.rooms[code]; !ok {
		h.rooms[code] = make(map[*websocket.Conn]struct{})
	}
	h.rooms[code][conn] = struct{}{}
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.rooms[code], conn)
		h.mu.Unlock()
		_ = conn.Close()
	}()

	// Drain until the client goes away; inbound payloads are ignored.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Broadcast sends {action, data} to every subscriber of the session code.
// Takes the write lock because failed writers are evicted in place.
func (h *Hub) Broadcast(code string, action string, data interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.rooms[code]
	if !ok {
		return
	}
	message := map[string]interface{}{
		"action": action,
		"data":   data,
	}
	for conn := range clients {
		if err := conn.WriteJSON(message); err != nil {
			h.log.Warn().Err(err).Str("code", code).Msg("dropping websocket client")
			conn.Close()
			delete(clients, conn)
		}
	}
}
