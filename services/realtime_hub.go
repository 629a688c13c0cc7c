package services

import (
	"encoding/json"
	"sync"

	"github.com/Trupti-Varma/SAVEBITE/models"

	"github.com/gorilla/websocket"
)

type WSClient struct {
	UserID uint
	Conn   *websocket.Conn
}

// RealtimeHub fans out stats updates and alerts to every open
// connection a user has (other tabs, the mobile app).
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[uint]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

// BroadcastStats pushes the latest cumulative stats after a commit.
func (h *RealtimeHub) BroadcastStats(userID uint, stats models.UserStats) {
	h.broadcast(userID, map[string]any{
		"kind":  "stats.updated",
		"stats": stats,
	})
}

func (h *RealtimeHub) BroadcastAlert(userID uint, alert *models.Alert) {
	h.broadcast(userID, map[string]any{
		"kind":  "alert.created",
		"alert": alert,
	})
}

func (h *RealtimeHub) broadcast(userID uint, payload any) {
	msg, _ := json.Marshal(payload)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}
