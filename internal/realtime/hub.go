// Package realtime fans out activity row changes to the family's connected
// devices over websockets. The hub only delivers insert/update/delete events;
// it is not a source of truth.
package realtime

import (
	"encoding/json"
	"sync"

	"nestlog/internal/logger"
	"nestlog/internal/model"
)

type Action string

const (
	ActionInsert Action = "insert"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// ChangeEvent is the wire payload for one row change.
type ChangeEvent struct {
	Action   Action          `json:"action"`
	Activity *model.Activity `json:"activity,omitempty"`
	ID       string          `json:"id,omitempty"`
}

// Conn is the subset of *websocket.Conn the hub needs.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// textMessage mirrors websocket.TextMessage so this package stays
// independent of the transport.
const textMessage = 1

type Client struct {
	FamilyID int
	Conn     Conn
}

type Hub struct {
	mu      sync.RWMutex
	clients map[int]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[int]map[*Client]struct{})}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	if h.clients[c.FamilyID] == nil {
		h.clients[c.FamilyID] = make(map[*Client]struct{})
	}
	h.clients[c.FamilyID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if set := h.clients[c.FamilyID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.FamilyID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

// Publish sends the event to every device currently connected for the family.
// Write failures are ignored; a dead connection is cleaned up by its reader.
func (h *Hub) Publish(familyID int, ev ChangeEvent) {
	msg, err := json.Marshal(ev)
	if err != nil {
		logger.Error("marshal change event", "action", ev.Action, "error", err)
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[familyID] {
		_ = c.Conn.WriteMessage(textMessage, msg)
	}
}
