package handler

import (
	"net/http"

	"nestlog/internal/logger"
	"nestlog/internal/realtime"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Auth happens in the JWT middleware; origins are already wide open
	// via CORS for the rest of the API.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WSHandler struct{ hub *realtime.Hub }

func NewWSHandler(hub *realtime.Hub) *WSHandler { return &WSHandler{hub: hub} }

// Serve handles GET /api/ws — upgrades and keeps the connection registered
// until the client goes away. The feed is one-way; inbound frames are
// drained and discarded.
func (h *WSHandler) Serve(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("ws.upgrade failed", "err", err)
		return
	}

	client := &realtime.Client{FamilyID: c.GetInt("family_id"), Conn: conn}
	h.hub.Register(client)
	logger.Info("ws.connected", "fid", client.FamilyID, "did", c.GetString("device_id"))

	defer func() {
		h.hub.Unregister(client)
		logger.Info("ws.disconnected", "fid", client.FamilyID)
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
