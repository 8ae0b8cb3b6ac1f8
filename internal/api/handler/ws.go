package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"casechain/backend/internal/reporthub"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allows connections from any origin. Tighten in production!
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWebSocket upgrades the connection and registers the client with the
// report hub. Portal users authenticate with their bearer token; anonymous
// whistleblowers connect without one and get a throwaway client ID.
func (h *Handler) ServeWebSocket(c *gin.Context) {
	clientID := uuid.New().String()

	if token := c.Query("token"); token != "" {
		identity, err := h.parseToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized", "message": "Invalid token"})
			return
		}
		clientID = identity.ID
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal error", "message": "Failed to upgrade connection"})
		return
	}

	client := reporthub.NewWebSocketClient(clientID, conn, h.Hub)

	h.Hub.RegisterCh <- client
	client.Run()
}
