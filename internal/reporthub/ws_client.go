package reporthub

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"casechain/backend/internal/models"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// WebSocketClient implements the Client interface over a gorilla/websocket
// connection. Inbound traffic is limited to join/leave room commands; all
// report mutations go through the HTTP API.
type WebSocketClient struct {
	ClientID string
	Conn     *websocket.Conn
	Hub      *Hub
	Send     chan models.Event

	mu    sync.RWMutex
	rooms map[string]struct{}
}

func NewWebSocketClient(clientID string, conn *websocket.Conn, hub *Hub) *WebSocketClient {
	return &WebSocketClient{
		ClientID: clientID,
		Conn:     conn,
		Hub:      hub,
		Send:     make(chan models.Event, 256),
		rooms:    make(map[string]struct{}),
	}
}

func (c *WebSocketClient) GetClientID() string { return c.ClientID }

func (c *WebSocketClient) InRoom(reportID string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.rooms[reportID]
	return ok
}

func (c *WebSocketClient) Join(reportID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rooms[reportID] = struct{}{}
}

func (c *WebSocketClient) Leave(reportID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.rooms, reportID)
}

func (c *WebSocketClient) GetSendChannel() chan<- models.Event { return c.Send }

// Run starts the pumps.
func (c *WebSocketClient) Run() {
	go c.writePump()
	go c.readPump()
}

// Close shuts the Send channel, which stops the write pump.
func (c *WebSocketClient) Close() {
	close(c.Send)
}

func (c *WebSocketClient) readPump() {
	defer func() {
		c.Hub.UnregisterCh <- c
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("error reading message: %v", err)
			}
			break
		}

		var cmd models.ClientCommand
		if err := json.Unmarshal(message, &cmd); err != nil {
			log.Printf("Error decoding JSON from client %s: %v", c.ClientID, err)
			continue
		}

		switch cmd.Action {
		case "join_report":
			c.Join(cmd.ReportID)
			log.Printf("Client %s joined report room: %s", c.ClientID, cmd.ReportID)
		case "leave_report":
			c.Leave(cmd.ReportID)
			log.Printf("Client %s left report room: %s", c.ClientID, cmd.ReportID)
		default:
			log.Printf("Unknown command %q from client %s", cmd.Action, c.ClientID)
		}
	}
}

func (c *WebSocketClient) writePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case event, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Channel closed by the hub, close the WS connection.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			dataToWrite, err := json.Marshal(event)
			if err != nil {
				log.Printf("Error encoding JSON for client %s: %v", c.ClientID, err)
				continue
			}

			w, err := c.Conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(dataToWrite)

			// Drain any queued events into the same frame writer.
			n := len(c.Send)
			for i := 0; i < n; i++ {
				nextEvent := <-c.Send

				extraData, _ := json.Marshal(nextEvent)
				w.Write(extraData)
			}

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
