package reporthub

import (
	"log"

	"github.com/redis/go-redis/v9"

	"casechain/backend/internal/config"
	"casechain/backend/internal/models"
)

// Subscriber provides the Redis subscription the hub listens on. The storage
// service implements it.
type Subscriber interface {
	SubscribeToReportChannels() *redis.PubSub
}

// Hub fans report events out to connected clients. Events arrive via Redis
// Pub/Sub (so multiple server instances stay in sync) and are delivered to
// every client subscribed to the event's report room; new_report events go
// to everyone.
type Hub struct {
	Clients map[string]Client

	RegisterCh   chan Client
	UnregisterCh chan Client
	EventCh      chan models.Event

	Subscriber Subscriber
}

func NewHub(sub Subscriber) *Hub {
	return &Hub{
		Clients:      make(map[string]Client),
		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
		EventCh:      make(chan models.Event, 64),
		Subscriber:   sub,
	}
}

// Run is the hub's main dispatcher goroutine.
func (h *Hub) Run() {
	h.startPubSubListener()

	for {
		select {
		case client := <-h.RegisterCh:
			h.Clients[client.GetClientID()] = client
			log.Printf("Client %s connected to report hub", client.GetClientID())

		case client := <-h.UnregisterCh:
			if _, ok := h.Clients[client.GetClientID()]; ok {
				delete(h.Clients, client.GetClientID())
				client.Close()
			}

		case event := <-h.EventCh:
			h.deliver(event)
		}
	}
}

// deliver pushes the event to every client that should see it. A client with
// a full send buffer is dropped rather than blocking the dispatcher.
func (h *Hub) deliver(event models.Event) {
	for id, client := range h.Clients {
		if event.Type != config.EventNewReport && !client.InRoom(event.ReportID) {
			continue
		}

		select {
		case client.GetSendChannel() <- event:
		default:
			log.Printf("Client %s is not keeping up, dropping connection", id)
			delete(h.Clients, id)
			client.Close()
		}
	}
}
