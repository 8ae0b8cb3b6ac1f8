package reporthub

import (
	"encoding/json"
	"log"

	"casechain/backend/internal/models"
)

// startPubSubListener runs a goroutine that relays Redis Pub/Sub messages
// into the hub's event channel.
func (h *Hub) startPubSubListener() {
	if h.Subscriber == nil {
		return
	}

	go func() {
		pubsub := h.Subscriber.SubscribeToReportChannels()
		defer pubsub.Close()

		ch := pubsub.Channel()

		for msg := range ch {
			var event models.Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Printf("Error unmarshalling Redis event: %v", err)
				continue
			}

			h.EventCh <- event
		}
	}()
}
