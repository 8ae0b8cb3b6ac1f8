// Package telegram forwards new-report alerts to a management Telegram chat.
// It is a pure consumer of the notification stream; nothing in the lifecycle
// engine depends on it.
package telegram

import (
	"encoding/json"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"casechain/backend/internal/config"
	"casechain/backend/internal/models"
	"casechain/backend/internal/reporthub"
)

// Notifier relays new_report events from the hub's event stream to a
// configured chat. Only the masked ID is ever sent to Telegram.
type Notifier struct {
	BotAPI *tgbotapi.BotAPI
	ChatID int64
	Events <-chan models.Event
}

// NewNotifier creates the notifier. The caller wires Events to a channel fed
// by the hub's Redis subscription.
func NewNotifier(token string, chatID int64, events <-chan models.Event) (*Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	bot.Debug = false
	log.Printf("Telegram alerts authorized on account %s", bot.Self.UserName)

	return &Notifier{BotAPI: bot, ChatID: chatID, Events: events}, nil
}

// Run consumes the event stream until the channel closes.
func (n *Notifier) Run() {
	for event := range n.Events {
		if event.Type != config.EventNewReport {
			continue
		}
		n.alert(event)
	}
}

func (n *Notifier) alert(event models.Event) {
	msg := tgbotapi.NewMessage(n.ChatID, alertText(event))

	if _, err := n.BotAPI.Send(msg); err != nil {
		log.Printf("ERROR: Failed to send Telegram alert for report %s: %v", event.ReportID, err)
	}
}

// alertText builds the chat message. Events decoded from JSON carry numbers
// as float64.
func alertText(event models.Event) string {
	maskedID, _ := event.Payload["maskedId"].(string)

	criticality := 0
	switch v := event.Payload["criticality"].(type) {
	case float64:
		criticality = int(v)
	case int:
		criticality = v
	}

	return fmt.Sprintf("New whistleblower report %s (criticality %d)", maskedID, criticality)
}

// SubscribeBroadcast starts a goroutine feeding broadcast events from Redis
// into a channel suitable for a Notifier.
func SubscribeBroadcast(sub reporthub.Subscriber) <-chan models.Event {
	out := make(chan models.Event, 16)

	go func() {
		defer close(out)

		pubsub := sub.SubscribeToReportChannels()
		defer pubsub.Close()

		for msg := range pubsub.Channel() {
			if msg.Channel != models.BroadcastChannel {
				continue
			}
			var event models.Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Printf("Error unmarshalling Redis event: %v", err)
				continue
			}
			out <- event
		}
	}()

	return out
}
