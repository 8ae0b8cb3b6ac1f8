package lifecycle_test

import (
	"sync"

	"casechain/backend/internal/models"
)

// RecordingPublisher collects published events so tests can assert on the
// notification fan-out without Redis.
type RecordingPublisher struct {
	mu     sync.Mutex
	Events []PublishedEvent

	// FailWith, when set, makes every publish return this error.
	FailWith error
}

type PublishedEvent struct {
	Channel string
	Event   models.Event
}

func (p *RecordingPublisher) PublishEvent(channel string, event models.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.FailWith != nil {
		return p.FailWith
	}
	p.Events = append(p.Events, PublishedEvent{Channel: channel, Event: event})
	return nil
}

func (p *RecordingPublisher) EventsOfType(eventType string) []PublishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []PublishedEvent
	for _, e := range p.Events {
		if e.Event.Type == eventType {
			out = append(out, e)
		}
	}
	return out
}
