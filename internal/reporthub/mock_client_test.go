package reporthub_test

import (
	"casechain/backend/internal/models"
)

type MockClient struct {
	clientID string
	rooms    map[string]bool

	// RecvChannel is what the hub writes into; tests read from it.
	RecvChannel chan models.Event

	closed bool
}

func newMockClient(clientID string, buffer int) *MockClient {
	return &MockClient{
		clientID:    clientID,
		rooms:       make(map[string]bool),
		RecvChannel: make(chan models.Event, buffer),
	}
}

func (c *MockClient) GetClientID() string {
	return c.clientID
}

func (c *MockClient) InRoom(reportID string) bool {
	return c.rooms[reportID]
}

func (c *MockClient) Join(reportID string) {
	c.rooms[reportID] = true
}

func (c *MockClient) Leave(reportID string) {
	delete(c.rooms, reportID)
}

func (c *MockClient) GetSendChannel() chan<- models.Event {
	return c.RecvChannel
}

func (c *MockClient) Run() {
	// Not needed for testing
}

func (c *MockClient) Close() {
	c.closed = true
}
