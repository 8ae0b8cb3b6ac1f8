package reporthub

import "casechain/backend/internal/models"

// Client is the interface for any connection that wants report events. It
// abstracts the transport so the hub can manage websocket and future client
// types uniformly.
type Client interface {
	// GetClientID returns the unique identifier of the connected caller.
	GetClientID() string

	// InRoom reports whether the client has joined the given report's room.
	InRoom(reportID string) bool
	// Join subscribes the client to a report's room.
	Join(reportID string)
	// Leave unsubscribes the client from a report's room.
	Leave(reportID string)

	// GetSendChannel returns the channel the hub writes outbound events to.
	GetSendChannel() chan<- models.Event

	// Run starts the client's read and write pumps.
	Run()
	// Close shuts down the client's connection and channels.
	Close()
}
