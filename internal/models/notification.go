package models

import "time"

// Notification event types published to Redis for external collaborators
// (mail digests, badge refreshers). The core itself never consumes these.
const (
	EventConnectionRequested = "connection.requested"
	EventConnectionAccepted  = "connection.accepted"
	EventMessageCreated      = "message.created"
)

// NotificationEvent is the payload published on a user's notification channel.
type NotificationEvent struct {
	Type string `json:"type"`
	// UserID is the user the event concerns (the addressee or recipient).
	UserID string `json:"user_id"`
	// ActorID is the user whose action produced the event.
	ActorID      string    `json:"actor_id"`
	ConnectionID string    `json:"connection_id,omitempty"`
	MessageID    uint      `json:"message_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// NotificationSummary is the read-only projection served to the UI badge.
type NotificationSummary struct {
	PendingRequests int64 `json:"pending_requests"`
	UnreadMessages  int64 `json:"unread_messages"`
}
