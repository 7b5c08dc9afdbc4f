package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConnectionStatus is the lifecycle state of a connection record.
type ConnectionStatus string

const (
	ConnectionPending  ConnectionStatus = "PENDING"
	ConnectionAccepted ConnectionStatus = "ACCEPTED"
	ConnectionDeclined ConnectionStatus = "DECLINED"
)

// ViewerStatus is the connection state relative to the user looking at it.
// The requester of a pending request sees PENDING_SENT while the addressee
// sees PENDING_RECEIVED for the same record.
type ViewerStatus string

const (
	ViewerNone            ViewerStatus = "NONE"
	ViewerPendingSent     ViewerStatus = "PENDING_SENT"
	ViewerPendingReceived ViewerStatus = "PENDING_RECEIVED"
	ViewerAccepted        ViewerStatus = "ACCEPTED"
	ViewerDeclined        ViewerStatus = "DECLINED"
)

// Connection represents a connection request between two entrepreneurs.
// Once accepted it enables direct messaging between the pair. Records are
// never deleted; a declined record stays as history and a new request
// starts a fresh record.
type Connection struct {
	// ID is the unique identifier for the connection (UUID).
	ID string `gorm:"primaryKey" json:"id"`
	// RequesterID is the user who initiated the request.
	RequesterID string `gorm:"type:text;not null;index" json:"requester_id"`
	// AddresseeID is the user the request was sent to. Only this user may
	// accept or decline.
	AddresseeID string `gorm:"type:text;not null;index" json:"addressee_id"`
	// PairKey is the canonical unordered pair of the two user ids. The
	// partial unique index allows at most one non-declined record per pair.
	PairKey string `gorm:"type:text;not null;uniqueIndex:uniq_active_pair,where:status <> 'DECLINED'" json:"-"`
	// Status is PENDING until the addressee responds.
	Status ConnectionStatus `gorm:"type:text;not null;default:'PENDING';index" json:"status"`
	// Message is the optional note attached by the requester.
	Message   string    `gorm:"type:text" json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PairKeyFor returns the canonical key for an unordered pair of user ids.
func PairKeyFor(a, b string) string {
	if a < b {
		return a + ":" + b
	}
	return b + ":" + a
}

// BeforeCreate generates the UUID and pair key if they are not set yet.
func (c *Connection) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.PairKey == "" {
		c.PairKey = PairKeyFor(c.RequesterID, c.AddresseeID)
	}
	return
}

// Involves reports whether the given user is one of the two parties.
func (c *Connection) Involves(userID string) bool {
	return c.RequesterID == userID || c.AddresseeID == userID
}

// OtherParty returns the id of the counterpart of the given user.
func (c *Connection) OtherParty(userID string) string {
	if c.RequesterID == userID {
		return c.AddresseeID
	}
	return c.RequesterID
}

// StatusFor derives the viewer-relative status of the record.
func (c *Connection) StatusFor(viewerID string) ViewerStatus {
	switch c.Status {
	case ConnectionPending:
		if c.RequesterID == viewerID {
			return ViewerPendingSent
		}
		return ViewerPendingReceived
	case ConnectionAccepted:
		return ViewerAccepted
	case ConnectionDeclined:
		return ViewerDeclined
	}
	return ViewerNone
}
