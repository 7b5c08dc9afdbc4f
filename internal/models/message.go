package models

import "time"

// ContextType scopes a message channel to a subject area.
type ContextType string

const (
	// ContextEntrepreneurship scopes a channel to a specific entrepreneurship
	// profile (ContextID carries the profile id).
	ContextEntrepreneurship ContextType = "ENTREPRENEURSHIP"
	// ContextDirect is the global inbox between two users, no ContextID.
	ContextDirect ContextType = "DIRECT"
)

// Valid reports whether the context type is one of the known scopes.
func (t ContextType) Valid() bool {
	return t == ContextEntrepreneurship || t == ContextDirect
}

// Message is a single direct message between two connected users.
// Messages are immutable once created; the only mutation ever applied is
// setting ReadAt, once, by the recipient. The autoincrement ID doubles as
// the per-channel ordering sequence.
type Message struct {
	ID uint `gorm:"primaryKey" json:"id"`
	// SenderID is the author of the message.
	SenderID string `gorm:"type:text;not null;index:idx_channel_member" json:"sender_id"`
	// RecipientID is the user the message is addressed to.
	RecipientID string `gorm:"type:text;not null;index:idx_channel_member;index:idx_unread" json:"recipient_id"`
	// ContextType and ContextID scope the channel. ContextID is the empty
	// string when the channel has no narrowing context.
	ContextType ContextType `gorm:"type:text;not null" json:"context_type"`
	ContextID   string      `gorm:"type:text;not null;default:''" json:"context_id,omitempty"`
	// Content is the message text.
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	// ReadAt is set once when the recipient reads the message.
	ReadAt *time.Time `gorm:"index:idx_unread" json:"read_at,omitempty"`
}

// IsRead reports whether the recipient has read the message.
func (m *Message) IsRead() bool {
	return m.ReadAt != nil
}
