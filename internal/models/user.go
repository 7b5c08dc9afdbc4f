package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// User represents a platform member taking part in the entrepreneur network.
// Profile editing and authentication live in external collaborators; the core
// only needs a stable identity plus the tags shown on network cards.
type User struct {
	ID       string `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"uniqueIndex" json:"email"`
	FullName string `gorm:"type:text" json:"full_name"`
	Bio      string `gorm:"type:text" json:"bio,omitempty"`
	// Interests are free-form tags shown on the member card.
	Interests pq.StringArray `gorm:"type:text[]" json:"interests,omitempty"`
}

// BeforeCreate generates a UUID for the user if the ID is not set yet.
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return
}
