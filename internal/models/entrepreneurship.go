package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Entrepreneurship is a venture profile published on the network grid.
// Message channels may be scoped to one of these profiles via ContextID.
type Entrepreneurship struct {
	ID      string `gorm:"primaryKey" json:"id"`
	OwnerID string `gorm:"type:text;not null;index" json:"owner_id"`
	Name    string `gorm:"type:text;not null" json:"name"`
	// Description is the pitch shown on the grid card.
	Description string `gorm:"type:text" json:"description,omitempty"`
	// Sectors are the industry tags used for filtering the grid.
	Sectors   pq.StringArray `gorm:"type:text[]" json:"sectors,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// BeforeCreate generates a UUID for the profile if the ID is not set yet.
func (e *Entrepreneurship) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return
}
