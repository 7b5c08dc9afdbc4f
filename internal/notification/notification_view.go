// Package notification serves the read-only badge projection: how many
// connection requests await the user and how many messages are unread. It
// never mutates domain state; mutating services invalidate the underlying
// cached counters.
package notification

import (
	"impulsa/backend/internal/models"
	"impulsa/backend/internal/storage"
)

// View is the read-only notification projection.
type View struct {
	Counters storage.NotificationStore
}

// NewView creates a new notification view.
func NewView(counters storage.NotificationStore) *View {
	return &View{Counters: counters}
}

// Summary returns the badge counters for the user.
func (v *View) Summary(userID string) (*models.NotificationSummary, error) {
	pending, err := v.Counters.CachedPendingCount(userID)
	if err != nil {
		return nil, err
	}
	unread, err := v.Counters.CachedUnreadCount(userID)
	if err != nil {
		return nil, err
	}

	return &models.NotificationSummary{
		PendingRequests: pending,
		UnreadMessages:  unread,
	}, nil
}
