// Package connection owns the connection-request lifecycle: request, accept,
// decline, and the viewer-relative status the UI renders. An ACCEPTED
// connection is what opens the messaging gate between two users.
package connection

import (
	"log"
	"time"

	"impulsa/backend/internal/common"
	"impulsa/backend/internal/config"
	"impulsa/backend/internal/models"
	"impulsa/backend/internal/storage"
)

// Service handles the business logic for connections.
type Service struct {
	Store    storage.ConnectionStore
	Notifier storage.Notifier
}

// NewService creates a new connection service. The notifier may be nil when
// no event fan-out is wired (tests, admin tooling).
func NewService(store storage.ConnectionStore, notifier storage.Notifier) *Service {
	return &Service{Store: store, Notifier: notifier}
}

// RequestConnection creates a PENDING request from requester to addressee
// with an optional note. Duplicate-active and self-connection guards live in
// the store so concurrent requests resolve there.
func (s *Service) RequestConnection(requesterID, addresseeID, note string) (*models.Connection, error) {
	if requesterID == addresseeID {
		return nil, common.ErrSelfReference
	}
	if len(note) > config.MaxRequestNoteLength {
		return nil, common.ErrContentTooLong
	}

	conn, err := s.Store.CreateConnection(requesterID, addresseeID, note)
	if err != nil {
		return nil, err
	}

	s.notify(models.EventConnectionRequested, conn.AddresseeID, conn)
	return conn, nil
}

// RespondToConnection applies the addressee's decision. Authority and the
// PENDING precondition are checked by the store's conditional update.
func (s *Service) RespondToConnection(connectionID, actorID string, accept bool) (*models.Connection, error) {
	status := models.ConnectionDeclined
	if accept {
		status = models.ConnectionAccepted
	}

	conn, err := s.Store.UpdateConnectionStatus(connectionID, actorID, status)
	if err != nil {
		return nil, err
	}

	// The actor's own pending badge shrinks either way.
	s.invalidate(actorID)
	if accept {
		s.notify(models.EventConnectionAccepted, conn.RequesterID, conn)
	}
	return conn, nil
}

// ViewerStatus derives the connection state between viewer and the other
// user, relative to the viewer: NONE, PENDING_SENT, PENDING_RECEIVED,
// ACCEPTED or DECLINED. The record is returned alongside when one exists.
func (s *Service) ViewerStatus(viewerID, otherUserID string) (models.ViewerStatus, *models.Connection, error) {
	if viewerID == otherUserID {
		return models.ViewerNone, nil, common.ErrSelfReference
	}

	conn, err := s.Store.FindActiveBetween(viewerID, otherUserID)
	if err != nil {
		return models.ViewerNone, nil, err
	}
	if conn == nil {
		return models.ViewerNone, nil, nil
	}
	return conn.StatusFor(viewerID), conn, nil
}

// CanMessage reports whether the pair holds an ACCEPTED connection.
func (s *Service) CanMessage(userA, userB string) (bool, error) {
	conn, err := s.Store.FindActiveBetween(userA, userB)
	if err != nil {
		return false, err
	}
	return conn != nil && conn.Status == models.ConnectionAccepted, nil
}

// ListConnections returns the user's connections, newest first. Status may be
// empty or one of the known statuses; role may be empty, "requester" or
// "addressee".
func (s *Service) ListConnections(userID string, status models.ConnectionStatus, role string) ([]models.Connection, error) {
	switch status {
	case "", models.ConnectionPending, models.ConnectionAccepted, models.ConnectionDeclined:
	default:
		return nil, common.ErrInvalidFilter
	}
	switch role {
	case "", "requester", "addressee":
	default:
		return nil, common.ErrInvalidFilter
	}

	return s.Store.ListConnectionsForUser(userID, status, role)
}

// notify publishes the event to userID and drops their cached counters.
// Failures are logged, never surfaced: the state change already committed.
func (s *Service) notify(eventType, userID string, conn *models.Connection) {
	if s.Notifier == nil {
		return
	}

	event := models.NotificationEvent{
		Type:         eventType,
		UserID:       userID,
		ActorID:      conn.OtherParty(userID),
		ConnectionID: conn.ID,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Notifier.PublishEvent(event); err != nil {
		log.Printf("ERROR: Failed to publish %s event for user %s: %v", eventType, userID, err)
	}
	s.invalidate(userID)
}

func (s *Service) invalidate(userID string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.InvalidateCounters(userID); err != nil {
		log.Printf("ERROR: Failed to invalidate counters for user %s: %v", userID, err)
	}
}
