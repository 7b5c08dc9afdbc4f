package storage

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"impulsa/backend/internal/common"
	"impulsa/backend/internal/models"
)

// CreateConnection inserts a new PENDING request. The partial unique index on
// the canonical pair key makes the uniqueness check atomic with the insert:
// of two concurrent requests for the same pair exactly one commits, the other
// gets ErrConnectionExists. Requires TranslateError on the gorm config.
func (s *Service) CreateConnection(requesterID, addresseeID, note string) (*models.Connection, error) {
	if requesterID == addresseeID {
		return nil, common.ErrSelfReference
	}

	conn := &models.Connection{
		RequesterID: requesterID,
		AddresseeID: addresseeID,
		Status:      models.ConnectionPending,
		Message:     note,
	}

	if err := s.DB.Create(conn).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, common.ErrConnectionExists
		}
		log.Printf("ERROR: Failed to create connection %s -> %s: %v", requesterID, addresseeID, err)
		return nil, err
	}

	return conn, nil
}

// FindConnectionByID returns the record or ErrNotFound.
func (s *Service) FindConnectionByID(id string) (*models.Connection, error) {
	var conn models.Connection

	err := s.DB.Where("id = ?", id).First(&conn).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		log.Printf("ERROR: Failed to load connection %s: %v", id, err)
		return nil, err
	}

	return &conn, nil
}

// UpdateConnectionStatus applies the addressee's accept/decline decision.
// The write is a compare-and-swap on status = PENDING, so of two concurrent
// responses exactly one commits; the loser sees ErrInvalidTransition.
func (s *Service) UpdateConnectionStatus(connectionID, actorID string, newStatus models.ConnectionStatus) (*models.Connection, error) {
	conn, err := s.FindConnectionByID(connectionID)
	if err != nil {
		return nil, err
	}
	if conn.AddresseeID != actorID {
		return nil, common.ErrForbidden
	}
	if newStatus != models.ConnectionAccepted && newStatus != models.ConnectionDeclined {
		return nil, common.ErrInvalidTransition
	}
	if conn.Status != models.ConnectionPending {
		return nil, common.ErrInvalidTransition
	}

	res := s.DB.Model(&models.Connection{}).
		Where("id = ? AND status = ?", connectionID, models.ConnectionPending).
		Update("status", newStatus)
	if res.Error != nil {
		log.Printf("ERROR: Failed to update connection %s to %s: %v", connectionID, newStatus, res.Error)
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// A concurrent response committed first.
		return nil, common.ErrInvalidTransition
	}

	return s.FindConnectionByID(connectionID)
}

// FindActiveBetween returns the active (PENDING or ACCEPTED) record for the
// unordered pair. When there is none it falls back to the most recent record
// of any status so callers can still surface a declined history entry, and
// returns nil without error when the pair has no history at all.
func (s *Service) FindActiveBetween(userA, userB string) (*models.Connection, error) {
	key := models.PairKeyFor(userA, userB)

	var conn models.Connection
	err := s.DB.Where("pair_key = ? AND status <> ?", key, models.ConnectionDeclined).
		First(&conn).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = s.DB.Where("pair_key = ?", key).
			Order("created_at DESC").
			First(&conn).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
	}
	if err != nil {
		log.Printf("ERROR: Failed to find connection for pair %s: %v", key, err)
		return nil, err
	}

	return &conn, nil
}

// ListConnectionsForUser returns the user's connections newest first,
// optionally filtered by status and by the user's role in the record.
func (s *Service) ListConnectionsForUser(userID string, status models.ConnectionStatus, role string) ([]models.Connection, error) {
	q := s.DB.Model(&models.Connection{})

	switch role {
	case "requester":
		q = q.Where("requester_id = ?", userID)
	case "addressee":
		q = q.Where("addressee_id = ?", userID)
	default:
		q = q.Where("requester_id = ? OR addressee_id = ?", userID, userID)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var conns []models.Connection
	if err := q.Order("created_at DESC").Find(&conns).Error; err != nil {
		log.Printf("ERROR: Failed to list connections for user %s: %v", userID, err)
		return nil, err
	}
	return conns, nil
}

// CountPendingReceived counts requests still waiting on the user's decision.
func (s *Service) CountPendingReceived(userID string) (int64, error) {
	var count int64
	err := s.DB.Model(&models.Connection{}).
		Where("addressee_id = ? AND status = ?", userID, models.ConnectionPending).
		Count(&count).Error
	if err != nil {
		log.Printf("ERROR: Failed to count pending requests for user %s: %v", userID, err)
		return 0, err
	}
	return count, nil
}
