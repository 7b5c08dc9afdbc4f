package storage

import (
	"errors"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"impulsa/backend/internal/common"
	"impulsa/backend/internal/config"
	"impulsa/backend/internal/models"
)

// AppendMessage inserts a new message. The database assigns the sequence
// (autoincrement id) and timestamp, so submission order from one sender is
// preserved even under concurrent appends from other channels.
func (s *Service) AppendMessage(senderID, recipientID string, contextType models.ContextType, contextID, content string) (*models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, common.ErrEmptyContent
	}
	if len(content) > config.MaxMessageLength {
		return nil, common.ErrContentTooLong
	}

	msg := &models.Message{
		SenderID:    senderID,
		RecipientID: recipientID,
		ContextType: contextType,
		ContextID:   contextID,
		Content:     content,
	}

	if err := s.DB.Create(msg).Error; err != nil {
		log.Printf("ERROR: Failed to append message %s -> %s: %v", senderID, recipientID, err)
		return nil, err
	}

	return msg, nil
}

// ListChannel returns the messages exchanged between the pair inside one
// context, ascending by sequence, starting after afterSeq. The caller bounds
// limit; the messaging service asks for one past its page to detect whether
// more history remains.
func (s *Service) ListChannel(userA, userB string, contextType models.ContextType, contextID string, afterSeq uint, limit int) ([]models.Message, error) {
	if limit <= 0 {
		limit = config.DefaultChannelPageSize
	}

	var msgs []models.Message
	err := s.DB.
		Where("((sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?))",
			userA, userB, userB, userA).
		Where("context_type = ? AND context_id = ?", contextType, contextID).
		Where("id > ?", afterSeq).
		Order("id ASC").
		Limit(limit).
		Find(&msgs).Error
	if err != nil {
		log.Printf("ERROR: Failed to list channel %s/%s (%s:%s): %v", userA, userB, contextType, contextID, err)
		return nil, err
	}

	return msgs, nil
}

// MarkRead sets the read timestamp of one message. Only the recipient may
// read; a second call is a no-op that returns the stored timestamp. The write
// is conditional on read_at IS NULL so the timestamp is never moved.
func (s *Service) MarkRead(messageID uint, readerID string) (*models.Message, error) {
	var msg models.Message
	if err := s.DB.First(&msg, messageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		log.Printf("ERROR: Failed to load message %d: %v", messageID, err)
		return nil, err
	}

	if msg.RecipientID != readerID {
		return nil, common.ErrForbidden
	}
	if msg.ReadAt != nil {
		return &msg, nil
	}

	now := time.Now().UTC()
	res := s.DB.Model(&models.Message{}).
		Where("id = ? AND read_at IS NULL", messageID).
		Update("read_at", now)
	if res.Error != nil {
		log.Printf("ERROR: Failed to mark message %d read: %v", messageID, res.Error)
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// Lost the race to a concurrent reader; return the stored timestamp.
		if err := s.DB.First(&msg, messageID).Error; err != nil {
			return nil, err
		}
		return &msg, nil
	}

	msg.ReadAt = &now
	return &msg, nil
}

// MarkManyRead stamps every still-unread message in ids that is addressed to
// readerID. Used by the read-on-view path; messages authored by the reader or
// already read are left untouched by the conditional update.
func (s *Service) MarkManyRead(messageIDs []uint, readerID string) (time.Time, error) {
	now := time.Now().UTC()
	if len(messageIDs) == 0 {
		return now, nil
	}

	err := s.DB.Model(&models.Message{}).
		Where("id IN ? AND recipient_id = ? AND read_at IS NULL", messageIDs, readerID).
		Update("read_at", now).Error
	if err != nil {
		log.Printf("ERROR: Failed to mark %d messages read for %s: %v", len(messageIDs), readerID, err)
		return time.Time{}, err
	}

	return now, nil
}

// CountUnread counts unread messages addressed to the user across all channels.
func (s *Service) CountUnread(userID string) (int64, error) {
	var count int64
	err := s.DB.Model(&models.Message{}).
		Where("recipient_id = ? AND read_at IS NULL", userID).
		Count(&count).Error
	if err != nil {
		log.Printf("ERROR: Failed to count unread messages for user %s: %v", userID, err)
		return 0, err
	}
	return count, nil
}
