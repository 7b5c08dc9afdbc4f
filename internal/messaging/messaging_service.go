// Package messaging owns sending and reading direct messages. Every send
// passes the connection gate: without an ACCEPTED connection between the two
// users the message is rejected, regardless of what the UI allowed.
package messaging

import (
	"log"
	"time"

	"impulsa/backend/internal/common"
	"impulsa/backend/internal/config"
	"impulsa/backend/internal/models"
	"impulsa/backend/internal/storage"
)

// ConnectionGate answers whether two users may message each other.
// Implemented by the connection service.
type ConnectionGate interface {
	CanMessage(userA, userB string) (bool, error)
}

// Service handles the business logic for direct messages.
type Service struct {
	Store     storage.MessageStore
	Gate      ConnectionGate
	Directory storage.DirectoryStore
	Notifier  storage.Notifier
}

// NewService creates a new messaging service. Directory and notifier may be
// nil; context validation and event fan-out are then skipped.
func NewService(store storage.MessageStore, gate ConnectionGate, directory storage.DirectoryStore, notifier storage.Notifier) *Service {
	return &Service{Store: store, Gate: gate, Directory: directory, Notifier: notifier}
}

// ChannelPage is one page of a channel listing.
type ChannelPage struct {
	Messages   []models.Message `json:"messages"`
	NextCursor string           `json:"next_cursor,omitempty"`
}

// SendMessage appends a message after verifying the connection gate and the
// channel context. Content validation happens at the store.
func (s *Service) SendMessage(senderID, recipientID string, contextType models.ContextType, contextID, content string) (*models.Message, error) {
	if senderID == recipientID {
		return nil, common.ErrSelfReference
	}
	if err := s.checkContext(contextType, contextID); err != nil {
		return nil, err
	}

	ok, err := s.Gate.CanMessage(senderID, recipientID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, common.ErrNotConnected
	}

	msg, err := s.Store.AppendMessage(senderID, recipientID, contextType, contextID, content)
	if err != nil {
		return nil, err
	}

	s.notify(msg)
	return msg, nil
}

// GetChannel returns one page of the conversation between viewer and the
// other user inside one context, oldest first. Opening the channel counts as
// reading it: every returned message addressed to the viewer is stamped read.
// Messages the viewer authored are never touched by this path.
func (s *Service) GetChannel(viewerID, otherUserID string, contextType models.ContextType, contextID, cursor string, limit int) (*ChannelPage, error) {
	if viewerID == otherUserID {
		return nil, common.ErrSelfReference
	}
	if err := s.checkContext(contextType, contextID); err != nil {
		return nil, err
	}
	afterSeq, err := decodeCursor(cursor)
	if err != nil {
		return nil, err
	}
	if limit <= 0 || limit > config.MaxChannelPageSize {
		limit = config.DefaultChannelPageSize
	}

	// Fetch one past the page so a history ending exactly on the boundary
	// does not hand out a dangling cursor.
	msgs, err := s.Store.ListChannel(viewerID, otherUserID, contextType, contextID, afterSeq, limit+1)
	if err != nil {
		return nil, err
	}
	more := len(msgs) > limit
	if more {
		msgs = msgs[:limit]
	}

	var unread []uint
	for i := range msgs {
		if msgs[i].RecipientID == viewerID && msgs[i].ReadAt == nil {
			unread = append(unread, msgs[i].ID)
		}
	}
	if len(unread) > 0 {
		readAt, err := s.Store.MarkManyRead(unread, viewerID)
		if err != nil {
			// The page itself is valid; the messages stay unread until the
			// next view.
			log.Printf("ERROR: Failed to mark channel page read for user %s: %v", viewerID, err)
		} else {
			for i := range msgs {
				if msgs[i].RecipientID == viewerID && msgs[i].ReadAt == nil {
					msgs[i].ReadAt = &readAt
				}
			}
			s.invalidate(viewerID)
		}
	}

	page := &ChannelPage{Messages: msgs}
	if more {
		page.NextCursor = encodeCursor(msgs[len(msgs)-1].ID)
	}
	return page, nil
}

// MarkMessageRead stamps a single message read on behalf of its recipient.
// Idempotent: a repeated call returns the original timestamp.
func (s *Service) MarkMessageRead(messageID uint, readerID string) (*models.Message, error) {
	msg, err := s.Store.MarkRead(messageID, readerID)
	if err != nil {
		return nil, err
	}

	s.invalidate(readerID)
	return msg, nil
}

// checkContext validates the channel scope. An entrepreneurship context id,
// when present, must reference an existing profile.
func (s *Service) checkContext(contextType models.ContextType, contextID string) error {
	if !contextType.Valid() {
		return common.ErrInvalidContext
	}
	if contextType == models.ContextDirect && contextID != "" {
		return common.ErrInvalidContext
	}
	if contextType == models.ContextEntrepreneurship && contextID != "" && s.Directory != nil {
		if _, err := s.Directory.GetEntrepreneurshipByID(contextID); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) notify(msg *models.Message) {
	if s.Notifier == nil {
		return
	}

	event := models.NotificationEvent{
		Type:      models.EventMessageCreated,
		UserID:    msg.RecipientID,
		ActorID:   msg.SenderID,
		MessageID: msg.ID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Notifier.PublishEvent(event); err != nil {
		log.Printf("ERROR: Failed to publish message event for user %s: %v", msg.RecipientID, err)
	}
	s.invalidate(msg.RecipientID)
}

func (s *Service) invalidate(userID string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.InvalidateCounters(userID); err != nil {
		log.Printf("ERROR: Failed to invalidate counters for user %s: %v", userID, err)
	}
}
