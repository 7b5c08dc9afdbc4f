package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"impulsa/backend/internal/models"
)

// ConnectionStore persists connection records. Uniqueness of the active pair
// and single-shot status transitions are enforced here, atomically, not in
// service code.
type ConnectionStore interface {
	CreateConnection(requesterID, addresseeID, note string) (*models.Connection, error)
	UpdateConnectionStatus(connectionID, actorID string, newStatus models.ConnectionStatus) (*models.Connection, error)
	FindConnectionByID(id string) (*models.Connection, error)
	FindActiveBetween(userA, userB string) (*models.Connection, error)
	ListConnectionsForUser(userID string, status models.ConnectionStatus, role string) ([]models.Connection, error)
	CountPendingReceived(userID string) (int64, error)
}

// MessageStore persists messages and their read state. The sequence and
// timestamp are assigned at insert time so concurrent appends never race in
// service code.
type MessageStore interface {
	AppendMessage(senderID, recipientID string, contextType models.ContextType, contextID, content string) (*models.Message, error)
	ListChannel(userA, userB string, contextType models.ContextType, contextID string, afterSeq uint, limit int) ([]models.Message, error)
	MarkRead(messageID uint, readerID string) (*models.Message, error)
	MarkManyRead(messageIDs []uint, readerID string) (time.Time, error)
	CountUnread(userID string) (int64, error)
}

// DirectoryStore persists the entrepreneurship grid and member profiles.
type DirectoryStore interface {
	SaveEntrepreneurship(e *models.Entrepreneurship) error
	GetEntrepreneurshipByID(id string) (*models.Entrepreneurship, error)
	ListEntrepreneurships(sector string) ([]models.Entrepreneurship, error)
	SaveUser(user *models.User) error
	GetUserByID(id string) (*models.User, error)
}

// Notifier publishes notification events and invalidates cached counters.
// Both calls are best-effort: callers log failures and carry on.
type Notifier interface {
	PublishEvent(event models.NotificationEvent) error
	InvalidateCounters(userID string) error
}

// NotificationStore serves the cached badge counters.
type NotificationStore interface {
	CachedPendingCount(userID string) (int64, error)
	CachedUnreadCount(userID string) (int64, error)
}

// Storage is the full persistence contract implemented by Service.
type Storage interface {
	ConnectionStore
	MessageStore
	DirectoryStore
	Notifier
	NotificationStore
}

// Service implements Storage over PostgreSQL (records) and Redis
// (counters cache, notification pub/sub).
type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewStorageService Constructor. The redis client may be nil for tools that
// only need the database methods (e.g. the admin CLI).
func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}
