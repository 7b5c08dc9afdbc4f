package storage

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/redis/go-redis/v9"

	"impulsa/backend/internal/config"
	"impulsa/backend/internal/models"
)

const (
	pendingCounterPrefix = "notif:pending:"
	unreadCounterPrefix  = "notif:unread:"
	eventChannelPrefix   = "notify:"
)

// PublishEvent publishes a notification event on the user's Redis channel.
// External collaborators (badge refreshers, mail digests) may subscribe; the
// core itself never does.
func (s *Service) PublishEvent(event models.NotificationEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return s.Redis.Publish(s.Ctx, eventChannelPrefix+event.UserID, payload).Err()
}

// InvalidateCounters drops the user's cached badge counters so the next
// summary read recomputes them from the database.
func (s *Service) InvalidateCounters(userID string) error {
	return s.Redis.Del(s.Ctx, pendingCounterPrefix+userID, unreadCounterPrefix+userID).Err()
}

// CachedPendingCount returns the pending-request count, served from Redis
// when fresh.
func (s *Service) CachedPendingCount(userID string) (int64, error) {
	return s.cachedCount(pendingCounterPrefix+userID, func() (int64, error) {
		return s.CountPendingReceived(userID)
	})
}

// CachedUnreadCount returns the unread-message count, served from Redis
// when fresh.
func (s *Service) CachedUnreadCount(userID string) (int64, error) {
	return s.cachedCount(unreadCounterPrefix+userID, func() (int64, error) {
		return s.CountUnread(userID)
	})
}

func (s *Service) cachedCount(key string, load func() (int64, error)) (int64, error) {
	val, err := s.Redis.Get(s.Ctx, key).Int64()
	if err == nil {
		return val, nil
	}
	if !errors.Is(err, redis.Nil) {
		log.Printf("ERROR: Failed to read cached counter %s: %v", key, err)
	}

	count, err := load()
	if err != nil {
		return 0, err
	}

	if err := s.Redis.Set(s.Ctx, key, count, config.CounterCacheTTL).Err(); err != nil {
		log.Printf("ERROR: Failed to cache counter %s: %v", key, err)
	}
	return count, nil
}
