package notification_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"impulsa/backend/internal/notification"
)

type MockCounters struct {
	mock.Mock
}

func (m *MockCounters) CachedPendingCount(userID string) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCounters) CachedUnreadCount(userID string) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func TestSummary(t *testing.T) {
	counters := new(MockCounters)
	view := notification.NewView(counters)

	counters.On("CachedPendingCount", "user_b").Return(int64(2), nil)
	counters.On("CachedUnreadCount", "user_b").Return(int64(7), nil)

	summary, err := view.Summary("user_b")

	assert.NoError(t, err)
	assert.EqualValues(t, 2, summary.PendingRequests)
	assert.EqualValues(t, 7, summary.UnreadMessages)
}

func TestSummary_PropagatesErrors(t *testing.T) {
	counters := new(MockCounters)
	view := notification.NewView(counters)

	counters.On("CachedPendingCount", "user_b").Return(int64(0), assert.AnError)

	summary, err := view.Summary("user_b")

	assert.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, summary)
	counters.AssertNotCalled(t, "CachedUnreadCount", mock.Anything)
}
