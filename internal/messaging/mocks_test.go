package messaging_test

import (
	"time"

	"github.com/stretchr/testify/mock"

	"impulsa/backend/internal/models"
)

type MockMessageStore struct {
	mock.Mock
}

func (m *MockMessageStore) AppendMessage(senderID, recipientID string, contextType models.ContextType, contextID, content string) (*models.Message, error) {
	args := m.Called(senderID, recipientID, contextType, contextID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Message), args.Error(1)
}

func (m *MockMessageStore) ListChannel(userA, userB string, contextType models.ContextType, contextID string, afterSeq uint, limit int) ([]models.Message, error) {
	args := m.Called(userA, userB, contextType, contextID, afterSeq, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Message), args.Error(1)
}

func (m *MockMessageStore) MarkRead(messageID uint, readerID string) (*models.Message, error) {
	args := m.Called(messageID, readerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Message), args.Error(1)
}

func (m *MockMessageStore) MarkManyRead(messageIDs []uint, readerID string) (time.Time, error) {
	args := m.Called(messageIDs, readerID)
	return args.Get(0).(time.Time), args.Error(1)
}

func (m *MockMessageStore) CountUnread(userID string) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

type MockGate struct {
	mock.Mock
}

func (m *MockGate) CanMessage(userA, userB string) (bool, error) {
	args := m.Called(userA, userB)
	return args.Bool(0), args.Error(1)
}

type MockDirectoryStore struct {
	mock.Mock
}

func (m *MockDirectoryStore) SaveEntrepreneurship(e *models.Entrepreneurship) error {
	args := m.Called(e)
	return args.Error(0)
}

func (m *MockDirectoryStore) GetEntrepreneurshipByID(id string) (*models.Entrepreneurship, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Entrepreneurship), args.Error(1)
}

func (m *MockDirectoryStore) ListEntrepreneurships(sector string) ([]models.Entrepreneurship, error) {
	args := m.Called(sector)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Entrepreneurship), args.Error(1)
}

func (m *MockDirectoryStore) SaveUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockDirectoryStore) GetUserByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) PublishEvent(event models.NotificationEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

func (m *MockNotifier) InvalidateCounters(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}
