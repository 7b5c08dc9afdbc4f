package connection_test

import (
	"github.com/stretchr/testify/mock"

	"impulsa/backend/internal/models"
)

type MockConnectionStore struct {
	mock.Mock
}

func (m *MockConnectionStore) CreateConnection(requesterID, addresseeID, note string) (*models.Connection, error) {
	args := m.Called(requesterID, addresseeID, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Connection), args.Error(1)
}

func (m *MockConnectionStore) UpdateConnectionStatus(connectionID, actorID string, newStatus models.ConnectionStatus) (*models.Connection, error) {
	args := m.Called(connectionID, actorID, newStatus)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Connection), args.Error(1)
}

func (m *MockConnectionStore) FindConnectionByID(id string) (*models.Connection, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Connection), args.Error(1)
}

func (m *MockConnectionStore) FindActiveBetween(userA, userB string) (*models.Connection, error) {
	args := m.Called(userA, userB)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Connection), args.Error(1)
}

func (m *MockConnectionStore) ListConnectionsForUser(userID string, status models.ConnectionStatus, role string) ([]models.Connection, error) {
	args := m.Called(userID, status, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Connection), args.Error(1)
}

func (m *MockConnectionStore) CountPendingReceived(userID string) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
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
