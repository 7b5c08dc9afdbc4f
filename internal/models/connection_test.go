package models_test

import (
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"impulsa/backend/internal/models"
)

// TestConnectionBeforeCreate_GeneratesUUIDAndPairKey verifies the hook fills
// the id and the canonical pair key.
func TestConnectionBeforeCreate_GeneratesUUIDAndPairKey(t *testing.T) {
	conn := &models.Connection{
		RequesterID: "user_b",
		AddresseeID: "user_a",
		Status:      models.ConnectionPending,
	}

	assert.Empty(t, conn.ID, "Connection ID should be empty before BeforeCreate")

	err := conn.BeforeCreate(nil)

	assert.NoError(t, err)
	assert.NotEmpty(t, conn.ID)

	parsedUUID, parseErr := uuid.Parse(conn.ID)
	assert.NoError(t, parseErr, "Connection ID must be a valid UUID string")
	assert.NotEqual(t, uuid.Nil, parsedUUID)

	// Canonical regardless of requester/addressee order.
	assert.Equal(t, "user_a:user_b", conn.PairKey)
}

// TestConnectionBeforeCreate_PreservesExistingValues verifies the hook does
// not overwrite an already-populated record.
func TestConnectionBeforeCreate_PreservesExistingValues(t *testing.T) {
	existingID := uuid.New().String()
	conn := &models.Connection{
		ID:          existingID,
		RequesterID: "user_a",
		AddresseeID: "user_b",
		PairKey:     "user_a:user_b",
	}

	err := conn.BeforeCreate(nil)

	assert.NoError(t, err)
	assert.Equal(t, existingID, conn.ID)
	assert.Equal(t, "user_a:user_b", conn.PairKey)
}

func TestPairKeyFor_IsOrderIndependent(t *testing.T) {
	assert.Equal(t, models.PairKeyFor("a", "b"), models.PairKeyFor("b", "a"))
	assert.Equal(t, "a:b", models.PairKeyFor("b", "a"))
}

// TestConnectionStatusFor covers the viewer-relative derivation that used to
// be recomputed in every frontend component.
func TestConnectionStatusFor(t *testing.T) {
	tests := []struct {
		name     string
		status   models.ConnectionStatus
		viewerID string
		expected models.ViewerStatus
	}{
		{
			name:     "pending seen by requester",
			status:   models.ConnectionPending,
			viewerID: "user_a",
			expected: models.ViewerPendingSent,
		},
		{
			name:     "pending seen by addressee",
			status:   models.ConnectionPending,
			viewerID: "user_b",
			expected: models.ViewerPendingReceived,
		},
		{
			name:     "accepted is symmetric",
			status:   models.ConnectionAccepted,
			viewerID: "user_a",
			expected: models.ViewerAccepted,
		},
		{
			name:     "declined is symmetric",
			status:   models.ConnectionDeclined,
			viewerID: "user_b",
			expected: models.ViewerDeclined,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := models.Connection{
				RequesterID: "user_a",
				AddresseeID: "user_b",
				Status:      tt.status,
			}
			assert.Equal(t, tt.expected, conn.StatusFor(tt.viewerID))
		})
	}
}

func TestConnectionParties(t *testing.T) {
	conn := models.Connection{RequesterID: "user_a", AddresseeID: "user_b"}

	assert.True(t, conn.Involves("user_a"))
	assert.True(t, conn.Involves("user_b"))
	assert.False(t, conn.Involves("user_c"))

	assert.Equal(t, "user_b", conn.OtherParty("user_a"))
	assert.Equal(t, "user_a", conn.OtherParty("user_b"))
}

// TestConnectionStructTags verifies the tags enforcing the uniqueness
// invariant survive refactoring.
func TestConnectionStructTags(t *testing.T) {
	connType := reflect.TypeOf(models.Connection{})

	idField, found := connType.FieldByName("ID")
	assert.True(t, found)
	assert.Contains(t, idField.Tag.Get("gorm"), "primaryKey")

	pairField, found := connType.FieldByName("PairKey")
	assert.True(t, found)
	assert.Contains(t, pairField.Tag.Get("gorm"), "uniqueIndex:uniq_active_pair",
		"PairKey must carry the active-pair unique index")
	assert.Contains(t, pairField.Tag.Get("gorm"), "where:status <> 'DECLINED'",
		"the unique index must ignore declined history records")
	assert.Equal(t, "-", pairField.Tag.Get("json"), "PairKey is internal, never serialized")

	statusField, found := connType.FieldByName("Status")
	assert.True(t, found)
	assert.Contains(t, statusField.Tag.Get("gorm"), "default:'PENDING'")
}
