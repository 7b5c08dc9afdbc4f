// Package directory manages the entrepreneurship grid: the venture profiles
// members browse before requesting a connection. Message channels may be
// scoped to one of these profiles.
package directory

import (
	"strings"

	"github.com/lib/pq"

	"impulsa/backend/internal/common"
	"impulsa/backend/internal/config"
	"impulsa/backend/internal/models"
	"impulsa/backend/internal/storage"
)

// Service handles the business logic for the directory.
type Service struct {
	Store storage.DirectoryStore
}

// NewService creates a new directory service.
func NewService(store storage.DirectoryStore) *Service {
	return &Service{Store: store}
}

// Publish creates a venture profile owned by ownerID.
func (s *Service) Publish(ownerID, name, description string, sectors []string) (*models.Entrepreneurship, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, common.ErrEmptyName
	}
	if len(name) > config.MaxProfileNameLength {
		return nil, common.ErrContentTooLong
	}

	e := &models.Entrepreneurship{
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
		Sectors:     pq.StringArray(sectors),
	}
	if err := s.Store.SaveEntrepreneurship(e); err != nil {
		return nil, err
	}
	return e, nil
}

// Get returns one profile by id.
func (s *Service) Get(id string) (*models.Entrepreneurship, error) {
	return s.Store.GetEntrepreneurshipByID(id)
}

// List returns the grid, optionally filtered by sector tag.
func (s *Service) List(sector string) ([]models.Entrepreneurship, error) {
	return s.Store.ListEntrepreneurships(sector)
}
