package storage

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"impulsa/backend/internal/common"
	"impulsa/backend/internal/models"
)

// SaveEntrepreneurship persists a venture profile.
func (s *Service) SaveEntrepreneurship(e *models.Entrepreneurship) error {
	if err := s.DB.Save(e).Error; err != nil {
		log.Printf("ERROR: Failed to save entrepreneurship %s: %v", e.Name, err)
		return err
	}
	return nil
}

// GetEntrepreneurshipByID returns the profile or ErrNotFound.
func (s *Service) GetEntrepreneurshipByID(id string) (*models.Entrepreneurship, error) {
	var e models.Entrepreneurship

	err := s.DB.Where("id = ?", id).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		log.Printf("ERROR: Failed to get entrepreneurship %s: %v", id, err)
		return nil, err
	}

	return &e, nil
}

// ListEntrepreneurships returns the grid, newest first, optionally filtered
// by sector tag.
func (s *Service) ListEntrepreneurships(sector string) ([]models.Entrepreneurship, error) {
	q := s.DB.Model(&models.Entrepreneurship{})
	if sector != "" {
		q = q.Where("? = ANY(sectors)", sector)
	}

	var list []models.Entrepreneurship
	if err := q.Order("created_at DESC").Find(&list).Error; err != nil {
		log.Printf("ERROR: Failed to list entrepreneurships: %v", err)
		return nil, err
	}
	return list, nil
}

// SaveUser persists a member profile.
func (s *Service) SaveUser(user *models.User) error {
	return s.DB.Save(user).Error
}

// GetUserByID returns the member or ErrNotFound.
func (s *Service) GetUserByID(id string) (*models.User, error) {
	var user models.User

	err := s.DB.Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		log.Printf("ERROR: Failed to get user %s: %v", id, err)
		return nil, err
	}

	return &user, nil
}
