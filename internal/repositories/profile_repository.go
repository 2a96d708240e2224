package repositories

import (
	"errors"
	"fmt"

	"portfolio/internal/models"

	"gorm.io/gorm"
)

// ProfileRepository defines the interface for profile data access.
type ProfileRepository interface {
	Get() (*models.Profile, error)
}

// GORMProfileRepository is a GORM implementation of ProfileRepository.
type GORMProfileRepository struct {
	db *gorm.DB
}

// NewGORMProfileRepository creates a new instance of GORMProfileRepository.
func NewGORMProfileRepository(db *gorm.DB) *GORMProfileRepository {
	return &GORMProfileRepository{
		db: db,
	}
}

// Get returns the first profile row, or ErrNotFound when the table is empty.
func (r *GORMProfileRepository) Get() (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.Order("id ASC").Limit(1).Take(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}
