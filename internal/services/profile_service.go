package services

import (
	"portfolio/internal/models"
	"portfolio/internal/repositories"
)

// ProfileService handles business logic related to the portfolio profile.
type ProfileService struct {
	repo repositories.ProfileRepository
}

// NewProfileService creates a new ProfileService.
func NewProfileService(repo repositories.ProfileRepository) *ProfileService {
	return &ProfileService{
		repo: repo,
	}
}

// GetProfile retrieves the profile. It returns repositories.ErrNotFound when none exists.
func (s *ProfileService) GetProfile() (*models.Profile, error) {
	return s.repo.Get()
}
