package services

import "portfolio/internal/repositories"

// VisitorService handles the site visitor counter.
type VisitorService struct {
	repo repositories.VisitorRepository
}

// NewVisitorService creates a new VisitorService.
func NewVisitorService(repo repositories.VisitorRepository) *VisitorService {
	return &VisitorService{
		repo: repo,
	}
}

func (s *VisitorService) GetVisitorCount() (int64, error) {
	return s.repo.GetCount()
}

func (s *VisitorService) IncrementVisitorCount() (int64, error) {
	return s.repo.IncrementCount()
}
