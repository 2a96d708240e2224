package repositories

import (
	"fmt"

	"portfolio/internal/models"

	"gorm.io/gorm"
)

// ProjectRepository defines the interface for project data access.
type ProjectRepository interface {
	GetAll() ([]models.Project, error)
	Create(project *models.Project) error
}

// GORMProjectRepository is a GORM implementation of ProjectRepository.
type GORMProjectRepository struct {
	db *gorm.DB
}

// NewGORMProjectRepository creates a new instance of GORMProjectRepository.
func NewGORMProjectRepository(db *gorm.DB) *GORMProjectRepository {
	return &GORMProjectRepository{
		db: db,
	}
}

// GetAll retrieves all projects, newest first.
func (r *GORMProjectRepository) GetAll() ([]models.Project, error) {
	projects := []models.Project{}
	if err := r.db.Order("created_at DESC").Order("id DESC").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("failed to get all projects: %w", err)
	}
	return projects, nil
}

// Create inserts a project and sets its generated ID.
func (r *GORMProjectRepository) Create(project *models.Project) error {
	if err := r.db.Create(project).Error; err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}
