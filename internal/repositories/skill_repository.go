package repositories

import (
	"fmt"

	"portfolio/internal/models"

	"gorm.io/gorm"
)

// SkillRepository defines the interface for skill data access.
type SkillRepository interface {
	GetAll() ([]models.Skill, error)
	Create(skill *models.Skill) error
}

// GORMSkillRepository is a GORM implementation of SkillRepository.
type GORMSkillRepository struct {
	db *gorm.DB
}

// NewGORMSkillRepository creates a new instance of GORMSkillRepository.
func NewGORMSkillRepository(db *gorm.DB) *GORMSkillRepository {
	return &GORMSkillRepository{
		db: db,
	}
}

// GetAll retrieves all skills, most proficient first. Ties keep insertion order.
func (r *GORMSkillRepository) GetAll() ([]models.Skill, error) {
	skills := []models.Skill{}
	if err := r.db.Order("proficiency DESC").Order("id ASC").Find(&skills).Error; err != nil {
		return nil, fmt.Errorf("failed to get all skills: %w", err)
	}
	return skills, nil
}

// Create inserts a skill and sets its generated ID.
func (r *GORMSkillRepository) Create(skill *models.Skill) error {
	if err := r.db.Create(skill).Error; err != nil {
		return fmt.Errorf("failed to create skill: %w", err)
	}
	return nil
}
