package services

import (
	"portfolio/internal/models"
	"portfolio/internal/repositories"
)

// Defaults applied to skills submitted without the optional fields.
const (
	DefaultSkillEmoji       = "⚡"
	DefaultSkillColor       = "#ff6b9d"
	DefaultSkillProficiency = 50
)

// NewSkill carries the fields accepted when adding a skill. Omitted (nil)
// optional fields fall back to the defaults above; explicit values, empty
// strings included, are stored as given.
type NewSkill struct {
	Name        string  `json:"name" validate:"required"`
	Emoji       *string `json:"emoji"`
	Color       *string `json:"color"`
	Proficiency *int    `json:"proficiency"`
}

// SkillService handles business logic related to skills.
type SkillService struct {
	repo repositories.SkillRepository
}

// NewSkillService creates a new SkillService.
func NewSkillService(repo repositories.SkillRepository) *SkillService {
	return &SkillService{
		repo: repo,
	}
}

// GetAllSkills retrieves all skills, most proficient first.
func (s *SkillService) GetAllSkills() ([]models.Skill, error) {
	return s.repo.GetAll()
}

// AddSkill stores a new skill and returns its ID. Proficiency is not range checked.
func (s *SkillService) AddSkill(req NewSkill) (uint, error) {
	skill := &models.Skill{
		Name:        req.Name,
		Emoji:       DefaultSkillEmoji,
		Color:       DefaultSkillColor,
		Proficiency: DefaultSkillProficiency,
	}
	if req.Emoji != nil {
		skill.Emoji = *req.Emoji
	}
	if req.Color != nil {
		skill.Color = *req.Color
	}
	if req.Proficiency != nil {
		skill.Proficiency = *req.Proficiency
	}

	if err := s.repo.Create(skill); err != nil {
		return 0, err
	}
	return skill.ID, nil
}
