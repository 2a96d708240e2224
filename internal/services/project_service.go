package services

import (
	"portfolio/internal/models"
	"portfolio/internal/repositories"
)

// DefaultProjectImageURL is used for projects submitted without an image.
const DefaultProjectImageURL = "https://images.unsplash.com/photo-1517694712202-14dd9538aa97?w=400"

// NewProject carries the fields accepted when adding a project.
type NewProject struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
	ImageURL     string `json:"image_url"`
}

// ProjectService handles business logic related to projects.
type ProjectService struct {
	repo repositories.ProjectRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(repo repositories.ProjectRepository) *ProjectService {
	return &ProjectService{
		repo: repo,
	}
}

// GetAllProjects retrieves all projects, newest first.
func (s *ProjectService) GetAllProjects() ([]models.Project, error) {
	return s.repo.GetAll()
}

// AddProject stores a new project as given and returns its ID.
func (s *ProjectService) AddProject(req NewProject) (uint, error) {
	project := &models.Project{
		Title:        req.Title,
		Description:  req.Description,
		Technologies: req.Technologies,
		ImageURL:     req.ImageURL,
	}
	if project.ImageURL == "" {
		project.ImageURL = DefaultProjectImageURL
	}

	if err := s.repo.Create(project); err != nil {
		return 0, err
	}
	return project.ID, nil
}
