package handlers

import (
	"errors"

	"portfolio/internal/repositories"
	"portfolio/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PortfolioHandler serves the public portfolio content: profile, skills and projects.
type PortfolioHandler struct {
	profiles *services.ProfileService
	skills   *services.SkillService
	projects *services.ProjectService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(profiles *services.ProfileService, skills *services.SkillService, projects *services.ProjectService, logger *zap.Logger) *PortfolioHandler {
	return &PortfolioHandler{
		profiles: profiles,
		skills:   skills,
		projects: projects,
		validate: validator.New(),
		logger:   logger,
	}
}

// RegisterRoutes registers the portfolio routes.
func (h *PortfolioHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/profile", h.HandleGetProfile)
	router.Get("/skills", h.HandleGetSkills)
	router.Post("/skills", h.HandleAddSkill)
	router.Get("/projects", h.HandleGetProjects)
	router.Post("/projects", h.HandleAddProject)
}

// HandleGetProfile returns the portfolio profile.
func (h *PortfolioHandler) HandleGetProfile(c *fiber.Ctx) error {
	profile, err := h.profiles.GetProfile()
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Not found",
			})
		}
		h.logger.Error("Error getting profile", zap.Error(err))
		return storageFailure(c, "Could not retrieve profile")
	}
	return c.JSON(profile)
}

// HandleGetSkills returns all skills, most proficient first.
func (h *PortfolioHandler) HandleGetSkills(c *fiber.Ctx) error {
	skills, err := h.skills.GetAllSkills()
	if err != nil {
		h.logger.Error("Error getting skills", zap.Error(err))
		return storageFailure(c, "Could not retrieve skills")
	}
	return c.JSON(skills)
}

// HandleAddSkill creates a skill from the request body.
func (h *PortfolioHandler) HandleAddSkill(c *fiber.Ctx) error {
	var req services.NewSkill
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, "Skill name is required", err)
	}

	id, err := h.skills.AddSkill(req)
	if err != nil {
		h.logger.Error("Error adding skill", zap.String("name", req.Name), zap.Error(err))
		return storageFailure(c, "Could not add skill")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      id,
		"message": "✅ Skill added!",
	})
}

// HandleGetProjects returns all projects, newest first.
func (h *PortfolioHandler) HandleGetProjects(c *fiber.Ctx) error {
	projects, err := h.projects.GetAllProjects()
	if err != nil {
		h.logger.Error("Error getting projects", zap.Error(err))
		return storageFailure(c, "Could not retrieve projects")
	}
	return c.JSON(projects)
}

// HandleAddProject creates a project from the request body.
func (h *PortfolioHandler) HandleAddProject(c *fiber.Ctx) error {
	var req services.NewProject
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, "Project title is required", err)
	}

	id, err := h.projects.AddProject(req)
	if err != nil {
		h.logger.Error("Error adding project", zap.String("title", req.Title), zap.Error(err))
		return storageFailure(c, "Could not add project")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      id,
		"message": "✅ Project added!",
	})
}
