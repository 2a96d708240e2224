package handlers

import (
	"portfolio/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// VisitorHandler exposes the visitor counter.
type VisitorHandler struct {
	service *services.VisitorService
	logger  *zap.Logger
}

// NewVisitorHandler creates a new VisitorHandler.
func NewVisitorHandler(service *services.VisitorService, logger *zap.Logger) *VisitorHandler {
	return &VisitorHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the visitor routes.
func (h *VisitorHandler) RegisterRoutes(router fiber.Router) {
	visitors := router.Group("/visitors")
	visitors.Get("/", h.HandleGetCount)
	visitors.Post("/increment", h.HandleIncrement)
}

func (h *VisitorHandler) HandleGetCount(c *fiber.Ctx) error {
	count, err := h.service.GetVisitorCount()
	if err != nil {
		h.logger.Error("Error getting visitor count", zap.Error(err))
		return storageFailure(c, "Could not retrieve visitor count")
	}
	return c.JSON(fiber.Map{"count": count})
}

func (h *VisitorHandler) HandleIncrement(c *fiber.Ctx) error {
	count, err := h.service.IncrementVisitorCount()
	if err != nil {
		h.logger.Error("Error incrementing visitor count", zap.Error(err))
		return storageFailure(c, "Could not update visitor count")
	}
	return c.JSON(fiber.Map{"count": count})
}
