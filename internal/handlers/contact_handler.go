package handlers

import (
	"portfolio/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ContactRequest represents the request body of the contact form.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// ContactHandler handles the contact form and the message inbox.
type ContactHandler struct {
	service  *services.MessageService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(service *services.MessageService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

// RegisterRoutes registers the contact and message routes.
func (h *ContactHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/contact", h.HandleSubmitContact)

	messages := router.Group("/messages")
	messages.Get("/", h.HandleGetMessages)
	messages.Put("/:id/read", h.HandleMarkRead)
	messages.Delete("/:id", h.HandleDeleteMessage)
}

// HandleSubmitContact stores a contact form submission.
func (h *ContactHandler) HandleSubmitContact(c *fiber.Ctx) error {
	var req ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, "All fields required", err)
	}

	id, err := h.service.SaveContactMessage(req.Name, req.Email, req.Message)
	if err != nil {
		h.logger.Error("Error saving contact message", zap.String("email", req.Email), zap.Error(err))
		return storageFailure(c, "Could not save message")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      id,
		"message": "💌 Message received!",
	})
}

// HandleGetMessages returns all contact messages, newest first.
func (h *ContactHandler) HandleGetMessages(c *fiber.Ctx) error {
	messages, err := h.service.ListMessages()
	if err != nil {
		h.logger.Error("Error getting messages", zap.Error(err))
		return storageFailure(c, "Could not retrieve messages")
	}
	return c.JSON(messages)
}

// HandleMarkRead marks a message as read. Unknown IDs still succeed.
func (h *ContactHandler) HandleMarkRead(c *fiber.Ctx) error {
	id, err := messageID(c)
	if err != nil {
		return err
	}

	if err := h.service.MarkMessageRead(id); err != nil {
		h.logger.Error("Error marking message read", zap.Uint("id", id), zap.Error(err))
		return storageFailure(c, "Could not update message")
	}
	return c.JSON(fiber.Map{
		"message": "✅ Marked as read",
	})
}

// HandleDeleteMessage deletes a message. Unknown IDs still succeed.
func (h *ContactHandler) HandleDeleteMessage(c *fiber.Ctx) error {
	id, err := messageID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteMessage(id); err != nil {
		h.logger.Error("Error deleting message", zap.Uint("id", id), zap.Error(err))
		return storageFailure(c, "Could not delete message")
	}
	return c.JSON(fiber.Map{
		"message": "🗑 Message deleted",
	})
}

func messageID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid message ID")
	}
	return uint(id), nil
}
