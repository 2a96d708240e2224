package handlers

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// validationFailed writes a 400 response listing the failed fields.
func validationFailed(c *fiber.Ctx, message string, err error) error {
	errorMessages := make(map[string]string)
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  message,
		"errors": errorMessages,
	})
}

func invalidBody(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":   "Invalid request body",
		"details": err.Error(),
	})
}

// storageFailure hides storage details from clients.
func storageFailure(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": message,
	})
}
