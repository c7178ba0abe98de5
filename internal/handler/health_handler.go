package handler

import (
	"interview-ai/internal/dto"

	"github.com/gofiber/fiber/v2"
)

// Health handles GET /healthz. It reports the configured content provider.
func Health(providerName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":   "ok",
			"provider": providerName,
		})
	}
}

// NotFound is the catch-all for unknown routes
func NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: "route not found"})
}
