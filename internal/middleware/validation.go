package middleware

import (
	"interview-ai/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateInterviewID rejects malformed :id path parameters before they reach the database
func (vm *ValidationMiddleware) ValidateInterviewID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if errors := vm.validator.ValidateInterviewID(c.Params("id")); len(errors) > 0 {
			return errors // handled by ErrorHandler
		}
		return c.Next()
	}
}
