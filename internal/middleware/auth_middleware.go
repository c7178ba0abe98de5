package middleware

import (
	"strings"

	"interview-ai/internal/domain"
	"interview-ai/internal/service"

	"github.com/gofiber/fiber/v2"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	UserIDKey           = "userID"   // Key for storing the user id in fiber.Ctx locals
	UserNameKey         = "userName" // Display name from the token, may be empty
)

// Protected requires a valid bearer JWT and stores the subject and name in the context.
func Protected(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(AuthorizationHeader)
		if authHeader == "" {
			return domain.NewUnauthorizedError("Authorization header is missing")
		}
		if !strings.HasPrefix(authHeader, BearerSchema) {
			return domain.NewUnauthorizedError("Authorization scheme is not Bearer")
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, BearerSchema))
		if tokenString == "" {
			return domain.NewUnauthorizedError("Token is empty")
		}

		claims, err := authService.ValidateJWT(c.UserContext(), tokenString)
		if err != nil {
			return domain.NewError(domain.ErrUnauthorized, "Invalid or expired token", err)
		}

		c.Locals(UserIDKey, claims.Subject)
		c.Locals(UserNameKey, claims.Name)
		return c.Next()
	}
}

// UserID returns the authenticated user id, or "" outside Protected routes
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(UserIDKey).(string)
	return id
}

// UserName returns the display name carried by the token
func UserName(c *fiber.Ctx) string {
	name, _ := c.Locals(UserNameKey).(string)
	return name
}
