package middleware

import (
	"strings"

	"movieapi/internal/logging"
	"movieapi/internal/services"

	"github.com/gofiber/fiber/v2"
)

// LocalsUsername is the fiber.Ctx locals key holding the authenticated username.
const LocalsUsername = "username"

// AuthRequired is a Fiber middleware to check for a valid JWT token.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			logging.Debug().Err(err).Str("path", c.Path()).Msg("JWT validation failed")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
				"error":   err.Error(),
			})
		}

		c.Locals(LocalsUsername, claims.Username)
		return c.Next()
	}
}

// Username returns the authenticated username stored by AuthRequired, or "".
func Username(c *fiber.Ctx) string {
	username, _ := c.Locals(LocalsUsername).(string)
	return username
}
