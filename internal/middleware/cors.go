package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORS rejects requests whose Origin is not in the static allow-list and adds
// CORS headers for the allowed ones. Requests without an Origin header, such
// as curl or same-origin navigation, pass through.
func CORS(allowed []string) fiber.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		set[o] = struct{}{}
	}

	headers := cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			_, ok := set[origin]
			return ok
		},
		AllowHeaders: strings.Join([]string{
			fiber.HeaderOrigin,
			fiber.HeaderContentType,
			fiber.HeaderAccept,
			fiber.HeaderAuthorization,
		}, ","),
	})

	return func(c *fiber.Ctx) error {
		origin := c.Get(fiber.HeaderOrigin)
		if origin == "" {
			return c.Next()
		}
		if _, ok := set[origin]; !ok {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": fmt.Sprintf("The CORS policy for this application doesn't allow access from origin %s", origin),
			})
		}
		return headers(c)
	}
}
