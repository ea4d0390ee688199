package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/vbms/inventory-service/pkg/auth"
)

// AuthMiddleware validates the JWT and stamps the owning customer onto the
// request. Backend services trust X-Owner-ID and never see the token.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization header required",
			})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid authorization header format",
			})
		}

		claims, err := auth.ValidateToken(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token",
			})
		}

		c.Locals("owner_id", claims.CustomerID)
		c.Locals("email", claims.Email)
		c.Locals("role", claims.Role)

		c.Request().Header.Set("X-Owner-ID", fmt.Sprintf("%d", claims.CustomerID))
		c.Request().Header.Set("X-Owner-Email", claims.Email)

		return c.Next()
	}
}

// AdminMiddleware restricts a route to admin tokens
func AdminMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := c.Locals("role")
		if role == nil || role.(string) != "admin" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Admin access required",
			})
		}
		return c.Next()
	}
}
