package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/healthhub/portal-api/internal/services"
)

const emailKey = "email"

// TokenParser verifies a bearer token and returns its claims.
type TokenParser interface {
	ParseToken(token string) (*services.Claims, error)
}

// AuthMiddleware validates the bearer token and stores the caller's email
// for the next handlers.
func AuthMiddleware(parser TokenParser) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Get the Authorization header
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Missing token")
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token format")
		}

		claims, err := parser.ParseToken(tokenString)
		if err != nil {
			return err
		}

		c.Locals(emailKey, claims.Email)
		return c.Next()
	}
}

// Email returns the address stored by AuthMiddleware, or "".
func Email(c *fiber.Ctx) string {
	email, _ := c.Locals(emailKey).(string)
	return email
}
