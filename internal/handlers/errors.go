package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/healthhub/portal-api/internal/services"
)

// ErrorHandler turns every error a route returns into a JSON response.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "Internal server error"

	var fe *fiber.Error
	switch {
	case errors.Is(err, services.ErrUserExists):
		status, message = fiber.StatusBadRequest, "User already exists"
	case errors.Is(err, services.ErrInvalidCredentials):
		status, message = fiber.StatusUnauthorized, "Invalid email or password"
	case errors.Is(err, services.ErrInvalidToken):
		status, message = fiber.StatusUnauthorized, "Invalid token"
	case errors.Is(err, services.ErrUserNotFound):
		status, message = fiber.StatusNotFound, "User not found"
	case errors.Is(err, services.ErrInvalidID):
		status, message = fiber.StatusBadRequest, "Invalid id"
	case errors.As(err, &fe):
		status, message = fe.Code, fe.Message
	default:
		log.Errorw("request failed",
			"method", c.Method(),
			"path", c.Path(),
			"requestid", c.Locals("requestid"),
			"error", err,
		)
	}

	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}
