package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/healthhub/portal-api/internal/middleware"
)

func (h *Handler) RegisterHandler(c *fiber.Ctx) error {
	var request struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&request); err != nil {
		return errInvalidBody
	}

	if err := h.auth.Register(c.UserContext(), request.Name, request.Email, request.Password); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "User registered successfully",
	})
}

func (h *Handler) LoginHandler(c *fiber.Ctx) error {
	var request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&request); err != nil {
		return errInvalidBody
	}

	token, err := h.auth.Login(c.UserContext(), request.Email, request.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"token":   token,
	})
}

// MeHandler returns the account behind the bearer token.
func (h *Handler) MeHandler(c *fiber.Ctx) error {
	user, err := h.auth.Profile(c.UserContext(), middleware.Email(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "user": user})
}
