package handlers

import "github.com/gofiber/fiber/v2"

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":   "Server is running smoothly",
		"timestamp": h.now().UTC(),
	})
}
