package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/healthhub/portal-api/internal/db"
	"github.com/healthhub/portal-api/internal/models"
)

func (h *Handler) ListSupplies(c *fiber.Ctx) error {
	supplies, err := h.resources.List(c.UserContext(), db.Supplies)
	if err != nil {
		return err
	}
	return c.JSON(supplies)
}

// TopSupplies returns the six supplies with the highest amount.
func (h *Handler) TopSupplies(c *fiber.Ctx) error {
	supplies, err := h.resources.TopSupplies(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(supplies)
}

func (h *Handler) CreateSupply(c *fiber.Ctx) error {
	supply, err := parseDocument(c)
	if err != nil {
		return err
	}

	result, err := h.resources.Insert(c.UserContext(), db.Supplies, supply)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func (h *Handler) UpdateSupply(c *fiber.Ctx) error {
	var update models.SupplyUpdate
	if err := c.BodyParser(&update); err != nil {
		return errInvalidBody
	}

	result, err := h.resources.UpdateSupply(c.UserContext(), c.Params("id"), update)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func (h *Handler) DeleteSupply(c *fiber.Ctx) error {
	result, err := h.resources.DeleteSupply(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(result)
}
