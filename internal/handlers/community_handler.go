package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// ListCollection serves every document of one collection.
func (h *Handler) ListCollection(collection string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		docs, err := h.resources.List(c.UserContext(), collection)
		if err != nil {
			return err
		}
		return c.JSON(docs)
	}
}

// CreateInCollection stores the request body verbatim in one collection.
func (h *Handler) CreateInCollection(collection string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := parseDocument(c)
		if err != nil {
			return err
		}

		result, err := h.resources.Insert(c.UserContext(), collection, doc)
		if err != nil {
			return err
		}
		return c.JSON(result)
	}
}

func (h *Handler) AddComment(c *fiber.Ctx) error {
	comment, err := parseDocument(c)
	if err != nil {
		return err
	}

	result, err := h.resources.AddComment(c.UserContext(), c.Params("id"), comment)
	if err != nil {
		return err
	}
	return c.JSON(result)
}
