package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/healthhub/portal-api/internal/models"
	"github.com/healthhub/portal-api/internal/services"
)

// Handler carries the services every route needs. It is fully built before
// the first route is registered and never mutated afterwards.
type Handler struct {
	auth      *services.AuthService
	resources *services.ResourceService
	now       func() time.Time
}

func New(auth *services.AuthService, resources *services.ResourceService) *Handler {
	return &Handler{auth: auth, resources: resources, now: time.Now}
}

var errInvalidBody = fiber.NewError(fiber.StatusBadRequest, "Invalid request body")

// parseDocument reads a schemaless JSON object from the body. An empty body,
// or one that is not sent as JSON, is an empty document.
func parseDocument(c *fiber.Ctx) (models.Document, error) {
	doc := models.Document{}
	if len(c.Body()) == 0 || !c.Is("json") {
		return doc, nil
	}
	if err := c.BodyParser(&doc); err != nil {
		return nil, errInvalidBody
	}
	return doc, nil
}
