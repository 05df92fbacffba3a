package api

import (
	"errors"

	"github.com/dmatosb/horabank/internal/models"
	"github.com/dmatosb/horabank/internal/services"
	"github.com/gofiber/fiber/v2"
)

type announcementInput struct {
	Content string `json:"content"`
}

// GetAnnouncement returns the active announcement, or a JSON null body
// when none is set.
func (handler *Handler) GetAnnouncement(c *fiber.Ctx) error {
	announcement, err := handler.announcementService.Active()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load announcement")
	}
	return c.JSON(announcement)
}

// SetAnnouncement replaces the active announcement; older ones are
// deactivated in the same transaction.
func (handler *Handler) SetAnnouncement(c *fiber.Ctx) error {
	admin, ok := handler.requireCapability(c, models.CapabilityEnterHours)
	if !ok {
		return nil
	}

	var input announcementInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	announcement, err := handler.announcementService.Publish(input.Content, admin.ID)
	switch {
	case errors.Is(err, services.ErrEmptyAnnouncement):
		return apiError(c, fiber.StatusBadRequest, "announcement content is required")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to update announcement")
	}
	return c.JSON(fiber.Map{"message": "announcement updated", "announcement": announcement})
}

// CollaboratorAnnouncement lets an authenticated collaborator read the
// active announcement shown on their dashboard.
func (handler *Handler) CollaboratorAnnouncement(c *fiber.Ctx) error {
	announcement, err := handler.announcementService.Active()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load announcement")
	}
	return c.JSON(announcement)
}
