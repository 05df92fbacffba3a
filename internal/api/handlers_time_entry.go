package api

import (
	"errors"
	"log"

	"github.com/dmatosb/horabank/internal/models"
	"github.com/dmatosb/horabank/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type timeEntryInput struct {
	CollaboratorID uint    `json:"collaboratorId"`
	HoursChange    float64 `json:"hoursChange"`
	Description    string  `json:"description"`
}

// CreateTimeEntry posts a manual hour adjustment to a collaborator's
// balance and records the ledger row.
func (handler *Handler) CreateTimeEntry(c *fiber.Ctx) error {
	admin, ok := handler.requireCapability(c, models.CapabilityEnterHours)
	if !ok {
		return nil
	}

	var input timeEntryInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	entry, err := handler.ledgerService.ApplyManualAdjustment(input.CollaboratorID, input.HoursChange, input.Description, admin.ID)
	switch {
	case errors.Is(err, services.ErrZeroHoursChange):
		return apiError(c, fiber.StatusBadRequest, "hours change must not be zero")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apiError(c, fiber.StatusNotFound, "collaborator not found")
	case err != nil:
		log.Printf("time entry failed for collaborator %d: %v", input.CollaboratorID, err)
		return apiError(c, fiber.StatusInternalServerError, "failed to record time entry")
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}
