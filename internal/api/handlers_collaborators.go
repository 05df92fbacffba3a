package api

import (
	"errors"

	"github.com/dmatosb/horabank/internal/models"
	"github.com/dmatosb/horabank/internal/security"
	"github.com/dmatosb/horabank/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func (handler *Handler) ListCollaborators(c *fiber.Ctx) error {
	if _, ok := handler.requireCapability(c, models.CapabilityCreateCollaborator); !ok {
		return nil
	}

	collaborators, err := handler.accountService.ListCollaborators()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load collaborators")
	}
	return c.JSON(fiber.Map{"collaborators": collaborators})
}

func (handler *Handler) CreateCollaborator(c *fiber.Ctx) error {
	if _, ok := handler.requireCapability(c, models.CapabilityCreateCollaborator); !ok {
		return nil
	}

	var input services.CollaboratorInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	collaborator, err := handler.accountService.CreateCollaborator(input)
	switch {
	case errors.Is(err, services.ErrMissingRequiredFields):
		return apiError(c, fiber.StatusBadRequest, "full name and badge number are required")
	case errors.Is(err, services.ErrInvalidAccessCode):
		return apiError(c, fiber.StatusBadRequest, "access code must be 6 to 10 numeric digits")
	case errors.Is(err, services.ErrDuplicateAccount):
		return apiError(c, fiber.StatusBadRequest, "badge number or access code already exists")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to add collaborator")
	}
	return c.Status(fiber.StatusCreated).JSON(collaborator)
}

func (handler *Handler) UpdateCollaborator(c *fiber.Ctx) error {
	if _, ok := handler.requireCapability(c, models.CapabilityCreateCollaborator); !ok {
		return nil
	}

	collaboratorID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid collaborator id")
	}

	var input services.CollaboratorInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	err = handler.accountService.UpdateCollaborator(collaboratorID, input)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apiError(c, fiber.StatusNotFound, "collaborator not found")
	case errors.Is(err, services.ErrMissingRequiredFields):
		return apiError(c, fiber.StatusBadRequest, "full name and badge number are required")
	case errors.Is(err, services.ErrInvalidAccessCode):
		return apiError(c, fiber.StatusBadRequest, "access code must be 6 to 10 numeric digits")
	case errors.Is(err, services.ErrDuplicateAccount):
		return apiError(c, fiber.StatusBadRequest, "badge number or access code already exists")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to update collaborator")
	}
	return c.JSON(fiber.Map{"message": "collaborator updated"})
}

func (handler *Handler) DeleteCollaborator(c *fiber.Ctx) error {
	if _, ok := handler.requireCapability(c, models.CapabilityCreateCollaborator); !ok {
		return nil
	}

	collaboratorID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid collaborator id")
	}

	err = handler.accountService.DeleteCollaborator(collaboratorID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apiError(c, fiber.StatusNotFound, "collaborator not found")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to delete collaborator")
	}
	return c.JSON(fiber.Map{"message": "collaborator deleted"})
}

type changeAccessCodeInput struct {
	CollaboratorID uint   `json:"collaboratorId"`
	NewAccessCode  string `json:"newAccessCode"`
}

func (handler *Handler) ChangeAccessCode(c *fiber.Ctx) error {
	if _, ok := handler.requireCapability(c, models.CapabilityChangeAccessCode); !ok {
		return nil
	}

	var input changeAccessCodeInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	err := handler.accountService.ChangeAccessCode(input.CollaboratorID, input.NewAccessCode)
	switch {
	case errors.Is(err, services.ErrInvalidAccessCode):
		return apiError(c, fiber.StatusBadRequest, "access code must be 6 to 10 numeric digits")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apiError(c, fiber.StatusNotFound, "collaborator not found")
	case errors.Is(err, services.ErrDuplicateAccount):
		return apiError(c, fiber.StatusBadRequest, "this access code is already in use")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to update access code")
	}
	return c.JSON(fiber.Map{"message": "access code updated"})
}

// SuggestAccessCode returns a random, well-formed access code an admin
// can hand to a collaborator. Uniqueness is still enforced at write
// time.
func (handler *Handler) SuggestAccessCode(c *fiber.Ctx) error {
	if _, ok := handler.requireCapability(c, models.CapabilityChangeAccessCode); !ok {
		return nil
	}

	code, err := security.RandomDigits(8)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to generate access code")
	}
	return c.JSON(fiber.Map{"accessCode": code})
}
