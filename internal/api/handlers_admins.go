package api

import (
	"errors"

	"github.com/dmatosb/horabank/internal/models"
	"github.com/dmatosb/horabank/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminSelf returns the acting administrator's own record; the
// password hash never serializes.
func (handler *Handler) AdminSelf(c *fiber.Ctx) error {
	admin, ok := currentAdmin(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(admin)
}

func (handler *Handler) ListAdministrators(c *fiber.Ctx) error {
	if _, ok := handler.requireCapability(c, models.CapabilityCreateAdmin); !ok {
		return nil
	}

	admins, err := handler.accountService.ListAdmins()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load administrators")
	}
	return c.JSON(fiber.Map{"administrators": admins})
}

func (handler *Handler) CreateAdministrator(c *fiber.Ctx) error {
	if _, ok := handler.requireCapability(c, models.CapabilityCreateAdmin); !ok {
		return nil
	}

	var input services.AdminInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	admin, err := handler.accountService.CreateAdmin(input)
	switch {
	case errors.Is(err, services.ErrMissingRequiredFields):
		return apiError(c, fiber.StatusBadRequest, "full name, username and password are required")
	case errors.Is(err, services.ErrDuplicateAccount):
		return apiError(c, fiber.StatusBadRequest, "username or badge number already exists")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to add administrator")
	}
	return c.Status(fiber.StatusCreated).JSON(admin)
}

func (handler *Handler) UpdateAdministrator(c *fiber.Ctx) error {
	if _, ok := handler.requireCapability(c, models.CapabilityCreateAdmin); !ok {
		return nil
	}

	adminID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid administrator id")
	}

	var input services.AdminInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	err = handler.accountService.UpdateAdmin(adminID, input)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apiError(c, fiber.StatusNotFound, "administrator not found")
	case errors.Is(err, services.ErrProtectedAdministrator):
		return apiError(c, fiber.StatusBadRequest, "the default administrator cannot be changed here")
	case errors.Is(err, services.ErrMissingRequiredFields):
		return apiError(c, fiber.StatusBadRequest, "full name and username are required")
	case errors.Is(err, services.ErrDuplicateAccount):
		return apiError(c, fiber.StatusBadRequest, "username or badge number already exists")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to update administrator")
	}
	return c.JSON(fiber.Map{"message": "administrator updated"})
}

func (handler *Handler) DeleteAdministrator(c *fiber.Ctx) error {
	if _, ok := handler.requireCapability(c, models.CapabilityCreateAdmin); !ok {
		return nil
	}

	adminID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid administrator id")
	}

	err = handler.accountService.DeleteAdmin(adminID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apiError(c, fiber.StatusNotFound, "administrator not found")
	case errors.Is(err, services.ErrProtectedAdministrator):
		return apiError(c, fiber.StatusBadRequest, "the default administrator cannot be deleted")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to delete administrator")
	}
	return c.JSON(fiber.Map{"message": "administrator deleted"})
}
