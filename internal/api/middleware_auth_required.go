package api

import (
	"github.com/dmatosb/horabank/internal/models"
	"github.com/gofiber/fiber/v2"
)

// AdminRequired authenticates the session cookie and reloads the
// administrator row on every request, so capability revocations take
// effect immediately rather than at next login.
func (handler *Handler) AdminRequired(c *fiber.Ctx) error {
	claims, err := handler.sessionClaims(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	if claims.Role != models.RoleAdmin {
		return apiError(c, fiber.StatusForbidden, "admin access required")
	}

	admin, err := handler.authService.FindAdmin(claims.UserID)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	c.Locals(contextSessionKey, claims)
	c.Locals(contextAdminKey, admin)
	return c.Next()
}

// CollaboratorRequired authenticates the session cookie, reloads the
// collaborator row and rejects deactivated accounts.
func (handler *Handler) CollaboratorRequired(c *fiber.Ctx) error {
	claims, err := handler.sessionClaims(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	if claims.Role != models.RoleCollaborator {
		return apiError(c, fiber.StatusForbidden, "collaborator access required")
	}

	collaborator, err := handler.authService.FindCollaborator(claims.UserID)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	if !collaborator.IsActive {
		return apiError(c, fiber.StatusForbidden, "account is inactive, contact an administrator")
	}

	c.Locals(contextSessionKey, claims)
	c.Locals(contextCollaboratorKey, collaborator)
	return c.Next()
}

// requireCapability enforces the per-operation permission flag for the
// administrator already loaded by AdminRequired.
func (handler *Handler) requireCapability(c *fiber.Ctx, capability models.Capability) (models.Administrator, bool) {
	admin, ok := currentAdmin(c)
	if !ok {
		_ = apiError(c, fiber.StatusUnauthorized, "unauthorized")
		return models.Administrator{}, false
	}
	if !admin.Allows(capability) {
		_ = apiError(c, fiber.StatusForbidden, "missing permission for this action")
		return models.Administrator{}, false
	}
	return admin, true
}
