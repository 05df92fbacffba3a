package api

import "github.com/gofiber/fiber/v2"

// CollaboratorData returns the authenticated collaborator's own
// record, including balance and its sign label.
func (handler *Handler) CollaboratorData(c *fiber.Ctx) error {
	collaborator, ok := currentCollaborator(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(collaborator)
}

// CollaboratorHistory returns the collaborator's ledger oldest first,
// the order the balance graph consumes.
func (handler *Handler) CollaboratorHistory(c *fiber.Ctx) error {
	collaborator, ok := currentCollaborator(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	history, err := handler.repositories.TimeEntries.ListByCollaborator(collaborator.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load history")
	}
	return c.JSON(fiber.Map{"history": history})
}
