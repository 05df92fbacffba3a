package api

import (
	"github.com/dmatosb/horabank/internal/models"
	"github.com/gofiber/fiber/v2"
)

const (
	authCookieName = "horabank_auth"

	contextAdminKey        = "current_admin"
	contextCollaboratorKey = "current_collaborator"
	contextSessionKey      = "current_session"
)

func currentAdmin(c *fiber.Ctx) (models.Administrator, bool) {
	admin, ok := c.Locals(contextAdminKey).(models.Administrator)
	return admin, ok
}

func currentCollaborator(c *fiber.Ctx) (models.Collaborator, bool) {
	collaborator, ok := c.Locals(contextCollaboratorKey).(models.Collaborator)
	return collaborator, ok
}
