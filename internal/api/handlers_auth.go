package api

import (
	"errors"
	"time"

	"github.com/dmatosb/horabank/internal/models"
	"github.com/dmatosb/horabank/internal/services"
	"github.com/gofiber/fiber/v2"
)

// Collaborator access codes are short numeric secrets, so failed
// logins are throttled per client address.
const (
	loginAttemptLimit  = 10
	loginAttemptWindow = 15 * time.Minute
)

type adminLoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type collaboratorLoginInput struct {
	AccessCode string `json:"accessCode"`
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) AdminLogin(c *fiber.Ctx) error {
	var input adminLoginInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	admin, err := handler.authService.AdminLogin(input.Username, input.Password)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid username or password")
	}

	if err := handler.setAuthCookie(c, admin.ID, models.RoleAdmin); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return c.JSON(fiber.Map{"message": "login successful"})
}

func (handler *Handler) CollaboratorLogin(c *fiber.Ctx) error {
	var input collaboratorLoginInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	limiterKey := requestLimiterKey(c)
	now := time.Now()
	if handler.loginLimiter.tooManyRecent(limiterKey, now, loginAttemptLimit, loginAttemptWindow) {
		return apiError(c, fiber.StatusTooManyRequests, "too many login attempts, try again later")
	}

	collaborator, err := handler.authService.CollaboratorLogin(input.AccessCode)
	if errors.Is(err, services.ErrInactiveAccount) {
		return apiError(c, fiber.StatusForbidden, "account is inactive, contact an administrator")
	}
	if err != nil {
		handler.loginLimiter.addFailure(limiterKey, now, loginAttemptWindow)
		return apiError(c, fiber.StatusUnauthorized, "invalid access code")
	}

	if err := handler.setAuthCookie(c, collaborator.ID, models.RoleCollaborator); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	handler.loginLimiter.reset(limiterKey)
	return c.JSON(fiber.Map{"message": "login successful"})
}

// GetSession echoes the decoded session claims, or 401 when no valid
// session cookie accompanies the request.
func (handler *Handler) GetSession(c *fiber.Ctx) error {
	claims, err := handler.sessionClaims(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "no active session")
	}
	return c.JSON(fiber.Map{
		"userId":    claims.UserID,
		"role":      claims.Role,
		"expiresAt": claims.ExpiresAt.Time,
	})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"message": "logout successful"})
}
