package api

import (
	"net/url"
	"strings"

	"github.com/dmatosb/horabank/internal/models"
	"github.com/gofiber/fiber/v2"
)

// DashboardSummary aggregates every collaborator's balance into
// positive/negative totals for the admin landing page. Any admin role
// may read it; no capability flag is involved.
func (handler *Handler) DashboardSummary(c *fiber.Ctx) error {
	summary, err := handler.reportService.Dashboard()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load dashboard data")
	}
	return c.JSON(summary)
}

// LeaderReport returns one supervisor's team with full ledgers.
func (handler *Handler) LeaderReport(c *fiber.Ctx) error {
	if _, ok := handler.requireCapability(c, models.CapabilityEnterHours); !ok {
		return nil
	}

	leaderName, err := url.PathUnescape(c.Params("name"))
	if err != nil || strings.TrimSpace(leaderName) == "" {
		return apiError(c, fiber.StatusBadRequest, "leader name is required")
	}

	report, err := handler.reportService.Leader(strings.TrimSpace(leaderName))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load leader report")
	}
	return c.JSON(report)
}
