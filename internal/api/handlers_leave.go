package api

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/dmatosb/horabank/internal/models"
	"github.com/dmatosb/horabank/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type leaveRequestInput struct {
	RequestDate    string  `json:"requestDate"`
	HoursRequested float64 `json:"hoursRequested"`
	Reason         string  `json:"reason"`
}

type leaveDecisionInput struct {
	Status     string `json:"status"`
	AdminNotes string `json:"adminNotes"`
}

// SubmitLeaveRequest files a pending request for the authenticated
// collaborator.
func (handler *Handler) SubmitLeaveRequest(c *fiber.Ctx) error {
	collaborator, ok := currentCollaborator(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input leaveRequestInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	requestDate, err := time.Parse("2006-01-02", strings.TrimSpace(input.RequestDate))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "request date must be YYYY-MM-DD")
	}

	request, err := handler.leaveService.Submit(collaborator.ID, requestDate, input.HoursRequested, input.Reason)
	switch {
	case errors.Is(err, services.ErrInvalidLeaveHours):
		return apiError(c, fiber.StatusBadRequest, "requested hours must be positive")
	case errors.Is(err, services.ErrInsufficientBalance):
		return apiError(c, fiber.StatusBadRequest, "a positive balance of at least 3 hours is required to request leave")
	case err != nil:
		log.Printf("leave request submission failed for collaborator %d: %v", collaborator.ID, err)
		return apiError(c, fiber.StatusInternalServerError, "failed to submit leave request")
	}
	return c.Status(fiber.StatusCreated).JSON(request)
}

func (handler *Handler) ListOwnLeaveRequests(c *fiber.Ctx) error {
	collaborator, ok := currentCollaborator(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	requests, err := handler.leaveService.ListForCollaborator(collaborator.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load leave requests")
	}
	return c.JSON(fiber.Map{"requests": requests})
}

type pendingLeaveRequest struct {
	models.LeaveRequest
	Collaborator *models.Collaborator `json:"collaborator,omitempty"`
}

// ListPendingLeaveRequests returns undecided requests oldest first,
// each joined with its collaborator for the review screen.
func (handler *Handler) ListPendingLeaveRequests(c *fiber.Ctx) error {
	if _, ok := handler.requireCapability(c, models.CapabilityEnterHours); !ok {
		return nil
	}

	requests, err := handler.leaveService.ListPending()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load leave requests")
	}

	enriched := make([]pendingLeaveRequest, 0, len(requests))
	for _, request := range requests {
		item := pendingLeaveRequest{LeaveRequest: request}
		if collaborator, findErr := handler.authService.FindCollaborator(request.CollaboratorID); findErr == nil {
			item.Collaborator = &collaborator
		}
		enriched = append(enriched, item)
	}
	return c.JSON(fiber.Map{"requests": enriched})
}

// DecideLeaveRequest moves a pending request to approved or rejected.
// Approval and its balance deduction commit atomically; a failure
// after validation is reported as a critical error.
func (handler *Handler) DecideLeaveRequest(c *fiber.Ctx) error {
	admin, ok := handler.requireCapability(c, models.CapabilityEnterHours)
	if !ok {
		return nil
	}

	requestID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid leave request id")
	}

	var input leaveDecisionInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	decided, err := handler.leaveService.Decide(requestID, admin.ID, input.Status, input.AdminNotes)
	switch {
	case errors.Is(err, services.ErrInvalidLeaveDecision):
		return apiError(c, fiber.StatusBadRequest, "status must be approved or rejected")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apiError(c, fiber.StatusNotFound, "leave request not found")
	case errors.Is(err, services.ErrLeaveAlreadyDecided):
		return apiError(c, fiber.StatusBadRequest, "this request has already been processed")
	case err != nil:
		log.Printf("critical: leave decision failed for request %d: %v", requestID, err)
		return apiError(c, fiber.StatusInternalServerError, "critical error while applying the leave decision")
	}
	return c.JSON(decided)
}
