package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmatosb/horabank/internal/db"
	"github.com/dmatosb/horabank/internal/models"
)

var (
	ErrInsufficientBalance  = errors.New("balance below leave request minimum")
	ErrInvalidLeaveHours    = errors.New("requested hours must be positive")
	ErrLeaveAlreadyDecided  = errors.New("leave request already decided")
	ErrInvalidLeaveDecision = errors.New("decision must be approved or rejected")
)

type LeaveCollaboratorRepository interface {
	FindByID(collaboratorID uint) (models.Collaborator, error)
}

type LeaveRequestRepository interface {
	FindByID(requestID uint) (models.LeaveRequest, error)
	Create(request *models.LeaveRequest) error
	ListPending() ([]models.LeaveRequest, error)
	ListByCollaborator(collaboratorID uint) ([]models.LeaveRequest, error)
	Approve(requestID uint, adminID uint, adminNotes string, description string) (models.LeaveRequest, models.TimeEntry, error)
	Reject(requestID uint, adminID uint, adminNotes string) (models.LeaveRequest, error)
}

// LeaveService owns the pending -> approved | rejected state machine.
type LeaveService struct {
	collaborators LeaveCollaboratorRepository
	requests      LeaveRequestRepository
}

func NewLeaveService(collaborators LeaveCollaboratorRepository, requests LeaveRequestRepository) *LeaveService {
	return &LeaveService{collaborators: collaborators, requests: requests}
}

// Submit files a pending leave request. The collaborator needs a
// balance of at least models.MinimumLeaveBalance hours and must ask
// for a positive amount.
func (service *LeaveService) Submit(collaboratorID uint, requestDate time.Time, hoursRequested float64, reason string) (models.LeaveRequest, error) {
	if hoursRequested <= 0 {
		return models.LeaveRequest{}, ErrInvalidLeaveHours
	}

	collaborator, err := service.collaborators.FindByID(collaboratorID)
	if err != nil {
		return models.LeaveRequest{}, err
	}
	if collaborator.Balance < models.MinimumLeaveBalance {
		return models.LeaveRequest{}, ErrInsufficientBalance
	}

	request := models.LeaveRequest{
		CollaboratorID: collaboratorID,
		RequestDate:    requestDate,
		HoursRequested: hoursRequested,
		Reason:         strings.TrimSpace(reason),
		Status:         models.LeaveStatusPending,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	if err := service.requests.Create(&request); err != nil {
		return models.LeaveRequest{}, err
	}
	return request, nil
}

func (service *LeaveService) ListPending() ([]models.LeaveRequest, error) {
	return service.requests.ListPending()
}

func (service *LeaveService) ListForCollaborator(collaboratorID uint) ([]models.LeaveRequest, error) {
	return service.requests.ListByCollaborator(collaboratorID)
}

// Decide moves a pending request to its terminal status. Approval
// deducts the requested hours through the ledger atomically with the
// status change; rejection only records the decision.
func (service *LeaveService) Decide(requestID uint, adminID uint, status string, adminNotes string) (models.LeaveRequest, error) {
	adminNotes = strings.TrimSpace(adminNotes)

	switch status {
	case models.LeaveStatusApproved:
		request, err := service.requests.FindByID(requestID)
		if err != nil {
			return models.LeaveRequest{}, err
		}
		description := approvalDescription(request.RequestDate, adminNotes)
		decided, _, err := service.requests.Approve(requestID, adminID, adminNotes, description)
		if errors.Is(err, db.ErrLeaveRequestDecided) {
			return models.LeaveRequest{}, ErrLeaveAlreadyDecided
		}
		if err != nil {
			return models.LeaveRequest{}, err
		}
		return decided, nil
	case models.LeaveStatusRejected:
		decided, err := service.requests.Reject(requestID, adminID, adminNotes)
		if errors.Is(err, db.ErrLeaveRequestDecided) {
			return models.LeaveRequest{}, ErrLeaveAlreadyDecided
		}
		if err != nil {
			return models.LeaveRequest{}, err
		}
		return decided, nil
	default:
		return models.LeaveRequest{}, ErrInvalidLeaveDecision
	}
}

func approvalDescription(requestDate time.Time, adminNotes string) string {
	description := fmt.Sprintf("Leave approved for %s.", requestDate.Format("02/01/2006"))
	if adminNotes != "" {
		description += " Admin notes: " + adminNotes
	}
	return description
}
