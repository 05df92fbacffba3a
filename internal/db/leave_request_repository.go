package db

import (
	"errors"
	"time"

	"github.com/dmatosb/horabank/internal/models"
	"gorm.io/gorm"
)

// ErrLeaveRequestDecided is returned when a decision is attempted on a
// request that already left the pending state.
var ErrLeaveRequestDecided = errors.New("leave request already decided")

type LeaveRequestRepository struct {
	database *gorm.DB
}

func NewLeaveRequestRepository(database *gorm.DB) *LeaveRequestRepository {
	return &LeaveRequestRepository{database: database}
}

func (repo *LeaveRequestRepository) FindByID(requestID uint) (models.LeaveRequest, error) {
	var request models.LeaveRequest
	if err := repo.database.First(&request, requestID).Error; err != nil {
		return models.LeaveRequest{}, err
	}
	return request, nil
}

func (repo *LeaveRequestRepository) Create(request *models.LeaveRequest) error {
	return repo.database.Create(request).Error
}

// ListPending returns undecided requests, oldest first.
func (repo *LeaveRequestRepository) ListPending() ([]models.LeaveRequest, error) {
	requests := make([]models.LeaveRequest, 0)
	if err := repo.database.
		Where("status = ?", models.LeaveStatusPending).
		Order("created_at ASC, id ASC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// ListByCollaborator returns the collaborator's own requests, newest first.
func (repo *LeaveRequestRepository) ListByCollaborator(collaboratorID uint) ([]models.LeaveRequest, error) {
	requests := make([]models.LeaveRequest, 0)
	if err := repo.database.
		Where("collaborator_id = ?", collaboratorID).
		Order("created_at DESC, id DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// Approve flips a pending request to approved and applies the ledger
// deduction in the same transaction, so the status change, the balance
// update and the history row commit or roll back together.
func (repo *LeaveRequestRepository) Approve(requestID uint, adminID uint, adminNotes string, description string) (models.LeaveRequest, models.TimeEntry, error) {
	var decided models.LeaveRequest
	var entry models.TimeEntry
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		request, txErr := lockPendingRequest(tx, requestID)
		if txErr != nil {
			return txErr
		}

		if txErr := tx.Model(&models.LeaveRequest{}).Where("id = ?", requestID).Updates(map[string]any{
			"status":      models.LeaveStatusApproved,
			"admin_id":    adminID,
			"admin_notes": adminNotes,
			"updated_at":  time.Now(),
		}).Error; txErr != nil {
			return txErr
		}

		created, txErr := applyBalanceAdjustment(tx, request.CollaboratorID, -request.HoursRequested, &adminID, models.EntryTypeLeaveApproved, description)
		if txErr != nil {
			return txErr
		}

		entry = created
		decided = request
		decided.Status = models.LeaveStatusApproved
		decided.AdminID = &adminID
		decided.AdminNotes = adminNotes
		return nil
	})
	if err != nil {
		return models.LeaveRequest{}, models.TimeEntry{}, err
	}
	return decided, entry, nil
}

// Reject flips a pending request to rejected; the balance is untouched.
func (repo *LeaveRequestRepository) Reject(requestID uint, adminID uint, adminNotes string) (models.LeaveRequest, error) {
	var decided models.LeaveRequest
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		request, txErr := lockPendingRequest(tx, requestID)
		if txErr != nil {
			return txErr
		}

		if txErr := tx.Model(&models.LeaveRequest{}).Where("id = ?", requestID).Updates(map[string]any{
			"status":      models.LeaveStatusRejected,
			"admin_id":    adminID,
			"admin_notes": adminNotes,
			"updated_at":  time.Now(),
		}).Error; txErr != nil {
			return txErr
		}

		decided = request
		decided.Status = models.LeaveStatusRejected
		decided.AdminID = &adminID
		decided.AdminNotes = adminNotes
		return nil
	})
	if err != nil {
		return models.LeaveRequest{}, err
	}
	return decided, nil
}

func lockPendingRequest(tx *gorm.DB, requestID uint) (models.LeaveRequest, error) {
	var request models.LeaveRequest
	if err := tx.First(&request, requestID).Error; err != nil {
		return models.LeaveRequest{}, err
	}
	if request.Decided() {
		return models.LeaveRequest{}, ErrLeaveRequestDecided
	}
	return request, nil
}
