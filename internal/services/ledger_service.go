package services

import (
	"errors"
	"strings"

	"github.com/dmatosb/horabank/internal/models"
)

var ErrZeroHoursChange = errors.New("hours change must not be zero")

type LedgerCollaboratorRepository interface {
	ApplyAdjustment(collaboratorID uint, hoursChange float64, adminID *uint, entryType string, description string) (models.TimeEntry, error)
}

// LedgerService posts signed hour deltas to a collaborator's running
// balance. Every successful call leaves the collaborator's stored
// balance equal to the new_balance of its latest ledger row.
type LedgerService struct {
	collaborators LedgerCollaboratorRepository
}

func NewLedgerService(collaborators LedgerCollaboratorRepository) *LedgerService {
	return &LedgerService{collaborators: collaborators}
}

func (service *LedgerService) ApplyManualAdjustment(collaboratorID uint, hoursChange float64, description string, adminID uint) (models.TimeEntry, error) {
	if hoursChange == 0 {
		return models.TimeEntry{}, ErrZeroHoursChange
	}
	return service.collaborators.ApplyAdjustment(
		collaboratorID,
		hoursChange,
		&adminID,
		models.EntryTypeManualAdjustment,
		strings.TrimSpace(description),
	)
}
