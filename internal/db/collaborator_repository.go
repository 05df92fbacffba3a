package db

import (
	"time"

	"github.com/dmatosb/horabank/internal/models"
	"gorm.io/gorm"
)

type CollaboratorRepository struct {
	database *gorm.DB
}

func NewCollaboratorRepository(database *gorm.DB) *CollaboratorRepository {
	return &CollaboratorRepository{database: database}
}

func (repo *CollaboratorRepository) FindByID(collaboratorID uint) (models.Collaborator, error) {
	var collaborator models.Collaborator
	if err := repo.database.First(&collaborator, collaboratorID).Error; err != nil {
		return models.Collaborator{}, err
	}
	return collaborator, nil
}

func (repo *CollaboratorRepository) FindByAccessCode(accessCode string) (models.Collaborator, error) {
	var collaborator models.Collaborator
	if err := repo.database.Where("access_code = ?", accessCode).First(&collaborator).Error; err != nil {
		return models.Collaborator{}, err
	}
	return collaborator, nil
}

func (repo *CollaboratorRepository) List() ([]models.Collaborator, error) {
	collaborators := make([]models.Collaborator, 0)
	if err := repo.database.Order("full_name ASC").Find(&collaborators).Error; err != nil {
		return nil, err
	}
	return collaborators, nil
}

func (repo *CollaboratorRepository) ListBySupervisor(supervisor string) ([]models.Collaborator, error) {
	collaborators := make([]models.Collaborator, 0)
	if err := repo.database.
		Where("supervisor = ?", supervisor).
		Order("full_name ASC").
		Find(&collaborators).Error; err != nil {
		return nil, err
	}
	return collaborators, nil
}

func (repo *CollaboratorRepository) Create(collaborator *models.Collaborator) error {
	return repo.database.Create(collaborator).Error
}

func (repo *CollaboratorRepository) UpdateByID(collaboratorID uint, updates map[string]any) error {
	return repo.database.Model(&models.Collaborator{}).Where("id = ?", collaboratorID).Updates(updates).Error
}

func (repo *CollaboratorRepository) DeleteByID(collaboratorID uint) error {
	return repo.database.Delete(&models.Collaborator{}, collaboratorID).Error
}

func (repo *CollaboratorRepository) UpdateAccessCode(collaboratorID uint, accessCode string) error {
	return repo.database.Model(&models.Collaborator{}).
		Where("id = ?", collaboratorID).
		Update("access_code", accessCode).Error
}

// ApplyAdjustment applies a signed hour delta to the collaborator's
// balance and appends the matching ledger row, all inside a single
// transaction so concurrent adjustments serialize at the store and the
// history prefix-sum stays consistent with the stored balance.
func (repo *CollaboratorRepository) ApplyAdjustment(collaboratorID uint, hoursChange float64, adminID *uint, entryType string, description string) (models.TimeEntry, error) {
	var entry models.TimeEntry
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		created, txErr := applyBalanceAdjustment(tx, collaboratorID, hoursChange, adminID, entryType, description)
		if txErr != nil {
			return txErr
		}
		entry = created
		return nil
	})
	if err != nil {
		return models.TimeEntry{}, err
	}
	return entry, nil
}

// applyBalanceAdjustment is the shared read-modify-write step; callers
// must already be inside a transaction.
func applyBalanceAdjustment(tx *gorm.DB, collaboratorID uint, hoursChange float64, adminID *uint, entryType string, description string) (models.TimeEntry, error) {
	var collaborator models.Collaborator
	if err := tx.First(&collaborator, collaboratorID).Error; err != nil {
		return models.TimeEntry{}, err
	}

	newBalance := collaborator.Balance + hoursChange
	if err := tx.Model(&models.Collaborator{}).Where("id = ?", collaboratorID).Updates(map[string]any{
		"balance":      newBalance,
		"balance_type": models.BalanceTypeFor(newBalance),
	}).Error; err != nil {
		return models.TimeEntry{}, err
	}

	entry := models.TimeEntry{
		CollaboratorID: collaboratorID,
		AdminID:        adminID,
		HoursChange:    hoursChange,
		NewBalance:     newBalance,
		EntryType:      entryType,
		Description:    description,
		CreatedAt:      time.Now(),
	}
	if err := tx.Create(&entry).Error; err != nil {
		return models.TimeEntry{}, err
	}
	return entry, nil
}
