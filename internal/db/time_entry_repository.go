package db

import (
	"github.com/dmatosb/horabank/internal/models"
	"gorm.io/gorm"
)

type TimeEntryRepository struct {
	database *gorm.DB
}

func NewTimeEntryRepository(database *gorm.DB) *TimeEntryRepository {
	return &TimeEntryRepository{database: database}
}

// ListByCollaborator returns the collaborator's ledger in chronological
// order, oldest entry first.
func (repo *TimeEntryRepository) ListByCollaborator(collaboratorID uint) ([]models.TimeEntry, error) {
	entries := make([]models.TimeEntry, 0)
	if err := repo.database.
		Where("collaborator_id = ?", collaboratorID).
		Order("created_at ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
