package db

import (
	"time"

	"github.com/dmatosb/horabank/internal/models"
	"gorm.io/gorm"
)

type AnnouncementRepository struct {
	database *gorm.DB
}

func NewAnnouncementRepository(database *gorm.DB) *AnnouncementRepository {
	return &AnnouncementRepository{database: database}
}

// FindActive returns the currently active announcement, if any.
func (repo *AnnouncementRepository) FindActive() (models.Announcement, error) {
	var announcement models.Announcement
	if err := repo.database.
		Where("is_active = ?", true).
		Order("created_at DESC, id DESC").
		First(&announcement).Error; err != nil {
		return models.Announcement{}, err
	}
	return announcement, nil
}

// ReplaceActive deactivates every active announcement and inserts the
// new one as active, keeping the at-most-one-active invariant.
func (repo *AnnouncementRepository) ReplaceActive(content string, adminID uint) (models.Announcement, error) {
	announcement := models.Announcement{
		Content:   content,
		IsActive:  true,
		AdminID:   &adminID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		if txErr := tx.Model(&models.Announcement{}).
			Where("is_active = ?", true).
			Updates(map[string]any{"is_active": false, "updated_at": time.Now()}).Error; txErr != nil {
			return txErr
		}
		return tx.Create(&announcement).Error
	})
	if err != nil {
		return models.Announcement{}, err
	}
	return announcement, nil
}
