package services

import (
	"errors"
	"strings"

	"github.com/dmatosb/horabank/internal/models"
	"gorm.io/gorm"
)

var ErrEmptyAnnouncement = errors.New("announcement content is required")

type AnnouncementRepository interface {
	FindActive() (models.Announcement, error)
	ReplaceActive(content string, adminID uint) (models.Announcement, error)
}

type AnnouncementService struct {
	announcements AnnouncementRepository
}

func NewAnnouncementService(announcements AnnouncementRepository) *AnnouncementService {
	return &AnnouncementService{announcements: announcements}
}

// Active returns the current announcement, or nil when none is active.
func (service *AnnouncementService) Active() (*models.Announcement, error) {
	announcement, err := service.announcements.FindActive()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &announcement, nil
}

// Publish replaces the active announcement with a new one.
func (service *AnnouncementService) Publish(content string, adminID uint) (models.Announcement, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return models.Announcement{}, ErrEmptyAnnouncement
	}
	return service.announcements.ReplaceActive(content, adminID)
}
