package db

import (
	"strings"

	"gorm.io/gorm"
)

type Repositories struct {
	Admins        *AdminRepository
	Collaborators *CollaboratorRepository
	TimeEntries   *TimeEntryRepository
	LeaveRequests *LeaveRequestRepository
	Announcements *AnnouncementRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Admins:        NewAdminRepository(database),
		Collaborators: NewCollaboratorRepository(database),
		TimeEntries:   NewTimeEntryRepository(database),
		LeaveRequests: NewLeaveRequestRepository(database),
		Announcements: NewAnnouncementRepository(database),
	}
}

// IsDuplicateKey reports whether the store rejected a write because of
// a uniqueness constraint (username, badge number or access code).
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	message := err.Error()
	return strings.Contains(message, "UNIQUE constraint failed") ||
		strings.Contains(message, "duplicate key")
}
