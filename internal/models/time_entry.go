package models

import "time"

const (
	EntryTypeManualAdjustment = "manual_adjustment"
	EntryTypeLeaveApproved    = "leave_approved"
)

// TimeEntry is one immutable ledger row. Entries for a collaborator,
// ordered by creation time, form a prefix-sum sequence whose last
// new_balance equals the collaborator's stored balance.
type TimeEntry struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	CollaboratorID uint      `gorm:"index;not null" json:"collaborator_id"`
	AdminID        *uint     `json:"admin_id"`
	HoursChange    float64   `gorm:"not null" json:"hours_change"`
	NewBalance     float64   `gorm:"not null" json:"new_balance"`
	EntryType      string    `gorm:"not null" json:"entry_type"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
}
