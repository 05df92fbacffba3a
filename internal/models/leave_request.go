package models

import "time"

const (
	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
	LeaveStatusRejected = "rejected"
)

// MinimumLeaveBalance is the smallest positive balance a collaborator
// needs before a leave request may be submitted.
const MinimumLeaveBalance = 3.0

type LeaveRequest struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	CollaboratorID uint      `gorm:"index;not null" json:"collaborator_id"`
	RequestDate    time.Time `gorm:"not null" json:"request_date"`
	HoursRequested float64   `gorm:"not null" json:"hours_requested"`
	Reason         string    `json:"reason"`
	Status         string    `gorm:"not null;default:pending" json:"status"`
	AdminID        *uint     `json:"admin_id"`
	AdminNotes     string    `json:"admin_notes"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null" json:"updated_at"`
}

// Decided reports whether the request has reached a terminal status.
func (request LeaveRequest) Decided() bool {
	return request.Status != LeaveStatusPending
}
