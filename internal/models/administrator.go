package models

import "time"

const (
	RoleAdmin        = "admin"
	RoleCollaborator = "collaborator"
)

// Capability names one category of privileged admin action.
type Capability string

const (
	CapabilityCreateCollaborator Capability = "create_collaborator"
	CapabilityCreateAdmin        Capability = "create_admin"
	CapabilityEnterHours         Capability = "enter_hours"
	CapabilityChangeAccessCode   Capability = "change_access_code"
)

type Administrator struct {
	ID                    uint      `gorm:"primaryKey" json:"id"`
	FullName              string    `gorm:"not null" json:"full_name"`
	BadgeNumber           string    `json:"badge_number"`
	Username              string    `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash          string    `gorm:"not null" json:"-"`
	CanCreateCollaborator bool      `gorm:"not null;default:false" json:"can_create_collaborator"`
	CanCreateAdmin        bool      `gorm:"not null;default:false" json:"can_create_admin"`
	CanEnterHours         bool      `gorm:"not null;default:false" json:"can_enter_hours"`
	CanChangeAccessCode   bool      `gorm:"not null;default:false" json:"can_change_access_code"`
	IsProtected           bool      `gorm:"not null;default:false" json:"is_protected"`
	CreatedAt             time.Time `gorm:"not null" json:"created_at"`
}

// Allows reports whether the administrator may perform the action gated
// by the given capability. The protected seed administrator is exempt
// from flag checks.
func (admin Administrator) Allows(capability Capability) bool {
	if admin.IsProtected {
		return true
	}
	switch capability {
	case CapabilityCreateCollaborator:
		return admin.CanCreateCollaborator
	case CapabilityCreateAdmin:
		return admin.CanCreateAdmin
	case CapabilityEnterHours:
		return admin.CanEnterHours
	case CapabilityChangeAccessCode:
		return admin.CanChangeAccessCode
	default:
		return false
	}
}
