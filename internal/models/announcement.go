package models

import "time"

// Announcement is the single broadcast message shown to collaborators.
// At most one row is active at a time.
type Announcement struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"not null" json:"content"`
	IsActive  bool      `gorm:"not null;default:false" json:"is_active"`
	AdminID   *uint     `json:"admin_id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
