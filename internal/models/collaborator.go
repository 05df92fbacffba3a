package models

import "time"

const (
	BalanceTypePositive = "positive"
	BalanceTypeNegative = "negative"
	BalanceTypeNone     = "none"
)

type Collaborator struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FullName    string    `gorm:"not null" json:"full_name"`
	BadgeNumber string    `gorm:"uniqueIndex;not null" json:"badge_number"`
	Position    string    `json:"position"`
	Shift       string    `json:"shift"`
	Supervisor  string    `json:"supervisor"`
	AccessCode  string    `gorm:"uniqueIndex;not null" json:"access_code"`
	Balance     float64   `gorm:"not null;default:0" json:"balance"`
	BalanceType string    `gorm:"not null;default:none" json:"balance_type"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}

// BalanceTypeFor derives the sign label stored alongside a balance.
func BalanceTypeFor(balance float64) string {
	switch {
	case balance > 0:
		return BalanceTypePositive
	case balance < 0:
		return BalanceTypeNegative
	default:
		return BalanceTypeNone
	}
}
