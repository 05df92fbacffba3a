package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/dmatosb/horabank/internal/models"
	"gorm.io/gorm"
)

func openTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "horabank-test.db")
	database, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return database
}

func createTestCollaboratorInput(badgeNumber string, accessCode string) models.Collaborator {
	return models.Collaborator{
		FullName:    "Collaborator " + badgeNumber,
		BadgeNumber: badgeNumber,
		Supervisor:  "Carlos",
		AccessCode:  accessCode,
		Balance:     0,
		BalanceType: models.BalanceTypeNone,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}
}

func createTestCollaborator(t *testing.T, database *gorm.DB, badgeNumber string, accessCode string) models.Collaborator {
	t.Helper()

	collaborator := createTestCollaboratorInput(badgeNumber, accessCode)
	if err := database.Create(&collaborator).Error; err != nil {
		t.Fatalf("create collaborator: %v", err)
	}
	return collaborator
}
