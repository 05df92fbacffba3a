package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dmatosb/horabank/internal/db"
	"github.com/dmatosb/horabank/internal/security"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RunResetPasswordCommand resets the protected default administrator's
// password to a fresh temporary one. It is the recovery path when the
// seed credentials are lost, since no API route can change that record.
func RunResetPasswordCommand(dbPath string) error {
	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	admins := db.NewAdminRepository(database)
	admin, err := admins.FindProtected()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("no protected administrator found; start the server once to seed it")
		}
		return fmt.Errorf("load protected administrator: %w", err)
	}

	newPassword, generated, err := chooseNewPassword()
	if err != nil {
		return err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash new password: %w", err)
	}

	if err := admins.UpdatePassword(admin.ID, string(passwordHash)); err != nil {
		return fmt.Errorf("update administrator password: %w", err)
	}

	fmt.Println("Password reset successful")
	fmt.Printf("Administrator: %s\n", admin.Username)
	if generated {
		fmt.Printf("Temporary password: %s\n", newPassword)
	}

	return nil
}

// chooseNewPassword reads a password from the terminal without echo,
// falling back to a generated temporary one when the prompt is empty or
// stdin is not an interactive terminal.
func chooseNewPassword() (password string, generated bool, err error) {
	fmt.Print("New password (leave empty to generate one): ")
	entered, promptErr := readPasswordNoEcho(os.Stdin)
	fmt.Println()
	if promptErr == nil {
		trimmed := strings.TrimSpace(string(entered))
		if trimmed != "" {
			return trimmed, false, nil
		}
	}

	temporaryPassword, err := generateTemporaryPassword(12)
	if err != nil {
		return "", false, fmt.Errorf("generate temporary password: %w", err)
	}
	return temporaryPassword, true, nil
}

func generateTemporaryPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
	return security.RandomString(length, alphabet)
}
