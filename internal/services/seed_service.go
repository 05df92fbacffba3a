package services

import (
	"errors"
	"strings"
	"time"

	"github.com/dmatosb/horabank/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var ErrSeedCredentialsRequired = errors.New("seed username and password are required")

type SeedAdminRepository interface {
	CountProtected() (int64, error)
	Create(admin *models.Administrator) error
}

// SeedService creates the protected default administrator on first
// start. The seed record carries every capability flag and is exempt
// from (and immune to) the normal admin CRUD paths.
type SeedService struct {
	admins SeedAdminRepository
}

func NewSeedService(admins SeedAdminRepository) *SeedService {
	return &SeedService{admins: admins}
}

// EnsureProtectedAdmin is idempotent: it reports whether a new seed
// record was created.
func (service *SeedService) EnsureProtectedAdmin(username string, password string, fullName string, badgeNumber string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return false, ErrSeedCredentialsRequired
	}

	existing, err := service.admins.CountProtected()
	if err != nil {
		return false, err
	}
	if existing > 0 {
		return false, nil
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}

	admin := models.Administrator{
		FullName:              strings.TrimSpace(fullName),
		BadgeNumber:           strings.TrimSpace(badgeNumber),
		Username:              username,
		PasswordHash:          string(passwordHash),
		CanCreateCollaborator: true,
		CanCreateAdmin:        true,
		CanEnterHours:         true,
		CanChangeAccessCode:   true,
		IsProtected:           true,
		CreatedAt:             time.Now(),
	}
	if err := service.admins.Create(&admin); err != nil {
		return false, err
	}
	return true, nil
}
