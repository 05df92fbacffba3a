package services

import (
	"errors"
	"strings"

	"github.com/dmatosb/horabank/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveAccount    = errors.New("account is inactive")
)

type AuthAdminRepository interface {
	FindByUsername(username string) (models.Administrator, error)
	FindByID(adminID uint) (models.Administrator, error)
}

type AuthCollaboratorRepository interface {
	FindByAccessCode(accessCode string) (models.Collaborator, error)
	FindByID(collaboratorID uint) (models.Collaborator, error)
}

type AuthService struct {
	admins        AuthAdminRepository
	collaborators AuthCollaboratorRepository
}

func NewAuthService(admins AuthAdminRepository, collaborators AuthCollaboratorRepository) *AuthService {
	return &AuthService{admins: admins, collaborators: collaborators}
}

// AdminLogin verifies a username/password pair. Unknown usernames and
// wrong passwords are indistinguishable to the caller.
func (service *AuthService) AdminLogin(username string, password string) (models.Administrator, error) {
	admin, err := service.admins.FindByUsername(strings.TrimSpace(username))
	if err != nil {
		return models.Administrator{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return models.Administrator{}, ErrInvalidCredentials
	}
	return admin, nil
}

// CollaboratorLogin verifies an access code and that the account is
// still active.
func (service *AuthService) CollaboratorLogin(accessCode string) (models.Collaborator, error) {
	collaborator, err := service.collaborators.FindByAccessCode(strings.TrimSpace(accessCode))
	if err != nil {
		return models.Collaborator{}, ErrInvalidCredentials
	}
	if !collaborator.IsActive {
		return models.Collaborator{}, ErrInactiveAccount
	}
	return collaborator, nil
}

func (service *AuthService) FindAdmin(adminID uint) (models.Administrator, error) {
	return service.admins.FindByID(adminID)
}

func (service *AuthService) FindCollaborator(collaboratorID uint) (models.Collaborator, error) {
	return service.collaborators.FindByID(collaboratorID)
}
