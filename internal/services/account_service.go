package services

import (
	"errors"
	"strings"
	"time"

	"github.com/dmatosb/horabank/internal/db"
	"github.com/dmatosb/horabank/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrDuplicateAccount       = errors.New("account already exists")
	ErrProtectedAdministrator = errors.New("protected administrator cannot be modified")
	ErrMissingRequiredFields  = errors.New("missing required fields")
)

type AccountAdminRepository interface {
	FindByID(adminID uint) (models.Administrator, error)
	List() ([]models.Administrator, error)
	Create(admin *models.Administrator) error
	UpdateByID(adminID uint, updates map[string]any) error
	DeleteByID(adminID uint) error
}

type AccountCollaboratorRepository interface {
	FindByID(collaboratorID uint) (models.Collaborator, error)
	List() ([]models.Collaborator, error)
	Create(collaborator *models.Collaborator) error
	UpdateByID(collaboratorID uint, updates map[string]any) error
	DeleteByID(collaboratorID uint) error
	UpdateAccessCode(collaboratorID uint, accessCode string) error
}

type AccountService struct {
	admins        AccountAdminRepository
	collaborators AccountCollaboratorRepository
}

func NewAccountService(admins AccountAdminRepository, collaborators AccountCollaboratorRepository) *AccountService {
	return &AccountService{admins: admins, collaborators: collaborators}
}

type AdminInput struct {
	FullName              string `json:"full_name"`
	BadgeNumber           string `json:"badge_number"`
	Username              string `json:"username"`
	Password              string `json:"password"`
	CanCreateCollaborator bool   `json:"can_create_collaborator"`
	CanCreateAdmin        bool   `json:"can_create_admin"`
	CanEnterHours         bool   `json:"can_enter_hours"`
	CanChangeAccessCode   bool   `json:"can_change_access_code"`
}

type CollaboratorInput struct {
	FullName    string `json:"full_name"`
	BadgeNumber string `json:"badge_number"`
	Position    string `json:"position"`
	Shift       string `json:"shift"`
	Supervisor  string `json:"supervisor"`
	AccessCode  string `json:"access_code"`
	IsActive    *bool  `json:"is_active"`
}

func (service *AccountService) ListAdmins() ([]models.Administrator, error) {
	return service.admins.List()
}

func (service *AccountService) CreateAdmin(input AdminInput) (models.Administrator, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || strings.TrimSpace(input.FullName) == "" || input.Password == "" {
		return models.Administrator{}, ErrMissingRequiredFields
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.Administrator{}, err
	}

	admin := models.Administrator{
		FullName:              strings.TrimSpace(input.FullName),
		BadgeNumber:           strings.TrimSpace(input.BadgeNumber),
		Username:              username,
		PasswordHash:          string(passwordHash),
		CanCreateCollaborator: input.CanCreateCollaborator,
		CanCreateAdmin:        input.CanCreateAdmin,
		CanEnterHours:         input.CanEnterHours,
		CanChangeAccessCode:   input.CanChangeAccessCode,
		CreatedAt:             time.Now(),
	}
	if err := service.admins.Create(&admin); err != nil {
		if db.IsDuplicateKey(err) {
			return models.Administrator{}, ErrDuplicateAccount
		}
		return models.Administrator{}, err
	}
	return admin, nil
}

// UpdateAdmin rewrites an administrator's editable attributes. The
// password is only replaced when a new one is supplied. The protected
// seed administrator is immutable through this path.
func (service *AccountService) UpdateAdmin(adminID uint, input AdminInput) error {
	target, err := service.admins.FindByID(adminID)
	if err != nil {
		return err
	}
	if target.IsProtected {
		return ErrProtectedAdministrator
	}
	if strings.TrimSpace(input.Username) == "" || strings.TrimSpace(input.FullName) == "" {
		return ErrMissingRequiredFields
	}

	updates := map[string]any{
		"full_name":               strings.TrimSpace(input.FullName),
		"badge_number":            strings.TrimSpace(input.BadgeNumber),
		"username":                strings.TrimSpace(input.Username),
		"can_create_collaborator": input.CanCreateCollaborator,
		"can_create_admin":        input.CanCreateAdmin,
		"can_enter_hours":         input.CanEnterHours,
		"can_change_access_code":  input.CanChangeAccessCode,
	}
	if input.Password != "" {
		passwordHash, hashErr := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if hashErr != nil {
			return hashErr
		}
		updates["password_hash"] = string(passwordHash)
	}

	if err := service.admins.UpdateByID(adminID, updates); err != nil {
		if db.IsDuplicateKey(err) {
			return ErrDuplicateAccount
		}
		return err
	}
	return nil
}

func (service *AccountService) DeleteAdmin(adminID uint) error {
	target, err := service.admins.FindByID(adminID)
	if err != nil {
		return err
	}
	if target.IsProtected {
		return ErrProtectedAdministrator
	}
	return service.admins.DeleteByID(adminID)
}

func (service *AccountService) ListCollaborators() ([]models.Collaborator, error) {
	return service.collaborators.List()
}

func (service *AccountService) CreateCollaborator(input CollaboratorInput) (models.Collaborator, error) {
	if strings.TrimSpace(input.FullName) == "" || strings.TrimSpace(input.BadgeNumber) == "" {
		return models.Collaborator{}, ErrMissingRequiredFields
	}
	if err := ValidateAccessCode(strings.TrimSpace(input.AccessCode)); err != nil {
		return models.Collaborator{}, err
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	collaborator := models.Collaborator{
		FullName:    strings.TrimSpace(input.FullName),
		BadgeNumber: strings.TrimSpace(input.BadgeNumber),
		Position:    strings.TrimSpace(input.Position),
		Shift:       strings.TrimSpace(input.Shift),
		Supervisor:  strings.TrimSpace(input.Supervisor),
		AccessCode:  strings.TrimSpace(input.AccessCode),
		Balance:     0,
		BalanceType: models.BalanceTypeNone,
		IsActive:    isActive,
		CreatedAt:   time.Now(),
	}
	if err := service.collaborators.Create(&collaborator); err != nil {
		if db.IsDuplicateKey(err) {
			return models.Collaborator{}, ErrDuplicateAccount
		}
		return models.Collaborator{}, err
	}
	return collaborator, nil
}

// UpdateCollaborator rewrites display attributes and the active flag.
// The balance is never writable here; only the ledger moves it.
func (service *AccountService) UpdateCollaborator(collaboratorID uint, input CollaboratorInput) error {
	if _, err := service.collaborators.FindByID(collaboratorID); err != nil {
		return err
	}
	if strings.TrimSpace(input.FullName) == "" || strings.TrimSpace(input.BadgeNumber) == "" {
		return ErrMissingRequiredFields
	}
	if err := ValidateAccessCode(strings.TrimSpace(input.AccessCode)); err != nil {
		return err
	}

	updates := map[string]any{
		"full_name":    strings.TrimSpace(input.FullName),
		"badge_number": strings.TrimSpace(input.BadgeNumber),
		"position":     strings.TrimSpace(input.Position),
		"shift":        strings.TrimSpace(input.Shift),
		"supervisor":   strings.TrimSpace(input.Supervisor),
		"access_code":  strings.TrimSpace(input.AccessCode),
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}

	if err := service.collaborators.UpdateByID(collaboratorID, updates); err != nil {
		if db.IsDuplicateKey(err) {
			return ErrDuplicateAccount
		}
		return err
	}
	return nil
}

func (service *AccountService) DeleteCollaborator(collaboratorID uint) error {
	if _, err := service.collaborators.FindByID(collaboratorID); err != nil {
		return err
	}
	return service.collaborators.DeleteByID(collaboratorID)
}

// ChangeAccessCode validates and stores a new login code for the
// collaborator.
func (service *AccountService) ChangeAccessCode(collaboratorID uint, newAccessCode string) error {
	newAccessCode = strings.TrimSpace(newAccessCode)
	if err := ValidateAccessCode(newAccessCode); err != nil {
		return err
	}
	if _, err := service.collaborators.FindByID(collaboratorID); err != nil {
		return err
	}
	if err := service.collaborators.UpdateAccessCode(collaboratorID, newAccessCode); err != nil {
		if db.IsDuplicateKey(err) {
			return ErrDuplicateAccount
		}
		return err
	}
	return nil
}
