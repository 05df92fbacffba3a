package db

import (
	"github.com/dmatosb/horabank/internal/models"
	"gorm.io/gorm"
)

type AdminRepository struct {
	database *gorm.DB
}

func NewAdminRepository(database *gorm.DB) *AdminRepository {
	return &AdminRepository{database: database}
}

func (repo *AdminRepository) FindByID(adminID uint) (models.Administrator, error) {
	var admin models.Administrator
	if err := repo.database.First(&admin, adminID).Error; err != nil {
		return models.Administrator{}, err
	}
	return admin, nil
}

func (repo *AdminRepository) FindByUsername(username string) (models.Administrator, error) {
	var admin models.Administrator
	if err := repo.database.Where("username = ?", username).First(&admin).Error; err != nil {
		return models.Administrator{}, err
	}
	return admin, nil
}

func (repo *AdminRepository) List() ([]models.Administrator, error) {
	admins := make([]models.Administrator, 0)
	if err := repo.database.Order("full_name ASC").Find(&admins).Error; err != nil {
		return nil, err
	}
	return admins, nil
}

func (repo *AdminRepository) Create(admin *models.Administrator) error {
	return repo.database.Create(admin).Error
}

func (repo *AdminRepository) UpdateByID(adminID uint, updates map[string]any) error {
	return repo.database.Model(&models.Administrator{}).Where("id = ?", adminID).Updates(updates).Error
}

func (repo *AdminRepository) DeleteByID(adminID uint) error {
	return repo.database.Delete(&models.Administrator{}, adminID).Error
}

func (repo *AdminRepository) CountProtected() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Administrator{}).
		Where("is_protected = ?", true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *AdminRepository) FindProtected() (models.Administrator, error) {
	var admin models.Administrator
	if err := repo.database.Where("is_protected = ?", true).First(&admin).Error; err != nil {
		return models.Administrator{}, err
	}
	return admin, nil
}

func (repo *AdminRepository) UpdatePassword(adminID uint, passwordHash string) error {
	return repo.database.Model(&models.Administrator{}).
		Where("id = ?", adminID).
		Update("password_hash", passwordHash).Error
}
