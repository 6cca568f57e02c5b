package repositories

import (
	"errors"

	"jobhunt_backend/internal/models"

	"gorm.io/gorm"
)

var ErrSettingsNotFound = errors.New("user settings not found")

type UserSettingsRepository interface {
	FindByUserID(db *gorm.DB, userID string) (*models.UserSettings, error)
	Create(db *gorm.DB, settings *models.UserSettings) error
	Update(db *gorm.DB, settings *models.UserSettings) error
}

type userSettingsRepository struct{}

func NewUserSettingsRepository() UserSettingsRepository {
	return &userSettingsRepository{}
}

func (r *userSettingsRepository) FindByUserID(db *gorm.DB, userID string) (*models.UserSettings, error) {
	var settings models.UserSettings
	if err := db.First(&settings, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingsNotFound
		}
		return nil, err
	}
	return &settings, nil
}

func (r *userSettingsRepository) Create(db *gorm.DB, settings *models.UserSettings) error {
	return db.Create(settings).Error
}

func (r *userSettingsRepository) Update(db *gorm.DB, settings *models.UserSettings) error {
	result := db.Model(&models.UserSettings{}).
		Where("user_id = ?", settings.UserID).
		Select("email_notifications", "weekly_digest", "time_zone", "default_currency").
		Updates(settings)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSettingsNotFound
	}
	return nil
}
