package database

import (
	"jobhunt_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate brings the schema up to date. Order matters: parents before the
// tables that reference them.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.UserSettings{},
		&models.Job{},
		&models.Interview{},
	)
}
