package migrations

import (
	"gorm.io/gorm"

	"fixdesk/internal/infrastructure/persistence/models"
)

// Migrate applies the schema for all persistence models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.UserModel{},
		&models.RequestModel{},
		&models.CommentModel{},
	)
}
