package database

import (
	"commune/internal/models"

	"gorm.io/gorm"
)

// Models returns every persisted model in migration order. Parents come
// before the tables that reference them so foreign keys resolve.
func Models() []any {
	return []any{
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
	}
}

// Migrate runs AutoMigrate over the model registry. Both the postgres
// deployment and the sqlite test databases go through this path, so the
// two schemas never drift.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
