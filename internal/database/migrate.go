package database

import (
	"fmt"

	"socialbook/internal/models"

	"gorm.io/gorm"
)

// MigrationModels is the registry of models included in schema migration.
// Order matters: referenced tables first.
func MigrationModels() []any {
	return []any{
		&models.User{},
		&models.Friendship{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
	}
}

// Migrate runs schema auto-migration for all registered models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(MigrationModels()...); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}

	// Usernames and emails are unique case-insensitively. The functional
	// indexes enforce that at the database, so concurrent registrations of
	// "Alice" and "alice" collide instead of both committing.
	for _, stmt := range []string{
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username_lower ON users (LOWER(username))",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email_lower ON users (LOWER(email))",
	} {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("index creation failed: %w", err)
		}
	}
	return nil
}
