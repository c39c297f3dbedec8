package database

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"userregistry/internal/models"
)

// Migrate creates the registrations table and its indexes when missing.
func Migrate(db *gorm.DB) error {
	log.Info().Msg("Running database migrations")

	if err := db.AutoMigrate(&models.Registration{}); err != nil {
		return fmt.Errorf("migrate registrations: %w", err)
	}

	log.Info().Msg("Database migrations completed")
	return nil
}
