package utils

import (
	"fmt"
	"listenup/backend/config"
	"listenup/backend/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the Postgres connection and migrates the schema.
// TranslateError lets callers match unique-constraint violations
// via gorm.ErrDuplicatedKey instead of driver-specific error codes.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Lesson{},
		&models.Question{},
		&models.Progress{},
		&models.VocabularyEntry{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
