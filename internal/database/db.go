package database

import (
	"fmt"

	"chat_messages_go_backend/cmd/api/config"
	"chat_messages_go_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Init opens the postgres connection pool and verifies it is reachable.
// The returned handle is passed to the data access layer explicitly;
// nothing in this package holds global state.
func Init(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access underlying connection pool: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if cfg.AutoCreateTables {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// Migrate creates or updates the chats and messages tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Chat{}, &models.Message{}); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}
	return nil
}
