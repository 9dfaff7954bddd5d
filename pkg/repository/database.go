package repository

import (
	"fmt"

	"github.com/avivsarig/gtd/pkg/config"
	"github.com/avivsarig/gtd/pkg/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open creates a new database connection
func Open(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := setupJoinTables(db); err != nil {
		return nil, err
	}

	return db, nil
}

// setupJoinTables registers the association models so the join rows carry
// their own created_at column.
func setupJoinTables(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Task{}, "Contexts", &models.TaskContext{}); err != nil {
		return fmt.Errorf("failed to set up task_contexts join table: %w", err)
	}
	if err := db.SetupJoinTable(&models.Note{}, "Tasks", &models.NoteTaskLink{}); err != nil {
		return fmt.Errorf("failed to set up note_task_links join table: %w", err)
	}
	return nil
}

// Migrate brings the schema up to date: tables, indexes, triggers, search
// vectors and seed data. Safe to run repeatedly.
func Migrate(db *gorm.DB) error {
	// gen_random_uuid lives in pgcrypto on Postgres < 13
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error; err != nil {
		return fmt.Errorf("failed to enable pgcrypto extension: %w", err)
	}

	if err := autoMigrate(db); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}

	if err := applyDDL(db); err != nil {
		return err
	}

	if err := seedDefaultContexts(db); err != nil {
		return err
	}

	return nil
}

// autoMigrate runs auto migration for all models
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Project{},
		&models.Context{},
		&models.Task{},
		&models.Note{},
		&models.InboxItem{},
	)
}
