package database

import (
	"fmt"
	"log"

	"github.com/KhushiYadav18/ET-learning-project/config"
	"github.com/KhushiYadav18/ET-learning-project/models"
	"github.com/KhushiYadav18/ET-learning-project/models/analytics"
	courseModels "github.com/KhushiYadav18/ET-learning-project/models/course"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Database wraps the GORM connection. It is constructed with New and closed
// by the owning process; nothing in this package holds a global handle.
type Database struct {
	Db *gorm.DB
}

// New establishes a connection to PostgreSQL, configures pooling and runs
// migrations. The caller owns the returned handle and must Close it.
func New(cfg *config.Config) (*Database, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return &Database{Db: db}, nil
}

// Close releases the underlying connection pool
func (d *Database) Close() error {
	sqlDB, err := d.Db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Migrate performs database migrations
func Migrate(db *gorm.DB) error {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&courseModels.Course{},
		&courseModels.Module{},
		&courseModels.QuizQuestion{},
		&courseModels.Enrollment{},
		&courseModels.ProgressRecord{},
		&analytics.PageView{},
		&analytics.UserClick{},
		&analytics.VideoInteraction{},
		&analytics.QuizAttempt{},
	)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Println("Migrations completed successfully.")
	return nil
}
