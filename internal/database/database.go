package database

import (
	"fmt"

	"portfolio/internal/config"
	"portfolio/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open returns the shared database handle for the configured driver.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "", "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// Initialize creates any missing tables and seeds the default data. It is safe
// to call on every start.
func Initialize(db *gorm.DB, logger *zap.Logger) error {
	err := db.AutoMigrate(
		&models.Profile{},
		&models.Skill{},
		&models.Project{},
		&models.ContactMessage{},
		&models.VisitorCounter{},
	)
	if err != nil {
		return fmt.Errorf("failed to auto-migrate database: %w", err)
	}

	if err := Seed(db, logger); err != nil {
		return err
	}

	logger.Info("Database initialized")
	return nil
}
