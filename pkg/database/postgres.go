package database

import (
	"fmt"
	"log/slog"

	"shop-backend/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresConnection opens cfg.DatabaseURL with gorm
func NewPostgresConnection(cfg *config.Config) (*gorm.DB, error) {
	return OpenGorm(postgres.Open(cfg.DatabaseURL), cfg.LogLevel)
}

// OpenGorm opens a gorm handle on dialector. Driver errors are translated so
// that unique violations surface as gorm.ErrDuplicatedKey.
func OpenGorm(dialector gorm.Dialector, logLevel string) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(gormLogLevel(logLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("opening postgres: %w", err)
	}

	slog.Debug("postgres connection opened")
	return db, nil
}

// ClosePostgres releases the pool behind db
func ClosePostgres(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func gormLogLevel(level string) logger.LogLevel {
	switch level {
	case "debug":
		return logger.Info
	case "warn", "warning":
		return logger.Warn
	case "error":
		return logger.Error
	default:
		return logger.Silent
	}
}
