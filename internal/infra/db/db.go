package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/marsestates/brokerage-api/internal/config"
)

// New opens a gorm connection for the configured driver and applies
// pool settings. Sqlite connections turn foreign key enforcement on so
// the cascade and SET NULL constraints behave like postgres.
func New(cfg *config.Config) (*gorm.DB, error) {
	var (
		d   *gorm.DB
		err error
	)

	switch cfg.Database.Driver {
	case "sqlite":
		d, err = gorm.Open(sqlite.Open(cfg.Database.DSN), &gorm.Config{})
		if err == nil {
			err = d.Exec("PRAGMA foreign_keys = ON").Error
		}
	case "postgres", "":
		d, err = gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := d.DB()
	if err != nil {
		return nil, err
	}
	if cfg.Database.MaxOpen > 0 {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpen)
	}
	if cfg.Database.MaxIdle > 0 {
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdle)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	return d, nil
}
