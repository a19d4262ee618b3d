package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/johnquangdev/transcript-archive/pkg/config"
)

// sqliteParams enables foreign key enforcement and waits on a locked database
// instead of failing immediately.
const sqliteParams = "_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL"

// NewSQLiteDB opens the file database at cfg.Database.SQLitePath.
// SQLite allows a single writer, so the pool is capped at one connection and
// transactions queue on it.
func NewSQLiteDB(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?%s", cfg.Database.SQLitePath, sqliteParams)

	db, err := OpenSQLite(dsn, cfg.Server.Environment)
	if err != nil {
		return nil, err
	}

	log.Info("database connected",
		zap.String("driver", config.DriverSQLite),
		zap.String("path", cfg.Database.SQLitePath),
	)
	return db, nil
}

// OpenSQLite opens a SQLite database from a raw DSN with a single connection
func OpenSQLite(dsn, environment string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig(environment))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}
