package database

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/johnquangdev/transcript-archive/pkg/config"
)

// Open connects to the configured driver and applies migrations when
// DB_AUTO_MIGRATE is set.
func Open(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	switch cfg.Database.Driver {
	case config.DriverPostgres:
		db, err = NewPostgresDB(cfg, log)
	case config.DriverSQLite:
		db, err = NewSQLiteDB(cfg, log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
	if err != nil {
		return nil, err
	}

	if cfg.Database.AutoMigrate {
		n, err := Migrate(db)
		if err != nil {
			_ = CloseDB(db)
			return nil, err
		}
		log.Info("migrations applied", zap.Int("count", n))
	}

	return db, nil
}

// Ping checks the connection is alive
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// CloseDB closes the database connection
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}

func gormConfig(environment string) *gorm.Config {
	// Configure GORM logger
	gormLogger := logger.Default.LogMode(logger.Info)
	switch environment {
	case "production":
		gormLogger = logger.Default.LogMode(logger.Error)
	case "test":
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	return &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
		NowFunc: func() time.Time {
			// Postgres keeps microseconds; truncating keeps returned rows equal to what was written.
			return time.Now().UTC().Truncate(time.Microsecond)
		},
	}
}
